package config

import (
	"HealthPantry-Backend/internal/api/handlers"
	"HealthPantry-Backend/internal/api/routes"
	"HealthPantry-Backend/internal/middleware"
	"HealthPantry-Backend/internal/utils"
	"HealthPantry-Backend/internal/utils/storage"
	"HealthPantry-Backend/pkg/catalog"
	"HealthPantry-Backend/pkg/inventory"
	"HealthPantry-Backend/pkg/jwt"
	"HealthPantry-Backend/pkg/patient"
	"HealthPantry-Backend/pkg/recipe"
	"HealthPantry-Backend/pkg/suggestion"
	"os"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func NewApp(db *gorm.DB) (*fiber.App, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		EnablePrintRoutes: true,
	})
	middlewares := middleware.NewMiddleware()
	validator := utils.Validate

	// setting up logging and limiter
	err := os.MkdirAll("./logs", os.ModePerm)
	if err != nil {
		log.Fatalf("error creating logs directory: %v", err)
	}
	file, err := os.OpenFile(
		"./logs/app.log",
		os.O_RDWR|os.O_CREATE|os.O_APPEND,
		0666,
	)
	if err != nil {
		log.Fatalf("error opening file: %v", err)
	}
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		TimeZone:   "UTC",
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        10,
		Expiration: 1 * time.Second,
	}))

	// utils
	s3 := storage.NewAwsS3()
	tables, err := suggestion.LoadClinicalTables(utils.GetConfig("CLINICAL_TABLES_PATH"))
	if err != nil {
		utils.LogWarn("falling back to built-in clinical tables", zap.Error(err))
		tables = suggestion.DefaultClinicalTables()
	}

	// Repository
	patientRepository := patient.NewPatientRepository(db)
	inventoryRepository := inventory.NewInventoryRepository(db)
	recipeRepository := recipe.NewRecipeRepository(db)
	catalogRepository := catalog.NewCatalogRepository(db)

	// Service
	jwtService := jwt.NewJWTService()
	patientService := patient.NewPatientService(patientRepository)
	inventoryService := inventory.NewInventoryService(inventoryRepository)
	recipeService := recipe.NewRecipeService(recipeRepository, s3)
	catalogService := catalog.NewCatalogService(catalogRepository)
	suggestionService := suggestion.NewSuggestionService(
		patientService,
		inventoryService,
		recipeService,
		suggestion.NewSafetyEvaluator(tables),
		suggestion.NewAvailabilityScorer(configInt("EXPIRY_HORIZON_DAYS")),
		suggestion.NewProductMatcher(catalogService),
		suggestion.Tunables{
			WorkerCount:  configInt("MATCH_WORKER_COUNT"),
			MatchTimeout: time.Duration(configInt("MATCH_TIMEOUT_MILLIS")) * time.Millisecond,
		},
	)

	// Handler
	patientHandler := handlers.NewPatientHandler(patientService, validator)
	inventoryHandler := handlers.NewInventoryHandler(inventoryService, validator)
	recipeHandler := handlers.NewRecipeHandler(recipeService, validator)
	productHandler := handlers.NewProductHandler(catalogService, validator)
	suggestionHandler := handlers.NewSuggestionHandler(suggestionService, validator)

	// routes
	routesConfig := routes.Config{
		App:               app,
		PatientHandler:    patientHandler,
		InventoryHandler:  inventoryHandler,
		RecipeHandler:     recipeHandler,
		ProductHandler:    productHandler,
		SuggestionHandler: suggestionHandler,
		Middleware:        middlewares,
		JWTService:        jwtService,
	}
	routesConfig.Setup()
	return app, nil
}

// configInt reads an integer config key; zero means "use the default".
func configInt(key string) int {
	raw := utils.GetConfig(key)
	if raw == "" {
		return 0
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0
	}
	return n
}
