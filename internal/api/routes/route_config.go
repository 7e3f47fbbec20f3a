package routes

import (
	"HealthPantry-Backend/internal/api/handlers"
	"HealthPantry-Backend/internal/middleware"
	"HealthPantry-Backend/pkg/jwt"

	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App               *fiber.App
	PatientHandler    handlers.PatientHandler
	InventoryHandler  handlers.InventoryHandler
	RecipeHandler     handlers.RecipeHandler
	ProductHandler    handlers.ProductHandler
	SuggestionHandler handlers.SuggestionHandler
	Middleware        middleware.Middleware
	JWTService        jwt.JWTService
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.Patients()
	c.Inventory()
	c.Recipes()
	c.Products()
	c.Suggestions()
	c.GuestRoute()
}

func (c *Config) Patients() {
	patients := c.App.Group("/api/v1/patients", c.Middleware.AuthMiddleware(c.JWTService))

	patients.Post("", c.PatientHandler.AddPatient)
	patients.Get("", c.PatientHandler.GetPatients)
	patients.Get("/:id", c.PatientHandler.GetPatientDetails)
	patients.Patch("/:id", c.PatientHandler.UpdatePatient)
	patients.Delete("/:id", c.PatientHandler.DeletePatient)

	// Medical profile
	patients.Post("/medications", c.PatientHandler.AddMedication)
	patients.Get("/:id/medications", c.PatientHandler.GetMedications)
	patients.Post("/allergies", c.PatientHandler.AddAllergy)
	patients.Post("/dietary-tags", c.PatientHandler.AddDietaryTag)
	patients.Post("/vitals", c.PatientHandler.AddVitalReading)
	patients.Get("/:id/vitals", c.PatientHandler.GetVitals)
}

func (c *Config) Inventory() {
	items := c.App.Group("/api/v1/inventory", c.Middleware.AuthMiddleware(c.JWTService))

	items.Post("", c.InventoryHandler.AddItem)
	items.Get("", c.InventoryHandler.GetItems)
	items.Get("/expiring", c.InventoryHandler.GetExpiringItems)
	items.Patch("/:id", c.InventoryHandler.UpdateItem)
	items.Delete("/:id", c.InventoryHandler.DeleteItem)
}

func (c *Config) Recipes() {
	recipes := c.App.Group("/api/v1/recipes", c.Middleware.AuthMiddleware(c.JWTService))

	recipes.Post("", c.RecipeHandler.AddRecipe)
	recipes.Get("", c.RecipeHandler.GetRecipes)
	recipes.Get("/:id", c.RecipeHandler.GetRecipeDetails)
	recipes.Delete("/:id", c.RecipeHandler.DeleteRecipe)
	recipes.Post("/image", c.RecipeHandler.UploadRecipeImage)
}

func (c *Config) Products() {
	products := c.App.Group("/api/v1/products", c.Middleware.AuthMiddleware(c.JWTService))

	products.Post("", c.ProductHandler.AddProduct)
	products.Get("", c.ProductHandler.GetProducts)
	products.Post("/:barcode/scan", c.ProductHandler.RecordScan)
	products.Post("/price-report", c.ProductHandler.ReportPrice)
}

func (c *Config) Suggestions() {
	suggestions := c.App.Group("/api/v1/suggestions", c.Middleware.AuthMiddleware(c.JWTService))

	suggestions.Get("", c.SuggestionHandler.GetSuggestions)
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})
}
