package main

import (
	"HealthPantry-Backend/cmd/config"
	migration "HealthPantry-Backend/cmd/database/migrate"
	"HealthPantry-Backend/internal/utils"
	"log"
	"os"
)

func main() {
	utils.LoadConfig()
	utils.InitLogger(os.Getenv("LOG_LEVEL"))
	defer utils.SyncLogger()

	db, err := config.ConnectDB()
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	if err := migration.Migrate(db); err != nil {
		log.Fatalf("failed to migrate database: %v", err)
	}

	app, err := config.NewApp(db)
	if err != nil {
		log.Fatalf("failed to build app: %v", err)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	if err := app.Listen(":" + port); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
