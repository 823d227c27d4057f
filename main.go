package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"gorm.io/gorm"

	"restaurant-backoffice/config"
	"restaurant-backoffice/database"
	"restaurant-backoffice/models"
	"restaurant-backoffice/router"
	"restaurant-backoffice/utils"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("no .env file loaded: %v", err)
	}

	utils.InitLogger()

	if os.Getenv("GIN_MODE") == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	cfg := config.Load()
	db, err := config.InitDB(cfg)
	if err != nil {
		utils.ErrorLogger.Fatalf("Failed to open database handle: %v", err)
	}

	// A database that is down at boot is logged, not fatal; requests fail
	// with driver errors until it comes back.
	if sqlDB, dbErr := db.DB(); dbErr == nil {
		if pingErr := sqlDB.Ping(); pingErr != nil {
			utils.ErrorLogger.Printf("Database connection failed: %v", pingErr)
		} else {
			utils.InfoLogger.Printf("Connected to MySQL database %q", cfg.DBName)
		}
	}

	// Probe the live schema before migrating; migration would add the
	// default phone column and hide a legacy staff_phone deployment.
	staffPhoneCol := database.DetectStaffPhoneColumn(db)

	autoMigrate(db)

	if os.Getenv("SEED_DATASET") == "true" {
		if err := database.SeedDataset(db, staffPhoneCol); err != nil {
			utils.ErrorLogger.Printf("Seed failed: %v", err)
		}
	}

	r := router.SetupRouter(db, staffPhoneCol)

	utils.InfoLogger.Printf("Listening on port %s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		utils.ErrorLogger.Fatal(err)
	}
}

func autoMigrate(db *gorm.DB) {
	err := db.AutoMigrate(
		&models.Customer{},
		&models.Staff{},
		&models.Order{},
		&models.Reservation{},
		&models.FinancialEntry{},
		&models.Attendance{},
		&models.User{},
	)
	if err != nil {
		utils.ErrorLogger.Printf("AutoMigrate failed: %v", err)
		return
	}
	utils.InfoLogger.Println("AutoMigrate completed.")
}
