package main

import (
	"time"

	"invoice-preview-backend/internal/config"
	"invoice-preview-backend/internal/logging"
	"invoice-preview-backend/internal/models"
	"invoice-preview-backend/internal/routes"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

func main() {
	// Load .env
	envErr := godotenv.Load()

	cfg := config.New()
	logging.Setup(cfg.LogLevel)
	if envErr != nil {
		logrus.Info("No .env file found, relying on system env")
	}

	db, err := config.InitDB(cfg)
	if err != nil {
		logrus.WithError(err).Fatal("database connection failed")
	}

	if err := db.AutoMigrate(
		&models.Profile{},
		&models.Invoice{},
		&models.ValuationLog{},
	); err != nil {
		logrus.WithError(err).Fatal("migration failed")
	}

	r := gin.Default()
	// CORS config
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     []string{"GET", "PUT"},
		AllowHeaders:     []string{"Origin", "Content-Type", "X-Session-User"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	if err := routes.RegisterRoutes(r, db, cfg); err != nil {
		logrus.WithError(err).Fatal("route setup failed")
	}

	logrus.WithField("port", cfg.Port).Info("starting invoice preview server")
	if err := r.Run(":" + cfg.Port); err != nil {
		logrus.WithError(err).Fatal("server stopped")
	}
}
