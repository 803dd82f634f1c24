package config

import (
	"os"
	"time"

	"nutriscan-api/internal/api/handlers"
	"nutriscan-api/internal/api/routes"
	"nutriscan-api/internal/middleware"
	"nutriscan-api/internal/utils"
	"nutriscan-api/internal/utils/storage"
	"nutriscan-api/pkg/journal"
	"nutriscan-api/pkg/jwt"
	"nutriscan-api/pkg/midtrans"
	"nutriscan-api/pkg/product"
	"nutriscan-api/pkg/scan"
	"nutriscan-api/pkg/user"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
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
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        10,
		Expiration: 1 * time.Second,
	}))

	// utils
	s3 := storage.NewAwsS3()
	offClient := product.NewOpenFoodFactsClient(utils.GetConfig("OPENFOODFACTS_URL"))
	scanTimeout := time.Duration(utils.GetScanTimeoutSeconds()) * time.Second

	// Repository
	userRepository := user.NewUserRepository(db)
	journalRepository := journal.NewJournalRepository(db)
	midtransRepository := midtrans.NewMidtransRepository(db)

	// Service
	jwtService := jwt.NewJWTService()
	userService := user.NewUserService(userRepository, jwtService)
	productService := product.NewProductService(offClient)
	journalService := journal.NewJournalService(journalRepository, s3)
	midtransService := midtrans.NewMidtransService(midtransRepository, userRepository)
	scanManager := scan.NewManager(func() scan.Detector {
		return scan.NewRemoteDetector()
	}, scanTimeout)

	// Handler
	userHandler := handlers.NewUserHandler(userService, midtransService, validator)
	productHandler := handlers.NewProductHandler(productService)
	journalHandler := handlers.NewJournalHandler(journalService, validator)
	scanHandler := handlers.NewScanHandler(scanManager, productService)
	midtransHandler := handlers.NewMidtransHandler(midtransService)

	// routes
	routesConfig := routes.Config{
		App:             app,
		UserHandler:     userHandler,
		ProductHandler:  productHandler,
		JournalHandler:  journalHandler,
		ScanHandler:     scanHandler,
		MidtransHandler: midtransHandler,
		Middleware:      middlewares,
		JWTService:      jwtService,
	}
	routesConfig.Setup()
	return app, nil
}
