// main.go
package main

import (
	"context"
	"log"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"go-storefront/config"
	"go-storefront/controllers"
	"go-storefront/middleware"
	"go-storefront/routes"
	"go-storefront/utils"
)

func main() {
	// Load environment variables from .env file
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found. Proceeding with environment variables.")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config: ", err)
	}

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatal("Failed to create logger: ", err)
	}
	defer logger.Sync()

	// Set the JWT secret key
	utils.JwtKey = []byte(cfg.JWTSecret)

	// Initialize EmailService when Postmark is configured
	var emailService *utils.EmailService
	if cfg.PostmarkAPIToken != "" {
		emailService = utils.NewEmailService(cfg.PostmarkAPIToken, cfg.EmailSender)
	} else {
		logger.Info("POSTMARK_API_TOKEN not set, order confirmation emails disabled")
	}

	// Connect to MongoDB
	client, err := utils.ConnectDB(cfg.MongoURI)
	if err != nil {
		logger.Fatal("Failed to connect to MongoDB", zap.Error(err))
	}
	defer func() {
		if err = client.Disconnect(context.TODO()); err != nil {
			logger.Error("Failed to disconnect from MongoDB", zap.Error(err))
		}
	}()

	// Initialize controllers
	userController := controllers.NewUserController(client, cfg.Database)
	productController := controllers.NewProductController(client, cfg.Database)
	orderController := controllers.NewOrderController(client, cfg.Database, emailService, logger)

	// Set up the router
	router := mux.NewRouter()
	router.Use(middleware.Logging(logger))

	// Register routes
	routes.RegisterRoutes(router, userController, productController, orderController)

	// Start the server
	logger.Info("Server is running", zap.String("port", cfg.Port))
	log.Fatal(http.ListenAndServe(":"+cfg.Port, router))
}
