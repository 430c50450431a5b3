package routes

import (
	"github.com/gorilla/mux"

	"go-storefront/controllers"
	"go-storefront/middleware"
)

// RegisterRoutes sets up all the routes for the application
func RegisterRoutes(router *mux.Router, userController *controllers.UserController, productController *controllers.ProductController, orderController *controllers.OrderController) {
	// Public routes
	router.HandleFunc("/api/users/login", userController.Login).Methods("POST")
	router.HandleFunc("/api/users/register", userController.Register).Methods("POST")

	// Product routes
	router.HandleFunc("/api/products", productController.GetProducts).Methods("GET")
	router.HandleFunc("/api/products/categories", productController.GetCategories).Methods("GET")
	router.HandleFunc("/api/products/slug/{slug}", productController.GetProductBySlug).Methods("GET")
	router.HandleFunc("/api/products/{id}", productController.GetProductByID).Methods("GET")

	// Admin routes
	admin := router.PathPrefix("/api/admin/products").Subrouter()
	admin.Use(middleware.AuthMiddleware)
	admin.Use(middleware.AdminMiddleware)
	admin.HandleFunc("", productController.CreateProduct).Methods("POST")
	admin.HandleFunc("/{id}", productController.UpdateProduct).Methods("PUT")
	admin.HandleFunc("/{id}", productController.DeleteProduct).Methods("DELETE")

	// Protected routes
	protected := router.PathPrefix("/api").Subrouter()
	protected.Use(middleware.AuthMiddleware)
	protected.HandleFunc("/users/profile", userController.UpdateProfile).Methods("PUT")
	protected.HandleFunc("/orders", orderController.CreateOrder).Methods("POST")
	protected.HandleFunc("/orders/history", orderController.GetOrderHistory).Methods("GET")
	protected.HandleFunc("/orders/{id}", orderController.GetOrderByID).Methods("GET")
	protected.HandleFunc("/orders/{id}/pay", orderController.PayOrder).Methods("PUT")
}
