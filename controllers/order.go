package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"go-storefront/middleware"
	"go-storefront/models"
	"go-storefront/utils"
)

// OrderController handles order creation, payment and reads
type OrderController struct {
	OrderCollection *mongo.Collection
	EmailService    *utils.EmailService
	Logger          *zap.Logger
}

// NewOrderController creates a new OrderController
func NewOrderController(client *mongo.Client, database string, emailService *utils.EmailService, logger *zap.Logger) *OrderController {
	orderCollection := client.Database(database).Collection("orders")
	return &OrderController{
		OrderCollection: orderCollection,
		EmailService:    emailService,
		Logger:          logger,
	}
}

// createOrderRequest is the client's order submission payload
type createOrderRequest struct {
	OrderItems      []models.OrderItem     `json:"orderItems"`
	ShippingAddress models.ShippingAddress `json:"shippingAddress"`
	PaymentMethod   string                 `json:"paymentMethod"`
	ItemsPrice      float64                `json:"itemsPrice"`
	ShippingPrice   float64                `json:"shippingPrice"`
	TaxPrice        float64                `json:"taxPrice"`
	TotalPrice      float64                `json:"totalPrice"`
	IdempotencyKey  string                 `json:"idempotencyKey"`
}

// CreateOrder creates a new order for the authenticated user. A repeated
// submission carrying an idempotency key already seen for this user returns
// the existing order id instead of creating a duplicate.
func (oc *OrderController) CreateOrder(w http.ResponseWriter, r *http.Request) {
	claims, ok := r.Context().Value(middleware.UserContextKey).(*utils.Claims)
	if !ok {
		utils.RespondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	userID, err := primitive.ObjectIDFromHex(claims.UserID)
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, "Invalid user ID")
		return
	}

	var req createOrderRequest
	err = json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if len(req.OrderItems) == 0 {
		utils.RespondError(w, http.StatusBadRequest, "Order has no items")
		return
	}
	if req.PaymentMethod == "" {
		utils.RespondError(w, http.StatusBadRequest, "Payment method is required")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if req.IdempotencyKey != "" {
		var existing models.Order
		err := oc.OrderCollection.FindOne(ctx, bson.M{
			"user_id":         userID,
			"idempotency_key": req.IdempotencyKey,
		}).Decode(&existing)
		if err == nil {
			utils.RespondJSON(w, http.StatusOK, existing.ID.Hex())
			return
		}
	}

	order := models.Order{
		UserID:          userID,
		OrderItems:      req.OrderItems,
		ShippingAddress: req.ShippingAddress,
		PaymentMethod:   req.PaymentMethod,
		ItemsPrice:      req.ItemsPrice,
		ShippingPrice:   req.ShippingPrice,
		TaxPrice:        req.TaxPrice,
		TotalPrice:      req.TotalPrice,
		IdempotencyKey:  req.IdempotencyKey,
		IsPaid:          false,
		IsDelivered:     false,
		CreatedAt:       time.Now().UTC(),
	}

	result, err := oc.OrderCollection.InsertOne(ctx, order)
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "Failed to create order")
		return
	}
	order.ID = result.InsertedID.(primitive.ObjectID)

	if oc.EmailService != nil {
		go func(email string, order models.Order) {
			err := oc.EmailService.SendOrderConfirmationEmail(email, order)
			if err != nil {
				oc.Logger.Warn("failed to send order confirmation email",
					zap.String("email", email), zap.Error(err))
			}
		}(claims.Email, order)
	}

	utils.RespondJSON(w, http.StatusCreated, order.ID.Hex())
}

// PayOrder records a payment capture against one of the user's orders
func (oc *OrderController) PayOrder(w http.ResponseWriter, r *http.Request) {
	claims, ok := r.Context().Value(middleware.UserContextKey).(*utils.Claims)
	if !ok {
		utils.RespondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	vars := mux.Vars(r)
	orderID, err := primitive.ObjectIDFromHex(vars["id"])
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, "Invalid order ID")
		return
	}

	userID, err := primitive.ObjectIDFromHex(claims.UserID)
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, "Invalid user ID")
		return
	}

	var capture models.PaymentResult
	err = json.NewDecoder(r.Body).Decode(&capture)
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	now := time.Now().UTC()
	update := bson.M{
		"$set": bson.M{
			"is_paid":        true,
			"paid_at":        now,
			"payment_result": capture,
		},
	}
	result, err := oc.OrderCollection.UpdateOne(ctx, bson.M{"_id": orderID, "user_id": userID}, update)
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "Failed to update payment status")
		return
	}

	if result.MatchedCount == 0 {
		utils.RespondError(w, http.StatusNotFound, "Order not found")
		return
	}

	utils.RespondJSON(w, http.StatusOK, map[string]string{"message": "Order paid"})
}

// GetOrderByID retrieves one of the authenticated user's orders
func (oc *OrderController) GetOrderByID(w http.ResponseWriter, r *http.Request) {
	claims, ok := r.Context().Value(middleware.UserContextKey).(*utils.Claims)
	if !ok {
		utils.RespondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	vars := mux.Vars(r)
	orderID, err := primitive.ObjectIDFromHex(vars["id"])
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, "Invalid order ID")
		return
	}

	userID, err := primitive.ObjectIDFromHex(claims.UserID)
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, "Invalid user ID")
		return
	}

	var order models.Order
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	err = oc.OrderCollection.FindOne(ctx, bson.M{"_id": orderID, "user_id": userID}).Decode(&order)
	if err != nil {
		utils.RespondError(w, http.StatusNotFound, "Order not found")
		return
	}

	utils.RespondJSON(w, http.StatusOK, order)
}

// GetOrderHistory retrieves all orders for the authenticated user
func (oc *OrderController) GetOrderHistory(w http.ResponseWriter, r *http.Request) {
	claims, ok := r.Context().Value(middleware.UserContextKey).(*utils.Claims)
	if !ok {
		utils.RespondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	userID, err := primitive.ObjectIDFromHex(claims.UserID)
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, "Invalid user ID")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	cursor, err := oc.OrderCollection.Find(ctx, bson.M{"user_id": userID})
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "Failed to retrieve orders")
		return
	}
	defer cursor.Close(ctx)

	orders := []models.Order{}
	for cursor.Next(ctx) {
		var order models.Order
		err := cursor.Decode(&order)
		if err != nil {
			utils.RespondError(w, http.StatusInternalServerError, "Error decoding order")
			return
		}
		orders = append(orders, order)
	}

	if err := cursor.Err(); err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "Cursor error")
		return
	}

	utils.RespondJSON(w, http.StatusOK, orders)
}
