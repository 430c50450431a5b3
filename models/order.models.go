package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// OrderItem is a cart item snapshot frozen into an order. Catalog-only
// fields (slug, live stock count) are not carried over.
type OrderItem struct {
	Key      string  `bson:"key" json:"key"`
	Name     string  `bson:"name" json:"name"`
	Price    float64 `bson:"price" json:"price"`
	Image    string  `bson:"image" json:"image"`
	Quantity int     `bson:"quantity" json:"quantity"`
}

// ShippingAddress is the delivery address attached to an order
type ShippingAddress struct {
	FullName   string `bson:"full_name" json:"fullName"`
	Address    string `bson:"address" json:"address"`
	City       string `bson:"city" json:"city"`
	PostalCode string `bson:"postal_code" json:"postalCode"`
	Country    string `bson:"country" json:"country"`
}

// PaymentResult holds the capture confirmation from the payment provider
type PaymentResult struct {
	ID           string `bson:"id" json:"id"`
	Status       string `bson:"status" json:"status"`
	EmailAddress string `bson:"email_address" json:"email_address"`
}

// Order represents a placed order. It is created once at checkout and only
// the payment fields (is_paid, paid_at, payment_result) and delivery fields
// change afterwards.
type Order struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	UserID          primitive.ObjectID `bson:"user_id" json:"user_id"`
	OrderItems      []OrderItem        `bson:"order_items" json:"orderItems"`
	ShippingAddress ShippingAddress    `bson:"shipping_address" json:"shippingAddress"`
	PaymentMethod   string             `bson:"payment_method" json:"paymentMethod"`
	PaymentResult   PaymentResult      `bson:"payment_result,omitempty" json:"paymentResult,omitempty"`
	ItemsPrice      float64            `bson:"items_price" json:"itemsPrice"`
	ShippingPrice   float64            `bson:"shipping_price" json:"shippingPrice"`
	TaxPrice        float64            `bson:"tax_price" json:"taxPrice"`
	TotalPrice      float64            `bson:"total_price" json:"totalPrice"`
	IdempotencyKey  string             `bson:"idempotency_key,omitempty" json:"idempotencyKey,omitempty"`
	IsPaid          bool               `bson:"is_paid" json:"isPaid"`
	PaidAt          *time.Time         `bson:"paid_at,omitempty" json:"paidAt,omitempty"`
	IsDelivered     bool               `bson:"is_delivered" json:"isDelivered"`
	DeliveredAt     *time.Time         `bson:"delivered_at,omitempty" json:"deliveredAt,omitempty"`
	CreatedAt       time.Time          `bson:"created_at" json:"createdAt"`
}
