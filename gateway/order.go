package gateway

import (
	"context"
	"net/http"
	"time"

	"go-storefront/session"
)

// OrderItem is the stripped cart item sent with an order: no stock snapshot
// and no slug, those belong to the catalog.
type OrderItem struct {
	Key      string  `json:"key"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Image    string  `json:"image"`
	Quantity int     `json:"quantity"`
}

// OrderPayload is the create-order request body
type OrderPayload struct {
	OrderItems      []OrderItem             `json:"orderItems"`
	ShippingAddress session.ShippingAddress `json:"shippingAddress"`
	PaymentMethod   string                  `json:"paymentMethod"`
	ItemsPrice      float64                 `json:"itemsPrice"`
	ShippingPrice   float64                 `json:"shippingPrice"`
	TaxPrice        float64                 `json:"taxPrice"`
	TotalPrice      float64                 `json:"totalPrice"`
	IdempotencyKey  string                  `json:"idempotencyKey,omitempty"`
}

// CaptureDetails is the confirmation produced by the payment widget
type CaptureDetails struct {
	ID           string `json:"id"`
	Status       string `json:"status"`
	EmailAddress string `json:"email_address"`
}

// Order is the client view of a placed order
type Order struct {
	ID              string                  `json:"_id"`
	OrderItems      []OrderItem             `json:"orderItems"`
	ShippingAddress session.ShippingAddress `json:"shippingAddress"`
	PaymentMethod   string                  `json:"paymentMethod"`
	ItemsPrice      float64                 `json:"itemsPrice"`
	ShippingPrice   float64                 `json:"shippingPrice"`
	TaxPrice        float64                 `json:"taxPrice"`
	TotalPrice      float64                 `json:"totalPrice"`
	IsPaid          bool                    `json:"isPaid"`
	PaidAt          *time.Time              `json:"paidAt,omitempty"`
	IsDelivered     bool                    `json:"isDelivered"`
	DeliveredAt     *time.Time              `json:"deliveredAt,omitempty"`
	CreatedAt       time.Time               `json:"createdAt"`
}

// OrderClient creates, pays and reads orders under a bearer token
type OrderClient struct {
	*Client
}

func NewOrderClient(c *Client) *OrderClient {
	return &OrderClient{Client: c}
}

// Create submits a new order and returns its id
func (c *OrderClient) Create(ctx context.Context, payload OrderPayload, token string) (string, error) {
	var id string
	if err := c.do(ctx, http.MethodPost, "/api/orders", token, payload, &id); err != nil {
		return "", err
	}
	return id, nil
}

// Pay records a payment capture against an order
func (c *OrderClient) Pay(ctx context.Context, orderID string, capture CaptureDetails, token string) error {
	return c.do(ctx, http.MethodPut, "/api/orders/"+orderID+"/pay", token, capture, nil)
}

// GetByID fetches one of the caller's orders
func (c *OrderClient) GetByID(ctx context.Context, orderID, token string) (Order, error) {
	var o Order
	err := c.do(ctx, http.MethodGet, "/api/orders/"+orderID, token, nil, &o)
	return o, err
}

// History fetches all of the caller's orders
func (c *OrderClient) History(ctx context.Context, token string) ([]Order, error) {
	var os []Order
	err := c.do(ctx, http.MethodGet, "/api/orders/history", token, nil, &os)
	return os, err
}
