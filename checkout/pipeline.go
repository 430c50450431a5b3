package checkout

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"go-storefront/gateway"
	"go-storefront/session"
)

// ErrEmptyCart means PlaceOrder was called with nothing in the cart
var ErrEmptyCart = errors.New("cart is empty")

// ErrNotReady means a checkout precondition (user, address, payment method)
// is missing. The caller should route the shopper back through the flow.
var ErrNotReady = errors.New("checkout step preconditions not met")

// OrderGateway is the order service surface the pipeline submits through
type OrderGateway interface {
	Create(ctx context.Context, payload gateway.OrderPayload, token string) (string, error)
	Pay(ctx context.Context, orderID string, capture gateway.CaptureDetails, token string) error
	GetByID(ctx context.Context, orderID, token string) (gateway.Order, error)
	History(ctx context.Context, token string) ([]gateway.Order, error)
}

// Pipeline drives order submission and payment capture for one session
type Pipeline struct {
	store  *session.Store
	orders OrderGateway
	log    *zap.Logger

	// pendingKey survives failed submissions so a retry of the same
	// checkout attempt cannot create a second order.
	pendingKey string
}

func NewPipeline(store *session.Store, orders OrderGateway, log *zap.Logger) *Pipeline {
	return &Pipeline{store: store, orders: orders, log: log}
}

// PlaceOrder computes the price breakdown, submits the order under the
// session user's token and, on success, clears the cart (in memory and in
// the persisted cartItems entry) and returns the new order id. On failure
// the cart and checkout data are untouched so the shopper can retry.
func (p *Pipeline) PlaceOrder(ctx context.Context) (string, error) {
	st := p.store.State()
	if st.UserInfo == nil {
		return "", &gateway.Error{Kind: gateway.KindAuthRequired, Message: "Please log in to place an order"}
	}
	if _, ok := Guard(st, StepPlaceOrder); !ok {
		return "", ErrNotReady
	}
	if len(st.Cart.Items) == 0 {
		return "", ErrEmptyCart
	}

	if p.pendingKey == "" {
		p.pendingKey = uuid.NewString()
	}

	prices := ComputePrices(st.Cart.Items)
	payload := gateway.OrderPayload{
		OrderItems:      stripItems(st.Cart.Items),
		ShippingAddress: st.Cart.ShippingAddress,
		PaymentMethod:   st.Cart.PaymentMethod,
		ItemsPrice:      prices.Items,
		ShippingPrice:   prices.Shipping,
		TaxPrice:        prices.Tax,
		TotalPrice:      prices.Total,
		IdempotencyKey:  p.pendingKey,
	}

	id, err := p.orders.Create(ctx, payload, st.UserInfo.Token)
	if err != nil {
		p.log.Warn("order submission failed", zap.Error(err))
		return "", err
	}

	p.pendingKey = ""
	p.store.Dispatch(session.ClearCart{})
	p.log.Info("order placed", zap.String("order_id", id), zap.Float64("total", prices.Total))
	return id, nil
}

// CapturePayment records the payment widget's capture confirmation against
// an order, then re-fetches the order so the caller never renders a stale
// paid status.
func (p *Pipeline) CapturePayment(ctx context.Context, orderID string, capture gateway.CaptureDetails) (gateway.Order, error) {
	st := p.store.State()
	if st.UserInfo == nil {
		return gateway.Order{}, &gateway.Error{Kind: gateway.KindAuthRequired, Message: "Please log in"}
	}
	if err := p.orders.Pay(ctx, orderID, capture, st.UserInfo.Token); err != nil {
		return gateway.Order{}, err
	}
	return p.orders.GetByID(ctx, orderID, st.UserInfo.Token)
}

// Order fetches one of the session user's orders
func (p *Pipeline) Order(ctx context.Context, orderID string) (gateway.Order, error) {
	st := p.store.State()
	if st.UserInfo == nil {
		return gateway.Order{}, &gateway.Error{Kind: gateway.KindAuthRequired, Message: "Please log in"}
	}
	return p.orders.GetByID(ctx, orderID, st.UserInfo.Token)
}

// History fetches all of the session user's orders
func (p *Pipeline) History(ctx context.Context) ([]gateway.Order, error) {
	st := p.store.State()
	if st.UserInfo == nil {
		return nil, &gateway.Error{Kind: gateway.KindAuthRequired, Message: "Please log in"}
	}
	return p.orders.History(ctx, st.UserInfo.Token)
}

// stripItems drops the catalog-only fields before submission
func stripItems(items []session.CartItem) []gateway.OrderItem {
	out := make([]gateway.OrderItem, 0, len(items))
	for _, it := range items {
		out = append(out, gateway.OrderItem{
			Key:      it.Key,
			Name:     it.Name,
			Price:    it.Price,
			Image:    it.Image,
			Quantity: it.Quantity,
		})
	}
	return out
}
