// Package session holds the shopper's session state: UI preference, cart,
// shipping address, payment method and the authenticated user. The state is
// mutated only through Store.Dispatch with one of the closed Action types
// and is persisted to a Jar so it survives page navigations.
package session

// User is the authenticated shopper as persisted in the userInfo entry,
// including the bearer token used for order and profile calls.
type User struct {
	ID      string `json:"_id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	IsAdmin bool   `json:"isAdmin"`
	Token   string `json:"token"`
}

// ShippingAddress is the checkout delivery address
type ShippingAddress struct {
	FullName   string `json:"fullName"`
	Address    string `json:"address"`
	City       string `json:"city"`
	PostalCode string `json:"postalCode"`
	Country    string `json:"country"`
}

// CartItem is a product placed in the cart. CountInStock is a snapshot of
// the stock level at add time and is refreshed on every quantity change.
type CartItem struct {
	Key          string  `json:"key"`
	Name         string  `json:"name"`
	CountInStock int     `json:"countInStock"`
	Slug         string  `json:"slug"`
	Price        float64 `json:"price"`
	Image        string  `json:"image"`
	Quantity     int     `json:"quantity"`
}

// Cart holds the items the shopper intends to purchase plus the checkout
// data gathered so far. Items keep insertion order; keys are unique.
type Cart struct {
	Items           []CartItem
	ShippingAddress ShippingAddress
	PaymentMethod   string
}

// State is the full session state. UserInfo is nil when unauthenticated.
type State struct {
	DarkMode bool
	Cart     Cart
	UserInfo *User
}
