package session

// Action is the closed set of session mutations. Each action struct carries
// only the payload it needs, so invalid action/payload combinations cannot
// be constructed.
type Action interface {
	isAction()
}

// DarkModeOn enables the dark UI preference
type DarkModeOn struct{}

// DarkModeOff disables the dark UI preference
type DarkModeOff struct{}

// AddItem upserts a cart item by key. An existing item with the same key is
// replaced wholesale; quantities are never summed here. Callers that want
// "one more" compute the resulting quantity before dispatching.
type AddItem struct {
	Item CartItem
}

// RemoveItem drops the cart item with the given key
type RemoveItem struct {
	Key string
}

// ClearCart empties the cart items. Shipping address and payment method are
// left intact so a follow-up order can reuse them.
type ClearCart struct{}

// Login records the authenticated user
type Login struct {
	User User
}

// Logout clears the user and all cart data
type Logout struct{}

// SaveShippingAddress stores the checkout delivery address
type SaveShippingAddress struct {
	Address ShippingAddress
}

// SavePaymentMethod stores the chosen payment method
type SavePaymentMethod struct {
	Method string
}

func (DarkModeOn) isAction()          {}
func (DarkModeOff) isAction()         {}
func (AddItem) isAction()             {}
func (RemoveItem) isAction()          {}
func (ClearCart) isAction()           {}
func (Login) isAction()               {}
func (Logout) isAction()              {}
func (SaveShippingAddress) isAction() {}
func (SavePaymentMethod) isAction()   {}

// Reduce applies an action to a state and returns the resulting state. It is
// pure: the input state is not modified and no I/O happens here.
func Reduce(s State, a Action) State {
	switch a := a.(type) {
	case DarkModeOn:
		s.DarkMode = true
	case DarkModeOff:
		s.DarkMode = false
	case AddItem:
		items := make([]CartItem, len(s.Cart.Items))
		copy(items, s.Cart.Items)
		replaced := false
		for i := range items {
			if items[i].Key == a.Item.Key {
				items[i] = a.Item
				replaced = true
				break
			}
		}
		if !replaced {
			items = append(items, a.Item)
		}
		s.Cart.Items = items
	case RemoveItem:
		items := make([]CartItem, 0, len(s.Cart.Items))
		for _, it := range s.Cart.Items {
			if it.Key != a.Key {
				items = append(items, it)
			}
		}
		s.Cart.Items = items
	case ClearCart:
		s.Cart.Items = nil
	case Login:
		u := a.User
		s.UserInfo = &u
	case Logout:
		s.UserInfo = nil
		s.Cart = Cart{}
	case SaveShippingAddress:
		s.Cart.ShippingAddress = a.Address
	case SavePaymentMethod:
		s.Cart.PaymentMethod = a.Method
	}
	return s
}
