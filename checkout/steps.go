// Package checkout implements the ordered Login, Shipping, Payment,
// Place Order flow: per-step entry guards, price computation and order
// submission with payment capture.
package checkout

import "go-storefront/session"

// Step is a stage of the checkout flow, in required order
type Step int

const (
	StepLogin Step = iota
	StepShipping
	StepPayment
	StepPlaceOrder
)

func (s Step) String() string {
	switch s {
	case StepLogin:
		return "Login"
	case StepShipping:
		return "Shipping Address"
	case StepPayment:
		return "Payment Method"
	case StepPlaceOrder:
		return "Place Order"
	}
	return "Unknown"
}

// Guard evaluates the entry precondition for arriving at step. When it
// fails, ok is false and redirect names the step to send the shopper back
// to. Only the arrived-at step's own precondition is checked; earlier steps
// are not re-validated.
func Guard(st session.State, step Step) (redirect Step, ok bool) {
	switch step {
	case StepShipping:
		if st.UserInfo == nil {
			return StepLogin, false
		}
	case StepPayment:
		if st.Cart.ShippingAddress.Address == "" {
			return StepShipping, false
		}
	case StepPlaceOrder:
		if st.Cart.PaymentMethod == "" {
			return StepPayment, false
		}
	}
	return step, true
}
