package session

import (
	"encoding/json"
	"net/http"
	"time"

	"go.uber.org/zap"
)

// Store owns a session's State and funnels every mutation through Reduce,
// followed by the per-action persistence side effect. It is built for a
// single caller; there is no internal locking.
type Store struct {
	state State
	jar   Jar
	opts  Options
	log   *zap.Logger
}

// New hydrates a Store from whatever the jar holds. Absent entries fall
// back to zero values; corrupt JSON is discarded with a warning so a bad
// cookie can never wedge the session.
func New(jar Jar, log *zap.Logger) *Store {
	s := &Store{
		jar: jar,
		opts: Options{
			Path:     "/",
			SameSite: http.SameSiteStrictMode,
			MaxAge:   30 * 24 * time.Hour,
		},
		log: log,
	}

	if v, ok := jar.Get(KeyDarkMode); ok {
		s.state.DarkMode = v == "ON"
	}
	if v, ok := jar.Get(KeyCartItems); ok {
		if err := json.Unmarshal([]byte(v), &s.state.Cart.Items); err != nil {
			log.Warn("discarding corrupt cartItems entry", zap.Error(err))
			s.state.Cart.Items = nil
		}
	}
	if v, ok := jar.Get(KeyShippingAddress); ok {
		if err := json.Unmarshal([]byte(v), &s.state.Cart.ShippingAddress); err != nil {
			log.Warn("discarding corrupt shippingAddress entry", zap.Error(err))
			s.state.Cart.ShippingAddress = ShippingAddress{}
		}
	}
	if v, ok := jar.Get(KeyPaymentMethod); ok {
		s.state.Cart.PaymentMethod = v
	}
	if v, ok := jar.Get(KeyUserInfo); ok {
		var u User
		if err := json.Unmarshal([]byte(v), &u); err != nil {
			log.Warn("discarding corrupt userInfo entry", zap.Error(err))
		} else {
			s.state.UserInfo = &u
		}
	}

	return s
}

// State returns the current session state
func (s *Store) State() State {
	return s.state
}

// Dispatch applies the action and persists the entries it touches.
// Persistence is best effort: a failed write is logged, never returned, so
// a navigation right after a dispatch still observes the in-memory state.
func (s *Store) Dispatch(a Action) {
	s.state = Reduce(s.state, a)

	switch a := a.(type) {
	case DarkModeOn:
		s.jar.Set(KeyDarkMode, "ON", s.opts)
	case DarkModeOff:
		s.jar.Set(KeyDarkMode, "OFF", s.opts)
	case AddItem, RemoveItem:
		s.setJSON(KeyCartItems, s.state.Cart.Items)
	case ClearCart:
		s.jar.Remove(KeyCartItems)
	case Login:
		s.setJSON(KeyUserInfo, s.state.UserInfo)
	case Logout:
		s.jar.Remove(KeyUserInfo)
		s.jar.Remove(KeyCartItems)
		s.jar.Remove(KeyShippingAddress)
		s.jar.Remove(KeyPaymentMethod)
	case SaveShippingAddress:
		s.setJSON(KeyShippingAddress, s.state.Cart.ShippingAddress)
	case SavePaymentMethod:
		s.jar.Set(KeyPaymentMethod, a.Method, s.opts)
	}
}

// Reset tears the session down: empty cart, no user, in memory and in the
// jar. The dark-mode preference is not session data and survives.
func (s *Store) Reset() {
	s.Dispatch(Logout{})
}

func (s *Store) setJSON(key string, v any) {
	b, err := json.Marshal(v)
	if err != nil {
		s.log.Warn("skipping persistence of unmarshalable entry",
			zap.String("key", key), zap.Error(err))
		return
	}
	s.jar.Set(key, string(b), s.opts)
}
