package session

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestStore(t *testing.T) (*Store, *MemJar) {
	t.Helper()
	jar := NewMemJar()
	return New(jar, zap.NewNop()), jar
}

func item(key string, qty int) CartItem {
	return CartItem{Key: key, Name: "product " + key, Price: 10, Quantity: qty}
}

func TestAddItemKeepsFirstSeenOrder(t *testing.T) {
	store, _ := newTestStore(t)

	store.Dispatch(AddItem{Item: item("A", 1)})
	store.Dispatch(AddItem{Item: item("B", 1)})
	store.Dispatch(AddItem{Item: item("C", 1)})

	items := store.State().Cart.Items
	require.Len(t, items, 3)
	assert.Equal(t, "A", items[0].Key)
	assert.Equal(t, "B", items[1].Key)
	assert.Equal(t, "C", items[2].Key)
}

func TestAddItemReplacesNeverSums(t *testing.T) {
	store, _ := newTestStore(t)

	store.Dispatch(AddItem{Item: item("A", 1)})
	store.Dispatch(AddItem{Item: item("A", 5)})

	items := store.State().Cart.Items
	require.Len(t, items, 1)
	assert.Equal(t, 5, items[0].Quantity)
}

func TestRemoveThenAddReinsertsAtEnd(t *testing.T) {
	store, _ := newTestStore(t)

	store.Dispatch(AddItem{Item: item("A", 1)})
	store.Dispatch(AddItem{Item: item("B", 1)})
	store.Dispatch(AddItem{Item: item("C", 1)})
	store.Dispatch(RemoveItem{Key: "A"})
	store.Dispatch(AddItem{Item: item("A", 2)})

	items := store.State().Cart.Items
	require.Len(t, items, 3)
	assert.Equal(t, "B", items[0].Key)
	assert.Equal(t, "C", items[1].Key)
	assert.Equal(t, "A", items[2].Key)
	assert.Equal(t, 2, items[2].Quantity)
}

func TestLogoutClearsEverything(t *testing.T) {
	store, jar := newTestStore(t)

	store.Dispatch(Login{User: User{ID: "u1", Name: "Jo", Email: "jo@example.com", Token: "tok"}})
	store.Dispatch(AddItem{Item: item("A", 1)})
	store.Dispatch(SaveShippingAddress{Address: ShippingAddress{Address: "1 Main St", City: "Town"}})
	store.Dispatch(SavePaymentMethod{Method: "Paypal"})

	store.Dispatch(Logout{})

	st := store.State()
	assert.Nil(t, st.UserInfo)
	assert.Empty(t, st.Cart.Items)
	assert.Equal(t, ShippingAddress{}, st.Cart.ShippingAddress)
	assert.Empty(t, st.Cart.PaymentMethod)

	for _, key := range []string{KeyUserInfo, KeyCartItems, KeyShippingAddress, KeyPaymentMethod} {
		_, ok := jar.Get(key)
		assert.False(t, ok, "entry %q should be removed on logout", key)
	}
}

func TestClearCartLeavesCheckoutDataIntact(t *testing.T) {
	store, jar := newTestStore(t)

	store.Dispatch(AddItem{Item: item("A", 1)})
	store.Dispatch(SaveShippingAddress{Address: ShippingAddress{Address: "1 Main St"}})
	store.Dispatch(SavePaymentMethod{Method: "Cash"})

	store.Dispatch(ClearCart{})

	st := store.State()
	assert.Empty(t, st.Cart.Items)
	assert.Equal(t, "1 Main St", st.Cart.ShippingAddress.Address)
	assert.Equal(t, "Cash", st.Cart.PaymentMethod)

	_, ok := jar.Get(KeyCartItems)
	assert.False(t, ok, "cartItems entry should be removed")
	_, ok = jar.Get(KeyShippingAddress)
	assert.True(t, ok)
	_, ok = jar.Get(KeyPaymentMethod)
	assert.True(t, ok)
}

func TestDarkModePersistsOnOff(t *testing.T) {
	store, jar := newTestStore(t)

	store.Dispatch(DarkModeOn{})
	assert.True(t, store.State().DarkMode)
	v, _ := jar.Get(KeyDarkMode)
	assert.Equal(t, "ON", v)

	store.Dispatch(DarkModeOff{})
	assert.False(t, store.State().DarkMode)
	v, _ = jar.Get(KeyDarkMode)
	assert.Equal(t, "OFF", v)
}

func TestHydrationRoundTrip(t *testing.T) {
	jar := NewMemJar()
	first := New(jar, zap.NewNop())

	first.Dispatch(DarkModeOn{})
	first.Dispatch(Login{User: User{ID: "u1", Name: "Jo", Email: "jo@example.com", IsAdmin: true, Token: "tok"}})
	first.Dispatch(AddItem{Item: item("A", 2)})
	first.Dispatch(SaveShippingAddress{Address: ShippingAddress{FullName: "Jo", Address: "1 Main St", City: "Town", PostalCode: "12345", Country: "NL"}})
	first.Dispatch(SavePaymentMethod{Method: "Paypal"})

	second := New(jar, zap.NewNop())
	st := second.State()

	assert.True(t, st.DarkMode)
	require.NotNil(t, st.UserInfo)
	assert.Equal(t, "tok", st.UserInfo.Token)
	assert.True(t, st.UserInfo.IsAdmin)
	require.Len(t, st.Cart.Items, 1)
	assert.Equal(t, "A", st.Cart.Items[0].Key)
	assert.Equal(t, 2, st.Cart.Items[0].Quantity)
	assert.Equal(t, "1 Main St", st.Cart.ShippingAddress.Address)
	assert.Equal(t, "Paypal", st.Cart.PaymentMethod)
}

func TestHydrationDiscardsCorruptEntries(t *testing.T) {
	jar := NewMemJar()
	jar.Set(KeyCartItems, "{not json", Options{})
	jar.Set(KeyUserInfo, "also not json", Options{})

	store := New(jar, zap.NewNop())
	st := store.State()

	assert.Empty(t, st.Cart.Items)
	assert.Nil(t, st.UserInfo)
}

func TestPersistedCartItemsShape(t *testing.T) {
	store, jar := newTestStore(t)
	store.Dispatch(AddItem{Item: CartItem{
		Key: "A", Name: "Widget", CountInStock: 7, Slug: "widget",
		Price: 12.5, Image: "img.png", Quantity: 3,
	}})

	raw, ok := jar.Get(KeyCartItems)
	require.True(t, ok)

	var decoded []map[string]any
	require.NoError(t, json.Unmarshal([]byte(raw), &decoded))
	require.Len(t, decoded, 1)
	assert.Equal(t, "A", decoded[0]["key"])
	assert.Equal(t, "widget", decoded[0]["slug"])
	assert.EqualValues(t, 7, decoded[0]["countInStock"])
	assert.EqualValues(t, 3, decoded[0]["quantity"])
}

func TestReduceIsPure(t *testing.T) {
	before := State{Cart: Cart{Items: []CartItem{item("A", 1), item("B", 1)}}}

	after := Reduce(before, AddItem{Item: item("A", 9)})
	assert.Equal(t, 1, before.Cart.Items[0].Quantity, "input state must not change")
	assert.Equal(t, 9, after.Cart.Items[0].Quantity)

	after = Reduce(before, RemoveItem{Key: "A"})
	assert.Len(t, before.Cart.Items, 2)
	assert.Len(t, after.Cart.Items, 1)
}

func TestResetRestoresEmptyDefaults(t *testing.T) {
	store, _ := newTestStore(t)
	store.Dispatch(DarkModeOn{})
	store.Dispatch(Login{User: User{ID: "u1"}})
	store.Dispatch(AddItem{Item: item("A", 1)})

	store.Reset()

	st := store.State()
	assert.True(t, st.DarkMode, "UI preference survives a session reset")
	assert.Nil(t, st.UserInfo)
	assert.Empty(t, st.Cart.Items)
}
