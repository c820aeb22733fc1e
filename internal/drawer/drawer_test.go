package drawer

import (
	"bytes"
	"testing"

	"vastra-store/internal/cart"
	"vastra-store/internal/session"
	"vastra-store/internal/storage"

	"github.com/stretchr/testify/assert"
)

type noopNavigator struct{}

func (noopNavigator) RedirectToLogin() {}

func newEngine(t *testing.T) *cart.Engine {
	t.Helper()
	kv := storage.NewMemStore()
	_ = kv.Set(session.AccessTokenKey, "tok")
	engine := cart.NewEngine(cart.NewPersistence(kv), session.NewGate(kv), noopNavigator{})
	engine.Hydrate()
	return engine
}

func TestDrawer_Render(t *testing.T) {
	t.Run("EmptyCart", func(t *testing.T) {
		var buf bytes.Buffer
		engine := newEngine(t)

		New(engine, &buf).Render()

		assert.Contains(t, buf.String(), "Your cart is empty")
	})

	t.Run("ItemsAndSubtotal", func(t *testing.T) {
		var buf bytes.Buffer
		engine := newEngine(t)
		engine.AddToCart(cart.LineItem{
			ProductID:    "saree1",
			Name:         "Embroidered Silk Saree",
			Price:        15000,
			SelectedSize: "Free Size",
		}, 2)

		New(engine, &buf).Render()
		out := buf.String()

		assert.Contains(t, out, "Embroidered Silk Saree")
		assert.Contains(t, out, "x2")
		assert.Contains(t, out, "Rs. 30,000")
		assert.Contains(t, out, "free shipping")
	})

	t.Run("LoadingState", func(t *testing.T) {
		var buf bytes.Buffer
		kv := storage.NewMemStore()
		engine := cart.NewEngine(cart.NewPersistence(kv), session.NewGate(kv), noopNavigator{})

		New(engine, &buf).Render()

		assert.Contains(t, buf.String(), "Loading")
	})
}

func TestDrawer_Attach(t *testing.T) {
	var buf bytes.Buffer
	engine := newEngine(t)

	detach := New(engine, &buf).Attach()
	defer detach()

	// Closed drawer stays silent.
	engine.AddToCart(cart.LineItem{ProductID: "saree1", Name: "Saree", Price: 15000, SelectedSize: "Free Size"}, 1)
	assert.Empty(t, buf.String())

	engine.SetCartOpen(true)
	assert.Contains(t, buf.String(), "Saree")
}

func TestFormatRupees(t *testing.T) {
	cases := map[int]string{
		0:        "0",
		999:      "999",
		1000:     "1,000",
		15000:    "15,000",
		100000:   "1,00,000",
		1234567:  "12,34,567",
		45000000: "4,50,00,000",
	}
	for amount, want := range cases {
		assert.Equal(t, want, formatRupees(amount), amount)
	}
}
