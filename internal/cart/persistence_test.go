package cart

import (
	"testing"

	"vastra-store/internal/storage"

	"github.com/stretchr/testify/assert"
)

func TestPersistence_Load(t *testing.T) {
	t.Run("AbsentKeyIsEmptyCart", func(t *testing.T) {
		p := NewPersistence(storage.NewMemStore())
		assert.Empty(t, p.Load())
	})

	t.Run("CorruptJSONIsEmptyCart", func(t *testing.T) {
		kv := storage.NewMemStore()
		_ = kv.Set(CartKey, `[{"id": "saree1", "quantity": `)

		p := NewPersistence(kv)
		items := p.Load()

		assert.NotNil(t, items)
		assert.Empty(t, items)
	})

	t.Run("NullValueIsEmptyCart", func(t *testing.T) {
		kv := storage.NewMemStore()
		_ = kv.Set(CartKey, `null`)

		p := NewPersistence(kv)
		assert.NotNil(t, p.Load())
		assert.Empty(t, p.Load())
	})

	t.Run("RoundTrip", func(t *testing.T) {
		kv := storage.NewMemStore()
		p := NewPersistence(kv)

		items := []LineItem{
			{ProductID: "saree1", Name: "Embroidered Silk Saree", Price: 15000, SelectedSize: "Free Size", Quantity: 2, Category: "Saree"},
			{ProductID: "kurta1", Name: "Chikankari Kurta", Price: 4500, SelectedSize: "M", Quantity: 1},
		}
		p.Save(items)

		loaded := p.Load()
		assert.Equal(t, items, loaded)
	})

	t.Run("CorruptValueOverwrittenBySave", func(t *testing.T) {
		kv := storage.NewMemStore()
		_ = kv.Set(CartKey, `garbage`)

		p := NewPersistence(kv)
		assert.Empty(t, p.Load())

		p.Save([]LineItem{{ProductID: "saree1", SelectedSize: "Free Size", Quantity: 1}})
		assert.Len(t, p.Load(), 1)
	})
}

func TestPersistence_Pending(t *testing.T) {
	t.Run("AbsentIsNil", func(t *testing.T) {
		p := NewPersistence(storage.NewMemStore())
		assert.Nil(t, p.LoadPending())
	})

	t.Run("RoundTrip", func(t *testing.T) {
		kv := storage.NewMemStore()
		p := NewPersistence(kv)

		action := &PendingAction{
			Kind:     ActionAdd,
			Item:     LineItem{ProductID: "saree1", SelectedSize: "Free Size", Price: 15000},
			Quantity: 2,
		}
		p.SavePending(action)

		loaded := p.LoadPending()
		assert.Equal(t, action, loaded)
	})

	t.Run("CorruptValueDropped", func(t *testing.T) {
		kv := storage.NewMemStore()
		_ = kv.Set(PendingKey, `{"kind": `)

		p := NewPersistence(kv)
		assert.Nil(t, p.LoadPending())

		// The corrupt value is gone, not left to fail again.
		_, ok := kv.Get(PendingKey)
		assert.False(t, ok)
	})

	t.Run("Clear", func(t *testing.T) {
		kv := storage.NewMemStore()
		p := NewPersistence(kv)

		p.SavePending(&PendingAction{Kind: ActionClear})
		p.ClearPending()

		assert.Nil(t, p.LoadPending())
	})
}

func TestPersistence_FailSilentOnUnavailableStore(t *testing.T) {
	// FileStore pointed at an impossible path degrades to empty reads
	// and swallowed writes; nothing reaches the caller.
	fs := storage.NewFileStore(string([]byte{0}))
	p := NewPersistence(fs)

	assert.NotPanics(t, func() {
		p.Save([]LineItem{{ProductID: "saree1", Quantity: 1}})
		assert.Empty(t, p.Load())
		p.SavePending(&PendingAction{Kind: ActionClear})
		assert.Nil(t, p.LoadPending())
		p.ClearPending()
	})
}
