package cart

import (
	"encoding/json"

	"vastra-store/internal/logger"
	"vastra-store/internal/storage"

	"go.uber.org/zap"
)

// Storage keys owned by the cart.
const (
	CartKey    = "shopping-cart"
	PendingKey = "pending-action"
)

// Persistence reads and writes the serialized cart. Every failure mode
// (storage unavailable, key absent, corrupt JSON, write error) is
// logged and swallowed; callers always get a usable result and never
// an error. A corrupt value is simply overwritten by the next save.
type Persistence struct {
	kv storage.Store
}

func NewPersistence(kv storage.Store) *Persistence {
	return &Persistence{kv: kv}
}

func (p *Persistence) Load() []LineItem {
	raw, ok := p.kv.Get(CartKey)
	if !ok || raw == "" {
		return []LineItem{}
	}

	var items []LineItem
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		logger.L().Warn("discarding corrupt persisted cart", zap.Error(err))
		return []LineItem{}
	}
	if items == nil {
		items = []LineItem{}
	}
	return items
}

func (p *Persistence) Save(items []LineItem) {
	raw, err := json.Marshal(items)
	if err != nil {
		logger.L().Warn("failed to serialize cart", zap.Error(err))
		return
	}
	if err := p.kv.Set(CartKey, string(raw)); err != nil {
		logger.L().Warn("failed to persist cart", zap.Error(err))
	}
}

func (p *Persistence) LoadPending() *PendingAction {
	raw, ok := p.kv.Get(PendingKey)
	if !ok || raw == "" {
		return nil
	}

	var action PendingAction
	if err := json.Unmarshal([]byte(raw), &action); err != nil {
		logger.L().Warn("discarding corrupt pending action", zap.Error(err))
		_ = p.kv.Delete(PendingKey)
		return nil
	}
	return &action
}

func (p *Persistence) SavePending(action *PendingAction) {
	raw, err := json.Marshal(action)
	if err != nil {
		logger.L().Warn("failed to serialize pending action", zap.Error(err))
		return
	}
	if err := p.kv.Set(PendingKey, string(raw)); err != nil {
		logger.L().Warn("failed to persist pending action", zap.Error(err))
	}
}

func (p *Persistence) ClearPending() {
	if err := p.kv.Delete(PendingKey); err != nil {
		logger.L().Warn("failed to clear pending action", zap.Error(err))
	}
}
