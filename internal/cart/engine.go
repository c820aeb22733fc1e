package cart

import (
	"vastra-store/internal/logger"
	"vastra-store/internal/session"

	"go.uber.org/zap"
)

// Engine is the cart state machine. Each mutation first checks the
// session gate: signed in, the mutation applies and writes through to
// storage; signed out, the mutation is recorded as the pending action,
// the navigator redirects to login, and nothing else changes. After a
// successful login ReplayPending applies the recorded action exactly
// once.
//
// The engine is driven from a single goroutine, matching the
// event-callback model of the storefront; it is not safe for
// concurrent use.
type Engine struct {
	store *Persistence
	gate  *session.Gate
	nav   session.Navigator

	items     []LineItem
	isOpen    bool
	isLoading bool
	pending   *PendingAction

	subs    map[int]func(State)
	nextSub int
}

func NewEngine(store *Persistence, gate *session.Gate, nav session.Navigator) *Engine {
	return &Engine{
		store:     store,
		gate:      gate,
		nav:       nav,
		items:     []LineItem{},
		isLoading: true,
		subs:      make(map[int]func(State)),
	}
}

// Hydrate performs the initial load from storage. Until it runs the
// engine reports IsLoading and an empty cart; consumers must not trust
// the item count before then. Hydrate never writes, so a pre-existing
// persisted cart cannot be clobbered by the empty pre-hydration state.
func (e *Engine) Hydrate() {
	e.items = e.store.Load()
	e.pending = e.store.LoadPending()
	e.isLoading = false
	e.notify()
}

// State returns a snapshot safe to hold across further mutations.
func (e *Engine) State() State {
	items := make([]LineItem, len(e.items))
	copy(items, e.items)

	var pending *PendingAction
	if e.pending != nil {
		p := *e.pending
		pending = &p
	}

	return State{
		Items:     items,
		IsOpen:    e.isOpen,
		IsLoading: e.isLoading,
		Pending:   pending,
	}
}

// Subscribe registers a listener invoked after every committed
// mutation and after hydration. The returned function cancels the
// subscription.
func (e *Engine) Subscribe(fn func(State)) func() {
	id := e.nextSub
	e.nextSub++
	e.subs[id] = fn
	return func() { delete(e.subs, id) }
}

// AddToCart merges the item into the cart by identity key. An existing
// line keeps its original name/price/image snapshot and only grows its
// quantity; a new identity appends a new line. Quantities below one
// are treated as one.
func (e *Engine) AddToCart(item LineItem, quantity int) {
	if quantity < 1 {
		quantity = 1
	}
	if !e.require(PendingAction{Kind: ActionAdd, Item: item, Quantity: quantity}) {
		return
	}
	e.applyAdd(item, quantity)
	e.commit()
}

// RemoveFromCart drops the line item with the given identity. Absent
// identity is a no-op, not an error.
func (e *Engine) RemoveFromCart(productID, selectedSize string) {
	if !e.require(PendingAction{Kind: ActionRemove, ProductID: productID, SelectedSize: selectedSize}) {
		return
	}
	e.applyRemove(productID, selectedSize)
	e.commit()
}

// UpdateQuantity replaces the quantity of the matching line item. A
// quantity of zero or less removes the line instead; an absent
// identity is a no-op and does not create a line.
func (e *Engine) UpdateQuantity(productID, selectedSize string, quantity int) {
	if !e.require(PendingAction{
		Kind:         ActionUpdate,
		ProductID:    productID,
		SelectedSize: selectedSize,
		Quantity:     quantity,
	}) {
		return
	}
	e.applyUpdate(productID, selectedSize, quantity)
	e.commit()
}

// ClearCart empties the cart.
func (e *Engine) ClearCart() {
	if !e.require(PendingAction{Kind: ActionClear}) {
		return
	}
	e.items = []LineItem{}
	e.commit()
}

// SetCartOpen toggles drawer visibility. Opening is gated like a
// mutation (a signed-out open redirects to login and is replayed
// after); closing never is. Visibility is not persisted.
func (e *Engine) SetCartOpen(open bool) {
	if open && !e.require(PendingAction{Kind: ActionOpen}) {
		return
	}
	e.isOpen = open
	e.notify()
}

// TotalItems sums the quantities of all lines. Available regardless of
// auth state.
func (e *Engine) TotalItems() int {
	total := 0
	for _, li := range e.items {
		total += li.Quantity
	}
	return total
}

// TotalPrice sums price x quantity over all lines, using the prices
// snapshotted at add time.
func (e *Engine) TotalPrice() int {
	total := 0
	for _, li := range e.items {
		total += li.Price * li.Quantity
	}
	return total
}

// ReplayPending applies the stored pending action if the user is now
// authenticated. The action is cleared before it is applied, so it
// runs at most once however many times replay is triggered.
func (e *Engine) ReplayPending() {
	if e.pending == nil || !e.gate.IsAuthenticated() {
		return
	}

	action := *e.pending
	e.pending = nil
	e.store.ClearPending()

	logger.L().Debug("replaying deferred cart action", zap.String("kind", string(action.Kind)))

	switch action.Kind {
	case ActionAdd:
		e.applyAdd(action.Item, action.Quantity)
		e.commit()
	case ActionRemove:
		e.applyRemove(action.ProductID, action.SelectedSize)
		e.commit()
	case ActionUpdate:
		e.applyUpdate(action.ProductID, action.SelectedSize, action.Quantity)
		e.commit()
	case ActionClear:
		e.items = []LineItem{}
		e.commit()
	case ActionOpen:
		e.isOpen = true
		e.notify()
	}
}

// require is the auth gate in front of every mutation. When the user
// is signed out it records the denied action (overwriting any earlier
// one), fires the login redirect, and tells the caller to stop.
func (e *Engine) require(action PendingAction) bool {
	if e.gate.IsAuthenticated() {
		return true
	}

	e.pending = &action
	e.store.SavePending(&action)
	if e.nav != nil {
		e.nav.RedirectToLogin()
	}
	e.notify()
	return false
}

func (e *Engine) applyAdd(item LineItem, quantity int) {
	key := item.Key()
	for i := range e.items {
		if e.items[i].Key() == key {
			e.items[i].Quantity += quantity
			return
		}
	}
	item.Quantity = quantity
	e.items = append(e.items, item)
}

func (e *Engine) applyRemove(productID, selectedSize string) {
	key := Key{ProductID: productID, SelectedSize: selectedSize}
	kept := e.items[:0]
	for _, li := range e.items {
		if li.Key() != key {
			kept = append(kept, li)
		}
	}
	e.items = kept
}

func (e *Engine) applyUpdate(productID, selectedSize string, quantity int) {
	if quantity <= 0 {
		e.applyRemove(productID, selectedSize)
		return
	}
	key := Key{ProductID: productID, SelectedSize: selectedSize}
	for i := range e.items {
		if e.items[i].Key() == key {
			e.items[i].Quantity = quantity
			return
		}
	}
}

// commit writes through to storage and notifies subscribers.
func (e *Engine) commit() {
	e.store.Save(e.items)
	e.notify()
}

func (e *Engine) notify() {
	if len(e.subs) == 0 {
		return
	}
	state := e.State()
	for _, fn := range e.subs {
		fn(state)
	}
}
