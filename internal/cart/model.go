package cart

// LineItem is one entry in the cart. Name, price and image are
// snapshotted from the catalog at add time; a later catalog price
// change does not touch items already in the cart.
//
// JSON tags match the persisted layout under the "shopping-cart" key.
type LineItem struct {
	ProductID    string `json:"id"`
	Name         string `json:"name"`
	Price        int    `json:"price"`
	Image        string `json:"image"`
	SelectedSize string `json:"selectedSize"`
	Quantity     int    `json:"quantity"`
	Category     string `json:"category,omitempty"`
}

// Key is the line-item identity: two adds of the same product in the
// same size merge into one line, different sizes stay separate lines.
type Key struct {
	ProductID    string
	SelectedSize string
}

func (li LineItem) Key() Key {
	return Key{ProductID: li.ProductID, SelectedSize: li.SelectedSize}
}

// State is a snapshot of the engine handed to subscribers. Items is a
// copy; mutating it does not affect the engine.
type State struct {
	Items     []LineItem
	IsOpen    bool
	IsLoading bool
	Pending   *PendingAction
}
