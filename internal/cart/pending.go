package cart

// ActionKind discriminates the deferred mutation kinds.
type ActionKind string

const (
	ActionAdd    ActionKind = "add"
	ActionRemove ActionKind = "remove"
	ActionUpdate ActionKind = "update"
	ActionClear  ActionKind = "clear"
	ActionOpen   ActionKind = "open"
)

// PendingAction is a mutation that was denied for lack of
// authentication, stored as data rather than a closure so it survives
// a process restart across the login redirect. At most one exists; a
// newer denied mutation overwrites it (last writer wins, not a queue).
type PendingAction struct {
	Kind         ActionKind `json:"kind"`
	Item         LineItem   `json:"item,omitempty"`
	Quantity     int        `json:"quantity,omitempty"`
	ProductID    string     `json:"productId,omitempty"`
	SelectedSize string     `json:"selectedSize,omitempty"`
}
