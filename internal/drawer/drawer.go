package drawer

import (
	"fmt"
	"io"
	"strconv"

	"vastra-store/internal/cart"
)

// FreeShippingThreshold mirrors the storefront's shipping promotion.
const FreeShippingThreshold = 5000

// Drawer renders cart state as text. It only consumes the engine's
// public contract: snapshots via State and change notifications via
// Subscribe.
type Drawer struct {
	engine *cart.Engine
	w      io.Writer
}

func New(engine *cart.Engine, w io.Writer) *Drawer {
	return &Drawer{engine: engine, w: w}
}

// Attach re-renders on every engine change while the drawer is open.
// The returned function detaches the drawer.
func (d *Drawer) Attach() func() {
	return d.engine.Subscribe(func(s cart.State) {
		if s.IsOpen {
			d.render(s)
		}
	})
}

// Render draws the current cart once, open or not.
func (d *Drawer) Render() {
	d.render(d.engine.State())
}

func (d *Drawer) render(s cart.State) {
	fmt.Fprintln(d.w, "Shopping Cart")
	fmt.Fprintln(d.w, "=============")

	if s.IsLoading {
		fmt.Fprintln(d.w, "Loading your cart...")
		return
	}
	if len(s.Items) == 0 {
		fmt.Fprintln(d.w, "Your cart is empty")
		return
	}

	for _, li := range s.Items {
		fmt.Fprintf(d.w, "%-32s size %-10s x%-3d Rs. %s\n",
			li.Name, li.SelectedSize, li.Quantity, formatRupees(li.Price*li.Quantity))
	}

	subtotal := d.engine.TotalPrice()
	fmt.Fprintf(d.w, "\nSubtotal (%d items): Rs. %s\n", d.engine.TotalItems(), formatRupees(subtotal))
	if subtotal >= FreeShippingThreshold {
		fmt.Fprintln(d.w, "You qualify for free shipping")
	}
}

// formatRupees groups digits Indian style: 1234567 -> 12,34,567.
func formatRupees(amount int) string {
	s := strconv.Itoa(amount)
	if len(s) <= 3 {
		return s
	}

	head := s[:len(s)-3]
	out := s[len(s)-3:]
	for len(head) > 2 {
		out = head[len(head)-2:] + "," + out
		head = head[:len(head)-2]
	}
	return head + "," + out
}
