package sim

// WrapAssembly is the player's staging area: the wrap being built plus the
// bounded stock of cut meat.
type WrapAssembly struct {
	contents  []Ingredient
	meatStock int
	meatCap   int
}

// NewWrapAssembly creates an empty assembly whose meat stock caps at meatCap.
func NewWrapAssembly(meatCap int) *WrapAssembly {
	return &WrapAssembly{meatCap: meatCap}
}

// Reset empties the wrap and the meat stock.
func (w *WrapAssembly) Reset() {
	w.contents = nil
	w.meatStock = 0
}

// CutMeat adds one portion to the stock. At the cap it does nothing and
// returns false.
func (w *WrapAssembly) CutMeat() bool {
	if w.meatStock >= w.meatCap {
		return false
	}
	w.meatStock++
	return true
}

// AddIngredient appends kind to the wrap and reports whether it did.
// Meat is taken from the stock; with no stock the call does nothing.
func (w *WrapAssembly) AddIngredient(kind Ingredient) bool {
	if !kind.Valid() {
		return false
	}
	if kind == Meat {
		if w.meatStock == 0 {
			return false
		}
		w.meatStock--
	}
	w.contents = append(w.contents, kind)
	return true
}

// Trash discards the wrap and returns how many items were thrown away.
// Consumed meat is not refunded.
func (w *WrapAssembly) Trash() int {
	n := len(w.contents)
	w.contents = nil
	return n
}

// Contents returns a copy of the wrap in assembly order.
func (w *WrapAssembly) Contents() []Ingredient {
	return append([]Ingredient(nil), w.contents...)
}

// Len returns the number of items in the wrap.
func (w *WrapAssembly) Len() int {
	return len(w.contents)
}

// MeatStock returns the portions of cut meat available.
func (w *WrapAssembly) MeatStock() int {
	return w.meatStock
}
