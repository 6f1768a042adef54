package sparse

import (
	"cmp"
	"strconv"
)

// Element is one (index, value) slot of a sparse vector.
//
// Elements order by index only: two elements with the same index occupy the
// same slot whatever their values. Arithmetic returns a new Element and keeps
// the receiver's index.
type Element struct {
	Index int
	Value float64
}

// Compare orders elements by index. It returns -1, 0 or +1.
func (e Element) Compare(o Element) int {
	return cmp.Compare(e.Index, o.Index)
}

// Less reports whether e sorts before o.
func (e Element) Less(o Element) bool {
	return e.Index < o.Index
}

// SameSlot reports whether e and o address the same index.
func (e Element) SameSlot(o Element) bool {
	return e.Index == o.Index
}

// Add returns e with o's value added.
func (e Element) Add(o Element) Element {
	return Element{Index: e.Index, Value: e.Value + o.Value}
}

// Subtract returns e with o's value subtracted.
func (e Element) Subtract(o Element) Element {
	return Element{Index: e.Index, Value: e.Value - o.Value}
}

// Multiply returns e scaled by c.
func (e Element) Multiply(c float64) Element {
	return Element{Index: e.Index, Value: e.Value * c}
}

// Divide returns e divided by c. Division by zero follows IEEE 754.
func (e Element) Divide(c float64) Element {
	return Element{Index: e.Index, Value: e.Value / c}
}

// Negate returns e with its value negated.
func (e Element) Negate() Element {
	return Element{Index: e.Index, Value: -e.Value}
}

// IsZero reports whether the element carries no weight.
func (e Element) IsZero() bool {
	return e.Value == 0
}

// String returns the "index|value" text form.
func (e Element) String() string {
	return strconv.Itoa(e.Index) + "|" + formatValue(e.Value)
}
