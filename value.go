package minilang

import "fmt"

// Value is anything a NameTable can bind or an expression can evaluate
// to. Every Value here is already fully evaluated — a List is a handle
// into the heap, never an unevaluated AST node, so assignment never
// needs to special-case its right-hand side to avoid a copy.
type Value interface {
	isValue()
	String(h *Heap) string
}

// Number is an immutable 64-bit integer. Numbers are not heap-allocated;
// they live inline in a cell's car slot and are not swept — a Number is
// live iff its enclosing cell is live.
type Number int64

func (Number) isValue() {}

func (n Number) String(_ *Heap) string {
	return fmt.Sprintf("%d", int64(n))
}

// List is a user-facing handle whose identity is a single head cell. The
// empty list is a distinguished value with no backing cell (head ==
// noRef).
type List struct {
	head cellRef
}

// EmptyList is the canonical empty list value.
var EmptyList = List{head: noRef}

func (List) isValue() {}

func (l List) Empty() bool {
	return l.head == noRef
}

func (l List) String(h *Heap) string {
	return "[" + joinListElements(h, l) + "]"
}

func joinListElements(h *Heap, l List) string {
	if l.Empty() {
		return ""
	}
	c := h.get(l.head)
	var head string
	switch c.car.kind {
	case slotNil:
		head = EmptyList.String(h)
	case slotNumber:
		head = Number(c.car.num).String(h)
	case slotCell:
		head = List{head: c.car.ref}.String(h)
	}
	rest := List{head: c.cdr.ref}
	if rest.Empty() {
		return head
	}
	return head + "," + joinListElements(h, rest)
}

func valueKind(v Value) string {
	switch v.(type) {
	case Number:
		return "Number"
	case List:
		return "List"
	default:
		return fmt.Sprintf("%T", v)
	}
}

// slotToValue unwraps a car slot into the Value it represents: an empty
// List, a Number, or a List anchored at another cell.
func slotToValue(s slot) Value {
	switch s.kind {
	case slotNumber:
		return Number(s.num)
	case slotCell:
		return List{head: s.ref}
	default:
		return EmptyList
	}
}

// valueToSlot packs a Value into the slot representation used for a
// cell's car.
func valueToSlot(v Value) slot {
	switch val := v.(type) {
	case Number:
		return numberSlot(int64(val))
	case List:
		return cellSlot(val.head)
	default:
		return nilSlot
	}
}
