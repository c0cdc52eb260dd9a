package minilang

// car returns the element in L's head cell, or EmptyListError if L is
// the empty list.
func car(heap *Heap, l List) (Value, error) {
	if l.Empty() {
		return nil, &EmptyListError{}
	}
	return slotToValue(heap.get(l.head).car), nil
}

// cdr returns the List whose head cell is L's cdr. cdr of the empty list
// is the empty list rather than an error.
func cdr(heap *Heap, l List) List {
	if l.Empty() {
		return EmptyList
	}
	return List{head: heap.get(l.head).cdr.ref}
}

// cons allocates exactly one new cell with car = x, cdr = y's head cell,
// and returns the List anchored there. It is the only built-in that
// allocates.
func cons(it *Interpreter, x Value, y List) (List, error) {
	ref, err := it.alloc()
	if err != nil {
		return EmptyList, err
	}
	c := it.Heap.get(ref)
	c.car = valueToSlot(x)
	c.cdr = cellSlot(y.head)
	return List{head: ref}, nil
}

// nullp returns 1 iff v is the empty List, 0 otherwise (including when v
// isn't a List at all).
func nullp(v Value) Number {
	if l, ok := v.(List); ok && l.Empty() {
		return 1
	}
	return 0
}

// listp returns 1 iff v is a List (empty or not).
func listp(v Value) Number {
	if _, ok := v.(List); ok {
		return 1
	}
	return 0
}

// concat implements `||`: both operands must be Lists. It materializes a
// fresh chain of len(lhs)+len(rhs) cells, so car/cdr on the result walk a
// single flat sequence with ordinary Lisp semantics, rather than nesting
// lhs and rhs behind one extra cell.
func concat(it *Interpreter, lhs, rhs List) (List, error) {
	values, err := listValues(it.Heap, lhs)
	if err != nil {
		return EmptyList, err
	}
	rhsValues, err := listValues(it.Heap, rhs)
	if err != nil {
		return EmptyList, err
	}
	return newListFromValues(it, append(values, rhsValues...))
}

// listValues walks a List's spine and returns its elements in order,
// without allocating.
func listValues(heap *Heap, l List) ([]Value, error) {
	var values []Value
	for cur := l; !cur.Empty(); cur = cdr(heap, cur) {
		v, err := car(heap, cur)
		if err != nil {
			return nil, err
		}
		values = append(values, v)
	}
	return values, nil
}

// newListFromValues builds a fresh cell chain from already-evaluated
// values, right-to-left, exactly one cons per element.
func newListFromValues(it *Interpreter, values []Value) (List, error) {
	rest := EmptyList
	for i := len(values) - 1; i >= 0; i-- {
		next, err := cons(it, values[i], rest)
		if err != nil {
			return EmptyList, err
		}
		rest = next
	}
	return rest, nil
}
