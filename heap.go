package minilang

// cellRef indexes a cell within a Heap's arena. noRef means "no cell" —
// the empty tail, or an element slot holding nothing.
type cellRef int

const noRef cellRef = -1

type slotKind uint8

const (
	slotNil slotKind = iota
	slotNumber
	slotCell
)

// slot is the contents of a car or cdr. A cdr slot is never slotNumber:
// the tail of a proper list is always another cell or the empty tail.
type slot struct {
	kind slotKind
	num  int64
	ref  cellRef
}

var nilSlot = slot{kind: slotNil, ref: noRef}

func numberSlot(v int64) slot { return slot{kind: slotNumber, num: v} }
func cellSlot(r cellRef) slot {
	if r == noRef {
		return nilSlot
	}
	return slot{kind: slotCell, ref: r}
}

// cell is the atomic heap unit: two slots plus the bookkeeping flags the
// collector needs.
type cell struct {
	car, cdr  slot
	allocated bool
	mark      bool
}

// RootsFunc produces the current root set: every cellRef reachable from a
// live binding, evaluated lazily so it always reflects the state at the
// moment a collection actually runs.
type RootsFunc func() []cellRef

// Heap is a fixed-capacity pool of cons cells with explicit allocation and
// an exact mark-and-sweep collector triggered on demand or on exhaustion.
type Heap struct {
	cells      []cell
	collecting bool
}

// NewHeap creates a heap with room for exactly capacity cells.
func NewHeap(capacity int) *Heap {
	return &Heap{cells: make([]cell, capacity)}
}

func (h *Heap) Capacity() int {
	return len(h.cells)
}

func (h *Heap) CountAllocated() int {
	n := 0
	for i := range h.cells {
		if h.cells[i].allocated {
			n++
		}
	}
	return n
}

func (h *Heap) HasSpace() bool {
	return h.CountAllocated() < len(h.cells)
}

// Alloc returns a freshly cleared, allocated cell. On exhaustion it runs
// the collector once, using roots, before giving up with OutOfMemoryError.
func (h *Heap) Alloc(roots RootsFunc) (cellRef, error) {
	if ref, ok := h.findFree(); ok {
		return ref, nil
	}
	if err := h.Collect(roots); err != nil {
		return noRef, err
	}
	if ref, ok := h.findFree(); ok {
		return ref, nil
	}
	return noRef, &OutOfMemoryError{Capacity: len(h.cells)}
}

// findFree scans for the first unallocated cell. Scan order is
// deterministic but not observable: which cells end up allocated depends
// only on the fixed root set, never on which physical slot was picked.
func (h *Heap) findFree() (cellRef, bool) {
	for i := range h.cells {
		if !h.cells[i].allocated {
			h.cells[i].car = nilSlot
			h.cells[i].cdr = nilSlot
			h.cells[i].mark = false
			h.cells[i].allocated = true
			return cellRef(i), true
		}
	}
	return noRef, false
}

// Collect runs a full mark-and-sweep pass: every cell reachable from
// roots survives, everything else is freed. It never fails except on
// reentrant invocation.
func (h *Heap) Collect(roots RootsFunc) error {
	if h.collecting {
		return &ReentrantCollectError{}
	}
	h.collecting = true
	defer func() { h.collecting = false }()

	for i := range h.cells {
		h.cells[i].mark = false
	}
	for _, r := range roots() {
		h.mark(r)
	}
	for i := range h.cells {
		if h.cells[i].allocated && !h.cells[i].mark {
			h.cells[i].allocated = false
			h.cells[i].car = nilSlot
			h.cells[i].cdr = nilSlot
		}
	}
	// Invariant 5: mark is false on every cell once collection completes.
	for i := range h.cells {
		h.cells[i].mark = false
	}
	return nil
}

// mark performs the depth-first reachability walk from a single root
// reference. It only recurses into unmarked cells, so cycles terminate.
func (h *Heap) mark(r cellRef) {
	if r == noRef {
		return
	}
	c := &h.cells[r]
	if c.mark {
		return
	}
	c.mark = true
	if c.car.kind == slotCell {
		h.mark(c.car.ref)
	}
	if c.cdr.kind == slotCell {
		h.mark(c.cdr.ref)
	}
}

func (h *Heap) get(r cellRef) *cell {
	return &h.cells[r]
}
