// SPDX-License-Identifier: MIT

package ndarray

// Walker is the traversal protocol shared by Cursor and PeriodicCursor.
//
//	for w := seq.NewWalker(); !w.Done(); w.Next() {
//		v := data[w.Address()]
//	}
type Walker interface {
	// Done reports whether the traversal has passed the last element.
	Done() bool
	// Next advances to the following element in nested order (axis 0 fastest).
	Next()
	// Address returns the buffer position of the current element.
	Address() int
	// Index returns the current logical index. The slice is owned by the
	// walker and is overwritten by Next.
	Index() []int
}

// Cursor visits every index of a Layout in nested order, axis 0 innermost,
// updating the buffer address incrementally.
//
// Implementation:
//   - semi[i] = stride[i] - shape[i-1]*stride[i-1], semi[0] = stride[0].
//   - Next adds semi[0]; on overflow of axis i it resets index[i] and adds
//     semi[i+1], cascading upward. Overflow of the last axis ends the walk.
//
// Complexity:
//   - Next is amortised O(1); construction is O(D).
type Cursor struct {
	address int
	index   []int
	shape   Shape
	stride  Stride
	semi    []int
	done    bool
}

// NewCursor returns a cursor positioned on the first element of l.
func NewCursor(l Layout) *Cursor {
	c := &Cursor{}
	c.init(l)
	return c
}

// NewCursorAt returns a cursor positioned at index (reduced modulo the shape).
// It is the starting point of a periodic traversal.
func NewCursorAt(l Layout, index []int) *Cursor {
	c := NewCursor(l)
	c.Seek(index)
	return c
}

func (c *Cursor) init(l Layout) {
	d := len(l.Shape)
	c.shape = l.Shape
	c.stride = l.Stride
	c.address = l.Offset
	c.index = make([]int, d)
	c.semi = make([]int, d)
	for i := 0; i < d; i++ {
		if i == 0 {
			c.semi[0] = l.Stride[0]
			continue
		}
		c.semi[i] = l.Stride[i] - l.Shape[i-1]*l.Stride[i-1]
	}
	c.done = l.Shape.Size() == 0
}

// Seek moves the cursor to index, each entry reduced modulo its extent.
// Seek on an empty layout is a no-op.
func (c *Cursor) Seek(index []int) {
	if c.shape.Size() == 0 {
		return
	}
	for i := range c.index {
		c.Cycle(i, index[i]-c.index[i])
	}
}

// Done implements Walker.
func (c *Cursor) Done() bool { return c.done }

// Address implements Walker.
func (c *Cursor) Address() int { return c.address }

// Index implements Walker.
func (c *Cursor) Index() []int { return c.index }

// Next implements Walker.
func (c *Cursor) Next() {
	if c.done {
		return
	}
	for i := range c.index {
		c.index[i]++
		c.address += c.semi[i]
		if c.index[i] < c.shape[i] {
			return
		}
		c.index[i] = 0
	}
	c.done = true
}

// Cycle moves axis by delta with wraparound modulo shape[axis], independent
// of the Next direction: new = (index[axis]+delta) mod shape[axis].
// The address changes by (new-old)*stride[axis].
func (c *Cursor) Cycle(axis, delta int) {
	old := c.index[axis]
	next := mod(old+delta, c.shape[axis])
	c.address += (next - old) * c.stride[axis]
	c.index[axis] = next
}

// Equal reports whether both cursors point at the same address.
func (c *Cursor) Equal(o *Cursor) bool { return c.address == o.address && c.done == o.done }
