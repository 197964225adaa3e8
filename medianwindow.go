package movingmedian

// MedianWindow maintains an exact median over a fixed-capacity sliding window
// of samples using a dual-linked list structure. It provides O(1) median
// queries and O(k) insertion where k is the distance from the current median
// (typically very small for stable signals). Evicted nodes are reused, so the
// steady state performs no allocation.
//
// MedianWindow produces the same medians as MedianBuffer for the same input
// stream and capacity; it trades the per-query sort for incremental
// bookkeeping on each Add.
//
// This type is not concurrency safe.
type MedianWindow struct {
	capacity int
	size     int

	// Insertion-ordered doubly-linked list (for eviction)
	timeHead *windowNode
	timeTail *windowNode

	// Value-ordered doubly-linked list (for median lookup)
	valueHead *windowNode

	// Anchor pointer to the lower middle node
	median    *windowNode
	medianPos int // Current 0-indexed position of median in sorted order
}

type windowNode struct {
	value float64

	// Insertion ordering
	timeNext *windowNode
	timePrev *windowNode

	// Value ordering (sorted ascending)
	valueNext *windowNode
	valuePrev *windowNode
}

// NewMedianWindow creates a MedianWindow that reports the median of the most
// recent capacity samples. Panics if capacity is less than 1.
func NewMedianWindow(capacity int) *MedianWindow {
	if capacity < 1 {
		panic("movingmedian: capacity must be at least 1")
	}
	return &MedianWindow{capacity: capacity}
}

// Add records a sample, evicting the oldest one once the window is full, and
// returns the updated median.
func (w *MedianWindow) Add(value float64) float64 {
	// Reuse the evicted node when full, otherwise allocate a new one
	var node *windowNode
	if w.size == w.capacity {
		node = w.removeOldest()
	} else {
		node = &windowNode{}
	}
	node.value = value

	w.insertTimeOrdered(node)

	// Insert into the value-ordered list, starting from the median anchor
	w.insertValueOrdered(node)

	// Move the anchor back onto the lower middle
	w.updateMedianPosition()

	return w.Median()
}

// Median returns the median of the live samples, or 0 if the window is empty.
// When the live count is even, the result is the mean of the two middle
// values. Use Size to distinguish an empty window from a zero median.
func (w *MedianWindow) Median() float64 {
	if w.median == nil {
		return 0
	}
	if w.size%2 == 0 {
		return (w.median.value + w.median.valueNext.value) / 2
	}
	return w.median.value
}

// Size returns the number of live samples, up to the capacity.
func (w *MedianWindow) Size() int {
	return w.size
}

// Capacity returns the fixed capacity of the window.
func (w *MedianWindow) Capacity() int {
	return w.capacity
}

// Reset discards all samples, returning the window to its freshly constructed
// state.
func (w *MedianWindow) Reset() {
	w.timeHead = nil
	w.timeTail = nil
	w.valueHead = nil
	w.median = nil
	w.medianPos = 0
	w.size = 0
}

// insertTimeOrdered appends a node to the end of the insertion-ordered list (O(1))
func (w *MedianWindow) insertTimeOrdered(node *windowNode) {
	if w.timeHead == nil {
		w.timeHead = node
		w.timeTail = node
	} else {
		w.timeTail.timeNext = node
		node.timePrev = w.timeTail
		w.timeTail = node
	}
	w.size++
}

// insertValueOrdered inserts a node into the value-ordered list, starting the
// search from the median anchor. This gives O(k) performance where k is the
// distance from the median (typically small). Also updates medianPos if the
// new node lands before the anchor.
func (w *MedianWindow) insertValueOrdered(node *windowNode) {
	// Empty list
	if w.valueHead == nil {
		w.valueHead = node
		return
	}

	// Start search from the median anchor if available, otherwise from head
	var start *windowNode
	if w.median != nil {
		start = w.median
	} else {
		start = w.valueHead
	}

	// Determine search direction
	if node.value < start.value {
		// Search backward toward smaller values
		curr := start
		for curr.valuePrev != nil && curr.valuePrev.value > node.value {
			curr = curr.valuePrev
		}

		// Insert before curr
		node.valueNext = curr
		node.valuePrev = curr.valuePrev
		if curr.valuePrev != nil {
			curr.valuePrev.valueNext = node
		} else {
			w.valueHead = node
		}
		curr.valuePrev = node
	} else {
		// Search forward toward larger values; ties land right after the
		// anchor, which keeps the anchor's position unchanged
		curr := start
		for curr.valueNext != nil && curr.valueNext.value < node.value {
			curr = curr.valueNext
		}

		// Insert after curr
		node.valuePrev = curr
		node.valueNext = curr.valueNext
		if curr.valueNext != nil {
			curr.valueNext.valuePrev = node
		}
		curr.valueNext = node
	}

	// If the new node sorted before the anchor, the anchor shifted up one
	if w.median != nil && node.value < w.median.value {
		w.medianPos++
	}
}

// removeOldest removes the oldest node and returns it for reuse. It updates
// medianPos to an approximate position; updateMedianPosition must be called
// to land the anchor back on the lower middle. Returns nil if there are no
// nodes to remove.
func (w *MedianWindow) removeOldest() *windowNode {
	if w.timeHead == nil {
		return nil
	}

	oldNode := w.timeHead

	// Remove from the insertion-ordered list (O(1))
	w.timeHead = oldNode.timeNext
	if w.timeHead != nil {
		w.timeHead.timePrev = nil
	} else {
		w.timeTail = nil
	}

	// Update median tracking while oldNode is still linked in value order,
	// so ties can be resolved by identity rather than by value
	if w.median == oldNode {
		// Case 1: evicted the anchor itself
		if oldNode.valueNext != nil {
			// The next node in sorted order takes over the old position
			w.median = oldNode.valueNext
		} else if oldNode.valuePrev != nil {
			w.median = oldNode.valuePrev
			w.medianPos--
		} else {
			// This was the only node
			w.median = nil
			w.medianPos = 0
		}
	} else if w.nodePrecedesMedian(oldNode) {
		// Case 2: evicted a node before the anchor in sorted order, so
		// everything after it shifts down one position
		w.medianPos--
	}

	// Remove from the value-ordered list (O(1))
	if oldNode.valuePrev != nil {
		oldNode.valuePrev.valueNext = oldNode.valueNext
	} else {
		w.valueHead = oldNode.valueNext
	}
	if oldNode.valueNext != nil {
		oldNode.valueNext.valuePrev = oldNode.valuePrev
	}

	w.size--

	// Clear pointers before returning for reuse
	oldNode.timeNext = nil
	oldNode.timePrev = nil
	oldNode.valueNext = nil
	oldNode.valuePrev = nil
	return oldNode
}

// nodePrecedesMedian reports whether node sits strictly before the anchor in
// the value-ordered list. Distinct values compare directly; a node tied with
// the anchor's value is resolved by walking the run of equal values preceding
// the anchor, since value alone cannot place it.
func (w *MedianWindow) nodePrecedesMedian(node *windowNode) bool {
	if w.median == nil {
		return false
	}
	if node.value != w.median.value {
		return node.value < w.median.value
	}
	for n := w.median.valuePrev; n != nil && n.value == node.value; n = n.valuePrev {
		if n == node {
			return true
		}
	}
	return false
}

// updateMedianPosition moves the anchor to the lower middle of the value
// order. Uses the tracked medianPos for O(k) updates where k is typically
// very small.
func (w *MedianWindow) updateMedianPosition() {
	if w.size == 0 {
		w.median = nil
		w.medianPos = 0
		return
	}

	// Lower middle, 0-indexed: for even sizes the median averages this node
	// with its value-order successor
	targetPos := (w.size - 1) / 2

	// If no anchor yet, traverse from the head
	if w.median == nil {
		w.median = w.valueHead
		w.medianPos = 0
	}

	// Move the anchor forward or backward as needed using the tracked position
	for w.medianPos < targetPos && w.median.valueNext != nil {
		w.median = w.median.valueNext
		w.medianPos++
	}
	for w.medianPos > targetPos && w.median.valuePrev != nil {
		w.median = w.median.valuePrev
		w.medianPos--
	}
}
