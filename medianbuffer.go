package movingmedian

import (
	"slices"

	"golang.org/x/exp/constraints"
)

// MedianBuffer maintains the median of the most recent samples over a
// fixed-capacity ring buffer. Once the buffer is full, each new sample
// replaces the oldest one. The backing storage is allocated once at
// construction and never grows.
//
// Non-finite samples are stored as-is; NaN values follow their native
// comparison semantics during sorting, which can produce a median that is not
// a true middle value.
//
// This type is not concurrency safe.
type MedianBuffer[T constraints.Float] struct {
	samples []T
	sorted  []T
	index   int
	size    int
}

// New creates a MedianBuffer that reports the median of the most recent
// capacity samples. Panics if capacity is less than 1.
func New[T constraints.Float](capacity int) *MedianBuffer[T] {
	if capacity < 1 {
		panic("movingmedian: capacity must be at least 1")
	}
	return &MedianBuffer[T]{
		samples: make([]T, capacity),
		sorted:  make([]T, capacity),
	}
}

// Add records a sample, replacing the oldest one once the buffer is full.
func (b *MedianBuffer[T]) Add(value T) {
	b.samples[b.index] = value
	b.index = (b.index + 1) % len(b.samples)
	if b.size < len(b.samples) {
		b.size++
	}
}

// Median returns the median of the live samples, or 0 if no samples have been
// added. When the live count is even, the result is the mean of the two
// middle values. The zero return for an empty buffer is a deliberate
// cold-start default; use Size to distinguish it from a genuine zero median.
func (b *MedianBuffer[T]) Median() T {
	if b.size == 0 {
		return 0
	}

	// The live samples always occupy the first size slots: the index only
	// wraps once the buffer is full, at which point every slot is live.
	live := b.sorted[:b.size]
	copy(live, b.samples[:b.size])
	slices.Sort(live)

	if b.size%2 == 0 {
		return (live[b.size/2-1] + live[b.size/2]) / 2
	}
	return live[b.size/2]
}

// Size returns the number of live samples, up to the capacity.
func (b *MedianBuffer[T]) Size() int {
	return b.size
}

// Capacity returns the fixed capacity of the buffer.
func (b *MedianBuffer[T]) Capacity() int {
	return len(b.samples)
}

// Reset discards all samples and zeroes the backing storage, returning the
// buffer to its freshly constructed state.
func (b *MedianBuffer[T]) Reset() {
	clear(b.samples)
	b.index = 0
	b.size = 0
}
