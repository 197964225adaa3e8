// Package movingmedian provides fixed-capacity moving median filters for
// streams of scalar measurements, such as sensor readings that need smoothing
// or outlier rejection. A filter stores the most recent N samples in a ring
// buffer allocated once at construction, and reports the median of the live
// samples on demand. No operation allocates after the window is warm, blocks,
// or performs I/O.
//
// Two implementations are provided with identical observable behavior:
// MedianBuffer sorts a snapshot of the live samples on each query, while
// MedianWindow maintains a value-ordered structure incrementally and answers
// in constant time. Neither type is concurrency safe; callers that share a
// filter across goroutines must serialize access externally.
package movingmedian
