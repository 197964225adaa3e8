package movingmedian_test

import (
	"fmt"

	"github.com/streamstats/movingmedian"
)

func ExampleMedianBuffer() {
	filter := movingmedian.New[float64](3)
	filter.Add(42.0)
	filter.Add(43.0)
	filter.Add(41.0)
	fmt.Println(filter.Median())
	// Output: 42
}

func ExampleMedianBuffer_eviction() {
	// With capacity 3, the fourth sample evicts the first
	filter := movingmedian.New[float64](3)
	filter.Add(42.0)
	filter.Add(44.0)
	filter.Add(43.0)
	filter.Add(41.0)
	fmt.Println(filter.Median())
	// Output: 43
}

func ExampleMedianWindow() {
	window := movingmedian.NewMedianWindow(4)
	for _, sample := range []float64{42.0, 43.0, 41.0, 44.0} {
		window.Add(sample)
	}
	fmt.Println(window.Median())
	// Output: 42.5
}
