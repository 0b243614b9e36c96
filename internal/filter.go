package internal

import (
	"runtime"

	"golang.org/x/sync/errgroup"
)

type FilterOptions struct {
	// Number of goroutines classifying points. Zero or less means GOMAXPROCS.
	Workers int
	// Passed through to IntersectsWithin. Zero is exact.
	Tolerance float64
}

// Classify every point against the polygon. The result has one entry per
// point, in the same order.
//
// Points are independent of each other, so the list is cut into contiguous
// chunks, one per worker. Each worker only writes its own part of the result,
// and the classifier is shared read only, so there is nothing to lock.
func Classify(poly Polygon, points []Point, opts FilterOptions) []bool {
	classifier := poly.Classifier(opts.Tolerance)
	inside := make([]bool, len(points))

	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > len(points) {
		workers = len(points)
	}
	if workers <= 1 {
		classifyRange(classifier, points, inside)
		return inside
	}

	chunkSize := (len(points) + workers - 1) / workers
	var group errgroup.Group
	for start := 0; start < len(points); start += chunkSize {
		end := min(start+chunkSize, len(points))
		chunk, out := points[start:end], inside[start:end]
		group.Go(func() error {
			classifyRange(classifier, chunk, out)
			return nil
		})
	}
	// Nothing in a chunk returns an error. The group is only used to wait.
	_ = group.Wait()
	return inside
}

// Return the points inside the polygon, in their original relative order.
func Filter(poly Polygon, points []Point, opts FilterOptions) []Point {
	return Select(points, Classify(poly, points, opts))
}

// Return the points whose mask entry is set, in order. The mask must be at
// least as long as points.
func Select(points []Point, mask []bool) []Point {
	var result []Point
	for i, p := range points {
		if mask[i] {
			result = append(result, p)
		}
	}
	return result
}

func classifyRange(classifier *Classifier, points []Point, out []bool) {
	for i, p := range points {
		out[i] = classifier.Contains(p)
	}
}
