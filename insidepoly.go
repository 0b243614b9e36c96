// Point-in-polygon filtering for Go.
//
// Given one simple polygon and a list of query points, this package reports
// which points are inside, using even-odd ray casting over exact float64
// segment intersection. It does not handle holes or self-intersecting
// polygons, and points exactly on the boundary get a stable but otherwise
// arbitrary answer.
package insidepoly

import (
	"math"

	"github.com/osuushi/insidepoly/internal"
	"github.com/pkg/errors"
)

type Point = internal.Point
type Segment = internal.Segment

var (
	ErrEmptyPolygon     = internal.ErrEmptyPolygon
	ErrInvalidTolerance = errors.New("tolerance must be a non-negative number")
)

type options struct {
	workers   int
	tolerance float64
}

type Option func(*options)

// Number of goroutines used by Filter. The default, zero, uses one per CPU.
func WithWorkers(n int) Option {
	return func(o *options) { o.workers = n }
}

// Treat near-parallel segments as parallel, and accept segment parameters
// slightly outside [0, 1]. The default, zero, is exact.
func WithTolerance(tolerance float64) Option {
	return func(o *options) { o.tolerance = tolerance }
}

// Return true iff segment [a,b] intersects segment [c,d], endpoints included.
// Parallel segments never intersect, even when they overlap.
func Intersects(a, b, c, d Point) bool {
	return internal.Intersects(a, b, c, d)
}

// Return true iff query is inside the polygon. The polygon is given by its
// vertices in order, without repeating the first vertex at the end.
func IsInside(polygon []Point, query Point, opts ...Option) (inside bool, err error) {
	mask, err := Classify(polygon, []Point{query}, opts...)
	if err != nil {
		return false, err
	}
	return mask[0], nil
}

// Classify every point. The result has one entry per point, in order.
func Classify(polygon []Point, points []Point, opts ...Option) (result []bool, err error) {
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	defer func() {
		recoveredErr := internal.HandleClassifyPanicRecover(recover())
		if recoveredErr != nil {
			result = nil
			err = recoveredErr
		}
	}()
	return internal.Classify(internal.Polygon{Points: polygon}, points, o), nil
}

// Select returns the points whose entry in mask is set, in their original
// order. Use it with the result of Classify when both the mask and the inside
// points are needed. The mask must be at least as long as points.
func Select(points []Point, mask []bool) []Point {
	return internal.Select(points, mask)
}

// Filter returns the points inside the polygon, in their original order.
func Filter(polygon []Point, points []Point, opts ...Option) (result []Point, err error) {
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	defer func() {
		recoveredErr := internal.HandleClassifyPanicRecover(recover())
		if recoveredErr != nil {
			result = nil
			err = recoveredErr
		}
	}()
	return internal.Filter(internal.Polygon{Points: polygon}, points, o), nil
}

func buildOptions(opts []Option) (internal.FilterOptions, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	if o.tolerance < 0 || math.IsNaN(o.tolerance) {
		return internal.FilterOptions{}, errors.Wrapf(ErrInvalidTolerance, "got %g", o.tolerance)
	}
	return internal.FilterOptions{Workers: o.workers, Tolerance: o.tolerance}, nil
}
