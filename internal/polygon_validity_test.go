package internal

// This contains no actual tests. It is just a helper for checking the ray
// casting classifier against an independent formulation.

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const Epsilon = 1e-9

// Walk a grid over the (padded) bounding box. The sample offsets are odd
// fractions of the step so that, in practice, no sample lies on an edge or on
// the horizontal through a vertex, where the two rules are allowed to differ.
func forEachSample(box BoundingBox, steps int, fn func(p Point)) {
	xPadding := (box.MaxX - box.MinX) * 0.1
	yPadding := (box.MaxY - box.MinY) * 0.1
	minX, maxX := box.MinX-xPadding, box.MaxX+xPadding
	minY, maxY := box.MinY-yPadding, box.MaxY+yPadding
	xStep := (maxX - minX) / float64(steps)
	yStep := (maxY - minY) / float64(steps)

	for j := 0; j < steps; j++ {
		y := minY + (float64(j)+0.6180339)*yStep
		for i := 0; i < steps; i++ {
			x := minX + (float64(i)+0.3819661)*xStep
			fn(Point{X: x, Y: y})
		}
	}
}

// Half-open crossing rule: an edge counts if it straddles the horizontal
// through p and crosses it to the right of p.
func containsByHalfOpenRule(poly Polygon, p Point) bool {
	inside := false
	n := len(poly.Points)
	for i, a := range poly.Points {
		b := poly.Points[CircularIndex(i+1, n)]
		if (a.Y > p.Y) != (b.Y > p.Y) && p.X < (b.X-a.X)*(p.Y-a.Y)/(b.Y-a.Y)+a.X {
			inside = !inside
		}
	}
	return inside
}

func validateBySampling(t *testing.T, poly Polygon) {
	forEachSample(poly.Bounds(), 50, func(p Point) {
		if containsByHalfOpenRule(poly, p) {
			assert.True(t, poly.Contains(p), "point %v should be in the polygon", p)
		} else {
			assert.False(t, poly.Contains(p), "point %v should not be in the polygon", p)
		}
	})
}
