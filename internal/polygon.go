package internal

import "github.com/pkg/errors"

var ErrEmptyPolygon = errors.New("polygon has no vertices")

func (poly Polygon) Len() int {
	return len(poly.Points)
}

// Edge i runs from vertex i to vertex i+1, wrapping around at the end.
func (poly Polygon) Edge(i int) Segment {
	n := len(poly.Points)
	return Segment{poly.Points[CircularIndex(i, n)], poly.Points[CircularIndex(i+1, n)]}
}

func (poly Polygon) Edges() []Segment {
	edges := make([]Segment, len(poly.Points))
	for i := range poly.Points {
		edges[i] = poly.Edge(i)
	}
	return edges
}

// Axis aligned bounding box over all vertices. Panics with a ClassifyError if
// the polygon is empty.
func (poly Polygon) Bounds() BoundingBox {
	if len(poly.Points) == 0 {
		fatalWrap(ErrEmptyPolygon, "cannot compute bounding box")
	}
	first := poly.Points[0]
	box := BoundingBox{MinX: first.X, MaxX: first.X, MinY: first.Y, MaxY: first.Y}
	for _, p := range poly.Points[1:] {
		box.MinX = min(box.MinX, p.X)
		box.MaxX = max(box.MaxX, p.X)
		box.MinY = min(box.MinY, p.Y)
		box.MaxY = max(box.MaxY, p.Y)
	}
	return box
}

// Even-odd point-in-polygon by ray casting. The ray runs horizontally from p to
// a point one unit past the right side of the bounding box. Points exactly on
// the boundary, or rays passing exactly through a vertex, get whatever answer
// the intersection arithmetic gives; that answer is stable, but not meaningful.
func (poly Polygon) Contains(p Point) bool {
	return poly.Classifier(0).Contains(p)
}

func (poly Polygon) ContainsWithin(p Point, tolerance float64) bool {
	return poly.Classifier(tolerance).Contains(p)
}

// Number of edges crossed by the ray from p. Odd means inside.
func (poly Polygon) CrossingCount(p Point) int {
	return poly.Classifier(0).CrossingCount(p)
}

func (poly Polygon) CrossingCountWithin(p Point, tolerance float64) int {
	return poly.Classifier(tolerance).CrossingCount(p)
}

// Average of the vertices. For a convex polygon this is always strictly inside.
func (poly Polygon) Centroid() Point {
	if len(poly.Points) == 0 {
		fatalWrap(ErrEmptyPolygon, "cannot compute centroid")
	}
	var sum Point
	for _, p := range poly.Points {
		sum = sum.Add(p)
	}
	n := float64(len(poly.Points))
	return Point{X: sum.X / n, Y: sum.Y / n}
}

func (poly Polygon) Reverse() Polygon {
	newPoly := Polygon{Points: make([]Point, 0, len(poly.Points))}
	for i := len(poly.Points) - 1; i >= 0; i-- {
		newPoly.Points = append(newPoly.Points, poly.Points[i])
	}
	return newPoly
}

// The same polygon, relabeled so that vertex k becomes vertex 0.
func (poly Polygon) Rotate(k int) Polygon {
	n := len(poly.Points)
	newPoly := Polygon{Points: make([]Point, n)}
	for i := range newPoly.Points {
		newPoly.Points[i] = poly.Points[CircularIndex(i+k, n)]
	}
	return newPoly
}

// A Classifier holds everything derived from a polygon that does not depend on
// the query point, so that many points can be tested against one polygon
// without recomputing the bounding box. It is read only after construction and
// safe to share between goroutines.
type Classifier struct {
	Polygon   Polygon
	Bounds    BoundingBox
	Tolerance float64
}

func (poly Polygon) Classifier(tolerance float64) *Classifier {
	return &Classifier{
		Polygon:   poly,
		Bounds:    poly.Bounds(),
		Tolerance: tolerance,
	}
}

// The far end of the ray cast from p. It is outside the bounding box, and
// therefore outside the polygon.
func (c *Classifier) Outside(p Point) Point {
	return Point{X: c.Bounds.MaxX + 1, Y: p.Y}
}

func (c *Classifier) CrossingCount(p Point) int {
	ray := Segment{p, c.Outside(p)}
	points := c.Polygon.Points
	n := len(points)
	crossingCount := 0
	for i, vertex := range points {
		nextVertex := points[CircularIndex(i+1, n)]
		if IntersectsWithin(ray.Start, ray.End, vertex, nextVertex, c.Tolerance) {
			crossingCount++
		}
	}
	return crossingCount
}

func (c *Classifier) Contains(p Point) bool {
	return c.CrossingCount(p)%2 == 1
}
