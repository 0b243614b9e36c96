package internal

// Points are plain values. Nothing in this package modifies a point after it
// has been read, since classification near edges depends on the exact bits of
// every coordinate.
type Point struct {
	X float64
	Y float64
}

type Segment struct {
	Start Point
	End   Point
}

// A polygon is never explicitly closed. The last point connects back to the
// first implicitly.
type Polygon struct {
	Points []Point
}

type BoundingBox struct {
	MinX, MaxX float64
	MinY, MaxY float64
}
