package internal

import "math"

// Segment intersection by solving for the parameters of both segments.
//
// Each segment is written as a point plus a direction, a + t1*ab and c + t2*cd.
// Setting them equal and solving with Cramer's rule gives
//
//	t1 =  det(ac, cd) / det(ab, cd)
//	t2 = -det(ab, ac) / det(ab, cd)
//
// and the segments meet iff both parameters land in [0, 1].
//
// There is no epsilon. Parallel segments (a zero determinant) never intersect,
// which includes collinear segments that overlap. The ray casting in
// Polygon.Contains depends on exactly this behavior, so don't "fix" it here.

// Return true iff [a,b] intersects [c,d]. Touching at an endpoint counts.
func Intersects(a, b, c, d Point) bool {
	return IntersectsWithin(a, b, c, d, 0)
}

// Like Intersects, but determinants within tolerance of zero are treated as
// parallel, and the parameter range is widened to [-tolerance, 1+tolerance].
// A tolerance of zero gives exactly the same answers as Intersects, NaNs
// included.
func IntersectsWithin(a, b, c, d Point, tolerance float64) bool {
	ab := b.Sub(a)
	cd := d.Sub(c)
	ac := c.Sub(a)

	denominator := Det(ab, cd)
	if math.Abs(denominator) <= tolerance {
		return false
	}

	t1 := Det(ac, cd) / denominator
	t2 := -Det(ab, ac) / denominator
	return inUnitRange(t1, tolerance) && inUnitRange(t2, tolerance)
}

func (s Segment) Intersects(other Segment) bool {
	return Intersects(s.Start, s.End, other.Start, other.End)
}

func (s Segment) IntersectsWithin(other Segment, tolerance float64) bool {
	return IntersectsWithin(s.Start, s.End, other.Start, other.End, tolerance)
}

func (s Segment) Direction() Point {
	return s.End.Sub(s.Start)
}

func inUnitRange(t, tolerance float64) bool {
	return -tolerance <= t && t <= 1+tolerance
}
