package internal

import "math"

// Some ad hoc fixture shapes shared by the tests in this package.

func Square() Polygon {
	return Polygon{[]Point{
		{0, 0},
		{4, 0},
		{4, 4},
		{0, 4},
	}}
}

func Triangle() Polygon {
	return Polygon{[]Point{
		{0, 0},
		{4, 0},
		{0, 4},
	}}
}

// Five pointed star, non-convex, centered on the origin.
func SimpleStar() Polygon {
	var points []Point
	const outerRadius = 5
	const innerRadius = 2
	for i := 0; i < 10; i++ {
		var radius float64
		if i%2 == 0 {
			radius = outerRadius
		} else {
			radius = innerRadius
		}
		angle := 2 * math.Pi * float64(i) / 10
		points = append(points, Point{X: radius * math.Cos(angle), Y: radius * math.Sin(angle)})
	}
	return Polygon{points}
}

// Regular n-gon. The first vertex is at startAngle, so callers can keep
// vertices off the horizontal through the center.
func RegularPolygon(n int, center Point, radius, startAngle float64) Polygon {
	points := make([]Point, n)
	for i := range points {
		angle := startAngle + 2*math.Pi*float64(i)/float64(n)
		points[i] = Point{X: center.X + radius*math.Cos(angle), Y: center.Y + radius*math.Sin(angle)}
	}
	return Polygon{points}
}
