package internal

// Often we want to treat an array as a circular buffer. This gives the modular
// index given length n, but unlike the raw modulo operator, it only gives positive values
func CircularIndex(i, n int) int {
	return (i%n + n) % n
}

func (p Point) Sub(other Point) Point {
	return Point{X: p.X - other.X, Y: p.Y - other.Y}
}

func (p Point) Add(other Point) Point {
	return Point{X: p.X + other.X, Y: p.Y + other.Y}
}

// Determinant of the 2x2 matrix whose columns are u and v. This is zero iff the
// two vectors are parallel.
func Det(u, v Point) float64 {
	return u.X*v.Y - u.Y*v.X
}
