package face

import "math"

// Point is a pixel position. X grows rightward, Y grows downward.
type Point struct {
	X int
	Y int
}

// Project returns the point at the given screen angle on a circle of the
// given radius around the origin. Both coordinates are truncated toward
// zero. The result is not clamped and may lie outside any buffer.
func Project(degree float64, originX, originY, radius int) Point {
	sin, cos := math.Sincos(degree * math.Pi / 180.0)
	r := float64(radius)
	return Point{
		X: int(float64(originX) + cos*r),
		// screen y points down
		Y: int(float64(originY) - sin*r),
	}
}
