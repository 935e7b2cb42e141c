package vmath

import "math"

// Ellipse helpers for ring layouts
// Angles are radians, 0 = +X, increasing toward +Y

// EllipsePoint returns the point on the axis-aligned ellipse at angle
func EllipsePoint(center Vec2, rx, ry, angle float64) Vec2 {
	return Vec2{
		X: center.X + math.Cos(angle)*rx,
		Y: center.Y + math.Sin(angle)*ry,
	}
}

// RingAngle returns the evenly spaced base angle of slot i among n slots
func RingAngle(i, n int) float64 {
	if n <= 0 {
		return 0
	}
	return 2 * math.Pi * float64(i) / float64(n)
}

// EllipseContains reports whether p lies inside or on the ellipse
func EllipseContains(center Vec2, rx, ry float64, p Vec2) bool {
	if rx <= 0 || ry <= 0 {
		return false
	}
	dx := (p.X - center.X) / rx
	dy := (p.Y - center.Y) / ry
	return dx*dx+dy*dy <= 1
}
