package vmath

import "math"

// Vec2 is a point or displacement in abstract grid units
type Vec2 struct {
	X, Y float64
}

// V is shorthand for Vec2{x, y}
func V(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

func (v Vec2) Add(o Vec2) Vec2      { return Vec2{v.X + o.X, v.Y + o.Y} }
func (v Vec2) Sub(o Vec2) Vec2      { return Vec2{v.X - o.X, v.Y - o.Y} }
func (v Vec2) Scale(f float64) Vec2 { return Vec2{v.X * f, v.Y * f} }
func (v Vec2) Dot(o Vec2) float64   { return v.X*o.X + v.Y*o.Y }
func (v Vec2) Len() float64         { return math.Hypot(v.X, v.Y) }
func (v Vec2) Dist(o Vec2) float64  { return math.Hypot(o.X-v.X, o.Y-v.Y) }
func (v Vec2) IsZero() bool         { return v.X == 0 && v.Y == 0 }

// Normalize returns the unit vector, zero-safe
func (v Vec2) Normalize() Vec2 {
	l := v.Len()
	if l == 0 {
		return Vec2{}
	}
	return Vec2{v.X / l, v.Y / l}
}

// ClampLen limits the vector to maxLen while preserving direction
func (v Vec2) ClampLen(maxLen float64) Vec2 {
	l := v.Len()
	if l <= maxLen || l == 0 {
		return v
	}
	return v.Scale(maxLen / l)
}

// MoveToward steps from v toward target by at most maxStep.
// Returns the new point and the distance actually travelled.
func MoveToward(v, target Vec2, maxStep float64) (Vec2, float64) {
	if maxStep <= 0 {
		return v, 0
	}
	d := v.Dist(target)
	if d <= maxStep {
		return target, d
	}
	return v.Add(target.Sub(v).Scale(maxStep / d)), maxStep
}

// ClampToRect keeps v inside [0,w] x [0,h]
func ClampToRect(v Vec2, w, h float64) Vec2 {
	return Vec2{Clamp(v.X, 0, w), Clamp(v.Y, 0, h)}
}
