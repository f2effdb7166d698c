package entity

import "math"

// Point is a position in screen pixels.
type Point struct {
	X int `json:"x" yaml:"x"`
	Y int `json:"y" yaml:"y"`
}

// Sub returns p - q.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// DistanceTo returns the euclidean distance between two points.
func (p Point) DistanceTo(q Point) float64 {
	d := p.Sub(q)
	return math.Hypot(float64(d.X), float64(d.Y))
}

// Rect represents a screen rectangle.
// Used for area geometry, overlay drop zones and floating window placement.
type Rect struct {
	X int `json:"x" yaml:"x"`
	Y int `json:"y" yaml:"y"`
	W int `json:"w" yaml:"w"`
	H int `json:"h" yaml:"h"`
}

// Empty reports whether the rectangle has no surface.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Contains reports whether p lies inside r (right/bottom edges exclusive).
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.X+r.W && p.Y >= r.Y && p.Y < r.Y+r.H
}

// Center returns the center point of the rectangle.
func (r Rect) Center() Point {
	return Point{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

// Area returns the surface of the rectangle.
func (r Rect) Area() int {
	if r.Empty() {
		return 0
	}
	return r.W * r.H
}

// Translate moves the rectangle by the given offset.
func (r Rect) Translate(dx, dy int) Rect {
	return Rect{X: r.X + dx, Y: r.Y + dy, W: r.W, H: r.H}
}

// NearEdge reports whether p is within threshold pixels of any edge of r.
func (r Rect) NearEdge(p Point, threshold int) bool {
	return p.X <= r.X+threshold ||
		p.X >= r.X+r.W-threshold ||
		p.Y <= r.Y+threshold ||
		p.Y >= r.Y+r.H-threshold
}
