// Package gamemath holds the small pure helpers shared by the simulation
// systems. Nothing here touches the ECS.
package gamemath

import "math"

// Direction returns the unit vector from (fromX, fromY) to (toX, toY) and the
// distance between the points. Coincident points report a distance of 1 and
// a zero vector so callers never divide by zero.
func Direction(fromX, fromY, toX, toY float64) (ux, uy, dist float64) {
	dx := toX - fromX
	dy := toY - fromY
	dist = math.Sqrt(dx*dx + dy*dy)
	if dist == 0 {
		return 0, 0, 1
	}
	return dx / dist, dy / dist, dist
}

// Toward returns the velocity that moves (x, y) straight at the target with
// the given speed. Coincident points give a zero velocity.
func Toward(x, y, targetX, targetY, speed float64) (velX, velY float64) {
	ux, uy, _ := Direction(x, y, targetX, targetY)
	return ux * speed, uy * speed
}

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// SpanOverlap reports whether the open intervals (aMin, aMax) and
// (bMin, bMax) intersect. Touching edges do not overlap.
func SpanOverlap(aMin, aMax, bMin, bMax float64) bool {
	return aMax > bMin && aMin < bMax
}

// Lerp interpolates between a and b by t.
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Arc is the height of a sine leap at progress p in [0,1].
func Arc(p, height float64) float64 {
	return math.Sin(p*math.Pi) * height
}
