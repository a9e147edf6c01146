package scene

import "orrery/pkg/math"

// Trail is a bounded ring buffer of past orbit positions.
type Trail struct {
	points []math.Vec3
	head   int
	full   bool
}

// NewTrail creates a trail holding at most capacity points.
func NewTrail(capacity int) *Trail {
	return &Trail{points: make([]math.Vec3, capacity)}
}

// Push appends a position, evicting the oldest once full.
func (t *Trail) Push(p math.Vec3) {
	t.points[t.head] = p
	t.head = (t.head + 1) % len(t.points)
	if t.head == 0 {
		t.full = true
	}
}

// Len returns the number of stored points.
func (t *Trail) Len() int {
	if t.full {
		return len(t.points)
	}
	return t.head
}

// Points appends the stored positions, oldest first, to dst and
// returns it. Passing a reused slice avoids per-frame allocation.
func (t *Trail) Points(dst []math.Vec3) []math.Vec3 {
	if t.full {
		dst = append(dst, t.points[t.head:]...)
	}
	return append(dst, t.points[:t.head]...)
}
