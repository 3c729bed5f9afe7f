package effects

// DefaultTrailLength is the number of ball positions kept for the afterimage.
const DefaultTrailLength = 12

// Point is a recorded ball position.
type Point struct {
	X, Y float64
}

// Trail is a fixed-capacity FIFO of recent ball positions backed by a ring.
type Trail struct {
	buf   []Point
	start int
	n     int
}

// NewTrail creates a trail holding at most length points. A non-positive
// length uses DefaultTrailLength.
func NewTrail(length int) *Trail {
	if length <= 0 {
		length = DefaultTrailLength
	}
	return &Trail{buf: make([]Point, length)}
}

// Push appends a position, discarding the oldest when full.
func (t *Trail) Push(x, y float64) {
	idx := (t.start + t.n) % len(t.buf)
	t.buf[idx] = Point{X: x, Y: y}
	if t.n < len(t.buf) {
		t.n++
		return
	}
	t.start = (t.start + 1) % len(t.buf)
}

// Points returns the recorded positions, oldest first.
func (t *Trail) Points() []Point {
	out := make([]Point, t.n)
	for i := range t.n {
		out[i] = t.buf[(t.start+i)%len(t.buf)]
	}
	return out
}

// Len returns the number of recorded positions.
func (t *Trail) Len() int {
	return t.n
}

// Cap returns the maximum number of positions.
func (t *Trail) Cap() int {
	return len(t.buf)
}

// Clear empties the trail.
func (t *Trail) Clear() {
	t.start = 0
	t.n = 0
}
