package pong

// EventKind identifies what happened during a step.
type EventKind int

const (
	EventPaddleHit EventKind = iota
	EventWallBounce
	EventPoint
)

// String returns a human-readable name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventPaddleHit:
		return "PaddleHit"
	case EventWallBounce:
		return "WallBounce"
	case EventPoint:
		return "Point"
	default:
		return "Unknown"
	}
}

// Side names a paddle.
type Side int

const (
	SidePlayer Side = iota
	SideCPU
)

// String returns the side name.
func (s Side) String() string {
	if s == SideCPU {
		return "cpu"
	}
	return "player"
}

// Wall names a horizontal board edge.
type Wall int

const (
	WallTop Wall = iota
	WallBottom
)

// Event is emitted by a step for the audio and rally log layers.
//
// For EventPaddleHit, Side is the paddle that was hit. For EventPoint, Side
// is the scorer, Rally describes the finished point and Score is the tally
// after it.
type Event struct {
	Kind  EventKind
	Side  Side
	Wall  Wall
	X, Y  float64
	Speed float64
	Rally Rally
	Score Score
}
