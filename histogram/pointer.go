package histogram

// PointerKind classifies a normalized pointer event.
type PointerKind int

const (
	PointerDown PointerKind = iota
	PointerMove
	PointerUp
	PointerLeave
)

// PointerEvent is a pointer event already normalized by the hosting UI
// layer. X and Y are continuous coordinates in the histogram's pixel
// space, not raw terminal or client coordinates.
type PointerEvent struct {
	X, Y float64
	Kind PointerKind
}
