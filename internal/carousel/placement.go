package carousel

import "fmt"

// Geometry constants for the coverflow layout. Offsets are in px,
// rotation in degrees. Cards more than VisibleWindow steps from the
// active card are not rendered at all.
const (
	StepOffsetX   = 180  // horizontal shift per step away from center
	StepDepth     = 120  // translateZ recession per step
	RotationDeg   = 40   // Y-axis tilt of off-center cards
	OpacityFade   = 0.3  // opacity lost per step
	BaseZIndex    = 100  // stacking order of the active card
	VisibleWindow = 2    // max |diff| still rendered
)

// Placement describes how one card is positioned relative to the
// active card.
type Placement struct {
	Index   int     `json:"index"`
	Diff    int     `json:"diff"`    // shortest signed circular distance to active
	OffsetX int     `json:"offsetX"` // px
	Depth   int     `json:"depth"`   // px, negative = further away
	Rotate  int     `json:"rotate"`  // deg, sign follows Diff
	Opacity float64 `json:"opacity"`
	ZIndex  int     `json:"zIndex"`
	Visible bool    `json:"visible"`
}

// Diff returns the shortest signed circular distance from the active
// card to the card at index i: positive to the right, negative to the
// left, never exceeding half the ring in magnitude.
func (r *Ring) Diff(i int) int {
	n := len(r.certs)
	diff := i - r.active
	if diff > n/2 {
		diff -= n
	} else if diff < -n/2 {
		diff += n
	}
	return diff
}

// Placement computes the coverflow placement of the card at index i
// for the current active index.
func (r *Ring) Placement(i int) Placement {
	diff := r.Diff(i)
	abs := diff
	if abs < 0 {
		abs = -abs
	}

	opacity := 1 - OpacityFade*float64(abs)
	if opacity < 0 {
		opacity = 0
	}

	return Placement{
		Index:   i,
		Diff:    diff,
		OffsetX: diff * StepOffsetX,
		Depth:   -abs * StepDepth,
		Rotate:  sign(diff) * RotationDeg,
		Opacity: opacity,
		ZIndex:  BaseZIndex - abs,
		Visible: abs <= VisibleWindow,
	}
}

// Placements computes placements for every card in ring order.
func (r *Ring) Placements() []Placement {
	out := make([]Placement, len(r.certs))
	for i := range r.certs {
		out[i] = r.Placement(i)
	}
	return out
}

// CSSTransform renders the placement as a CSS transform value suitable
// for inline styles on the initial server-rendered markup.
func (p Placement) CSSTransform() string {
	return fmt.Sprintf("translateX(%dpx) translateZ(%dpx) rotateY(%ddeg)", p.OffsetX, p.Depth, p.Rotate)
}

func sign(n int) int {
	switch {
	case n > 0:
		return 1
	case n < 0:
		return -1
	default:
		return 0
	}
}
