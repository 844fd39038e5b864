package carousel

// SwipeThreshold is the horizontal displacement in px a pointer must
// travel before release for the gesture to count as a swipe.
const SwipeThreshold = 50

// Action is the transition a finished gesture maps to.
type Action int

const (
	ActionNone Action = iota
	ActionNext         // leftward swipe advances the carousel
	ActionPrev         // rightward swipe retreats it
)

// Drag tracks a single pointer interaction (touch or mouse). A drag
// and a click are mutually exclusive per interaction: once movement
// crosses the threshold, WasDrag reports true until the next Start,
// and the release resolves to a swipe action instead of a click.
type Drag struct {
	active  bool
	startX  float64
	lastX   float64
	wasDrag bool
}

// Start begins tracking at the given pointer X coordinate. It also
// clears the drag flag from the previous interaction.
func (d *Drag) Start(x float64) {
	d.active = true
	d.startX = x
	d.lastX = x
	d.wasDrag = false
}

// Move records pointer movement. Movement beyond the threshold marks
// the interaction as a drag even before release.
func (d *Drag) Move(x float64) {
	if !d.active {
		return
	}
	d.lastX = x
	if delta := d.lastX - d.startX; delta > SwipeThreshold || delta < -SwipeThreshold {
		d.wasDrag = true
	}
}

// End finishes the interaction and resolves it to an action: a
// leftward displacement beyond the threshold yields ActionNext, a
// rightward one ActionPrev, anything less ActionNone.
func (d *Drag) End() Action {
	if !d.active {
		return ActionNone
	}
	d.active = false

	delta := d.lastX - d.startX
	switch {
	case delta < -SwipeThreshold:
		return ActionNext
	case delta > SwipeThreshold:
		return ActionPrev
	default:
		return ActionNone
	}
}

// Dragging reports whether a pointer is currently down.
func (d *Drag) Dragging() bool { return d.active }

// WasDrag reports whether the last finished interaction crossed the
// swipe threshold. Click handlers consult this before selecting a card.
func (d *Drag) WasDrag() bool { return d.wasDrag }
