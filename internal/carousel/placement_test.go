package carousel

import (
	"math"
	"strings"
	"testing"
)

func TestDiffNormalization(t *testing.T) {
	// For every ring size and active index, the active card's diff is
	// zero and no card's |diff| exceeds floor(N/2).
	for _, n := range []int{1, 2, 3, 4, 5, 7, 10} {
		r := newRing(t, n)
		for active := 0; active < n; active++ {
			r.JumpTo(active, nil)
			if d := r.Diff(active); d != 0 {
				t.Errorf("n=%d active=%d: Diff(active) = %d, want 0", n, active, d)
			}
			for i := 0; i < n; i++ {
				d := r.Diff(i)
				if abs := int(math.Abs(float64(d))); abs > n/2 {
					t.Errorf("n=%d active=%d i=%d: |diff| = %d > %d", n, active, i, abs, n/2)
				}
			}
		}
	}
}

func TestDiffShortestPath(t *testing.T) {
	r := newRing(t, 5)
	r.JumpTo(4, nil)

	// Index 0 is one step to the right of index 4 around the ring.
	if d := r.Diff(0); d != 1 {
		t.Errorf("Diff(0) from active 4 = %d, want 1", d)
	}
	if d := r.Diff(2); d != -2 {
		t.Errorf("Diff(2) from active 4 = %d, want -2", d)
	}
}

func TestPlacementActiveCard(t *testing.T) {
	r := newRing(t, 5)
	p := r.Placement(0)

	if p.Diff != 0 || p.OffsetX != 0 || p.Depth != 0 || p.Rotate != 0 {
		t.Errorf("active placement = %+v, want centered with no rotation", p)
	}
	if p.Opacity != 1 {
		t.Errorf("active opacity = %v, want 1", p.Opacity)
	}
	if p.ZIndex != BaseZIndex {
		t.Errorf("active z-index = %d, want %d", p.ZIndex, BaseZIndex)
	}
	if !p.Visible {
		t.Error("active card must be visible")
	}
}

func TestPlacementNeighbors(t *testing.T) {
	r := newRing(t, 7)

	right := r.Placement(1)
	if right.OffsetX != StepOffsetX || right.Depth != -StepDepth {
		t.Errorf("right neighbor = %+v", right)
	}
	if right.Rotate != RotationDeg {
		t.Errorf("right neighbor rotate = %d, want %d (sign follows diff)", right.Rotate, RotationDeg)
	}
	if math.Abs(right.Opacity-0.7) > 1e-9 {
		t.Errorf("right neighbor opacity = %v, want 0.7", right.Opacity)
	}

	left := r.Placement(6) // diff -1 around the ring
	if left.OffsetX != -StepOffsetX {
		t.Errorf("left neighbor offset = %d, want %d", left.OffsetX, -StepOffsetX)
	}
	if left.Rotate != -right.Rotate {
		t.Errorf("left/right rotation should mirror: %d vs %d", left.Rotate, right.Rotate)
	}
	if left.ZIndex != right.ZIndex {
		t.Errorf("symmetric cards should share z-index: %d vs %d", left.ZIndex, right.ZIndex)
	}
}

func TestPlacementVisibilityWindow(t *testing.T) {
	r := newRing(t, 9)
	for i := 0; i < 9; i++ {
		p := r.Placement(i)
		abs := p.Diff
		if abs < 0 {
			abs = -abs
		}
		if want := abs <= VisibleWindow; p.Visible != want {
			t.Errorf("i=%d diff=%d: visible = %v, want %v", i, p.Diff, p.Visible, want)
		}
	}
}

func TestPlacementOpacityFloor(t *testing.T) {
	r := newRing(t, 11)
	p := r.Placement(5) // diff 5, 1 - 0.3*5 < 0
	if p.Opacity != 0 {
		t.Errorf("opacity = %v, want clamped to 0", p.Opacity)
	}
}

func TestCSSTransform(t *testing.T) {
	p := Placement{OffsetX: 180, Depth: -120, Rotate: -40}
	got := p.CSSTransform()
	for _, want := range []string{"translateX(180px)", "translateZ(-120px)", "rotateY(-40deg)"} {
		if !strings.Contains(got, want) {
			t.Errorf("transform %q missing %q", got, want)
		}
	}
}

func TestPlacementsLen(t *testing.T) {
	r := newRing(t, 4)
	if got := len(r.Placements()); got != 4 {
		t.Errorf("placements = %d, want 4", got)
	}
}
