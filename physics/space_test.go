package physics

import (
	"testing"

	"github.com/milk9111/gridnav/common"
)

func TestNewWorldConfigErrors(t *testing.T) {
	cases := []struct {
		name     string
		obstacle Obstacle
	}{
		{"unknown_kind", Obstacle{Kind: "triangle", X: 0, Y: 0}},
		{"zero_width_box", Obstacle{Kind: KindBox, Width: 0, Height: 1}},
		{"zero_radius_circle", Obstacle{Kind: KindCircle, Radius: 0}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if _, err := NewWorld([]Obstacle{c.obstacle}); err == nil {
				t.Fatalf("expected configuration error, got nil")
			}
		})
	}
}

func TestOverlaps(t *testing.T) {
	w, err := NewWorld([]Obstacle{
		{Kind: KindBox, X: 0, Y: 0, Width: 1, Height: 1},
		{Kind: KindCircle, X: 3, Y: 0, Radius: 0.5},
	})
	if err != nil {
		t.Fatalf("NewWorld failed: %v", err)
	}

	cases := []struct {
		name   string
		center common.Vec2
		radius float64
		want   bool
	}{
		{"inside_box", common.Vec2{X: 0, Y: 0}, 0.4, true},
		{"touching_box_edge", common.Vec2{X: 0.85, Y: 0}, 0.4, true},
		{"clear_of_box", common.Vec2{X: 1.0, Y: 0}, 0.4, false},
		{"near_circle", common.Vec2{X: 3.7, Y: 0}, 0.3, true},
		{"clear_of_circle", common.Vec2{X: 4.0, Y: 0}, 0.3, false},
		{"far_away", common.Vec2{X: -5, Y: 5}, 1.0, false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := w.Overlaps(c.center, c.radius); got != c.want {
				t.Fatalf("Overlaps(%v, %v) = %v, expected %v", c.center, c.radius, got, c.want)
			}
		})
	}
}

func TestEmptyWorldNeverOverlaps(t *testing.T) {
	w, err := NewWorld(nil)
	if err != nil {
		t.Fatalf("NewWorld failed: %v", err)
	}
	if w.Overlaps(common.Vec2{}, 100) {
		t.Fatalf("empty world should report no obstacles")
	}
}
