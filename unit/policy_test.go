package unit

import (
	"testing"

	"github.com/milk9111/gridnav/common"
)

func TestAssignNearest(t *testing.T) {
	g, pf := testWorld(t, [2]int{4, 0})

	u, err := New(g, pf, common.Vec2{X: -0.8, Y: 0.8}, Config{})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	t.Run("walkable_cell_assigned", func(t *testing.T) {
		if !AssignNearest(u, common.Vec2{X: 0.8, Y: -0.8}) {
			t.Fatalf("expected assignment to succeed")
		}
		if u.Target() == nil || u.Target().GridX != 4 || u.Target().GridY != 4 {
			t.Fatalf("expected target (4,4)")
		}
	})

	t.Run("blocked_cell_refused", func(t *testing.T) {
		before := u.Target()
		if AssignNearest(u, common.Vec2{X: 0.8, Y: 0.8}) {
			t.Fatalf("blocked cell must not become a target")
		}
		if u.Target() != before {
			t.Fatalf("refused assignment must not change the target")
		}
	})
}

func TestFollowPolicyCadence(t *testing.T) {
	g, pf := testWorld(t)

	u, err := New(g, pf, common.Vec2{X: -0.8, Y: 0.8}, Config{})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	quarry := common.Vec2{X: 0.8, Y: -0.8}
	p := &FollowPolicy{Quarry: func() common.Vec2 { return quarry }, Every: 5}

	p.Update(u, 1)
	if u.Target() != nil {
		t.Fatalf("off-cadence tick must not assign a target")
	}
	p.Update(u, 5)
	if u.Target() == nil || u.Target().GridX != 4 || u.Target().GridY != 4 {
		t.Fatalf("expected follow target (4,4)")
	}
}

func TestFollowPolicyEveryTickByDefault(t *testing.T) {
	g, pf := testWorld(t)

	u, err := New(g, pf, common.Vec2{X: -0.8, Y: 0.8}, Config{})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	p := &FollowPolicy{Quarry: func() common.Vec2 { return common.Vec2{X: 0, Y: 0} }}
	p.Update(u, 3)
	if u.Target() == nil {
		t.Fatalf("cadence 0 means every tick")
	}
}
