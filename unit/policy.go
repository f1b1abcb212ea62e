package unit

import (
	"github.com/milk9111/gridnav/common"
)

// Policy picks a unit's target once per tick. Policies are glue around the
// nearest-cell query; all contract logic stays in nav and Unit.
type Policy interface {
	Update(u *Unit, tick int)
}

// AssignNearest snaps a world point to its nearest grid cell and assigns it
// as the unit's target when that cell is walkable. It is the shared tail of
// every policy, including pointer-click targeting.
func AssignNearest(u *Unit, p common.Vec2) bool {
	if u == nil {
		return false
	}
	cell, err := u.grid.Nearest(p)
	if err != nil || !cell.Walkable {
		return false
	}
	u.SetTarget(cell)
	return true
}

// FollowPolicy re-targets a unit onto a tracked position every Every ticks.
// Unit.SetTarget ignores an unchanged target cell, so a stationary quarry
// costs one nearest-cell scan per decision tick and nothing more.
type FollowPolicy struct {
	// Quarry yields the followed world position each decision tick.
	Quarry func() common.Vec2
	// Every is the decision cadence in ticks; values below 1 mean every tick.
	Every int
}

func (f *FollowPolicy) Update(u *Unit, tick int) {
	if f == nil || f.Quarry == nil || u == nil {
		return
	}
	if f.Every > 1 && tick%f.Every != 0 {
		return
	}
	AssignNearest(u, f.Quarry())
}
