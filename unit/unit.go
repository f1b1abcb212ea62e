package unit

import (
	"fmt"

	"github.com/milk9111/gridnav/common"
	"github.com/milk9111/gridnav/nav"
)

const (
	defaultStepSeconds = 0.12
	defaultArriveDist  = 0.01
)

// unitState is the interface each concrete traversal state implements.
type unitState interface {
	Enter(u *Unit)
	Advance(u *Unit, dt float64)
	Name() string
}

// singletons for each state to avoid allocating on every transition
var (
	stateIdle   unitState = &idleState{}
	stateMoving unitState = &movingState{}
)

type idleState struct{}

func (idleState) Name() string { return "idle" }
func (idleState) Enter(u *Unit) {
	u.path = nil
	u.cursor = 0
	u.stepElapsed = 0
}
func (idleState) Advance(u *Unit, dt float64) {}

type movingState struct{}

func (movingState) Name() string { return "moving" }
func (movingState) Enter(u *Unit) {
	u.cursor = 0
	u.beginStep()
}
func (movingState) Advance(u *Unit, dt float64) {
	wp := u.path[u.cursor]
	u.stepElapsed += dt
	t := common.Clamp(u.stepElapsed/u.stepSeconds, 0, 1)
	u.Pos = common.LerpVec(u.stepFrom, wp.Pos, t)

	if u.Pos.Distance(wp.Pos) >= u.arriveDist && t < 1 {
		return
	}

	// Snap exactly onto the waypoint before advancing the cursor.
	u.Pos = wp.Pos
	u.current = wp
	u.cursor++
	if u.cursor >= len(u.path) {
		u.setState(stateIdle)
		return
	}
	u.beginStep()
}

// Config tunes a unit's stepping pace.
type Config struct {
	// StepSeconds is the fixed duration of one cell-to-cell step.
	StepSeconds float64
	// ArriveDist is the remaining distance below which a step snaps onto
	// its waypoint.
	ArriveDist float64
	// RetainSearches records every path request on the pathfinder for
	// debug rendering.
	RetainSearches bool
}

// Unit walks a grid one computed path at a time: a per-agent state machine
// with states idle and moving, advanced once per tick. All pathfinding is
// synchronous; re-targeting is the only cancellation mechanism.
type Unit struct {
	grid *nav.Grid
	pf   *nav.Pathfinder

	Pos   common.Vec2
	Angle float64 // facing direction, radians

	state   unitState
	current *nav.Cell // last-reached cell
	target  *nav.Cell
	path    []*nav.Cell
	cursor  int

	stepFrom    common.Vec2
	stepElapsed float64

	stepSeconds float64
	arriveDist  float64
	retain      bool
}

// New creates a unit snapped onto the grid cell nearest to start.
func New(grid *nav.Grid, pf *nav.Pathfinder, start common.Vec2, cfg Config) (*Unit, error) {
	if grid == nil || pf == nil {
		return nil, fmt.Errorf("unit: nil grid or pathfinder")
	}
	cell, err := grid.Nearest(start)
	if err != nil {
		return nil, fmt.Errorf("unit: snap to grid: %w", err)
	}
	if cfg.StepSeconds <= 0 {
		cfg.StepSeconds = defaultStepSeconds
	}
	if cfg.ArriveDist <= 0 {
		cfg.ArriveDist = defaultArriveDist
	}
	u := &Unit{
		grid:        grid,
		pf:          pf,
		Pos:         cell.Pos,
		current:     cell,
		state:       stateIdle,
		stepSeconds: cfg.StepSeconds,
		arriveDist:  cfg.ArriveDist,
		retain:      cfg.RetainSearches,
	}
	u.state.Enter(u)
	return u, nil
}

func (u *Unit) setState(s unitState) {
	if u == nil || s == nil || u.state == s {
		return
	}
	u.state = s
	u.state.Enter(u)
}

func (u *Unit) beginStep() {
	u.stepFrom = u.Pos
	u.stepElapsed = 0
	dir := u.path[u.cursor].Pos.Sub(u.Pos)
	if dir.Length() > 0 {
		u.Angle = dir.Angle()
	}
}

// SetTarget requests a walk to the given cell. Assigning the unit's existing
// target is a no-op. Any in-flight path is discarded immediately and the new
// path starts from the last-reached cell; the unit's position is never
// rolled back. A failed or empty path leaves the unit idle where it is.
func (u *Unit) SetTarget(c *nav.Cell) {
	if u == nil || c == nil {
		return
	}
	if u.target.Same(c) {
		return
	}
	u.target = c
	u.path = nil
	u.cursor = 0

	path, err := u.pf.FindPath(u.current, c, u.retain)
	if err != nil || len(path) == 0 {
		// Unreachable, or already there.
		u.state = stateIdle
		u.state.Enter(u)
		return
	}
	u.path = path
	u.state = stateMoving
	u.state.Enter(u)
}

// Advance moves the unit by one tick of dt seconds. It yields after a single
// position increment; the surrounding frame loop supplies the next tick.
func (u *Unit) Advance(dt float64) {
	if u == nil || dt <= 0 {
		return
	}
	if u.state == nil {
		u.state = stateIdle
		u.state.Enter(u)
	}
	u.state.Advance(u, dt)
}

// Idle reports whether the unit has no path in flight.
func (u *Unit) Idle() bool { return u.state == stateIdle }

// StateName returns the current state's name, for debug overlays.
func (u *Unit) StateName() string {
	if u.state == nil {
		return "idle"
	}
	return u.state.Name()
}

// Current returns the unit's last-reached cell.
func (u *Unit) Current() *nav.Cell { return u.current }

// Target returns the currently assigned target cell, if any.
func (u *Unit) Target() *nav.Cell { return u.target }

// Remaining returns the unconsumed portion of the in-flight path, for debug
// rendering. Callers must not mutate it.
func (u *Unit) Remaining() []*nav.Cell {
	if u.state != stateMoving || u.cursor >= len(u.path) {
		return nil
	}
	return u.path[u.cursor:]
}
