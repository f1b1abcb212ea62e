package unit

import (
	"fmt"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"

	"github.com/milk9111/gridnav/common"
)

// ScriptPolicy drives a unit's target from a tengo script. Each decision
// tick the script sees the unit and quarry positions and decides whether and
// where to move:
//
//	self_x, self_y     — the unit's world position
//	quarry_x, quarry_y — the tracked position (the player, usually)
//	tick               — the current tick counter
//
// The script reports back through three globals: set want_move to true and
// goal_x/goal_y to the chosen world point.
type ScriptPolicy struct {
	compiled *tengo.Compiled
	// Quarry yields the tracked world position each decision tick.
	Quarry func() common.Vec2
	// Every is the decision cadence in ticks; values below 1 mean every tick.
	Every int
}

var scriptGlobals = []string{"self_x", "self_y", "quarry_x", "quarry_y", "tick", "want_move", "goal_x", "goal_y"}

// NewScriptPolicy compiles the policy script once up front. A script that
// does not compile is a configuration error.
func NewScriptPolicy(src []byte, quarry func() common.Vec2, every int) (*ScriptPolicy, error) {
	script := tengo.NewScript(src)
	script.SetImports(stdlib.GetModuleMap("math", "fmt"))
	for _, name := range scriptGlobals {
		if err := script.Add(name, 0); err != nil {
			return nil, fmt.Errorf("unit: script global %s: %w", name, err)
		}
	}
	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("unit: compile policy script: %w", err)
	}
	return &ScriptPolicy{compiled: compiled, Quarry: quarry, Every: every}, nil
}

func (s *ScriptPolicy) Update(u *Unit, tick int) {
	if s == nil || s.compiled == nil || u == nil {
		return
	}
	if s.Every > 1 && tick%s.Every != 0 {
		return
	}

	quarry := common.Vec2{}
	if s.Quarry != nil {
		quarry = s.Quarry()
	}

	_ = s.compiled.Set("self_x", u.Pos.X)
	_ = s.compiled.Set("self_y", u.Pos.Y)
	_ = s.compiled.Set("quarry_x", quarry.X)
	_ = s.compiled.Set("quarry_y", quarry.Y)
	_ = s.compiled.Set("tick", tick)
	_ = s.compiled.Set("want_move", false)

	if err := s.compiled.Run(); err != nil {
		fmt.Printf("unit: policy script error: %v\n", err)
		return
	}

	if !s.compiled.Get("want_move").Bool() {
		return
	}
	goal := common.Vec2{
		X: s.compiled.Get("goal_x").Float(),
		Y: s.compiled.Get("goal_y").Float(),
	}
	AssignNearest(u, goal)
}
