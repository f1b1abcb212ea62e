package main

import (
	"fmt"

	"github.com/milk9111/gridnav/common"
	"github.com/milk9111/gridnav/nav"
	"github.com/milk9111/gridnav/physics"
	"github.com/milk9111/gridnav/scene"
	"github.com/milk9111/gridnav/unit"
)

// World is one fully assembled scene: the static obstacle space, the grid
// built over it, and the units walking it. Rebuilt wholesale when the scene
// file changes; the grid itself is never mutated after construction.
type World struct {
	Spec       *scene.Spec
	Obstacles  *physics.World
	Grid       *nav.Grid
	Pathfinder *nav.Pathfinder
	Player     *unit.Unit
	Seekers    []*unit.Unit

	policies []unit.Policy
	tick     int
}

// BuildWorld assembles a world from a validated scene spec. Every failure
// here is a configuration error; the caller decides whether it is fatal
// (startup) or just logged (hot reload).
func BuildWorld(spec *scene.Spec, retainSearches bool) (*World, error) {
	obstacles := make([]physics.Obstacle, 0, len(spec.Obstacles))
	for _, o := range spec.Obstacles {
		obstacles = append(obstacles, physics.Obstacle{
			Kind:   physics.ShapeKind(o.Kind),
			X:      o.X,
			Y:      o.Y,
			Width:  o.Width,
			Height: o.Height,
			Radius: o.Radius,
		})
	}
	space, err := physics.NewWorld(obstacles)
	if err != nil {
		return nil, err
	}

	grid, err := nav.NewGrid(spec.World.Width, spec.World.Height, spec.World.CellRadius, space)
	if err != nil {
		return nil, err
	}
	pf := nav.NewPathfinder(grid)

	cfg := unit.Config{
		StepSeconds:    spec.Step.Seconds,
		ArriveDist:     spec.Step.ArriveDist,
		RetainSearches: retainSearches,
	}

	player, err := unit.New(grid, pf, common.Vec2{X: spec.Player.X, Y: spec.Player.Y}, cfg)
	if err != nil {
		return nil, fmt.Errorf("spawn player: %w", err)
	}

	w := &World{
		Spec:       spec,
		Obstacles:  space,
		Grid:       grid,
		Pathfinder: pf,
		Player:     player,
	}

	for i, s := range spec.Seekers {
		seeker, err := unit.New(grid, pf, common.Vec2{X: s.Spawn.X, Y: s.Spawn.Y}, cfg)
		if err != nil {
			return nil, fmt.Errorf("spawn seeker %d: %w", i, err)
		}
		policy, err := seekerPolicy(s, player)
		if err != nil {
			return nil, fmt.Errorf("seeker %d policy: %w", i, err)
		}
		w.Seekers = append(w.Seekers, seeker)
		w.policies = append(w.policies, policy)
	}

	return w, nil
}

func seekerPolicy(s scene.SeekerSpec, quarry *unit.Unit) (unit.Policy, error) {
	track := func() common.Vec2 { return quarry.Pos }
	if s.Script == "" {
		return &unit.FollowPolicy{Quarry: track, Every: s.Every}, nil
	}
	src, err := scene.LoadScript(s.Script)
	if err != nil {
		return nil, err
	}
	return unit.NewScriptPolicy(src, track, s.Every)
}

// Update runs one tick: seeker policies pick targets, then every unit
// advances by dt seconds.
func (w *World) Update(dt float64) {
	if w == nil {
		return
	}
	w.tick++
	for i, s := range w.Seekers {
		w.policies[i].Update(s, w.tick)
	}
	w.Player.Advance(dt)
	for _, s := range w.Seekers {
		s.Advance(dt)
	}
}
