package scene

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Spec is a full scene description: the world extent the grid discretizes,
// the static obstacles, and the units that walk it. Supplied once at
// startup; a bad spec is a fatal configuration error.
type Spec struct {
	Name          string         `yaml:"name"`
	World         WorldSpec      `yaml:"world"`
	PixelsPerUnit float64        `yaml:"pixels_per_unit"`
	Step          StepSpec       `yaml:"step"`
	Obstacles     []ObstacleSpec `yaml:"obstacles"`
	Player        SpawnSpec      `yaml:"player"`
	Seekers       []SeekerSpec   `yaml:"seekers"`
}

// WorldSpec sizes the walkability grid in world units.
type WorldSpec struct {
	Width      float64 `yaml:"width"`
	Height     float64 `yaml:"height"`
	CellRadius float64 `yaml:"cell_radius"`
}

// StepSpec tunes path traversal pace.
type StepSpec struct {
	Seconds    float64 `yaml:"seconds"`
	ArriveDist float64 `yaml:"arrive_dist"`
}

// ObstacleSpec is one static obstacle. Kind is "box" (width/height) or
// "circle" (radius), centered at (x, y).
type ObstacleSpec struct {
	Kind   string  `yaml:"kind"`
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Radius float64 `yaml:"radius"`
}

type SpawnSpec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// SeekerSpec spawns a non-player unit. Script names an embedded or on-disk
// tengo policy script; empty means the built-in follow policy. Every is the
// re-target cadence in ticks.
type SeekerSpec struct {
	Spawn  SpawnSpec `yaml:"spawn"`
	Script string    `yaml:"script"`
	Every  int       `yaml:"every"`
}

// Load reads and validates the named scene spec, preferring an on-disk copy
// over the embedded one so edits can hot-reload.
func Load(name string) (*Spec, error) {
	data, err := readSpec(name)
	if err != nil {
		return nil, fmt.Errorf("scene: load %s: %w", name, err)
	}
	var spec Spec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("scene: unmarshal %s: %w", name, err)
	}
	if err := spec.Validate(); err != nil {
		return nil, fmt.Errorf("scene: %s: %w", name, err)
	}
	return &spec, nil
}

// Validate rejects degenerate worlds up front, before any grid is built.
func (s *Spec) Validate() error {
	if s.World.Width <= 0 || s.World.Height <= 0 {
		return fmt.Errorf("invalid world extent %vx%v", s.World.Width, s.World.Height)
	}
	if s.World.CellRadius <= 0 {
		return fmt.Errorf("invalid cell radius %v", s.World.CellRadius)
	}
	if s.World.Width < 2*s.World.CellRadius && s.World.Height < 2*s.World.CellRadius {
		return fmt.Errorf("world extent %vx%v smaller than one cell", s.World.Width, s.World.Height)
	}
	if s.PixelsPerUnit < 0 {
		return fmt.Errorf("invalid pixels_per_unit %v", s.PixelsPerUnit)
	}
	if s.Step.Seconds < 0 || s.Step.ArriveDist < 0 {
		return fmt.Errorf("invalid step tuning %+v", s.Step)
	}
	for i, o := range s.Obstacles {
		switch o.Kind {
		case "box":
			if o.Width <= 0 || o.Height <= 0 {
				return fmt.Errorf("obstacle %d: invalid box %vx%v", i, o.Width, o.Height)
			}
		case "circle":
			if o.Radius <= 0 {
				return fmt.Errorf("obstacle %d: invalid circle radius %v", i, o.Radius)
			}
		default:
			return fmt.Errorf("obstacle %d: unknown kind %q", i, o.Kind)
		}
	}
	return nil
}
