package physics

import (
	"fmt"

	"github.com/jakecoffman/cp"

	"github.com/milk9111/gridnav/common"
)

// ShapeKind names the supported static obstacle shapes.
type ShapeKind string

const (
	KindBox    ShapeKind = "box"
	KindCircle ShapeKind = "circle"
)

// Obstacle describes one static obstacle in world units. Boxes are centered
// at (X, Y) with Width x Height; circles use Radius.
type Obstacle struct {
	Kind   ShapeKind
	X, Y   float64
	Width  float64
	Height float64
	Radius float64
}

// World wraps a chipmunk space holding only static obstacle shapes. It backs
// the grid builder's obstacle probe; nothing is ever stepped or moved.
type World struct {
	space *cp.Space
}

// NewWorld builds the static space from the obstacle list. An unknown shape
// kind or non-positive dimensions are configuration errors.
func NewWorld(obstacles []Obstacle) (*World, error) {
	space := cp.NewSpace()
	body := space.StaticBody

	for i, o := range obstacles {
		switch o.Kind {
		case KindBox:
			if o.Width <= 0 || o.Height <= 0 {
				return nil, fmt.Errorf("physics: obstacle %d: invalid box %vx%v", i, o.Width, o.Height)
			}
			bb := cp.BB{
				L: o.X - o.Width/2,
				B: o.Y - o.Height/2,
				R: o.X + o.Width/2,
				T: o.Y + o.Height/2,
			}
			space.AddShape(cp.NewBox2(body, bb, 0))
		case KindCircle:
			if o.Radius <= 0 {
				return nil, fmt.Errorf("physics: obstacle %d: invalid circle radius %v", i, o.Radius)
			}
			space.AddShape(cp.NewCircle(body, o.Radius, cp.Vector{X: o.X, Y: o.Y}))
		default:
			return nil, fmt.Errorf("physics: obstacle %d: unknown kind %q", i, o.Kind)
		}
	}

	return &World{space: space}, nil
}

// Overlaps reports whether any obstacle shape intersects the circle at
// center with the given radius. Implements nav.ObstacleProbe.
func (w *World) Overlaps(center common.Vec2, radius float64) bool {
	if w == nil || w.space == nil {
		return false
	}
	info := w.space.PointQueryNearest(cp.Vector{X: center.X, Y: center.Y}, radius, cp.SHAPE_FILTER_ALL)
	return info != nil && info.Shape != nil
}
