package nav

import (
	"errors"
	"fmt"
	"math"

	"github.com/milk9111/gridnav/common"
)

// ErrEmptyGrid is returned by queries against a grid with no cells.
var ErrEmptyGrid = errors.New("nav: empty grid")

// ObstacleProbe reports whether an obstacle overlaps the circle with the
// given center and radius. It is consulted only during grid construction.
type ObstacleProbe interface {
	Overlaps(center common.Vec2, radius float64) bool
}

// ProbeFunc adapts a plain function to the ObstacleProbe interface.
type ProbeFunc func(center common.Vec2, radius float64) bool

func (f ProbeFunc) Overlaps(center common.Vec2, radius float64) bool {
	return f(center, radius)
}

// Cell is one walkability grid unit. Position, coordinate and walkability
// are fixed at construction; g/h/f and parent are scratch state owned by
// the search currently running against the grid.
type Cell struct {
	Pos      common.Vec2
	GridX    int
	GridY    int
	Walkable bool

	g      float64
	h      float64
	f      float64
	parent *Cell
}

// Same reports whether c and o stand for the same cell. Identity is world
// position equality, not pointer equality, so a cached cell and a freshly
// queried one compare equal.
func (c *Cell) Same(o *Cell) bool {
	if c == nil || o == nil {
		return c == o
	}
	return c.Pos == o.Pos
}

func (c *Cell) resetScratch() {
	c.g = 0
	c.h = 0
	c.f = 0
	c.parent = nil
}

// Grid is the complete 2D cell array covering a world extent. Topology is
// immutable after NewGrid returns; only cell scratch fields mutate, and only
// under the single active search the scheduling model allows.
type Grid struct {
	cells  []*Cell // row-major, index = y*width + x
	width  int
	height int
	radius float64
}

// NewGrid discretizes a worldWidth x worldHeight area (centered at the
// origin, y up) into cells of the given radius and probes each cell center
// for obstacles with a radius of one cell diameter. Invalid dimensions or a
// missing probe are configuration errors; callers are expected to treat them
// as fatal.
func NewGrid(worldWidth, worldHeight, radius float64, probe ObstacleProbe) (*Grid, error) {
	if probe == nil {
		return nil, errors.New("nav: nil obstacle probe")
	}
	if radius <= 0 {
		return nil, fmt.Errorf("nav: invalid cell radius %v", radius)
	}
	if worldWidth <= 0 || worldHeight <= 0 {
		return nil, fmt.Errorf("nav: invalid world extent %vx%v", worldWidth, worldHeight)
	}

	diameter := radius * 2
	w := int(math.Round(worldWidth / diameter))
	h := int(math.Round(worldHeight / diameter))
	if w < 1 || h < 1 {
		return nil, fmt.Errorf("nav: degenerate grid %dx%d for extent %vx%v radius %v", w, h, worldWidth, worldHeight, radius)
	}

	g := &Grid{
		cells:  make([]*Cell, 0, w*h),
		width:  w,
		height: h,
		radius: radius,
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			pos := common.Vec2{
				X: -worldWidth/2 + radius + diameter*float64(x),
				Y: worldHeight/2 - radius - diameter*float64(y),
			}
			g.cells = append(g.cells, &Cell{
				Pos:      pos,
				GridX:    x,
				GridY:    y,
				Walkable: !probe.Overlaps(pos, diameter),
			})
		}
	}
	return g, nil
}

// Size returns the grid dimensions in cells.
func (g *Grid) Size() (int, int) {
	if g == nil {
		return 0, 0
	}
	return g.width, g.height
}

// Radius returns the cell radius the grid was built with.
func (g *Grid) Radius() float64 {
	if g == nil {
		return 0
	}
	return g.radius
}

// At returns the cell at grid coordinate (x, y), or false when the
// coordinate is out of range.
func (g *Grid) At(x, y int) (*Cell, bool) {
	if g == nil || x < 0 || y < 0 || x >= g.width || y >= g.height {
		return nil, false
	}
	return g.cells[y*g.width+x], true
}

// Cells returns the backing cell slice in row-major order. Read-only; the
// debug renderer iterates it to draw walkability.
func (g *Grid) Cells() []*Cell {
	if g == nil {
		return nil
	}
	return g.cells
}

// Nearest returns the cell whose world position is closest to p, scanning
// the whole grid. Ties go to the first cell in iteration order. O(cells),
// which is fine: it runs on target changes, not every tick.
func (g *Grid) Nearest(p common.Vec2) (*Cell, error) {
	if g == nil || len(g.cells) == 0 {
		return nil, ErrEmptyGrid
	}
	best := g.cells[0]
	bestDist := best.Pos.Distance(p)
	for _, c := range g.cells[1:] {
		if d := c.Pos.Distance(p); d < bestDist {
			best = c
			bestDist = d
		}
	}
	return best, nil
}

// resetSearch clears scratch state on every cell so a fresh search never
// reads stale costs or parents from the previous one.
func (g *Grid) resetSearch() {
	for _, c := range g.cells {
		c.resetScratch()
	}
}
