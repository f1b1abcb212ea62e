package nav

import (
	"errors"
	"math"
	"testing"
)

// testGrid builds a 5x5 grid with 0.2 cell radius and the given blocked
// coordinates, the layout used by most search tests.
func testGrid(t *testing.T, blocked ...[2]int) *Grid {
	t.Helper()
	g, err := NewGrid(2.0, 2.0, 0.2, blockCoords(2.0, 2.0, 0.2, blocked...))
	if err != nil {
		t.Fatalf("NewGrid failed: %v", err)
	}
	return g
}

func cellAt(t *testing.T, g *Grid, x, y int) *Cell {
	t.Helper()
	c, ok := g.At(x, y)
	if !ok {
		t.Fatalf("no cell at (%d,%d)", x, y)
	}
	return c
}

// pathLength sums Euclidean step distances from src through every path cell.
func pathLength(src *Cell, path []*Cell) float64 {
	total := 0.0
	prev := src
	for _, c := range path {
		total += prev.Pos.Distance(c.Pos)
		prev = c
	}
	return total
}

func assertValidPath(t *testing.T, src, dst *Cell, path []*Cell) {
	t.Helper()
	if len(path) == 0 {
		t.Fatalf("expected a non-empty path")
	}
	if !path[len(path)-1].Same(dst) {
		t.Fatalf("path must end at the destination")
	}
	prev := src
	for i, c := range path {
		if c.Same(src) {
			t.Fatalf("path element %d is the source; the source is excluded", i)
		}
		if !c.Walkable {
			t.Fatalf("path element %d at (%d,%d) is not walkable", i, c.GridX, c.GridY)
		}
		dx := c.GridX - prev.GridX
		dy := c.GridY - prev.GridY
		if dx < -1 || dx > 1 || dy < -1 || dy > 1 || (dx == 0 && dy == 0) {
			t.Fatalf("path elements %d->%d not grid-adjacent: (%d,%d)->(%d,%d)", i-1, i, prev.GridX, prev.GridY, c.GridX, c.GridY)
		}
		prev = c
	}
}

func TestFindPathDiagonal(t *testing.T) {
	g := testGrid(t)
	pf := NewPathfinder(g)

	src := cellAt(t, g, 0, 0)
	dst := cellAt(t, g, 4, 4)
	path, err := pf.FindPath(src, dst, false)
	if err != nil {
		t.Fatalf("FindPath failed: %v", err)
	}
	assertValidPath(t, src, dst, path)
	if len(path) != 4 {
		t.Fatalf("expected 4 diagonal steps, got %d", len(path))
	}
	want := 4 * 0.4 * math.Sqrt2
	if got := pathLength(src, path); math.Abs(got-want) > 1e-9 {
		t.Fatalf("path length %v, expected %v", got, want)
	}
}

func TestFindPathDetoursAroundBlockedCell(t *testing.T) {
	g := testGrid(t, [2]int{2, 2})
	pf := NewPathfinder(g)

	src := cellAt(t, g, 0, 2)
	dst := cellAt(t, g, 4, 2)
	path, err := pf.FindPath(src, dst, false)
	if err != nil {
		t.Fatalf("FindPath failed: %v", err)
	}
	assertValidPath(t, src, dst, path)
	for i, c := range path {
		if c.GridX == 2 && c.GridY == 2 {
			t.Fatalf("path element %d crosses the blocked cell", i)
		}
	}
	// Two straight steps plus two diagonals around the block is optimal.
	want := 2*0.4 + 2*0.4*math.Sqrt2
	if got := pathLength(src, path); math.Abs(got-want) > 1e-9 {
		t.Fatalf("detour length %v, expected %v", got, want)
	}
}

func TestFindPathUnreachable(t *testing.T) {
	g := testGrid(t, [2]int{2, 0}, [2]int{2, 1}, [2]int{2, 2}, [2]int{2, 3}, [2]int{2, 4})
	pf := NewPathfinder(g)

	_, err := pf.FindPath(cellAt(t, g, 0, 2), cellAt(t, g, 4, 2), false)
	if !errors.Is(err, ErrUnreachable) {
		t.Fatalf("expected ErrUnreachable, got %v", err)
	}
}

func TestFindPathSameCell(t *testing.T) {
	g := testGrid(t)
	pf := NewPathfinder(g)

	src := cellAt(t, g, 3, 1)
	path, err := pf.FindPath(src, src, false)
	if err != nil {
		t.Fatalf("expected already-there sentinel, got error %v", err)
	}
	if path != nil {
		t.Fatalf("expected nil path for src == dst, got %d elements", len(path))
	}
}

func TestFindPathEmptyGrid(t *testing.T) {
	pf := NewPathfinder(&Grid{})
	if _, err := pf.FindPath(&Cell{}, &Cell{}, false); !errors.Is(err, ErrEmptyGrid) {
		t.Fatalf("expected ErrEmptyGrid, got %v", err)
	}
}

func TestFindPathRepeatIsIdentical(t *testing.T) {
	g := testGrid(t, [2]int{1, 1}, [2]int{2, 2}, [2]int{3, 1})
	pf := NewPathfinder(g)

	src := cellAt(t, g, 0, 0)
	dst := cellAt(t, g, 4, 3)
	first, err := pf.FindPath(src, dst, false)
	if err != nil {
		t.Fatalf("first search failed: %v", err)
	}
	second, err := pf.FindPath(src, dst, false)
	if err != nil {
		t.Fatalf("second search failed: %v", err)
	}
	if len(first) != len(second) {
		t.Fatalf("repeat search length %d, expected %d", len(second), len(first))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("repeat search diverges at element %d: (%d,%d) vs (%d,%d)",
				i, second[i].GridX, second[i].GridY, first[i].GridX, first[i].GridY)
		}
	}
}

func TestFindPathProperties(t *testing.T) {
	g := testGrid(t, [2]int{1, 3}, [2]int{2, 1}, [2]int{3, 3})
	pf := NewPathfinder(g)

	pairs := []struct {
		name           string
		sx, sy, dx, dy int
	}{
		{"corner_to_corner", 0, 0, 4, 4},
		{"bottom_to_top", 0, 4, 4, 0},
		{"short_hop", 1, 1, 3, 2},
		{"around_blocks", 0, 3, 4, 3},
	}

	for _, p := range pairs {
		t.Run(p.name, func(t *testing.T) {
			src := cellAt(t, g, p.sx, p.sy)
			dst := cellAt(t, g, p.dx, p.dy)
			path, err := pf.FindPath(src, dst, false)
			if err != nil {
				t.Fatalf("FindPath failed: %v", err)
			}
			assertValidPath(t, src, dst, path)
		})
	}
}

func TestFindPathRetainsSearch(t *testing.T) {
	g := testGrid(t)
	pf := NewPathfinder(g)

	if _, ok := pf.LastSearch(); ok {
		t.Fatalf("no search should be retained before any run")
	}

	src := cellAt(t, g, 0, 0)
	dst := cellAt(t, g, 2, 3)
	path, err := pf.FindPath(src, dst, true)
	if err != nil {
		t.Fatalf("FindPath failed: %v", err)
	}

	s, ok := pf.LastSearch()
	if !ok {
		t.Fatalf("expected a retained search")
	}
	if s.Source != src || s.Dest != dst {
		t.Fatalf("retained endpoints do not match the request")
	}
	if len(s.Path) != len(path)+1 {
		t.Fatalf("retained path length %d, expected %d", len(s.Path), len(path)+1)
	}
	if s.Path[0] != src {
		t.Fatalf("retained path must start with the source")
	}
	for i, c := range path {
		if s.Path[i+1] != c {
			t.Fatalf("retained path diverges at element %d", i+1)
		}
	}
}
