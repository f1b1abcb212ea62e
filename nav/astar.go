package nav

import (
	"errors"
	"sort"
)

// ErrUnreachable is returned when the open set runs dry before the
// destination is reached: no walkable 8-connected route exists.
var ErrUnreachable = errors.New("nav: destination unreachable")

// neighborOffsets are the 8 grid-adjacent directions, orthogonal first.
var neighborOffsets = [8][2]int{
	{1, 0}, {-1, 0}, {0, 1}, {0, -1},
	{1, 1}, {1, -1}, {-1, 1}, {-1, -1},
}

// Search is the retained record of one pathfinding run, kept only when the
// caller asked for it. Path includes the source as its first element.
type Search struct {
	Source *Cell
	Dest   *Cell
	Path   []*Cell
}

// Pathfinder runs A* searches over a single grid. Scratch cost fields live
// on the shared cells, so at most one search may run at a time per grid;
// the single-threaded tick loop guarantees that, no lock does.
type Pathfinder struct {
	grid *Grid
	last *Search
}

func NewPathfinder(g *Grid) *Pathfinder {
	return &Pathfinder{grid: g}
}

// LastSearch returns the most recent retained search, or false when no
// search has been retained yet. Read-only, for debug rendering.
func (pf *Pathfinder) LastSearch() (Search, bool) {
	if pf == nil || pf.last == nil {
		return Search{}, false
	}
	return *pf.last, true
}

// FindPath returns the walkable cells from the step after src up to and
// including dst. A nil path with a nil error means src and dst are the same
// cell ("already there"); ErrUnreachable means no route exists. When retain
// is set the search is recorded for LastSearch.
//
// Costs use true Euclidean distances, so diagonal steps cost more than
// orthogonal ones and the heuristic stays admissible. A cell's cost and
// parent are overwritten every time it is encountered while still open;
// there is deliberately no cheaper-route relaxation, matching the tie-break
// behavior this engine has always had.
func (pf *Pathfinder) FindPath(src, dst *Cell, retain bool) ([]*Cell, error) {
	if pf == nil || pf.grid == nil || len(pf.grid.cells) == 0 {
		return nil, ErrEmptyGrid
	}
	if src == nil || dst == nil {
		return nil, errors.New("nav: nil path endpoint")
	}
	if src.Same(dst) {
		return nil, nil
	}

	pf.grid.resetSearch()

	open := make([]*Cell, 0, 64)
	open = append(open, src)
	inOpen := map[*Cell]bool{src: true}
	closed := make(map[*Cell]bool)

	current := src
	for !current.Same(dst) {
		for _, off := range neighborOffsets {
			cand, ok := pf.grid.At(current.GridX+off[0], current.GridY+off[1])
			if !ok || !cand.Walkable || closed[cand] {
				continue
			}
			cand.g = current.g + current.Pos.Distance(cand.Pos)
			cand.h = cand.Pos.Distance(dst.Pos)
			cand.f = cand.g + cand.h
			cand.parent = current
			if !inOpen[cand] {
				open = append(open, cand)
				inOpen[cand] = true
			}
		}

		// current is always the front of open.
		open = open[1:]
		delete(inOpen, current)
		closed[current] = true

		if len(open) == 0 {
			return nil, ErrUnreachable
		}
		sort.SliceStable(open, func(i, j int) bool {
			if open[i].f != open[j].f {
				return open[i].f < open[j].f
			}
			return open[i].h < open[j].h
		})
		current = open[0]
	}

	path := reconstruct(dst)
	if retain {
		full := make([]*Cell, 0, len(path)+1)
		full = append(full, src)
		full = append(full, path...)
		pf.last = &Search{Source: src, Dest: dst, Path: full}
	}
	return path, nil
}

// reconstruct walks parent references from dst back toward the source and
// reverses the result. The parentless cell at the end of the chain is the
// source and is excluded. Depth is bounded by the path length; parents are
// only ever assigned to cells outside the closed set, so the chain cannot
// cycle.
func reconstruct(dst *Cell) []*Cell {
	path := make([]*Cell, 0, 32)
	for c := dst; c.parent != nil; c = c.parent {
		path = append(path, c)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
