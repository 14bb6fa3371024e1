package search_test

import (
	"math"
	"testing"

	"github.com/gridroute/gridroute/grid"
	"github.com/gridroute/gridroute/search"
)

// mustGrid builds a grid from a cost matrix or fails the test.
func mustGrid(t *testing.T, costs [][]int) *grid.Grid {
	t.Helper()
	g, err := grid.New(costs)
	if err != nil {
		t.Fatalf("building grid: %v", err)
	}
	return g
}

// assertValidRoute checks the shared path properties: first cell is start,
// last is goal, consecutive cells are 4-adjacent, no cell repeats.
func assertValidRoute(t *testing.T, g *grid.Grid, p search.Path, start, goal search.Coord) {
	t.Helper()
	if p.IsEmpty() {
		t.Fatalf("expected a route, got empty path")
	}
	if p.Start() != start {
		t.Errorf("path starts at %v, want %v", p.Start(), start)
	}
	if p.Goal() != goal {
		t.Errorf("path ends at %v, want %v", p.Goal(), goal)
	}
	seen := map[search.Coord]bool{}
	for i, c := range p {
		if seen[c] {
			t.Errorf("path revisits %v", c)
		}
		seen[c] = true
		if i > 0 {
			prev := p[i-1]
			if g.Manhattan(prev, c) != 1 {
				t.Errorf("cells %v and %v are not 4-adjacent", prev, c)
			}
		}
	}
}

// minSimplePathCost brute-forces every simple route from start to goal and
// returns the minimum total tile cost (start tile included). Exponential, so
// only for the small grids used in tests.
func minSimplePathCost(g *grid.Grid, start, goal search.Coord) (int, bool) {
	best := math.MaxInt
	visited := map[search.Coord]bool{start: true}

	var walk func(cur search.Coord, cost int)
	walk = func(cur search.Coord, cost int) {
		if cur == goal {
			if cost < best {
				best = cost
			}
			return
		}
		for _, tile := range g.Neighbors4(cur.Row, cur.Col) {
			if visited[tile.Pos] {
				continue
			}
			visited[tile.Pos] = true
			walk(tile.Pos, cost+tile.Cost)
			delete(visited, tile.Pos)
		}
	}
	walk(start, g.Get(start.Row, start.Col).Cost)
	return best, best != math.MaxInt
}
