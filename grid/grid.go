// Package grid provides the weighted 2-D grid the search agents run on:
// per-cell entry costs, blocked cells, 4-directional neighbor enumeration,
// and the Manhattan metric.
package grid

import (
	"fmt"

	"github.com/gridroute/gridroute/search"
)

// Blocked marks an impassable cell in a cost matrix.
const Blocked = -1

// Grid is a rectangular cost matrix. A cell's value is the cost of stepping
// onto it; Blocked cells never appear as neighbors. Grids are immutable after
// construction and safe for concurrent reads.
type Grid struct {
	costs [][]int
	rows  int
	cols  int
}

// New builds a grid from a cost matrix. Rows must be non-empty, rectangular,
// and contain only non-negative costs or Blocked.
func New(costs [][]int) (*Grid, error) {
	if len(costs) == 0 || len(costs[0]) == 0 {
		return nil, fmt.Errorf("grid must have at least one row and one column")
	}
	cols := len(costs[0])
	for r, row := range costs {
		if len(row) != cols {
			return nil, fmt.Errorf("row %d has %d columns, want %d", r, len(row), cols)
		}
		for c, cost := range row {
			if cost < 0 && cost != Blocked {
				return nil, fmt.Errorf("cell (%d,%d) has negative cost %d", r, c, cost)
			}
		}
	}
	return &Grid{costs: costs, rows: len(costs), cols: cols}, nil
}

// Uniform builds a rows×cols grid where every cell costs cost.
func Uniform(rows, cols, cost int) (*Grid, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("grid dimensions must be positive, got %dx%d", rows, cols)
	}
	if cost < 0 {
		return nil, fmt.Errorf("uniform cost must be non-negative, got %d", cost)
	}
	costs := make([][]int, rows)
	for r := range costs {
		costs[r] = make([]int, cols)
		for c := range costs[r] {
			costs[r][c] = cost
		}
	}
	return &Grid{costs: costs, rows: rows, cols: cols}, nil
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

// Walkable implements search.Grid.
func (g *Grid) Walkable(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.cols && g.costs[row][col] != Blocked
}

// Get implements search.Grid. Callers must check Walkable first; Get panics
// on out-of-bounds coordinates like any slice index.
func (g *Grid) Get(row, col int) search.Tile {
	return search.Tile{Pos: search.Coord{Row: row, Col: col}, Cost: g.costs[row][col]}
}

// neighborOffsets in east, south, west, north order.
var neighborOffsets = [4]search.Coord{
	{Row: 0, Col: 1},
	{Row: 1, Col: 0},
	{Row: 0, Col: -1},
	{Row: -1, Col: 0},
}

// Neighbors4 implements search.Grid.
func (g *Grid) Neighbors4(row, col int) []search.Tile {
	tiles := make([]search.Tile, 0, 4)
	for _, d := range neighborOffsets {
		r, c := row+d.Row, col+d.Col
		if g.Walkable(r, c) {
			tiles = append(tiles, g.Get(r, c))
		}
	}
	return tiles
}

// Manhattan implements search.Grid.
func (g *Grid) Manhattan(a, b search.Coord) int {
	return abs(a.Row-b.Row) + abs(a.Col-b.Col)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
