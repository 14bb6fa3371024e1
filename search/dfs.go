package search

import (
	"context"
	"sort"
)

// directionPriority fixes the DFS exploration order among equal-cost
// neighbors: east before south before west before north.
var directionPriority = map[Coord]int{
	{Row: 0, Col: 1}:  0, // east
	{Row: 1, Col: 0}:  1, // south
	{Row: 0, Col: -1}: 2, // west
	{Row: -1, Col: 0}: 3, // north
}

// DFSAgent is a depth-first search with backtracking. The in-progress path is
// an explicit stack; every pushed cell is marked visited permanently, so
// backtracking past a cell never re-opens it. That makes DFS the one agent
// with a guaranteed finite failure path: the visited set can only grow, and
// the grid is finite.
//
// Neighbor selection is deterministic: unvisited neighbors sorted by
// (tile cost, direction priority), lowest first.
type DFSAgent struct{}

func (a *DFSAgent) Name() string { return "DFS" }

// FindPath implements Agent.
func (a *DFSAgent) FindPath(ctx context.Context, g Grid, start, goal Coord) (Path, error) {
	if err := checkEndpoints(g, start, goal); err != nil {
		return nil, err
	}

	nodes := Path{start}
	visited := map[Coord]bool{start: true}

	for len(nodes) > 0 && nodes.Goal() != goal {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		cur := nodes.Goal()
		var candidates []Tile
		for _, t := range g.Neighbors4(cur.Row, cur.Col) {
			if !visited[t.Pos] {
				candidates = append(candidates, t)
			}
		}

		if len(candidates) == 0 {
			nodes = nodes[:len(nodes)-1] // backtrack
			continue
		}

		sort.Slice(candidates, func(i, j int) bool {
			if candidates[i].Cost != candidates[j].Cost {
				return candidates[i].Cost < candidates[j].Cost
			}
			di := directionPriority[Coord{Row: candidates[i].Pos.Row - cur.Row, Col: candidates[i].Pos.Col - cur.Col}]
			dj := directionPriority[Coord{Row: candidates[j].Pos.Row - cur.Row, Col: candidates[j].Pos.Col - cur.Col}]
			return di < dj
		})

		best := candidates[0]
		nodes = append(nodes, best.Pos)
		visited[best.Pos] = true
	}

	if len(nodes) == 0 {
		return Path{}, nil
	}
	return nodes, nil
}
