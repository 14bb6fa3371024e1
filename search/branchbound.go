package search

import (
	"container/heap"
	"context"
)

// BranchAndBoundAgent explores candidate partial paths cheapest-first with no
// heuristic, which on a grid degenerates to uniform-cost search. Candidates
// are self-avoiding (a path never revisits its own cells) but there is no
// global visited set: the same cell may sit on the frontier under several
// candidates with different costs. Optimality comes purely from the pop
// order — costs only grow as paths extend, so the first candidate popped at
// the goal is the cheapest route to it.
type BranchAndBoundAgent struct{}

func (a *BranchAndBoundAgent) Name() string { return "BranchAndBound" }

// FindPath implements Agent. The returned path minimizes total tile cost
// (start tile included) among all simple routes, or is empty when the
// frontier drains without reaching the goal.
func (a *BranchAndBoundAgent) FindPath(ctx context.Context, g Grid, start, goal Coord) (Path, error) {
	if err := checkEndpoints(g, start, goal); err != nil {
		return nil, err
	}

	pool := frontier{{path: Path{start}, g: g.Get(start.Row, start.Col).Cost}}
	heap.Init(&pool)

	for pool.Len() > 0 {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		best := heap.Pop(&pool).(candidate)
		cur := best.path.Goal()
		if cur == goal {
			return best.path, nil
		}

		for _, neighbor := range g.Neighbors4(cur.Row, cur.Col) {
			if best.path.contains(neighbor.Pos) {
				continue
			}
			heap.Push(&pool, candidate{
				path: best.path.extend(neighbor.Pos),
				g:    best.g + neighbor.Cost,
			})
		}
	}
	return Path{}, nil
}
