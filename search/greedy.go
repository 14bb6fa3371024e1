package search

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"
)

// ErrStepBudget is returned by the Example agent when MaxSteps is set and the
// walk exceeds it without reaching the goal.
var ErrStepBudget = errors.New("step budget exceeded")

// ExampleAgent walks greedily toward the goal: every step moves to whichever
// neighbor is closest to the goal by Manhattan distance, ties broken uniformly
// at random. It never backtracks and keeps no memory of visited cells, so on
// an unreachable goal (or an oscillating tie plateau) the walk does not
// terminate on its own. That behavior is inherent to the algorithm; callers
// bound it through the context or by setting MaxSteps.
type ExampleAgent struct {
	// MaxSteps caps the number of moves before FindPath gives up with
	// ErrStepBudget. 0 means unlimited.
	MaxSteps int

	rng *rand.Rand
}

// NewExampleAgent returns an Example agent with an unlimited step budget and
// a time-seeded tie-break source.
func NewExampleAgent() *ExampleAgent {
	return &ExampleAgent{rng: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

// NewExampleAgentSeeded returns an Example agent whose tie-breaks are
// reproducible from seed. Used by tests and the --seed CLI flag.
func NewExampleAgentSeeded(seed int64) *ExampleAgent {
	return &ExampleAgent{rng: rand.New(rand.NewSource(seed))}
}

func (a *ExampleAgent) Name() string { return "Example" }

// FindPath implements Agent.
func (a *ExampleAgent) FindPath(ctx context.Context, g Grid, start, goal Coord) (Path, error) {
	if err := checkEndpoints(g, start, goal); err != nil {
		return nil, err
	}
	if a.rng == nil {
		a.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	nodes := Path{start}
	steps := 0
	for nodes.Goal() != goal {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if a.MaxSteps > 0 && steps >= a.MaxSteps {
			return nil, fmt.Errorf("greedy walk gave up after %d steps: %w", steps, ErrStepBudget)
		}

		cur := nodes.Goal()
		neighbors := g.Neighbors4(cur.Row, cur.Col)
		if len(neighbors) == 0 {
			// Isolated cell: no move exists, the walk is exhausted.
			return Path{}, nil
		}

		minDist := g.Manhattan(neighbors[0].Pos, goal)
		for _, t := range neighbors[1:] {
			if d := g.Manhattan(t.Pos, goal); d < minDist {
				minDist = d
			}
		}
		var best []Tile
		for _, t := range neighbors {
			if g.Manhattan(t.Pos, goal) == minDist {
				best = append(best, t)
			}
		}

		nodes = append(nodes, best[a.rng.Intn(len(best))].Pos)
		steps++
	}
	return nodes, nil
}
