package search

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Grid is the collaborator every agent searches over. It is read-only for the
// duration of a FindPath call, so a single Grid may serve concurrent searches
// as long as the implementation tolerates concurrent reads.
type Grid interface {
	// Neighbors4 returns the up-to-4 orthogonally adjacent walkable tiles of
	// (row, col). Order is not part of the contract.
	Neighbors4(row, col int) []Tile
	// Get returns the tile at (row, col). Callers must check Walkable first.
	Get(row, col int) Tile
	// Manhattan returns |a.Row-b.Row| + |a.Col-b.Col|.
	Manhattan(a, b Coord) int
	// Walkable reports whether (row, col) is in bounds and not blocked.
	Walkable(row, col int) bool
}

// Agent finds a route from start to goal on a grid. Implementations keep no
// state between calls; each FindPath invocation owns its own frontier.
//
// An empty Path with a nil error means the agent exhausted its search space
// without reaching the goal. The context is checked between iterations, so a
// caller can bound execution with a deadline or cancellation — the only
// defense against the Example agent's non-terminating cases.
type Agent interface {
	Name() string
	FindPath(ctx context.Context, g Grid, start, goal Coord) (Path, error)
}

// ErrOutOfBounds is returned when start or goal is not a walkable cell.
var ErrOutOfBounds = errors.New("coordinate out of bounds")

// ValidAgents is the set of recognized agent names.
// Shared by NewAgent and AgentBundle.Validate to avoid duplication.
var ValidAgents = map[string]bool{
	"Example":        true,
	"DFS":            true,
	"BranchAndBound": true,
	"AStar":          true,
}

// NewAgent creates an agent by name. Every call returns a fresh instance.
// Unknown names yield an error listing the valid choices.
func NewAgent(name string) (Agent, error) {
	switch name {
	case "Example":
		return NewExampleAgent(), nil
	case "DFS":
		return &DFSAgent{}, nil
	case "BranchAndBound":
		return &BranchAndBoundAgent{}, nil
	case "AStar":
		return &AStarAgent{}, nil
	default:
		return nil, fmt.Errorf("unknown agent %q (valid: %s)", name, strings.Join(AgentNames(), ", "))
	}
}

// AgentNames returns the valid agent names in sorted order.
func AgentNames() []string {
	names := make([]string, 0, len(ValidAgents))
	for name := range ValidAgents {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// checkEndpoints fails fast on invalid start/goal coordinates instead of
// letting an agent walk off the grid mid-search.
func checkEndpoints(g Grid, start, goal Coord) error {
	if !g.Walkable(start.Row, start.Col) {
		return fmt.Errorf("start (%d,%d): %w", start.Row, start.Col, ErrOutOfBounds)
	}
	if !g.Walkable(goal.Row, goal.Col) {
		return fmt.Errorf("goal (%d,%d): %w", goal.Row, goal.Col, ErrOutOfBounds)
	}
	return nil
}
