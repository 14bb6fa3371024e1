package cmd

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/gridroute/gridroute/grid"
	"github.com/gridroute/gridroute/search"
)

var (
	// CLI flags for the run command
	mapFile     string        // Path to the YAML map file
	agentName   string        // Which search agent to use
	agentConfig string        // Optional YAML agent bundle overriding --agent
	startFlag   string        // Start coordinate as "row,col"
	goalFlag    string        // Goal coordinate as "row,col"
	logLevel    string        // Log verbosity level
	seed        int64         // Seed for greedy tie-breaking
	maxSteps    int           // Step budget for the greedy agent (0 = unlimited)
	timeout     time.Duration // Wall-clock budget for the search (0 = none)
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "gridroute",
	Short: "Pluggable pathfinding engine for weighted 2-D grids",
}

// parseCoord parses a "row,col" flag value.
func parseCoord(value string) (search.Coord, error) {
	parts := strings.Split(value, ",")
	if len(parts) != 2 {
		return search.Coord{}, fmt.Errorf("coordinate %q must be row,col", value)
	}
	row, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return search.Coord{}, fmt.Errorf("coordinate %q: bad row: %w", value, err)
	}
	col, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return search.Coord{}, fmt.Errorf("coordinate %q: bad column: %w", value, err)
	}
	return search.Coord{Row: row, Col: col}, nil
}

// buildAgent resolves the agent from --agent-config or the individual flags.
func buildAgent() (search.Agent, error) {
	if agentConfig != "" {
		bundle, err := search.LoadAgentBundle(agentConfig)
		if err != nil {
			return nil, err
		}
		return bundle.Build()
	}
	bundle := search.AgentBundle{
		Agent:  agentName,
		Greedy: search.GreedyConfig{MaxSteps: maxSteps, Seed: &seed},
	}
	return bundle.Build()
}

// runCmd executes one search using parameters from CLI flags
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run one search on a map and print the route",
	Run: func(cmd *cobra.Command, args []string) {
		// Set up logging
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			logrus.Fatalf("Invalid log level: %s", logLevel)
		}
		logrus.SetLevel(level)

		if mapFile == "" {
			logrus.Fatalf("Map file not provided. Exiting.")
		}

		g, err := grid.Load(mapFile)
		if err != nil {
			logrus.Fatalf("Unable to load map: %v", err)
		}

		start, err := parseCoord(startFlag)
		if err != nil {
			logrus.Fatalf("Invalid --start: %v", err)
		}
		goal, err := parseCoord(goalFlag)
		if err != nil {
			logrus.Fatalf("Invalid --goal: %v", err)
		}

		agent, err := buildAgent()
		if err != nil {
			logrus.Fatalf("Unable to build agent: %v", err)
		}

		ctx := context.Background()
		if timeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, timeout)
			defer cancel()
		}

		logrus.Infof("Starting %s search on %dx%d grid, (%d,%d) -> (%d,%d)",
			agent.Name(), g.Rows(), g.Cols(), start.Row, start.Col, goal.Row, goal.Col)

		began := time.Now()
		path, err := agent.FindPath(ctx, g, start, goal)
		if err != nil {
			logrus.Fatalf("Search failed: %v", err)
		}

		if path.IsEmpty() {
			fmt.Println("No route found.")
			return
		}
		steps := make([]string, len(path))
		for i, c := range path {
			steps[i] = fmt.Sprintf("(%d,%d)", c.Row, c.Col)
		}
		fmt.Printf("Route (%d cells, total cost %d): %s\n",
			len(path), path.TotalCost(g), strings.Join(steps, " -> "))
		logrus.Infof("Search complete in %v.", time.Since(began))
	},
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// init sets up CLI flags and subcommands
func init() {
	runCmd.Flags().StringVar(&mapFile, "map", "", "Path to YAML map file")
	runCmd.Flags().StringVar(&agentName, "agent", "AStar", "Search agent (Example, DFS, BranchAndBound, AStar)")
	runCmd.Flags().StringVar(&agentConfig, "agent-config", "", "YAML agent config file (overrides --agent)")
	runCmd.Flags().StringVar(&startFlag, "start", "0,0", "Start coordinate as row,col")
	runCmd.Flags().StringVar(&goalFlag, "goal", "0,0", "Goal coordinate as row,col")
	runCmd.Flags().StringVar(&logLevel, "log", "info", "Log level (trace, debug, info, warn, error, fatal, panic)")
	runCmd.Flags().Int64Var(&seed, "seed", 42, "Seed for greedy tie-break randomness")
	runCmd.Flags().IntVar(&maxSteps, "max-steps", 0, "Greedy step budget, 0 = unlimited")
	runCmd.Flags().DurationVar(&timeout, "timeout", 0, "Wall-clock search budget, 0 = none")

	rootCmd.AddCommand(runCmd)
}
