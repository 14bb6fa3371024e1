package search

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// AgentBundle holds agent configuration, loadable from a YAML file.
// Empty string / zero values mean "not set" and fall back to defaults.
type AgentBundle struct {
	Agent  string       `yaml:"agent"`
	Greedy GreedyConfig `yaml:"greedy"`
}

// GreedyConfig holds knobs that only apply to the Example agent.
type GreedyConfig struct {
	MaxSteps int    `yaml:"max_steps"` // 0 = unlimited
	Seed     *int64 `yaml:"seed"`      // nil = time-seeded tie-breaks
}

// LoadAgentBundle reads and parses a YAML agent configuration file.
func LoadAgentBundle(path string) (*AgentBundle, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading agent config: %w", err)
	}
	var bundle AgentBundle
	if err := yaml.Unmarshal(data, &bundle); err != nil {
		return nil, fmt.Errorf("parsing agent config: %w", err)
	}
	return &bundle, nil
}

// Validate checks agent name and parameter ranges.
func (b *AgentBundle) Validate() error {
	if b.Agent != "" && !ValidAgents[b.Agent] {
		return fmt.Errorf("unknown agent %q (valid: %s)", b.Agent, strings.Join(AgentNames(), ", "))
	}
	if b.Greedy.MaxSteps < 0 {
		return fmt.Errorf("greedy max_steps must be non-negative, got %d", b.Greedy.MaxSteps)
	}
	return nil
}

// Build constructs the configured agent. Empty agent name defaults to AStar.
func (b *AgentBundle) Build() (Agent, error) {
	if err := b.Validate(); err != nil {
		return nil, err
	}
	name := b.Agent
	if name == "" {
		name = "AStar"
	}
	agent, err := NewAgent(name)
	if err != nil {
		return nil, err
	}
	if example, ok := agent.(*ExampleAgent); ok {
		if b.Greedy.Seed != nil {
			example = NewExampleAgentSeeded(*b.Greedy.Seed)
			agent = example
		}
		example.MaxSteps = b.Greedy.MaxSteps
	}
	return agent, nil
}
