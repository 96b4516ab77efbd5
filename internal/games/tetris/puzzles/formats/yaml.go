package formats

import (
	"fmt"

	"github.com/vovakirdan/tui-tetris/internal/games/tetris/core"
	"gopkg.in/yaml.v3"
)

// yamlPuzzle mirrors the JSON puzzle contract field for field so the
// same files can be authored in either format.
type yamlPuzzle struct {
	Name        string      `yaml:"name"`
	Description string      `yaml:"description"`
	GridData    [][]*string `yaml:"grid_data"`
	Goals       []yamlGoal  `yaml:"goals"`
}

type yamlGoal struct {
	GoalType     string      `yaml:"goal_type"`
	TargetValue  int         `yaml:"target_value"`
	CurrentValue int         `yaml:"current_value"`
	Pattern      [][]*string `yaml:"pattern,omitempty"`
	PatternX     int         `yaml:"pattern_x,omitempty"`
	PatternY     int         `yaml:"pattern_y,omitempty"`
}

// ParseYAML parses a YAML puzzle file into an unvalidated puzzle.
func ParseYAML(data []byte) (*core.Puzzle, error) {
	var yp yamlPuzzle
	if err := yaml.Unmarshal(data, &yp); err != nil {
		return nil, fmt.Errorf("yaml unmarshal: %w", err)
	}

	goals := make([]rawGoal, len(yp.Goals))
	for i, g := range yp.Goals {
		goals[i] = rawGoal{
			goalType: g.GoalType,
			target:   g.TargetValue,
			current:  g.CurrentValue,
			pattern:  g.Pattern,
			patternX: g.PatternX,
			patternY: g.PatternY,
		}
	}
	return buildPuzzle(yp.Name, yp.Description, yp.GridData, goals)
}
