package packs

import (
	"fmt"

	"github.com/qubitlab/blochterm/internal/challenge"
)

// Register discovers YAML and Go challenge definitions under dir, compiles
// them, and registers them with the evaluator. It returns how many
// challenges were added.
func Register(ev *challenge.Evaluator, dir string) (int, error) {
	if ev == nil {
		return 0, nil
	}
	defs, err := loadAllDefinitionFiles(dir)
	if err != nil {
		return 0, err
	}
	if len(defs) == 0 {
		return 0, nil
	}
	seen := make(map[string]string)
	added := 0
	for _, file := range defs {
		def := file.Definition
		if existing, ok := seen[def.ID]; ok {
			return added, fmt.Errorf("pack: duplicate challenge id %s (%s and %s)", def.ID, existing, file.Path)
		}
		seen[def.ID] = file.Path
		compiled, err := def.Compile()
		if err != nil {
			return added, fmt.Errorf("pack: compile %s from %s: %w", def.ID, file.Path, err)
		}
		if err := ev.Register(compiled); err != nil {
			return added, fmt.Errorf("pack: register %s from %s: %w", def.ID, file.Path, err)
		}
		added++
	}
	return added, nil
}

func loadAllDefinitionFiles(dir string) ([]DefinitionFile, error) {
	yamlDefs, err := LoadDefinitionDir(dir)
	if err != nil {
		return nil, err
	}
	goDefs, err := LoadGoDefinitionDir(dir)
	if err != nil {
		return nil, err
	}
	return append(yamlDefs, goDefs...), nil
}
