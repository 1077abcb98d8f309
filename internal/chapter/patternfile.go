// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package chapter

import (
	"fmt"
	"os"

	"go.yaml.in/yaml/v3"
)

// PatternFile is the on-disk representation of an ordered heading pattern
// set. Operators edit this file to teach the detector new conventions
// without rebuilding the tool.
type PatternFile struct {
	Patterns []PatternEntry `yaml:"patterns"`
}

// PatternEntry is one serialized pattern. Order in the file is priority
// order.
type PatternEntry struct {
	Name string `yaml:"name"`
	Expr string `yaml:"expr"`
}

// LoadPatternFile reads an ordered pattern set from a YAML file and
// compiles it.
func LoadPatternFile(path string) ([]Pattern, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading pattern file: %w", err)
	}
	var pf PatternFile
	if err := yaml.Unmarshal(data, &pf); err != nil {
		return nil, fmt.Errorf("parsing pattern file %s: %w", path, err)
	}
	if len(pf.Patterns) == 0 {
		return nil, fmt.Errorf("pattern file %s: no patterns defined", path)
	}

	patterns := make([]Pattern, 0, len(pf.Patterns))
	for _, e := range pf.Patterns {
		p, err := NewPattern(e.Name, e.Expr)
		if err != nil {
			return nil, fmt.Errorf("pattern file %s: %w", path, err)
		}
		patterns = append(patterns, p)
	}
	return patterns, nil
}

// WritePatternFile saves patterns to a YAML file, preserving priority order.
func WritePatternFile(path string, patterns []Pattern) error {
	pf := PatternFile{Patterns: make([]PatternEntry, len(patterns))}
	for i, p := range patterns {
		pf.Patterns[i] = PatternEntry{Name: p.Name(), Expr: p.Expr()}
	}
	data, err := yaml.Marshal(&pf)
	if err != nil {
		return fmt.Errorf("marshaling pattern file: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}
