// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package rules

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultWorkPurposes are the purpose-of-stay answers that call for a work patent.
var DefaultWorkPurposes = []string{"работа", "трудоустройство"}

// Config holds the tunable parts of the rule set.
type Config struct {
	// WorkPurposes lists purpose-of-stay values that trigger the work patent
	// recommendation. Matching is exact after case folding.
	WorkPurposes []string `yaml:"work_purposes"`
}

func DefaultConfig() Config {
	return Config{WorkPurposes: append([]string(nil), DefaultWorkPurposes...)}
}

// LoadConfig reads a YAML rules file. An empty path returns DefaultConfig.
func LoadConfig(path string) (Config, error) {
	if path == "" {
		return DefaultConfig(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read rules file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse rules file %s: %w", path, err)
	}

	if len(cfg.WorkPurposes) == 0 {
		cfg.WorkPurposes = DefaultConfig().WorkPurposes
	}

	return cfg, nil
}
