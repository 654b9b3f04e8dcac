package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the optional --config file. Every field has a working
// default, so an empty or absent config is fine.
type Config struct {
	// Output overrides the output root when -o is not given.
	Output string `yaml:"output"`
	// BasePackage overrides the Java package the core group lands in.
	BasePackage string `yaml:"basePackage"`
	// Author overrides the @author line on emitted interfaces.
	Author string `yaml:"author"`
	// Reserved adds names to the built-in exclusion set.
	Reserved []string `yaml:"reserved"`
}

func loadConfig(path string) (Config, error) {
	var cfg Config
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}
