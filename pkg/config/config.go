// Package config loads the optional edgeviz.toml configuration file.
//
// Only the convert paths are configurable:
//
//	[convert]
//	input  = "data/graph.txt"
//	output = "data/graph.json"
//
// Anything not set in the file falls back to built-in defaults; flags on
// the command line override both.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// DefaultFile is the config filename looked up in the working directory.
const DefaultFile = "edgeviz.toml"

// Built-in path defaults used when neither flags nor the config file
// provide a value.
const (
	DefaultInput  = "data/graph.txt"
	DefaultOutput = "data/graph.json"
)

// Config is the root of the TOML configuration.
type Config struct {
	Convert Convert `toml:"convert"`
}

// Convert holds the input/output paths for the convert command.
type Convert struct {
	Input  string `toml:"input"`
	Output string `toml:"output"`
}

// Default returns a Config populated with the built-in defaults.
func Default() Config {
	return Config{
		Convert: Convert{
			Input:  DefaultInput,
			Output: DefaultOutput,
		},
	}
}

// Load reads the config file at path on top of the defaults.
// A missing file is only an error when required is true; this lets the
// implicit edgeviz.toml lookup stay optional while an explicit --config
// path must exist.
func Load(path string, required bool) (Config, error) {
	cfg := Default()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		if required {
			return Config{}, fmt.Errorf("config file %s does not exist", path)
		}
		return cfg, nil
	}

	var fileCfg Config
	if _, err := toml.DecodeFile(path, &fileCfg); err != nil {
		return Config{}, fmt.Errorf("parse %s: %w", path, err)
	}

	if fileCfg.Convert.Input != "" {
		cfg.Convert.Input = fileCfg.Convert.Input
	}
	if fileCfg.Convert.Output != "" {
		cfg.Convert.Output = fileCfg.Convert.Output
	}

	return cfg, nil
}
