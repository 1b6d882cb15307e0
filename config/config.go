// SPDX-FileCopyrightText: © 2021 The domtree authors <https://github.com/golangee/domtree/blob/main/AUTHORS>
// SPDX-License-Identifier: Apache-2.0

// Package config contains the settings of the domtree command.
package config

import (
	"fmt"

	"github.com/BurntSushi/toml"
	"go.uber.org/zap/zapcore"
)

// Input formats.
const (
	InputMarkup = "markup"
	InputJSON   = "json"
	InputYAML   = "yaml"
)

// Output formats.
const (
	OutputTree = "tree"
	OutputXML  = "xml"
	OutputJSON = "json"
	OutputYAML = "yaml"
)

// Config is read from a TOML file, e.g.
//
//	input = "markup"
//	output = "tree"
//	color = true
//	log-level = "debug"
type Config struct {
	Input    string `toml:"input"`
	Output   string `toml:"output"`
	Color    bool   `toml:"color"`
	LogLevel string `toml:"log-level"`
}

// Default returns the configuration used without a file.
func Default() Config {
	return Config{
		Input:    InputMarkup,
		Output:   OutputTree,
		LogLevel: "info",
	}
}

// Load reads the TOML file at path on top of the defaults.
func Load(path string) (Config, error) {
	cfg := Default()

	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to load config %s: %w", path, err)
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Config{}, fmt.Errorf("unknown key %s in config %s", undecoded[0], path)
	}

	return cfg, cfg.Validate()
}

// Validate checks that all values are known.
func (c Config) Validate() error {
	switch c.Input {
	case InputMarkup, InputJSON, InputYAML:
	default:
		return fmt.Errorf("invalid input format %q", c.Input)
	}

	switch c.Output {
	case OutputTree, OutputXML, OutputJSON, OutputYAML:
	default:
		return fmt.Errorf("invalid output format %q", c.Output)
	}

	if _, err := c.Level(); err != nil {
		return err
	}

	return nil
}

// Level parses LogLevel.
func (c Config) Level() (zapcore.Level, error) {
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return level, fmt.Errorf("invalid log level %q: %w", c.LogLevel, err)
	}

	return level, nil
}
