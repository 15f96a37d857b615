package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// fileConfig mirrors the Options fields a user might want to pin in a
// checked-in file rather than repeat on the command line every run. Flags
// passed alongside -config still win: loadConfig only supplies defaults.
// PlateauEpochs, CoolingRate, MutationProbability, and NElite are pointers:
// YAML unmarshaling leaves them nil when the key is absent from the file
// and non-nil (even pointing at zero) when the key is present, which is
// exactly the "unset vs. explicitly zero" distinction those Options fields
// need — a plain field could not tell "not in the file" from "set to 0".
type fileConfig struct {
	Solver              string   `yaml:"solver"`
	Start               int      `yaml:"start"`
	Seed                int64    `yaml:"seed"`
	Epochs              int      `yaml:"epochs"`
	PlateauEpochs       *int     `yaml:"plateau_epochs"`
	CoolingRate         *float64 `yaml:"cooling_rate"`
	MaxTemperature      float64  `yaml:"max_temperature"`
	MinTemperature      float64  `yaml:"min_temperature"`
	TabuCapacity        int      `yaml:"tabu_capacity"`
	MutationProbability *float64 `yaml:"mutation_probability"`
	NElite              *int     `yaml:"n_elite"`
	PopSize             int      `yaml:"pop_size"`
	TournamentK         int      `yaml:"tournament_k"`
	Verbose             bool     `yaml:"verbose"`
}

// loadConfig reads a YAML config file. An empty path is not an error: the
// caller falls back to flag defaults. A path that cannot be read, or a key
// that is not a known parameter, is reported as an error.
func loadConfig(path string) (fileConfig, error) {
	var cfg fileConfig
	if path == "" {
		return cfg, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}
