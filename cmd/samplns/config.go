package main

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/tubs-alg/samplns-go/samplnserr"
)

// config holds the optimize subcommand's resolved settings: flag
// values layered on top of an optional --config YAML file, mirroring
// the CLI surface table (input/initial sample/time budgets/output).
type config struct {
	Input              string `yaml:"input"`
	InitialSample      string `yaml:"initial_sample"`
	InitialAlgorithm   string `yaml:"initial_algorithm"`
	Output             string `yaml:"output"`
	IterationTimeLimit string `yaml:"iteration_time_limit"`
	CDSTimeLimit       string `yaml:"cds_time_limit"`
	GlobalTimeLimit    string `yaml:"global_time_limit"`
	MaxIterations      int    `yaml:"max_iterations"`
	LogLevel           string `yaml:"log_level"`
}

func defaultConfig() config {
	return config{
		IterationTimeLimit: "5s",
		CDSTimeLimit:       "2s",
		GlobalTimeLimit:    "60s",
		MaxIterations:      1000,
		LogLevel:           "info",
	}
}

// loadConfigFile reads a YAML config file into base, overriding only
// the fields the file sets.
func loadConfigFile(path string, base config) (config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return base, fmt.Errorf("read config file %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &base); err != nil {
		return base, fmt.Errorf("parse config file %s: %w: %w", path, err, samplnserr.ErrMalformedInput)
	}

	return base, nil
}

func (c config) durations() (iterationLimit, cdsLimit, globalLimit time.Duration, err error) {
	iterationLimit, err = time.ParseDuration(c.IterationTimeLimit)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("parse --iteration-time-limit %q: %w: %w", c.IterationTimeLimit, err, samplnserr.ErrMalformedInput)
	}
	cdsLimit, err = time.ParseDuration(c.CDSTimeLimit)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("parse --cds-time-limit %q: %w: %w", c.CDSTimeLimit, err, samplnserr.ErrMalformedInput)
	}
	globalLimit, err = time.ParseDuration(c.GlobalTimeLimit)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("parse --global-time-limit %q: %w: %w", c.GlobalTimeLimit, err, samplnserr.ErrMalformedInput)
	}

	return iterationLimit, cdsLimit, globalLimit, nil
}
