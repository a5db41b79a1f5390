// Package config loads the demo's configuration.
//
// Values are layered: in-code defaults, then an optional YAML file, then
// ODI_* environment variables. With no file and no variables set, the
// defaults reproduce the demo text exactly.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// ErrInvalidLogLevel is returned when log.level is not a known level.
var ErrInvalidLogLevel = errors.New("config: invalid log level")

type Course struct {
	Title string `yaml:"title" env:"ODI_COURSE_TITLE"`
	Code  string `yaml:"code" env:"ODI_COURSE_CODE"`
}

type Student struct {
	Name       string `yaml:"name" env:"ODI_STUDENT_NAME"`
	RollNumber int    `yaml:"roll_number" env:"ODI_STUDENT_ROLL_NUMBER"`
}

type Log struct {
	Level  string `yaml:"level" env:"ODI_LOG_LEVEL"`
	Pretty bool   `yaml:"pretty" env:"ODI_LOG_PRETTY"`
}

type Config struct {
	Course  Course  `yaml:"course"`
	Student Student `yaml:"student"`
	Log     Log     `yaml:"log"`
}

// Default returns the literals the demo is built around.
func Default() Config {
	return Config{
		Course:  Course{Title: "Advanced Java Programming", Code: "CSE-501"},
		Student: Student{Name: "John Doe", RollNumber: 101},
		Log:     Log{Level: "warn"},
	}
}

// Load builds a Config from defaults, the YAML file at path (skipped when
// path is empty) and the environment.
func Load(path string) (Config, error) {
	cfg := Default()

	if strings.TrimSpace(path) != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
		if err := yaml.Unmarshal(b, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config file %s: %w", path, err)
		}
	}

	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the ambient settings only; course and student values are
// accepted as given.
func (c Config) Validate() error {
	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "error":
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrInvalidLogLevel, c.Log.Level)
	}
}
