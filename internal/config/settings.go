package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"gopkg.in/yaml.v3"

	gameconfig "github.com/tomz197/dungeon/internal/loop/config"
)

// Renderer names accepted in Settings.Renderer.
const (
	RendererTcell = "tcell"
	RendererANSI  = "ansi"
)

// Settings is the optional settings file. Every field has a default, so an
// empty or missing file is valid.
type Settings struct {
	TickInterval time.Duration `yaml:"tick_interval"`
	Renderer     string        `yaml:"renderer"`
	LogLevel     string        `yaml:"log_level"`
	Seed         uint64        `yaml:"seed"`
	SSH          SSHSettings   `yaml:"ssh"`
}

// SSHSettings configures cmd/ssh.
type SSHSettings struct {
	Host        string `yaml:"host"`
	Port        string `yaml:"port"`
	HostKeyPath string `yaml:"host_key_path"`
}

// Default returns the built-in settings.
func Default() Settings {
	return Settings{
		TickInterval: gameconfig.DefaultTickInterval,
		Renderer:     RendererTcell,
		LogLevel:     "info",
		SSH: SSHSettings{
			Host:        "0.0.0.0",
			Port:        "23234",
			HostKeyPath: ".ssh/id_ed25519",
		},
	}
}

// Load reads settings from a YAML file on top of Default. An empty path
// returns the defaults.
func Load(path string) (Settings, error) {
	s := Default()
	if path == "" {
		return s, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return s, fmt.Errorf("read settings: %w", err)
	}
	if err := yaml.Unmarshal(data, &s); err != nil {
		return s, fmt.Errorf("parse settings %s: %w", path, err)
	}
	if err := s.Validate(); err != nil {
		return s, fmt.Errorf("settings %s: %w", path, err)
	}
	return s, nil
}

// FromEnv loads the file named by DUNGEON_CONFIG and applies environment
// overrides on top of it.
func FromEnv() (Settings, error) {
	s, err := Load(GetEnv("DUNGEON_CONFIG", ""))
	if err != nil {
		return s, err
	}

	s.Renderer = GetEnv("DUNGEON_RENDERER", s.Renderer)
	s.TickInterval = GetEnvDuration("DUNGEON_TICK", s.TickInterval)
	s.LogLevel = GetEnv("DUNGEON_LOG_LEVEL", s.LogLevel)
	if seed := GetEnvInt("DUNGEON_SEED", -1); seed >= 0 {
		s.Seed = uint64(seed)
	}
	s.SSH.Host = GetEnv("SSH_HOST", s.SSH.Host)
	s.SSH.Port = GetEnv("SSH_PORT", s.SSH.Port)
	s.SSH.HostKeyPath = GetEnv("SSH_HOST_KEY", s.SSH.HostKeyPath)

	return s, s.Validate()
}

// Validate reports the first invalid field.
func (s Settings) Validate() error {
	if s.TickInterval <= 0 {
		return errors.New("tick_interval must be positive")
	}
	switch s.Renderer {
	case RendererTcell, RendererANSI:
	default:
		return fmt.Errorf("unknown renderer %q", s.Renderer)
	}
	if _, err := log.ParseLevel(s.LogLevel); err != nil {
		return fmt.Errorf("log_level: %w", err)
	}
	return nil
}

// Level returns the parsed log level, falling back to info.
func (s Settings) Level() log.Level {
	lvl, err := log.ParseLevel(s.LogLevel)
	if err != nil {
		return log.InfoLevel
	}
	return lvl
}
