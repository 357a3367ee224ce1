package config

import (
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// Config is the only persisted config file schema.
type Config struct {
	Prompt         string `toml:"prompt"`
	Scrollback     int    `toml:"scrollback"`
	FrameDelayMS   int    `toml:"frame_delay_ms"`
	HistoryEnabled bool   `toml:"history_enabled"`
	HistoryPath    string `toml:"history_path"`
	LogPath        string `toml:"log_path"`
	Source         string `toml:"-"`
}

func Default() Config {
	return Config{
		Prompt:         "> ",
		Scrollback:     1024,
		FrameDelayMS:   50,
		HistoryEnabled: true,
	}
}

func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".conbox", "config.toml")
}

func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		path = DefaultPath()
	}
	if path == "" {
		return cfg, errors.New("config path is empty and $HOME is not set")
	}
	cfg.Source = path

	content, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return applyEnv(cfg), nil
		}
		return cfg, err
	}

	if err := toml.Unmarshal(content, &cfg); err != nil {
		return cfg, err
	}
	return applyEnv(cfg), nil
}

func applyEnv(cfg Config) Config {
	if env := strings.TrimSpace(os.Getenv("CONBOX_PROMPT")); env != "" {
		cfg.Prompt = env
	}
	if env := strings.TrimSpace(os.Getenv("CONBOX_SCROLLBACK")); env != "" {
		if n, err := strconv.Atoi(env); err == nil && n > 0 {
			cfg.Scrollback = n
		}
	}
	if env := strings.TrimSpace(os.Getenv("CONBOX_LOG_PATH")); env != "" {
		cfg.LogPath = env
	}
	if env := strings.TrimSpace(os.Getenv("CONBOX_HISTORY_PATH")); env != "" {
		cfg.HistoryPath = env
	}
	return cfg
}
