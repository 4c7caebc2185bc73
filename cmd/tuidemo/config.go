package main

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// DemoConfig is the settings file read from ~/.config/tuicore/demo.toml.
// None of this is read by the core library — it is purely the demo
// binary's own concern.
type DemoConfig struct {
	Theme     string `toml:"theme"`
	Mouse     bool   `toml:"mouse"`
	Inline    bool   `toml:"inline"`
	FrameRate int    `toml:"frame_rate"`
}

func defaultConfig() DemoConfig {
	return DemoConfig{Theme: "dark", Mouse: false, Inline: false, FrameRate: 30}
}

func loadConfig() (DemoConfig, error) {
	cfg := defaultConfig()
	home, err := os.UserHomeDir()
	if err != nil {
		return cfg, nil
	}
	path := filepath.Join(home, ".config", "tuicore", "demo.toml")
	if _, err := os.Stat(path); err != nil {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}
