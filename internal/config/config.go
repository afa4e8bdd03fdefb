// Copyright (c) 2026, the deskscene authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config loads the optional viewer settings file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Config holds the viewer settings.
type Config struct {
	Window struct {
		Width  int    `toml:"width"`
		Height int    `toml:"height"`
		Title  string `toml:"title"`
	} `toml:"window"`

	Camera struct {
		// FOV is the perspective field of view in degrees.
		FOV float32 `toml:"fov"`

		MouseSensitivity float32 `toml:"mouse_sensitivity"`
	} `toml:"camera"`

	Textures struct {
		// Dir is the directory holding the scene's texture images.
		Dir string `toml:"dir"`
	} `toml:"textures"`
}

// Defaults returns the built-in settings.
func Defaults() *Config {
	cfg := &Config{}
	cfg.Window.Width = 1000
	cfg.Window.Height = 800
	cfg.Window.Title = "deskscene"
	cfg.Camera.FOV = 80
	cfg.Camera.MouseSensitivity = 0.1
	cfg.Textures.Dir = "textures"
	return cfg
}

// Open reads the TOML settings file, applying it over the defaults.
// A missing file is not an error: the defaults are returned.
func Open(file string) (*Config, error) {
	cfg := Defaults()
	data, err := os.ReadFile(file)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			slog.Info("no settings file, using defaults", "file", file)
			return cfg, nil
		}
		return nil, fmt.Errorf("reading settings: %w", err)
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing settings %s: %w", file, err)
	}
	return cfg, nil
}
