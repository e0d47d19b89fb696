// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// config holds the settings godiff.toml may override; CLI flags that were
// explicitly set take precedence over whatever this loads.
type config struct {
	Context  int    `toml:"context"`
	LineTerm string `toml:"line_term"`
	Color    string `toml:"color"`
}

func defaultConfig() config {
	return config{Context: 3, LineTerm: "\n", Color: "auto"}
}

// loadConfig reads the config file at path (godiff.toml in the current
// directory unless --config names another), the way cmd/root.go's viper
// setup reads goki.toml. A missing file is not an
// error — it just means the defaults apply.
func loadConfig(path string) (config, error) {
	cfg := defaultConfig()
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("godiff: opening config %s: %w", path, err)
	}
	defer f.Close()

	if err := toml.NewDecoder(f).Decode(&cfg); err != nil {
		return cfg, fmt.Errorf("godiff: parsing config %s: %w", path, err)
	}
	return cfg, nil
}
