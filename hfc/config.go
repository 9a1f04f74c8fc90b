package main

import (
	"fmt"
	"github.com/BurntSushi/toml"
	"github.com/p7r0x7/hashfuck"
	"github.com/rs/zerolog"
	"os"
	"strings"
	"time"
)

// Copyright © 2022 Matthew R Bonnette. Licensed under the Apache-2.0 license.

const envLogLevel = "HFC_LOG_LEVEL"

type fileConfig struct {
	MaxSteps int    `toml:"max_steps"`
	Timeout  string `toml:"timeout"`
	LogLevel string `toml:"log_level"`
	NoCodes  bool   `toml:"no_codes"`
	Chain    bool   `toml:"chain"`
}

// settings are resolved from defaults, then the config file, then the environment, and last
// any flag set on the command line.
type settings struct {
	maxSteps int
	timeout  time.Duration
	level    zerolog.Level
	noCodes  bool
	chain    bool
}

func defaultSettings() settings {
	return settings{maxSteps: hashfuck.DefaultMaxSteps, level: zerolog.WarnLevel, noCodes: pNoCodesDefault}
}

func loadConfig(path string, s *settings) error {
	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if undec := meta.Undecoded(); len(undec) > 0 {
		return fmt.Errorf("load config: unknown key %q", undec[0].String())
	}

	if meta.IsDefined("max_steps") {
		s.maxSteps = raw.MaxSteps
	}
	if meta.IsDefined("timeout") {
		d, err := time.ParseDuration(strings.TrimSpace(raw.Timeout))
		if err != nil {
			return fmt.Errorf("parse timeout: %w", err)
		}
		s.timeout = d
	}
	if meta.IsDefined("log_level") {
		lvl, ok := parseLevel(raw.LogLevel)
		if !ok {
			return fmt.Errorf("parse log_level: unknown level %q", raw.LogLevel)
		}
		s.level = lvl
	}
	if meta.IsDefined("no_codes") {
		s.noCodes = raw.NoCodes
	}
	if meta.IsDefined("chain") {
		s.chain = raw.Chain
	}
	return nil
}

func applyEnv(s *settings) {
	if lvl, ok := parseLevel(os.Getenv(envLogLevel)); ok {
		s.level = lvl
	}
}

func parseLevel(raw string) (zerolog.Level, bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "trace":
		return zerolog.TraceLevel, true
	case "debug":
		return zerolog.DebugLevel, true
	case "info":
		return zerolog.InfoLevel, true
	case "warn", "warning":
		return zerolog.WarnLevel, true
	case "error":
		return zerolog.ErrorLevel, true
	case "disabled", "disable", "off", "none":
		return zerolog.Disabled, true
	default:
		return zerolog.WarnLevel, false
	}
}
