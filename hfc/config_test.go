package main

import (
	"github.com/p7r0x7/hashfuck"
	"github.com/rs/zerolog"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "hfc.toml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadConfigOverrides(t *testing.T) {
	path := writeConfig(t, `
max_steps = 12
timeout = "250ms"
log_level = "debug"
no_codes = true
chain = true
`)
	s := defaultSettings()
	if err := loadConfig(path, &s); err != nil {
		t.Fatalf("load config: %v", err)
	}
	if s.maxSteps != 12 {
		t.Fatalf("unexpected max steps: %d", s.maxSteps)
	}
	if s.timeout != 250*time.Millisecond {
		t.Fatalf("unexpected timeout: %v", s.timeout)
	}
	if s.level != zerolog.DebugLevel {
		t.Fatalf("unexpected level: %v", s.level)
	}
	if !s.noCodes || !s.chain {
		t.Fatalf("expected no_codes and chain enabled: %+v", s)
	}
}

func TestLoadConfigKeepsDefaults(t *testing.T) {
	path := writeConfig(t, `timeout = "1s"`)
	s := defaultSettings()
	if err := loadConfig(path, &s); err != nil {
		t.Fatalf("load config: %v", err)
	}
	if s.maxSteps != hashfuck.DefaultMaxSteps {
		t.Fatalf("unexpected max steps: %d", s.maxSteps)
	}
	if s.level != zerolog.WarnLevel {
		t.Fatalf("unexpected level: %v", s.level)
	}
	if s.chain {
		t.Fatalf("expected chain disabled")
	}
}

func TestLoadConfigErrors(t *testing.T) {
	cases := map[string]string{
		"bad timeout":  `timeout = "soon"`,
		"bad level":    `log_level = "loud"`,
		"unknown key":  `max_step = 3`,
		"invalid toml": `max_steps = `,
		"wrong type":   `max_steps = "many"`,
	}
	for name, body := range cases {
		s := defaultSettings()
		if err := loadConfig(writeConfig(t, body), &s); err == nil {
			t.Errorf("%s: expected error", name)
		}
	}
	s := defaultSettings()
	if err := loadConfig(filepath.Join(t.TempDir(), "missing.toml"), &s); err == nil {
		t.Fatalf("expected error for missing file")
	}
}

func TestParseLevel(t *testing.T) {
	cases := map[string]zerolog.Level{
		"trace":   zerolog.TraceLevel,
		" Debug ": zerolog.DebugLevel,
		"info":    zerolog.InfoLevel,
		"warning": zerolog.WarnLevel,
		"error":   zerolog.ErrorLevel,
		"off":     zerolog.Disabled,
	}
	for raw, want := range cases {
		got, ok := parseLevel(raw)
		if !ok || got != want {
			t.Errorf("parseLevel(%q) = %v, %v", raw, got, ok)
		}
	}
	if _, ok := parseLevel(""); ok {
		t.Fatalf("empty level accepted")
	}
}

func TestApplyEnv(t *testing.T) {
	t.Setenv(envLogLevel, "info")
	s := defaultSettings()
	applyEnv(&s)
	if s.level != zerolog.InfoLevel {
		t.Fatalf("unexpected level: %v", s.level)
	}
}

func TestLoadExampleConfig(t *testing.T) {
	s := defaultSettings()
	if err := loadConfig("ex.config.toml", &s); err != nil {
		t.Fatalf("load config: %v", err)
	}
	if s.maxSteps != hashfuck.DefaultMaxSteps {
		t.Fatalf("unexpected max steps: %d", s.maxSteps)
	}
	if s.timeout != 5*time.Second {
		t.Fatalf("unexpected timeout: %v", s.timeout)
	}
	if s.level != zerolog.WarnLevel {
		t.Fatalf("unexpected level: %v", s.level)
	}
}
