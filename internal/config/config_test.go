package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/billie-coop/confirm/dialog/content"
	"github.com/billie-coop/confirm/dialog/sizing"
)

func TestManager_LoadCreatesDefaults(t *testing.T) {
	dir := t.TempDir()
	m := NewManager(dir)

	if err := m.Load(); err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if _, err := os.Stat(filepath.Join(dir, ".confirm", "config.json")); err != nil {
		t.Errorf("config.json not created: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, ".confirm", ".gitignore")); err != nil {
		t.Errorf(".gitignore not created: %v", err)
	}
	if m.Get().Sizing != sizing.DefaultConfig() {
		t.Errorf("Sizing = %+v, want defaults", m.Get().Sizing)
	}
	if m.Get().Mode() != content.TextWithNewlines {
		t.Errorf("Mode() = %v, want text_with_newlines", m.Get().Mode())
	}
}

func TestManager_LoadJSON(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "config.json", `{
  "theme": "${CONFIRM_TEST_THEME}",
  "content_mode": "html",
  "sizing": {"min_width": 30, "max_height": 20}
}`)
	t.Setenv("CONFIRM_TEST_THEME", "dark")

	m := NewManager(dir)
	if err := m.Load(); err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	cfg := m.Get()
	if cfg.Theme != "dark" {
		t.Errorf("Theme = %q, want dark", cfg.Theme)
	}
	if cfg.Mode() != content.HTML {
		t.Errorf("Mode() = %v, want html", cfg.Mode())
	}
	if cfg.Sizing.MinWidth != 30 || cfg.Sizing.MaxHeight != 20 {
		t.Errorf("Sizing = %+v, want overrides applied", cfg.Sizing)
	}
	if cfg.Sizing.MaxWidthLong != sizing.DefaultConfig().MaxWidthLong {
		t.Errorf("MaxWidthLong = %v, want default", cfg.Sizing.MaxWidthLong)
	}
}

func TestManager_LoadYAML(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "config.yaml", `
log_level: debug
sizing:
  max_width_short: 50
  long_message_threshold: 250
`)

	m := NewManager(dir)
	if filepath.Base(m.Path()) != "config.yaml" {
		t.Fatalf("Path() = %s, want config.yaml", m.Path())
	}
	if err := m.Load(); err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	cfg := m.Get()
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want debug", cfg.LogLevel)
	}
	if cfg.Sizing.MaxWidthShort != 50 || cfg.Sizing.LongMessageThreshold != 250 {
		t.Errorf("Sizing = %+v, want overrides applied", cfg.Sizing)
	}
}

func TestManager_LoadRejects(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		data    string
		wantErr error
	}{
		{"inverted_heights", "config.json", `{"sizing": {"min_height": 50}}`, sizing.ErrMalformedConfig},
		{"negative_width", "config.yaml", "sizing:\n  min_width: -1\n", sizing.ErrMalformedConfig},
		{"unknown_yaml_key", "config.yaml", "colour: red\n", nil},
		{"bad_json", "config.json", `{`, nil},
		{"bad_mode", "config.json", `{"content_mode": "markdown"}`, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			writeConfig(t, dir, tt.file, tt.data)

			err := NewManager(dir).Load()
			if err == nil {
				t.Fatal("Load() should fail")
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Errorf("Load() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestManager_Set(t *testing.T) {
	dir := t.TempDir()
	m := NewManager(dir)
	if err := m.Load(); err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if err := m.Set("sizing.max_height", "30"); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	if err := m.Set("debug", "true"); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	reloaded := NewManager(dir)
	if err := reloaded.Load(); err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if reloaded.Get().Sizing.MaxHeight != 30 || !reloaded.Get().Debug {
		t.Errorf("reloaded = %+v, want saved values", reloaded.Get())
	}

	if err := m.Set("sizing.min_height", "99"); !errors.Is(err, sizing.ErrMalformedConfig) {
		t.Errorf("Set(min_height 99) error = %v, want ErrMalformedConfig", err)
	}
	if m.Get().Sizing.MinHeight != sizing.DefaultConfig().MinHeight {
		t.Error("rejected Set changed the config")
	}
	if err := m.Set("sizing.nope", "1"); err == nil {
		t.Error("Set(sizing.nope) should fail")
	}
	if err := m.Set("nope", "1"); err == nil {
		t.Error("Set(nope) should fail")
	}
}

func TestManager_SetKeepsEnvReferences(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "config.json", `{"log_file": "${CONFIRM_TEST_LOG}"}`)
	t.Setenv("CONFIRM_TEST_LOG", "/tmp/confirm-test.log")

	m := NewManager(dir)
	if err := m.Load(); err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if m.Get().LogFile != "/tmp/confirm-test.log" {
		t.Errorf("LogFile = %q, want expanded value", m.Get().LogFile)
	}

	if err := m.Set("theme", "dark"); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	if m.Get().LogFile != "/tmp/confirm-test.log" || m.Get().Theme != "dark" {
		t.Errorf("Get() = %+v after Set", m.Get())
	}

	data, err := os.ReadFile(m.Path())
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "${CONFIRM_TEST_LOG}") {
		t.Errorf("saved config lost the env reference:\n%s", data)
	}
	if strings.Contains(string(data), "/tmp/confirm-test.log") {
		t.Errorf("saved config contains the expanded value:\n%s", data)
	}
}

func TestExpandString(t *testing.T) {
	t.Setenv("CONFIRM_TEST_VAR", "value")

	tests := []struct {
		in   string
		want string
	}{
		{"$CONFIRM_TEST_VAR", "value"},
		{"${CONFIRM_TEST_VAR}/x", "value/x"},
		{"$CONFIRM_TEST_MISSING", "$CONFIRM_TEST_MISSING"},
		{"plain", "plain"},
	}
	for _, tt := range tests {
		if got := expandString(tt.in); got != tt.want {
			t.Errorf("expandString(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func writeConfig(t *testing.T, dir, name, data string) {
	t.Helper()
	confirmDir := filepath.Join(dir, ".confirm")
	if err := os.MkdirAll(confirmDir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(confirmDir, name), []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
}
