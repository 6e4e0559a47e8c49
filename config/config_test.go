package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "favicon.yaml")
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadFromFileEmptyPath(t *testing.T) {
	cfg, err := LoadFromFile("")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Root != "" || cfg.Logging.Level != "warn" || cfg.Logging.Format != "text" {
		t.Errorf("unexpected defaults %+v", cfg)
	}
}

func TestLoadFromFile(t *testing.T) {
	path := writeConfig(t, "root: /srv/app\nlogging:\n  level: debug\n  format: json\n")
	cfg, err := LoadFromFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Root != "/srv/app" {
		t.Errorf("Root = %q", cfg.Root)
	}
	if cfg.Logging.Level != "debug" || cfg.Logging.Format != "json" {
		t.Errorf("Logging = %+v", cfg.Logging)
	}
}

func TestLoadFromFilePartial(t *testing.T) {
	cfg, err := LoadFromFile(writeConfig(t, "root: site\n"))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Logging.Level != "warn" || cfg.Logging.Format != "text" {
		t.Errorf("defaults not applied: %+v", cfg.Logging)
	}
}

func TestLoadFromFileErrors(t *testing.T) {
	tests := []struct {
		comment string
		path    string
	}{
		{comment: "missing file", path: filepath.Join(t.TempDir(), "nope.yaml")},
		{comment: "bad yaml", path: writeConfig(t, "root: [unterminated\n")},
		{comment: "bad format", path: writeConfig(t, "logging:\n  format: xml\n")},
	}
	for _, tt := range tests {
		t.Run(tt.comment, func(t *testing.T) {
			if _, err := LoadFromFile(tt.path); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}

func TestResolveRoot(t *testing.T) {
	cwd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	tests := []struct {
		comment  string
		root     string
		override string
		want     string
	}{
		{comment: "override wins", root: "cfg", override: "flag", want: "flag"},
		{comment: "config root", root: "cfg", want: "cfg"},
		{comment: "working directory", want: cwd},
	}
	for _, tt := range tests {
		t.Run(tt.comment, func(t *testing.T) {
			cfg := &Config{Root: tt.root}
			got, err := cfg.ResolveRoot(tt.override)
			if err != nil {
				t.Fatal(err)
			}
			if got != tt.want {
				t.Errorf("ResolveRoot = %q, want %q", got, tt.want)
			}
		})
	}
}
