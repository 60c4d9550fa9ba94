package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
)

// newFlags returns a parsed flag set
func newFlags(t *testing.T, args ...string) *pflag.FlagSet {
	t.Helper()
	fs := pflag.NewFlagSet("nyancat", pflag.ContinueOnError)
	RegisterFlags(fs)
	if err := fs.Parse(args); err != nil {
		t.Fatalf("Parse(%v) failed: %v", args, err)
	}
	return fs
}

// isolate points the default config lookup at an empty directory
func isolate(t *testing.T) {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("HOME", dir)
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}
	return path
}

func TestLoadDefaults(t *testing.T) {
	isolate(t)

	cfg, err := Load(newFlags(t), "")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if !cfg.Counter || !cfg.Clear {
		t.Error("Expected counter and clear on by default")
	}
	if cfg.Frames != 0 || cfg.Width != 0 || cfg.Height != 0 {
		t.Errorf("Expected zero limits, got frames=%d width=%d height=%d", cfg.Frames, cfg.Width, cfg.Height)
	}
	if cfg.Mute {
		t.Error("Expected audio enabled by default")
	}
	if cfg.Volume != 0.5 {
		t.Errorf("Expected volume 0.5, got %g", cfg.Volume)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("Expected log level info, got %q", cfg.LogLevel)
	}
	if cfg.File != "" {
		t.Errorf("Expected no config file, got %q", cfg.File)
	}
}

func TestLoadFlags(t *testing.T) {
	isolate(t)

	cfg, err := Load(newFlags(t, "-n", "-e", "-f", "12", "-W", "30", "-H", "20", "--mute", "-s"), "")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Counter || cfg.Clear {
		t.Error("Expected counter and clear off")
	}
	if cfg.Frames != 12 || cfg.Width != 30 || cfg.Height != 20 {
		t.Errorf("Unexpected values: frames=%d width=%d height=%d", cfg.Frames, cfg.Width, cfg.Height)
	}
	if !cfg.Mute || cfg.Audio().Enabled {
		t.Error("Expected muted audio")
	}
}

func TestLoadEnv(t *testing.T) {
	isolate(t)
	t.Setenv("NYANCAT_FRAMES", "7")
	t.Setenv("NYANCAT_NO_COUNTER", "true")
	t.Setenv("NYANCAT_VOLUME", "0.25")

	cfg, err := Load(newFlags(t), "")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Frames != 7 {
		t.Errorf("Expected frames 7, got %d", cfg.Frames)
	}
	if cfg.Counter {
		t.Error("Expected counter off from env")
	}
	if cfg.Audio().Volume != 0.25 {
		t.Errorf("Expected volume 0.25, got %g", cfg.Audio().Volume)
	}
}

func TestLoadFile(t *testing.T) {
	isolate(t)
	path := writeConfig(t, "frames: 3\nwidth: 16\nno-clear: true\n")

	cfg, err := Load(newFlags(t), path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Frames != 3 || cfg.Width != 16 || cfg.Clear {
		t.Errorf("Unexpected values: %+v", cfg)
	}
	if cfg.File != path {
		t.Errorf("Expected file %q, got %q", path, cfg.File)
	}
}

func TestLoadDefaultFileLocation(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("HOME", dir)
	if err := os.MkdirAll(filepath.Join(dir, "nyancat"), 0o700); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "nyancat", "config.yaml"), []byte("height: 9\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(newFlags(t), "")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Height != 9 {
		t.Errorf("Expected height 9 from default file, got %d", cfg.Height)
	}
}

// TestLoadPrecedence verifies flag > env > file > default
func TestLoadPrecedence(t *testing.T) {
	isolate(t)
	path := writeConfig(t, "frames: 3\nwidth: 16\nheight: 8\n")
	t.Setenv("NYANCAT_FRAMES", "5")
	t.Setenv("NYANCAT_WIDTH", "24")

	cfg, err := Load(newFlags(t, "--frames", "9"), path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Frames != 9 {
		t.Errorf("Flag should win: expected frames 9, got %d", cfg.Frames)
	}
	if cfg.Width != 24 {
		t.Errorf("Env should beat file: expected width 24, got %d", cfg.Width)
	}
	if cfg.Height != 8 {
		t.Errorf("File should beat default: expected height 8, got %d", cfg.Height)
	}
}

func TestLoadInvalid(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"negative frames", []string{"--frames=-1"}},
		{"negative width", []string{"--width=-4"}},
		{"negative height", []string{"--height=-2"}},
		{"volume too high", []string{"--volume=1.5"}},
		{"volume negative", []string{"--volume=-0.1"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isolate(t)
			if _, err := Load(newFlags(t, tt.args...), ""); err == nil {
				t.Errorf("Expected error for %v", tt.args)
			}
		})
	}
}

func TestLoadMissingExplicitFile(t *testing.T) {
	isolate(t)
	if _, err := Load(newFlags(t), filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("Expected error for missing explicit config file")
	}
}
