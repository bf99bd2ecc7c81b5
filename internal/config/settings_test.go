package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("loading defaults should not fail: %v", err)
	}

	tests := []struct {
		name     string
		got      interface{}
		expected interface{}
	}{
		{"ffmpeg path", cfg.Encode.FFmpegPath, DefaultFFmpegPath},
		{"video codec", cfg.Encode.VideoCodec, DefaultVideoCodec},
		{"audio codec", cfg.Encode.AudioCodec, DefaultAudioCodec},
		{"preset", cfg.Encode.Preset, DefaultPreset},
		{"crf", cfg.Encode.CRF, DefaultCRF},
		{"target resolution", cfg.Selector.TargetResolution, DefaultTargetResolution},
		{"log level", cfg.Logging.Level, DefaultLogLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.expected {
				t.Errorf("expected %v, got %v", tt.expected, tt.got)
			}
		})
	}
}

func TestLoad_FromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := `
encode:
  preset: veryslow
  crf: 18
selector:
  target_resolution: 720p
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Encode.Preset != "veryslow" {
		t.Errorf("expected preset veryslow, got %s", cfg.Encode.Preset)
	}
	if cfg.Encode.CRF != 18 {
		t.Errorf("expected crf 18, got %d", cfg.Encode.CRF)
	}
	if cfg.Selector.TargetResolution != "720p" {
		t.Errorf("expected target 720p, got %s", cfg.Selector.TargetResolution)
	}
	// Untouched keys keep defaults.
	if cfg.Encode.VideoCodec != DefaultVideoCodec {
		t.Errorf("expected default video codec, got %s", cfg.Encode.VideoCodec)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load("/nonexistent/clipcut.yaml"); err == nil {
		t.Error("expected an error for a missing config file")
	}
}

func TestLoad_InvalidCRF(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte("encode:\n  crf: 99\n"), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	if _, err := Load(path); err == nil {
		t.Error("expected out-of-range CRF to be rejected")
	}
}
