package provider

import (
	"testing"

	"github.com/ytget/ytdlp/v2/types"

	"github.com/clipcut/clipcut/internal/model"
)

func TestDescriptorFromFormat_DASHVideo(t *testing.T) {
	f := types.Format{
		Itag:     137,
		Quality:  "1080p",
		MimeType: `video/mp4; codecs="avc1.640028"`,
	}

	desc, ok := descriptorFromFormat(f)
	if !ok {
		t.Fatal("expected a descriptor")
	}
	if desc.Kind != model.KindVideo {
		t.Errorf("expected video kind, got %s", desc.Kind)
	}
	if desc.Container != "mp4" {
		t.Errorf("expected mp4 container, got %s", desc.Container)
	}
	if desc.Resolution != "1080p" {
		t.Errorf("expected 1080p, got %s", desc.Resolution)
	}
	if desc.Progressive {
		t.Error("single-codec video must not be progressive")
	}
	if desc.Itag != 137 {
		t.Errorf("expected itag 137, got %d", desc.Itag)
	}
}

func TestDescriptorFromFormat_ProgressiveVideo(t *testing.T) {
	f := types.Format{
		Itag:     22,
		Quality:  "720p",
		MimeType: `video/mp4; codecs="avc1.64001F, mp4a.40.2"`,
	}

	desc, ok := descriptorFromFormat(f)
	if !ok {
		t.Fatal("expected a descriptor")
	}
	if !desc.Progressive {
		t.Error("two-codec video must be progressive")
	}
}

func TestDescriptorFromFormat_Audio(t *testing.T) {
	f := types.Format{
		Itag:     140,
		Bitrate:  128000,
		MimeType: `audio/mp4; codecs="mp4a.40.2"`,
	}

	desc, ok := descriptorFromFormat(f)
	if !ok {
		t.Fatal("expected a descriptor")
	}
	if desc.Kind != model.KindAudio {
		t.Errorf("expected audio kind, got %s", desc.Kind)
	}
	if desc.AudioBitrate != "128kbps" {
		t.Errorf("expected 128kbps, got %s", desc.AudioBitrate)
	}
}

func TestDescriptorFromFormat_UnknownMime(t *testing.T) {
	f := types.Format{MimeType: "text/vtt"}
	if _, ok := descriptorFromFormat(f); ok {
		t.Error("expected non-media formats to be skipped")
	}
}

func TestParseQualityLabel(t *testing.T) {
	tests := []struct {
		label       string
		resolution  string
		expectedFPS float64
	}{
		{"1080p", "1080p", 0},
		{"720p60", "720p", 60},
		{"hd1080", "1080p", 0},
		{"medium", "", 0},
		{"", "", 0},
	}

	for _, tt := range tests {
		t.Run("label "+tt.label, func(t *testing.T) {
			res, fps := parseQualityLabel(tt.label)
			if res != tt.resolution {
				t.Errorf("resolution = %q, expected %q", res, tt.resolution)
			}
			if fps != tt.expectedFPS {
				t.Errorf("fps = %v, expected %v", fps, tt.expectedFPS)
			}
		})
	}
}

func TestFormatSelector_PinsExactItag(t *testing.T) {
	tests := []struct {
		itag     int
		expected string
	}{
		{137, "itag=137"},
		{140, "itag=140"},
		{22, "itag=22"},
	}

	for _, tt := range tests {
		if got := formatSelector(tt.itag); got != tt.expected {
			t.Errorf("formatSelector(%d) = %q, expected %q", tt.itag, got, tt.expected)
		}
	}
}

func TestBitrateLabel(t *testing.T) {
	tests := []struct {
		bps      int
		expected string
	}{
		{128000, "128kbps"},
		{160500, "160kbps"},
		{0, ""},
		{-1, ""},
	}

	for _, tt := range tests {
		if got := bitrateLabel(tt.bps); got != tt.expected {
			t.Errorf("bitrateLabel(%d) = %q, expected %q", tt.bps, got, tt.expected)
		}
	}
}
