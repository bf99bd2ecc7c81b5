package model

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestClipResultJSON_SuccessShape(t *testing.T) {
	r := ClipResult{
		Success:      true,
		OutputPath:   "/tmp/out.mp4",
		Title:        "Some Video",
		Resolution:   "1080p",
		Duration:     30,
		VideoFPS:     30,
		AudioBitrate: "128kbps",
	}

	var decoded map[string]interface{}
	if err := json.Unmarshal([]byte(r.JSON()), &decoded); err != nil {
		t.Fatalf("result is not valid JSON: %v", err)
	}

	if decoded["success"] != true {
		t.Errorf("expected success=true, got %v", decoded["success"])
	}
	if decoded["resolution"] != "1080p" {
		t.Errorf("expected resolution 1080p, got %v", decoded["resolution"])
	}
	if _, present := decoded["error"]; present {
		t.Error("success result must not carry an error field")
	}
}

func TestClipResultJSON_FailureShape(t *testing.T) {
	r := Failure(errors.New("no suitable video stream found"))

	var decoded map[string]interface{}
	if err := json.Unmarshal([]byte(r.JSON()), &decoded); err != nil {
		t.Fatalf("result is not valid JSON: %v", err)
	}

	if decoded["success"] != false {
		t.Errorf("expected success=false, got %v", decoded["success"])
	}
	if decoded["error"] != "no suitable video stream found" {
		t.Errorf("unexpected error field: %v", decoded["error"])
	}
	if _, present := decoded["output_path"]; present {
		t.Error("failure result must not carry output fields")
	}
}

func TestClipResultJSON_ZeroDurationKept(t *testing.T) {
	r := ClipResult{
		Success:    true,
		OutputPath: "/tmp/out.mp4",
		Title:      "Some Video",
		Resolution: "1080p",
		Duration:   0,
	}

	var decoded map[string]interface{}
	if err := json.Unmarshal([]byte(r.JSON()), &decoded); err != nil {
		t.Fatalf("result is not valid JSON: %v", err)
	}

	d, present := decoded["duration"]
	if !present {
		t.Fatal("success result must always carry a duration field")
	}
	if d != 0.0 {
		t.Errorf("expected duration 0, got %v", d)
	}
}

func TestHasSubtitles(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		expected bool
	}{
		{name: "with subtitle path", path: "/tmp/subs.srt", expected: true},
		{name: "without subtitle path", path: "", expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := ClipRequest{SubtitlePath: tt.path}
			if req.HasSubtitles() != tt.expected {
				t.Errorf("HasSubtitles() = %v, expected %v", req.HasSubtitles(), tt.expected)
			}
		})
	}
}

func TestStreamKindHelpers(t *testing.T) {
	video := StreamDescriptor{Kind: KindVideo}
	audio := StreamDescriptor{Kind: KindAudio}

	if !video.IsVideo() || video.IsAudio() {
		t.Error("video descriptor misclassified")
	}
	if !audio.IsAudio() || audio.IsVideo() {
		t.Error("audio descriptor misclassified")
	}
}
