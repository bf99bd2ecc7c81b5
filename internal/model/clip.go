package model

import "encoding/json"

// AudioBitrateNone is reported in a success result when no separate audio
// stream was selected (the chosen video stream carries its own audio).
const AudioBitrateNone = "N/A"

// ClipRequest describes one clip extraction run.
type ClipRequest struct {
	SourceURL    string
	Start        float64 // clip start in seconds, never validated against duration
	End          float64 // clip end in seconds, clamped to the source duration
	OutputPath   string
	SubtitlePath string // optional subtitle file burned into the output
}

// HasSubtitles reports whether a subtitle overlay was requested.
func (r ClipRequest) HasSubtitles() bool {
	return r.SubtitlePath != ""
}

// ClipResult is the discriminated outcome of a run. Exactly one result is
// emitted per invocation, success or failure; it is the only artifact the
// caller observes besides the output file itself.
type ClipResult struct {
	Success      bool
	OutputPath   string
	Title        string
	Resolution   string
	Duration     float64
	VideoFPS     float64
	AudioBitrate string
	Error        string
}

// MarshalJSON renders the two result shapes: a failure carries only the
// error message, a success always carries its duration (even a zero-length
// clamped window) alongside the echoed metadata.
func (r ClipResult) MarshalJSON() ([]byte, error) {
	if !r.Success {
		return json.Marshal(struct {
			Success bool   `json:"success"`
			Error   string `json:"error"`
		}{false, r.Error})
	}
	return json.Marshal(struct {
		Success      bool    `json:"success"`
		OutputPath   string  `json:"output_path"`
		Title        string  `json:"title"`
		Resolution   string  `json:"resolution"`
		Duration     float64 `json:"duration"`
		VideoFPS     float64 `json:"video_fps,omitempty"`
		AudioBitrate string  `json:"audio_bitrate,omitempty"`
	}{true, r.OutputPath, r.Title, r.Resolution, r.Duration, r.VideoFPS, r.AudioBitrate})
}

// Failure builds a failure result from an error.
func Failure(err error) ClipResult {
	return ClipResult{Success: false, Error: err.Error()}
}

// FailureMessage builds a failure result from a plain message.
func FailureMessage(msg string) ClipResult {
	return ClipResult{Success: false, Error: msg}
}

// JSON renders the result as a single-line JSON object.
func (r ClipResult) JSON() string {
	b, err := json.Marshal(r)
	if err != nil {
		// Marshalling a flat struct of strings and floats cannot fail;
		// keep the contract of always returning one JSON object anyway.
		return `{"success":false,"error":"failed to encode result"}`
	}
	return string(b)
}
