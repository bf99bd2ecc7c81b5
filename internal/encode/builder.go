package encode

import (
	"fmt"
	"strconv"

	"github.com/clipcut/clipcut/internal/config"
)

// Job describes one encode invocation.
type Job struct {
	VideoPath    string
	AudioPath    string // empty when the video input already carries audio
	SubtitlePath string // empty when no subtitle burn-in was requested
	Start        float64
	Duration     float64
	OutputPath   string
}

// HasAudioInput reports whether a separate audio file is merged in.
func (j Job) HasAudioInput() bool {
	return j.AudioPath != ""
}

// BuildArgs constructs the complete ffmpeg argument slice for a job:
// inputs, optional subtitle filter, trim window, codec parameters, output.
func BuildArgs(cfg config.EncodeConfig, job Job) []string {
	args := make([]string, 0, 24)

	args = append(args, "-y", "-loglevel", "error")

	args = append(args, "-i", job.VideoPath)
	if job.HasAudioInput() {
		args = append(args, "-i", job.AudioPath)
	}

	if job.SubtitlePath != "" {
		args = append(args, "-vf", subtitleFilter(job.SubtitlePath))
	}

	args = append(args,
		"-ss", formatSeconds(job.Start),
		"-t", formatSeconds(job.Duration),
		"-c:v", cfg.VideoCodec,
		"-c:a", cfg.AudioCodec,
		"-preset", cfg.Preset,
		"-crf", strconv.Itoa(cfg.CRF),
	)

	args = append(args, job.OutputPath)
	return args
}

// subtitleFilter renders the burn-in filter expression for a subtitle file.
func subtitleFilter(path string) string {
	return fmt.Sprintf("subtitles=%s", path)
}

// formatSeconds renders a float seconds value without a trailing exponent
// and without unnecessary zeros, matching what ffmpeg accepts for -ss/-t.
func formatSeconds(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
