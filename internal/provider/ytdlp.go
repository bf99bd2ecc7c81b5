package provider

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/ytget/ytdlp/v2"
	"github.com/ytget/ytdlp/v2/types"

	"github.com/clipcut/clipcut/internal/model"
)

// MIME type prefixes and separators used when normalizing formats.
const (
	MimeVideoPrefix = "video/"
	MimeAudioPrefix = "audio/"
	MimeParamSep    = ";"
	CodecsListSep   = ","
)

// YTDLPService resolves metadata and fetches streams through the ytdlp
// library.
type YTDLPService struct{}

// NewYTDLPService creates a new provider service.
func NewYTDLPService() *YTDLPService {
	return &YTDLPService{}
}

// Lookup fetches the video info and normalizes every reported format into a
// stream descriptor. Formats with an unrecognized MIME type are skipped.
func (s *YTDLPService) Lookup(ctx context.Context, url string) (*model.VideoMeta, error) {
	d := ytdlp.New()
	_, info, err := d.ResolveURL(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("failed to get video info: %w", err)
	}

	streams := make([]model.StreamDescriptor, 0, len(info.Formats))
	for _, f := range info.Formats {
		desc, ok := descriptorFromFormat(f)
		if !ok {
			continue
		}
		streams = append(streams, desc)
	}

	return &model.VideoMeta{
		URL:      url,
		Title:    info.Title,
		Duration: float64(info.Duration),
		Streams:  streams,
	}, nil
}

// Fetch downloads the exact stream identified by the descriptor's itag.
func (s *YTDLPService) Fetch(ctx context.Context, url string, stream model.StreamDescriptor, destPath string) error {
	d := ytdlp.New().
		WithFormat(formatSelector(stream.Itag), "").
		WithOutputPath(destPath)
	if _, err := d.Download(ctx, url); err != nil {
		return fmt.Errorf("failed to fetch stream %d: %w", stream.Itag, err)
	}
	return nil
}

// formatSelector renders the library's selector expression pinning one
// exact stream by itag.
func formatSelector(itag int) string {
	return "itag=" + strconv.Itoa(itag)
}

// descriptorFromFormat maps one library format record to a descriptor.
// The boolean is false for formats that are neither audio nor video.
func descriptorFromFormat(f types.Format) (model.StreamDescriptor, bool) {
	kind, container, muxed := parseMimeType(f.MimeType)

	switch kind {
	case model.KindVideo:
		resolution, fps := parseQualityLabel(f.Quality)
		return model.StreamDescriptor{
			Kind:        model.KindVideo,
			Itag:        f.Itag,
			Container:   container,
			Resolution:  resolution,
			FrameRate:   fps,
			Progressive: muxed,
		}, true

	case model.KindAudio:
		return model.StreamDescriptor{
			Kind:         model.KindAudio,
			Itag:         f.Itag,
			Container:    container,
			AudioBitrate: bitrateLabel(f.Bitrate),
		}, true
	}

	return model.StreamDescriptor{}, false
}

// parseMimeType splits a MIME type such as
//
//	video/mp4; codecs="avc1.640028, mp4a.40.2"
//
// into a stream kind, a container name, and whether both a video and an
// audio codec are present (a progressive, pre-muxed stream).
func parseMimeType(mimeType string) (model.StreamKind, string, bool) {
	base, params, _ := strings.Cut(mimeType, MimeParamSep)
	base = strings.TrimSpace(base)

	var kind model.StreamKind
	switch {
	case strings.HasPrefix(base, MimeVideoPrefix):
		kind = model.KindVideo
	case strings.HasPrefix(base, MimeAudioPrefix):
		kind = model.KindAudio
	default:
		return "", "", false
	}

	container := base[strings.Index(base, "/")+1:]
	muxed := kind == model.KindVideo && strings.Contains(params, CodecsListSep)
	return kind, container, muxed
}

// parseQualityLabel splits a label such as "1080p" or "720p60" into the
// resolution part and an optional frame rate. Labels without the "<n>p"
// shape (including legacy names like "hd1080") are normalized from their
// digits; anything non-numeric yields an empty resolution.
func parseQualityLabel(label string) (string, float64) {
	label = strings.TrimSpace(label)
	if label == "" {
		return "", 0
	}

	if res, fpsPart, found := strings.Cut(label, "p"); found {
		if height, err := strconv.Atoi(res); err == nil {
			fps := 0.0
			if fpsPart != "" {
				if parsed, err := strconv.Atoi(fpsPart); err == nil {
					fps = float64(parsed)
				}
			}
			return fmt.Sprintf("%dp", height), fps
		}
	}

	// Legacy labels: keep trailing digits ("hd1080" → "1080p").
	digits := strings.TrimLeftFunc(label, func(r rune) bool { return r < '0' || r > '9' })
	if height, err := strconv.Atoi(digits); err == nil && height > 0 {
		return fmt.Sprintf("%dp", height), 0
	}
	return "", 0
}

// bitrateLabel renders a bits-per-second rate as the "<n>kbps" form the
// selector parses. Zero or negative rates yield an empty label.
func bitrateLabel(bps int) string {
	if bps <= 0 {
		return ""
	}
	return fmt.Sprintf("%dkbps", bps/1000)
}
