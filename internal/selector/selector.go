package selector

import (
	"errors"
	"sort"
	"strconv"
	"strings"

	"github.com/clipcut/clipcut/internal/model"
)

// DefaultTargetResolution is preferred when the caller does not override it.
const DefaultTargetResolution = "1080p"

// ContainerMP4 is the only container eligible for primary video selection.
const ContainerMP4 = "mp4"

// ErrNoSuitableStream is returned when no eligible video stream of any kind
// exists in the descriptor list.
var ErrNoSuitableStream = errors.New("no suitable video stream found")

// SelectVideo picks one video stream. Preference order: non-progressive mp4
// streams, exact target resolution first, then higher resolutions first;
// if no non-progressive mp4 stream exists, the highest-resolution
// progressive mp4 stream is used instead.
func SelectVideo(streams []model.StreamDescriptor, target string) (model.StreamDescriptor, error) {
	if target == "" {
		target = DefaultTargetResolution
	}

	var candidates []model.StreamDescriptor
	for _, s := range streams {
		if s.IsVideo() && s.Container == ContainerMP4 && !s.Progressive {
			candidates = append(candidates, s)
		}
	}

	// Two-key comparator: target-resolution matches sort first, then higher
	// resolutions. Stable sort keeps provider order on ties.
	sort.SliceStable(candidates, func(i, j int) bool {
		mi, mj := matchRank(candidates[i].Resolution, target), matchRank(candidates[j].Resolution, target)
		if mi != mj {
			return mi < mj
		}
		return ResolutionValue(candidates[i].Resolution) > ResolutionValue(candidates[j].Resolution)
	})

	if len(candidates) > 0 {
		return candidates[0], nil
	}

	return selectProgressive(streams)
}

// selectProgressive is the fallback path: the highest-resolution muxed
// audio+video mp4 stream.
func selectProgressive(streams []model.StreamDescriptor) (model.StreamDescriptor, error) {
	var best model.StreamDescriptor
	found := false
	for _, s := range streams {
		if !s.IsVideo() || s.Container != ContainerMP4 || !s.Progressive {
			continue
		}
		if !found || ResolutionValue(s.Resolution) > ResolutionValue(best.Resolution) {
			best = s
			found = true
		}
	}
	if !found {
		return model.StreamDescriptor{}, ErrNoSuitableStream
	}
	return best, nil
}

// SelectAudio picks the highest-bitrate audio stream, preferring mp4
// containers and widening to any container when no mp4 audio exists.
// The second return value is false when the list has no audio at all;
// that is not an error, the caller treats audio as optional.
func SelectAudio(streams []model.StreamDescriptor) (model.StreamDescriptor, bool) {
	var candidates []model.StreamDescriptor
	for _, s := range streams {
		if s.IsAudio() && s.Container == ContainerMP4 {
			candidates = append(candidates, s)
		}
	}
	if len(candidates) == 0 {
		for _, s := range streams {
			if s.IsAudio() {
				candidates = append(candidates, s)
			}
		}
	}
	if len(candidates) == 0 {
		return model.StreamDescriptor{}, false
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return BitrateValue(candidates[i].AudioBitrate) > BitrateValue(candidates[j].AudioBitrate)
	})
	return candidates[0], true
}

func matchRank(resolution, target string) int {
	if resolution != "" && resolution == target {
		return 0
	}
	return 1
}

// ResolutionValue parses the numeric part of a resolution label such as
// "1080p". Missing or unparseable labels count as 0 so they sort last.
func ResolutionValue(resolution string) int {
	v, err := strconv.Atoi(strings.TrimSuffix(resolution, "p"))
	if err != nil {
		return 0
	}
	return v
}

// BitrateValue parses the numeric part of an audio bitrate label such as
// "128kbps". Missing or unparseable labels count as 0.
func BitrateValue(bitrate string) int {
	trimmed := strings.TrimSuffix(bitrate, "kbps")
	v, err := strconv.Atoi(trimmed)
	if err != nil {
		return 0
	}
	return v
}
