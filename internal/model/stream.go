package model

// StreamKind distinguishes video and audio tracks in a descriptor list.
type StreamKind string

const (
	// KindVideo marks a descriptor carrying a video track.
	KindVideo StreamKind = "video"

	// KindAudio marks a descriptor carrying an audio track.
	KindAudio StreamKind = "audio"
)

// String returns the string representation of StreamKind.
func (k StreamKind) String() string {
	return string(k)
}

// StreamDescriptor describes one fetchable track option of a source video.
// A progressive video descriptor already contains muxed audio; a
// non-progressive one needs a separate audio track merged in.
type StreamDescriptor struct {
	Kind         StreamKind
	Itag         int    // provider-opaque handle used to fetch this exact stream
	Container    string // file container, e.g. "mp4", "webm"
	Resolution   string // video only, e.g. "1080p"; empty when unknown
	FrameRate    float64
	AudioBitrate string // audio only, e.g. "128kbps"; empty when unknown
	Progressive  bool   // video only: audio+video pre-muxed
}

// IsVideo reports whether the descriptor carries a video track.
func (d StreamDescriptor) IsVideo() bool {
	return d.Kind == KindVideo
}

// IsAudio reports whether the descriptor carries an audio track.
func (d StreamDescriptor) IsAudio() bool {
	return d.Kind == KindAudio
}

// VideoMeta is the provider lookup result: identifying metadata plus the
// enumerable list of stream options.
type VideoMeta struct {
	URL      string
	Title    string
	Duration float64 // total source duration in seconds
	Streams  []StreamDescriptor
}
