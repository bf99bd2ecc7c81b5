package clip

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/clipcut/clipcut/internal/config"
	"github.com/clipcut/clipcut/internal/encode"
	"github.com/clipcut/clipcut/internal/model"
	"github.com/clipcut/clipcut/internal/platform"
	"github.com/clipcut/clipcut/internal/provider"
	"github.com/clipcut/clipcut/internal/selector"
)

// Service orchestrates clip extraction runs.
type Service struct {
	provider provider.Provider
	runner   encode.Runner
	cfg      *config.Config
	log      *zap.Logger
}

// NewService creates an orchestrator over the given collaborators.
func NewService(p provider.Provider, r encode.Runner, cfg *config.Config, log *zap.Logger) *Service {
	return &Service{
		provider: p,
		runner:   r,
		cfg:      cfg,
		log:      log,
	}
}

// Run executes one clip extraction and always returns a result record;
// errors from any collaborator are normalized into a failure result and
// never propagate. The temp workspace is removed on every exit path.
func (s *Service) Run(ctx context.Context, req model.ClipRequest) (res model.ClipResult) {
	defer func() {
		if r := recover(); r != nil {
			s.log.Error("run panicked", zap.Any("panic", r))
			res = model.FailureMessage(fmt.Sprintf("unexpected failure: %v", r))
		}
	}()

	ws, err := platform.NewWorkspace()
	if err != nil {
		return model.Failure(err)
	}
	defer func() {
		if err := ws.Cleanup(); err != nil {
			s.log.Warn("workspace cleanup failed", zap.String("dir", ws.Dir), zap.Error(err))
		}
	}()

	meta, err := s.provider.Lookup(ctx, req.SourceURL)
	if err != nil {
		return model.Failure(err)
	}
	s.log.Info("resolved video",
		zap.String("title", meta.Title),
		zap.Float64("duration", meta.Duration),
		zap.Int("streams", len(meta.Streams)),
	)

	// Only the end of the range is clamped; the start is passed through
	// untouched and an empty range surfaces as an encoder failure.
	end := req.End
	if end > meta.Duration {
		end = meta.Duration
	}

	video, err := selector.SelectVideo(meta.Streams, s.cfg.Selector.TargetResolution)
	if err != nil {
		return model.Failure(err)
	}
	audio, hasAudio := selector.SelectAudio(meta.Streams)
	s.log.Info("selected streams",
		zap.String("resolution", video.Resolution),
		zap.Bool("progressive", video.Progressive),
		zap.Bool("separate_audio", hasAudio),
	)

	videoPath := ws.Path(platform.VideoFileName)
	if err := s.provider.Fetch(ctx, req.SourceURL, video, videoPath); err != nil {
		return model.Failure(err)
	}

	audioPath := ""
	if hasAudio {
		audioPath = ws.Path(platform.AudioFileName)
		if err := s.provider.Fetch(ctx, req.SourceURL, audio, audioPath); err != nil {
			return model.Failure(err)
		}
	}

	if err := platform.EnsureOutputDirectory(req.OutputPath); err != nil {
		return model.Failure(err)
	}

	job := encode.Job{
		VideoPath:    videoPath,
		AudioPath:    audioPath,
		SubtitlePath: req.SubtitlePath,
		Start:        req.Start,
		Duration:     end - req.Start,
		OutputPath:   req.OutputPath,
	}
	args := encode.BuildArgs(s.cfg.Encode, job)

	s.log.Info("encoding clip",
		zap.Float64("start", req.Start),
		zap.Float64("clip_duration", job.Duration),
		zap.String("output", req.OutputPath),
	)
	if err := s.runner.Run(ctx, s.cfg.Encode.FFmpegPath, args...); err != nil {
		return model.Failure(err)
	}

	bitrate := model.AudioBitrateNone
	if hasAudio {
		bitrate = audio.AudioBitrate
	}

	return model.ClipResult{
		Success:      true,
		OutputPath:   req.OutputPath,
		Title:        meta.Title,
		Resolution:   video.Resolution,
		Duration:     end - req.Start,
		VideoFPS:     video.FrameRate,
		AudioBitrate: bitrate,
	}
}
