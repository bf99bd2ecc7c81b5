package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/clipcut/clipcut/internal/clip"
	"github.com/clipcut/clipcut/internal/config"
	"github.com/clipcut/clipcut/internal/encode"
	"github.com/clipcut/clipcut/internal/logger"
	"github.com/clipcut/clipcut/internal/model"
	"github.com/clipcut/clipcut/internal/platform"
	"github.com/clipcut/clipcut/internal/provider"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const usageMessage = "Usage: clipcut <url> <start_time> <end_time> <output_path> [subtitle_path]"

// errUsage marks malformed invocations; it is the only path that exits
// non-zero.
var errUsage = errors.New(usageMessage)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "clipcut <url> <start_time> <end_time> <output_path> [subtitle_path]",
	Short: "Download and re-encode a clip from an online video",
	Long: `clipcut fetches a single online video, selects the best matching
video/audio stream pair, trims the requested time range, and re-encodes the
clip with ffmpeg, optionally burning in subtitles.

The result is always exactly one JSON object on stdout.`,
	Args:          cobra.RangeArgs(4, 5),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runClip,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("clipcut version %s\n", version)
	},
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check external tool availability",
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.Load(configPath)
		if err != nil {
			fmt.Printf("config: FAILED (%v)\n", err)
			return
		}

		if path, err := platform.LookupTool(cfg.Encode.FFmpegPath); err != nil {
			fmt.Printf("ffmpeg: NOT FOUND (%v)\n", err)
		} else {
			fmt.Printf("ffmpeg: %s\n", path)
		}
		fmt.Printf("video codec: %s, audio codec: %s, preset: %s, crf: %d\n",
			cfg.Encode.VideoCodec, cfg.Encode.AudioCodec, cfg.Encode.Preset, cfg.Encode.CRF)
		fmt.Printf("target resolution: %s\n", cfg.Selector.TargetResolution)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to YAML config file")
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(doctorCmd)
}

// runClip performs one extraction run. Everything past argument parsing is
// reported through the JSON result record with exit status 0.
func runClip(cmd *cobra.Command, args []string) error {
	start, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		return errUsage
	}
	end, err := strconv.ParseFloat(args[2], 64)
	if err != nil {
		return errUsage
	}

	req := model.ClipRequest{
		SourceURL:  args[0],
		Start:      start,
		End:        end,
		OutputPath: args[3],
	}
	if len(args) == 5 {
		req.SubtitlePath = args[4]
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return emit(cmd, model.Failure(err))
	}

	log, err := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	if err != nil {
		return emit(cmd, model.Failure(err))
	}
	defer func() { _ = log.Sync() }()

	svc := clip.NewService(provider.NewYTDLPService(), encode.NewExecRunner(), cfg, log)
	return emit(cmd, svc.Run(cmd.Context(), req))
}

// emit writes the single result object, newline-terminated, to stdout.
func emit(cmd *cobra.Command, res model.ClipResult) error {
	fmt.Fprintln(cmd.OutOrStdout(), res.JSON())
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		// Malformed invocation: the usage error is itself reported as the
		// JSON failure shape, with a non-zero exit.
		fmt.Println(model.FailureMessage(usageMessage).JSON())
		os.Exit(1)
	}
}
