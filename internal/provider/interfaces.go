package provider

import (
	"context"

	"github.com/clipcut/clipcut/internal/model"
)

// Provider combines metadata lookup and stream fetching. The orchestrator
// depends on this interface so tests can substitute a stub.
type Provider interface {
	// Lookup resolves the video's title, duration, and available streams.
	Lookup(ctx context.Context, url string) (*model.VideoMeta, error)

	// Fetch materializes the bytes of one chosen stream at destPath.
	// It is synchronous and never retried.
	Fetch(ctx context.Context, url string, stream model.StreamDescriptor, destPath string) error
}
