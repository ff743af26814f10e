package ports

import (
	"context"
	"time"
)

// RenderMetrics records page and fragment renders to an observability backend.
type RenderMetrics interface {
	RecordRender(ctx context.Context, view string, took time.Duration)
	// Close flushes pending metrics.
	Close(ctx context.Context) error
}
