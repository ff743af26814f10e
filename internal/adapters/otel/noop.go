package otel

import (
	"context"
	"time"
)

// NoOpExporter is a render metrics recorder that does nothing.
type NoOpExporter struct{}

// NewNoOpExporter creates a new no-op exporter for graceful degradation.
func NewNoOpExporter() *NoOpExporter {
	return &NoOpExporter{}
}

func (e *NoOpExporter) RecordRender(ctx context.Context, view string, took time.Duration) {}

func (e *NoOpExporter) Close(ctx context.Context) error {
	return nil
}
