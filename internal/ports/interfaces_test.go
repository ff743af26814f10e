package ports_test

import (
	"testing"

	"github.com/emiliopalmerini/folio/internal/adapters/otel"
	"github.com/emiliopalmerini/folio/internal/adapters/turso"
	"github.com/emiliopalmerini/folio/internal/ports"
)

// Compile-time interface conformance checks.

func TestActivityRepositoryConformance(t *testing.T) {
	var _ ports.ActivityRepository = (*turso.ActivityRepository)(nil)
}

func TestProjectRepositoryConformance(t *testing.T) {
	var _ ports.ProjectRepository = (*turso.ProjectRepository)(nil)
}

func TestRenderMetricsConformance(t *testing.T) {
	var _ ports.RenderMetrics = (*otel.Exporter)(nil)
	var _ ports.RenderMetrics = (*otel.NoOpExporter)(nil)
}
