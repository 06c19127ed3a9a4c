package registry

import (
	"github.com/rs/zerolog"

	"github.com/openworkbench/themed/internal/logging"
)

// LogReporter is the default UsageReporter: it records first
// activations in the event log. A telemetry backend can replace it.
type LogReporter struct {
	logger zerolog.Logger
}

// NewLogReporter creates a log-backed usage reporter.
func NewLogReporter() *LogReporter {
	return &LogReporter{logger: logging.Component("usage")}
}

// Report logs a first activation for an extension.
func (r *LogReporter) Report(extensionID string) {
	r.logger.Info().Str("extension", extensionID).Msg("theme contribution activated")
}
