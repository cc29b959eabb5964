package observability

import (
	"fmt"

	"go.uber.org/zap"
)

// FlushTelemetry writes the metrics textfile, when one is configured, and flushes logs.
// Call once after the run's output has been written.
// Log sync errors are ignored: syncing a terminal or pipe stderr fails with EINVAL on Linux.
func FlushTelemetry(logger *zap.Logger, textfile string) error {
	var err error
	if textfile != "" {
		if werr := WriteMetricsTextfile(textfile); werr != nil {
			err = fmt.Errorf("write metrics textfile: %w", werr)
		}
	}
	if logger != nil {
		_ = logger.Sync()
	}
	return err
}
