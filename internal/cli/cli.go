// Package cli implements the fibseq command: parse one index argument,
// generate that many Fibonacci numbers, and print them one per line.
package cli

import (
	"io"
	"path/filepath"
	"time"

	"go.uber.org/zap"

	"github.com/kjstillabower/fibseq/internal/config"
	"github.com/kjstillabower/fibseq/internal/observability"
	"github.com/kjstillabower/fibseq/internal/sequence"
	"github.com/kjstillabower/fibseq/internal/validation"
)

// Exit codes returned by Run.
const (
	ExitOK    = 0
	ExitError = 1
	ExitUsage = 2
)

// Result labels for observability.RecordRun.
const (
	resultSuccess      = "success"
	resultUsage        = "usage"
	resultInvalidIndex = "invalid_index"
	resultAllocation   = "allocation"
	resultOutput       = "output"
)

const defaultProgramName = "fibseq"

// Run executes the command with the full argv (args[0] is the program name)
// and returns the process exit code. Sequence values go to stdout; progress,
// usage and errors go to stderr. A nil cfg means config.Default().
func Run(args []string, stdout, stderr io.Writer, cfg *config.Config) int {
	if cfg == nil {
		cfg = config.Default()
	}
	logger := observability.NewLogger(stderr, cfg.LogLevel, cfg.LogFormat)
	code, result := run(args, stdout, logger, cfg)
	observability.RecordRun(result)
	if err := observability.FlushTelemetry(logger, cfg.MetricsTextfile); err != nil {
		logger.Warn("telemetry flush", zap.Error(err))
	}
	return code
}

func run(args []string, stdout io.Writer, logger *zap.Logger, cfg *config.Config) (int, string) {
	if len(args) != 2 {
		logger.Error("Usage: " + programName(args) + " <index>")
		return ExitUsage, resultUsage
	}

	n, err := validation.ParseIndex(args[1], cfg.MaxIndex)
	if err != nil {
		logger.Error("invalid index", zap.Error(err))
		return ExitError, resultInvalidIndex
	}

	sugar := logger.Sugar()
	start := time.Now()
	buf, err := sequence.Generate(n, func(i int) {
		sugar.Infof("Calculating index %d", i)
	})
	if err != nil {
		logger.Error("allocate sequence", zap.Int("length", n), zap.Error(err))
		return ExitError, resultAllocation
	}
	elapsed := time.Since(start)
	computed := sequence.Calculations(n)
	observability.RecordGeneration(n, computed, elapsed)

	if _, err := buf.WriteTo(stdout); err != nil {
		logger.Error("write output", zap.Error(err))
		return ExitError, resultOutput
	}

	sugar.Debugf("%d calculations in %.6f seconds", computed, elapsed.Seconds())
	return ExitOK, resultSuccess
}

func programName(args []string) string {
	if len(args) == 0 || args[0] == "" {
		return defaultProgramName
	}
	return filepath.Base(args[0])
}
