package observability

import (
	"io"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewLogger builds the diagnostics logger writing to w.
//
// The "plain" format emits only the message, one entry per line, so progress
// and usage lines keep their literal form; fields on error entries follow a tab.
// The "json" format uses the production encoder and tags every entry with a run_id.
func NewLogger(w io.Writer, level, format string) *zap.Logger {
	sink := zapcore.AddSync(w)
	lvl := parseLogLevel(level)

	if strings.EqualFold(strings.TrimSpace(format), "json") {
		encCfg := zap.NewProductionEncoderConfig()
		encCfg.TimeKey = "timestamp"
		encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
		core := zapcore.NewCore(zapcore.NewJSONEncoder(encCfg), sink, lvl)
		return zap.New(core, zap.Fields(zap.String("run_id", uuid.New().String())))
	}

	encCfg := zapcore.EncoderConfig{
		MessageKey: "msg",
		LineEnding: zapcore.DefaultLineEnding,
	}
	return zap.New(zapcore.NewCore(zapcore.NewConsoleEncoder(encCfg), sink, lvl))
}

func parseLogLevel(s string) zap.AtomicLevel {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "DEBUG":
		return zap.NewAtomicLevelAt(zap.DebugLevel)
	case "WARN":
		return zap.NewAtomicLevelAt(zap.WarnLevel)
	case "ERROR":
		return zap.NewAtomicLevelAt(zap.ErrorLevel)
	default:
		return zap.NewAtomicLevelAt(zap.InfoLevel)
	}
}
