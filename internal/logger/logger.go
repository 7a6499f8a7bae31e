package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"kanadrill-go/internal/config"
)

// New builds the application logger. Production uses the JSON encoder,
// everything else the development console encoder. Output goes to the
// configured log file since stdout is owned by the terminal UI.
func New(cfg *config.Config) (*zap.Logger, error) {
	var zc zap.Config
	if cfg.Env == "production" {
		zc = zap.NewProductionConfig()
	} else {
		zc = zap.NewDevelopmentConfig()
	}

	level, err := zapcore.ParseLevel(cfg.Log.Level)
	if err != nil {
		return nil, err
	}
	zc.Level = zap.NewAtomicLevelAt(level)

	out := cfg.Log.File
	if out == "" {
		out = "stderr"
	}
	zc.OutputPaths = []string{out}
	zc.ErrorOutputPaths = []string{out}

	return zc.Build()
}
