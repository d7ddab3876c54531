// Package logger builds the operational logger used by the driver and the CLI.
//
// Logging is off unless --verbose (console, stderr) or --log-json (JSON) is given.
// The lexer, parser and renderers never log.
package logger

import (
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config selects the encoder and level.
type Config struct {
	Verbose bool      // console output at debug level
	JSON    bool      // production JSON output at info level (debug with Verbose)
	Output  io.Writer // nil - stderr
}

// Enabled reports whether the config produces any output.
func (c Config) Enabled() bool {
	return c.Verbose || c.JSON
}

// New returns a no-op logger for a disabled config.
func New(cfg Config) *zap.SugaredLogger {
	if !cfg.Enabled() {
		return Nop()
	}
	out := cfg.Output
	if out == nil {
		out = os.Stderr
	}

	level := zapcore.InfoLevel
	if cfg.Verbose {
		level = zapcore.DebugLevel
	}

	var enc zapcore.Encoder
	if cfg.JSON {
		enc = zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
	} else {
		ec := zap.NewDevelopmentEncoderConfig()
		ec.TimeKey = ""
		ec.CallerKey = ""
		enc = zapcore.NewConsoleEncoder(ec)
	}
	core := zapcore.NewCore(enc, zapcore.AddSync(out), level)
	return zap.New(core).Sugar()
}

// Nop discards everything.
func Nop() *zap.SugaredLogger {
	return zap.NewNop().Sugar()
}
