package logger

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	// Logger is the process-wide logger. It is a no-op until Initialize runs.
	Logger = zap.NewNop()
	// JSONOutput records whether Initialize chose the production encoder.
	JSONOutput bool
)

// Level maps the --verbose flag to a zap level.
func Level(verbose bool) zapcore.Level {
	if verbose {
		return zapcore.DebugLevel
	}
	return zapcore.InfoLevel
}

// Initialize replaces Logger. JSON output uses zap's production config;
// otherwise a console encoder writes to stderr so tables on stdout stay clean.
func Initialize(jsonOutput, verbose bool) error {
	JSONOutput = jsonOutput
	level := zap.NewAtomicLevelAt(Level(verbose))

	if jsonOutput {
		config := zap.NewProductionConfig()
		config.Level = level
		config.OutputPaths = []string{"stderr"}
		l, err := config.Build()
		if err != nil {
			return err
		}
		Logger = l
		return nil
	}

	encoderConfig := zap.NewDevelopmentEncoderConfig()
	encoderConfig.TimeKey = ""
	encoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	Logger = zap.New(zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderConfig),
		zapcore.Lock(os.Stderr),
		level,
	))
	return nil
}

// Named returns a child of Logger for one component.
func Named(name string) *zap.Logger {
	return Logger.Named(name)
}

// Cleanup flushes buffered entries.
func Cleanup() {
	_ = Logger.Sync()
}
