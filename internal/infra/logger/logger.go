// Package logger provides structured logging using zerolog.
package logger

import (
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/rs/zerolog"
	zlog "github.com/rs/zerolog/log"
)

// Outputs other than a file path.
const (
	OutputStdout  = "stdout"
	OutputStderr  = "stderr"
	OutputDiscard = "discard"
)

// Config represents logger configuration.
type Config struct {
	Output string // "stdout", "stderr", "discard", or a file path
	Level  string // "trace", "debug", "info", "warn", "error"
}

var (
	fileMu sync.Mutex
	file   *os.File
)

// Init initializes the global zerolog logger with the given configuration.
// Console output is colored; file output is JSON. Caller info is added at
// debug level and below.
func Init(cfg Config) error {
	level := parseLevel(cfg.Level)
	output := strings.ToLower(cfg.Output)

	zerolog.SetGlobalLevel(level)
	zerolog.TimeFieldFormat = time.TimeOnly
	zerolog.CallerMarshalFunc = func(pc uintptr, file string, line int) string {
		parts := strings.Split(file, string(filepath.Separator))
		if len(parts) > 1 {
			return filepath.Join(parts[len(parts)-2:]...) + ":" + strconv.Itoa(line)
		}
		return filepath.Base(file) + ":" + strconv.Itoa(line)
	}
	withCaller := level <= zerolog.DebugLevel

	var logger zerolog.Logger
	switch output {
	case OutputDiscard:
		logger = zerolog.New(io.Discard)

	case OutputStdout, OutputStderr, "":
		var w io.Writer = os.Stderr
		if output == OutputStdout {
			w = os.Stdout
		}
		console := zerolog.ConsoleWriter{Out: w, TimeFormat: time.TimeOnly}
		if withCaller {
			console.PartsOrder = []string{"time", "level", "message", "caller"}
			console.FormatCaller = func(i interface{}) string {
				s, _ := i.(string)
				return "(" + s + ")"
			}
			logger = zerolog.New(console).With().Timestamp().Caller().Logger()
		} else {
			logger = zerolog.New(console).With().Timestamp().Logger()
		}

	default:
		f, err := openFile(cfg.Output)
		if err != nil {
			return err
		}
		ctx := zerolog.New(f).With().Timestamp()
		if withCaller {
			ctx = ctx.Caller()
		}
		logger = ctx.Logger()
	}

	zerolog.DefaultContextLogger = &logger
	zlog.Logger = logger
	return nil
}

func openFile(path string) (*os.File, error) {
	fileMu.Lock()
	defer fileMu.Unlock()

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open log file %s", path)
	}
	if file != nil {
		_ = file.Close()
	}
	file = f
	return f, nil
}

// Close closes the log file opened by Init, if any.
func Close() error {
	fileMu.Lock()
	defer fileMu.Unlock()
	if file == nil {
		return nil
	}
	err := file.Close()
	file = nil
	return err
}

// parseLevel parses the log level string.
func parseLevel(level string) zerolog.Level {
	switch strings.ToLower(level) {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "info", "":
		return zerolog.InfoLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}
