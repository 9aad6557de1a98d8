// Package logger holds the portal's shared zerolog logger. main calls Init
// once; packages that log take it through Get or Component.
package logger

import (
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// Options configures the shared logger.
type Options struct {
	Level   string // trace, debug, info, warn or error; anything else is info
	Pretty  bool   // console output for local runs
	Output  io.Writer
	Service string
	Env     string
}

var (
	mu    sync.Mutex
	once  sync.Once
	root  zerolog.Logger
	ready bool
)

// Init builds the shared logger. Calls after the first return the existing one.
func Init(opts Options) zerolog.Logger {
	once.Do(func() {
		root = build(opts)
		mu.Lock()
		ready = true
		mu.Unlock()
	})
	return root
}

func build(opts Options) zerolog.Logger {
	zerolog.TimeFieldFormat = time.RFC3339Nano

	w := opts.Output
	if w == nil {
		w = os.Stdout
	}
	if opts.Pretty {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
	}

	level := parseLevel(opts.Level)
	zerolog.SetGlobalLevel(level)

	fields := zerolog.New(w).Level(level).With().Timestamp().Caller()
	if opts.Service != "" {
		fields = fields.Str("service", opts.Service)
	}
	if opts.Env != "" {
		fields = fields.Str("env", opts.Env)
	}
	return fields.Logger()
}

// Get returns the shared logger and panics when Init has not run.
func Get() zerolog.Logger {
	mu.Lock()
	defer mu.Unlock()
	if !ready {
		panic("logger: Get() called before Init()")
	}
	return root
}

// Component returns the shared logger tagged with a component name.
func Component(name string) zerolog.Logger {
	return Get().With().Str("component", name).Logger()
}

// Reset clears the shared logger so tests can Init again.
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	once = sync.Once{}
	root = zerolog.Logger{}
	ready = false
}

func parseLevel(s string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	}
	return zerolog.InfoLevel
}
