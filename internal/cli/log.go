// Package cli implements the geosvg command-line interface.
//
// The commands decode geometry text, render it through the pipeline and
// report the result:
//   - render: write an SVG document
//   - bbox: print the view box
//   - inspect: list the decoded members (-i for an interactive browser)
//   - convert: re-encode input as GeoJSON
//   - serve: run the HTTP API
//   - profiles: list the configured style profiles
//   - cache: manage the artifact cache
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging, which also
// routes pipeline and cache hooks to the logger. Loggers are passed through
// context.Context.
package cli

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// newLogger returns a text logger on w with short wall-clock timestamps.
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// progress times one command step.
type progress struct {
	logger *log.Logger
	start  time.Time
}

func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

// done logs msg at info level with the elapsed time, rounded to the
// millisecond, appended to keyvals.
func (p *progress) done(msg string, keyvals ...any) {
	elapsed := time.Since(p.start).Round(time.Millisecond)
	p.logger.Info(msg, append(keyvals, "elapsed", elapsed)...)
}

type ctxKey int

const loggerKey ctxKey = 0

// withLogger attaches l to ctx, tagged with the running command.
func withLogger(ctx context.Context, l *log.Logger, command string) context.Context {
	if command != "" {
		l = l.With("cmd", command)
	}
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext returns the logger attached by withLogger, or
// log.Default.
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}
	return log.Default()
}
