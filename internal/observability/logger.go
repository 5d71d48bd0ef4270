// Package observability wires structured logging for the server.
//
// All log output goes to stderr: stdout carries the MCP protocol stream
// and must stay clean.
package observability

import (
	"io"
	"os"

	"github.com/rs/zerolog"

	"github.com/EdgeCaseLabs/ynab-mcp/internal/types"
)

// NewLogger builds a zerolog logger writing to stderr at the given level.
// Unknown levels fall back to info.
func NewLogger(level string) zerolog.Logger {
	return newLogger(os.Stderr, level)
}

func newLogger(w io.Writer, level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}
	return zerolog.New(w).Level(lvl).With().Timestamp().Logger()
}

// Adapter exposes a zerolog.Logger through the types.Logger interface
// expected by the API client.
type Adapter struct {
	log zerolog.Logger
}

// NewAdapter wraps a zerolog logger for use as a types.Logger.
func NewAdapter(log zerolog.Logger) *Adapter {
	return &Adapter{log: log}
}

var _ types.Logger = (*Adapter)(nil)

func (a *Adapter) Debug(msg string, keysAndValues ...interface{}) {
	a.emit(a.log.Debug(), msg, keysAndValues)
}

func (a *Adapter) Info(msg string, keysAndValues ...interface{}) {
	a.emit(a.log.Info(), msg, keysAndValues)
}

func (a *Adapter) Warn(msg string, keysAndValues ...interface{}) {
	a.emit(a.log.Warn(), msg, keysAndValues)
}

func (a *Adapter) Error(msg string, keysAndValues ...interface{}) {
	a.emit(a.log.Error(), msg, keysAndValues)
}

func (a *Adapter) emit(ev *zerolog.Event, msg string, keysAndValues []interface{}) {
	for i := 0; i+1 < len(keysAndValues); i += 2 {
		key, ok := keysAndValues[i].(string)
		if !ok {
			continue
		}
		ev = ev.Interface(key, keysAndValues[i+1])
	}
	ev.Msg(msg)
}
