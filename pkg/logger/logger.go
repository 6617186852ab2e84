package logger

import (
	"os"
	"strings"
	"sync"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
)

var (
	log  zerolog.Logger
	once sync.Once
)

// Init configures the global logger. Level comes from LOREALBOT_LOG_LEVEL when
// level is empty. Output is console-formatted on a TTY, JSON otherwise.
func Init(level string) {
	once.Do(func() {
		if level == "" {
			level = os.Getenv("LOREALBOT_LOG_LEVEL")
		}
		lvl, err := zerolog.ParseLevel(strings.ToLower(level))
		if err != nil || level == "" {
			lvl = zerolog.InfoLevel
		}

		var out zerolog.Logger
		if isatty.IsTerminal(os.Stderr.Fd()) {
			out = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr})
		} else {
			out = zerolog.New(os.Stderr)
		}
		log = out.Level(lvl).With().Timestamp().Logger()
	})
}

func event(e *zerolog.Event, component, msg string, fields map[string]interface{}) {
	e = e.Str("component", component)
	for k, v := range fields {
		e = e.Interface(k, v)
	}
	e.Msg(msg)
}

// InfoCF logs an info message for a component with structured fields.
func InfoCF(component, msg string, fields map[string]interface{}) {
	Init("")
	event(log.Info(), component, msg, fields)
}

// WarnCF logs a warning for a component with structured fields.
func WarnCF(component, msg string, fields map[string]interface{}) {
	Init("")
	event(log.Warn(), component, msg, fields)
}

// ErrorCF logs an error for a component with structured fields.
func ErrorCF(component, msg string, fields map[string]interface{}) {
	Init("")
	event(log.Error(), component, msg, fields)
}

// DebugCF logs a debug message for a component with structured fields.
func DebugCF(component, msg string, fields map[string]interface{}) {
	Init("")
	event(log.Debug(), component, msg, fields)
}
