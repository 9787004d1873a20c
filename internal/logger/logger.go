// Package logger configures the process-wide op/go-logging logger.
package logger

import (
	"io"
	stdlog "log"
	"strings"

	"github.com/op/go-logging"
)

const moduleName = "mediabox"

var levels = map[string]logging.Level{
	"CRITICAL": logging.CRITICAL,
	"ERROR":    logging.ERROR,
	"WARNING":  logging.WARNING,
	"NOTICE":   logging.NOTICE,
	"INFO":     logging.INFO,
	"DEBUG":    logging.DEBUG,
}

// ParseLevel maps a level name to a logging.Level. Unknown names fall back to INFO.
func ParseLevel(name string) logging.Level {
	if lvl, ok := levels[strings.ToUpper(strings.TrimSpace(name))]; ok {
		return lvl
	}
	return logging.INFO
}

// New creates the service logger writing human-readable lines to w.
func New(w io.Writer, level logging.Level) *logging.Logger {
	log := logging.MustGetLogger(moduleName)
	backend := logging.NewLogBackend(w, "", stdlog.LstdFlags|stdlog.LUTC)
	formatted := logging.NewBackendFormatter(backend, logging.MustStringFormatter("[%{level}] %{message}"))
	leveled := logging.AddModuleLevel(formatted)
	leveled.SetLevel(level, moduleName)
	log.SetBackend(leveled)
	return log
}

// Discard returns a logger that drops everything. Used by tests.
func Discard() *logging.Logger {
	return New(io.Discard, logging.CRITICAL)
}
