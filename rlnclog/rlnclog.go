// Package rlnclog adapts github.com/charmbracelet/log to the rlnc.Logger
// interface, so Source and Sink diagnostics can be observed with the one
// structured-logging library present in the reference pack this module was
// built alongside, without making rlnc itself depend on it.
package rlnclog

import charmlog "github.com/charmbracelet/log"

// Adapter wraps a *charmlog.Logger to satisfy rlnc.Logger.
type Adapter struct {
	logger *charmlog.Logger
}

// New wraps logger, or charmlog.Default() if logger is nil.
func New(logger *charmlog.Logger) *Adapter {
	if logger == nil {
		logger = charmlog.Default()
	}
	return &Adapter{logger: logger}
}

// Debugw logs msg at debug level with the given alternating key/value
// pairs, satisfying rlnc.Logger.
func (a *Adapter) Debugw(msg string, keyvals ...any) {
	a.logger.Debug(msg, keyvals...)
}
