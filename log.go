package rlnc

// Logger is a minimal structured-logging sink that Source and Sink accept
// through SetLogger. It is intentionally tiny so this package does not need
// to import a logging library itself; the rlnclog package adapts
// github.com/charmbracelet/log to this interface for callers who want it.
//
// A nil Logger (the default) means diagnostics are simply not emitted;
// every code path that would call Debugw checks for nil first, so attaching
// or omitting a Logger never changes Generate's or Solve's return value or
// the resulting Combination/decoder state.
type Logger interface {
	Debugw(msg string, keyvals ...any)
}
