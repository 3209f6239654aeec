package jsonget

import "log/slog"

// SetLogger sets up the logger used throughout the package. A nil logger
// restores the default.
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.Default()
	}
	logger = l
}

var logger = slog.Default()
