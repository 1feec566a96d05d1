package diag

import (
	hclog "github.com/hashicorp/go-hclog"
)

type logged struct {
	Sink

	logger hclog.Logger
}

// Logged decorates the given Sink, tracing every report through the logger.
func Logged(s Sink, logger hclog.Logger) Sink {
	if logger == nil {
		return s
	}

	return &logged{Sink: s, logger: logger}
}

func (l *logged) Report(msg string) bool {
	ok := l.Sink.Report(msg)
	if l.logger.IsDebug() {
		l.logger.Debug("reported diagnostic", "message", msg, "continue", ok)
	}

	return ok
}
