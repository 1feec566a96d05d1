package logging

import (
	hclog "github.com/hashicorp/go-hclog"
)

func Debug(msg string, args ...any) {
	lg.Debug(msg, args...)
}

func Named(name string) hclog.Logger {
	return lg.Named(name)
}
