package logging

import (
	"io"
	"log"
	"os"
	"strings"
	"syscall"

	hclog "github.com/hashicorp/go-hclog"
)

const (
	envLog     = "BENDUMP_LOG"
	envLogFile = "BENDUMP_LOG_PATH"
)

var (
	lg       hclog.Logger
	lgWriter io.Writer
)

func init() {
	SetLogger(newLogger("bendump"))
}

// Logger returns the global logger.
func Logger() hclog.Logger {
	return lg
}

// SetLogger sets the global logger.
func SetLogger(l hclog.Logger) {
	lg = l
	lgWriter = lg.StandardWriter(&hclog.StandardLoggerOptions{
		InferLevels: true,
	})

	// Redirect the output of the logger.
	log.SetFlags(0)
	log.SetPrefix("")
	log.SetOutput(lgWriter)
}

func newLogger(name string) hclog.Logger {
	lgOutput := io.Writer(os.Stderr)

	if lgPath := os.Getenv(envLogFile); lgPath != "" {
		f, err := os.OpenFile(lgPath, syscall.O_CREAT|syscall.O_RDWR|syscall.O_APPEND, 0o666)
		if err == nil {
			lgOutput = f
		}
	}

	lvl, json := getLogLevel()

	return hclog.New(&hclog.LoggerOptions{
		Name:              name,
		Level:             lvl,
		Output:            lgOutput,
		IndependentLevels: true,
		JSONFormat:        json,
	})
}

func getLogLevel() (hclog.Level, bool) {
	lvl := strings.ToUpper(os.Getenv(envLog))

	return parseLogLevel(lvl), lvl == "JSON"
}

func parseLogLevel(lvl string) hclog.Level {
	switch lvl {
	case "":
		return hclog.Off
	case "JSON":
		lvl = "TRACE"
	}

	for _, l := range []string{
		"TRACE",
		"DEBUG",
		"INFO",
		"WARN",
		"ERROR",
		"OFF",
	} {
		if lvl == l {
			return hclog.LevelFromString(lvl)
		}
	}

	return hclog.Trace
}
