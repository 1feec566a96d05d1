package config

import (
	"strings"

	"github.com/seal-io/bendump/pkg/diag"
	"github.com/seal-io/bendump/pkg/parser"
	"github.com/seal-io/bendump/pkg/render"
)

// Where diagnostics go unless errors_to names a file.
const (
	ErrorsToStderr  = "stderr"
	ErrorsToStdout  = "stdout"
	ErrorsToDiscard = "discard"
)

type Config struct {
	// RequiredVersion is the raw version constraint, empty if unset.
	RequiredVersion string
	Format          render.Format
	// Indent is the number of spaces per level of the text format.
	Indent    int
	MaxDepth  int
	MaxErrors int
	ErrorsTo  string
}

// Default returns the configuration used without any configuration file.
func Default() *Config {
	return &Config{
		Format:    render.FormatText,
		Indent:    len(render.DefaultIndent),
		MaxDepth:  parser.DefaultMaxDepth,
		MaxErrors: diag.DefaultLimit,
		ErrorsTo:  ErrorsToStderr,
	}
}

// RenderOptions returns the options passed to render.Write.
func (c *Config) RenderOptions() render.Options {
	return render.Options{
		Format: c.Format,
		Indent: strings.Repeat(" ", c.Indent),
	}
}
