package cmd

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/afero"

	"github.com/seal-io/bendump/pkg/config"
	"github.com/seal-io/bendump/pkg/convert"
	"github.com/seal-io/bendump/pkg/diag"
	"github.com/seal-io/bendump/pkg/element"
	"github.com/seal-io/bendump/utils/logging"
	"github.com/seal-io/bendump/utils/set"
	"github.com/seal-io/bendump/utils/version"
)

const usage = `Usage: bendump [-config=<dir>] [-select=<pointer>] <input> <output>

Decodes the Bencode document at <input> and writes it as indented text to <output>.

Options:
  -config=<dir>      Directory holding bendump.hcl or *_bendump.hcl, defaults to the current directory.
  -select=<pointer>  Render only the element at the JSON Pointer, like /info/name.
  -v, --version      Print the version.
`

// ErrUsage is returned when the command line cannot be understood.
var ErrUsage = errors.New("invalid usage")

// IO holds the streams and the filesystem used by Run.
type IO struct {
	Fs     afero.Fs
	Stdout io.Writer
	Stderr io.Writer
}

// Run executes bendump with the given arguments, excluding the program name.
//
// Diagnostics of an invalid document go to the configured sink,
// any other failure is printed to the standard error.
func Run(ctx context.Context, stdio IO, args []string) error {
	err := run(ctx, stdio, args)

	switch {
	case err == nil, errors.Is(err, diag.ErrInvalidInput):
	case errors.Is(err, ErrUsage):
		if err != ErrUsage {
			_, _ = fmt.Fprintf(stdio.Stderr, "Error: %v\n\n", err)
		}

		_, _ = fmt.Fprint(stdio.Stderr, usage)
	default:
		_, _ = fmt.Fprintf(stdio.Stderr, "Error: %v\n", err)
	}

	return err
}

func run(ctx context.Context, stdio IO, args []string) error {
	logger := logging.Named("cmd")

	// Hijack version command.
	as := set.New(args...)
	if as.HasAny("version", "-v", "-version", "--version") {
		_, err := fmt.Fprintf(stdio.Stdout, "Bendump %s\n", version.Get())
		return err
	}

	dir, args, err := extractOption(args, "-config")
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUsage, err)
	}

	sel, args, err := extractOption(args, "-select")
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUsage, err)
	}

	ptr, err := element.ParsePointer(sel)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUsage, err)
	}

	if len(args) < 2 {
		return ErrUsage
	}

	if dir == "" {
		dir = "."
	}

	input, output := args[0], args[1]

	cfg, err := config.Load(stdio.Fs, dir)
	if err != nil {
		return fmt.Errorf("error loading configuration: %w", err)
	}

	sink, closeSink, err := newSink(stdio, cfg)
	if err != nil {
		return err
	}

	defer func() { _ = closeSink() }()

	in, err := stdio.Fs.Open(input)
	if err != nil {
		return fmt.Errorf("error opening input: %w", err)
	}

	defer func() { _ = in.Close() }()

	logger.Debug("converting", "input", input, "output", output, "format", cfg.Format)

	var buf bytes.Buffer

	err = convert.Convert(ctx, in, &buf, diag.Logged(sink, logger), convert.Options{
		MaxDepth: cfg.MaxDepth,
		Select:   ptr,
		Render:   cfg.RenderOptions(),
	})
	if err != nil {
		return err
	}

	err = afero.WriteFile(stdio.Fs, output, buf.Bytes(), 0o644)
	if err != nil {
		return fmt.Errorf("error writing output: %w", err)
	}

	return nil
}
