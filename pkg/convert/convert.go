package convert

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/seal-io/bendump/pkg/diag"
	"github.com/seal-io/bendump/pkg/element"
	"github.com/seal-io/bendump/pkg/lexer"
	"github.com/seal-io/bendump/pkg/parser"
	"github.com/seal-io/bendump/pkg/render"
	"github.com/seal-io/bendump/utils/logging"
)

type Options struct {
	// MaxDepth bounds the nesting of the document, non-positive means parser.DefaultMaxDepth.
	MaxDepth int
	// Select addresses the rendered element, empty means the root.
	Select element.Pointer
	Render render.Options
}

// Convert scans and parses the Bencode document read from in,
// then renders it into out.
//
// Every lexical or syntactic error is reported to the given sink,
// out is left untouched unless the whole document is valid.
func Convert(ctx context.Context, in io.Reader, out io.Writer, sink diag.Sink, opts Options) error {
	logger := logging.Named("convert")

	tokens, err := lexer.Scan(in, sink)
	if err != nil {
		return err
	}

	logger.Debug("scanned", "tokens", len(tokens))

	if err = ctx.Err(); err != nil {
		return err
	}

	root, err := parser.Parse(tokens, sink, parser.WithMaxDepth(opts.MaxDepth))
	if err != nil {
		return err
	}

	if err = ctx.Err(); err != nil {
		return err
	}

	root, err = element.Select(root, opts.Select)
	if err != nil {
		return fmt.Errorf("error selecting %q: %w", opts.Select, err)
	}

	var buf bytes.Buffer

	err = render.Write(&buf, root, opts.Render)
	if err != nil {
		return fmt.Errorf("error rendering: %w", err)
	}

	_, err = buf.WriteTo(out)
	if err != nil {
		return fmt.Errorf("error writing output: %w", err)
	}

	return nil
}
