package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/seal-io/bendump/pkg/element"
	"github.com/seal-io/bendump/utils/logging"
)

// Format selects the output of Write.
type Format string

const (
	FormatText Format = "text"
	FormatHCL  Format = "hcl"
)

// ParseFormat returns the Format named by the given string,
// an empty string means FormatText.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case "", FormatText:
		return FormatText, nil
	case FormatHCL:
		return f, nil
	}

	return "", fmt.Errorf("unknown format %q, expected %q or %q", s, FormatText, FormatHCL)
}

type Options struct {
	Format Format
	// Indent is the text indentation unit, empty means DefaultIndent.
	Indent string
}

// Write renders the given tree into the given writer,
// the output always ends with a newline.
func Write(w io.Writer, e element.Element, opts Options) error {
	f, err := ParseFormat(string(opts.Format))
	if err != nil {
		return err
	}

	var out []byte

	switch f {
	case FormatHCL:
		out = HCL(e)
	default:
		out = []byte(Text(e, opts.Indent))
	}

	if len(out) == 0 || out[len(out)-1] != '\n' {
		out = append(out, '\n')
	}

	logging.Named("render").Debug("writing", "format", f, "bytes", len(out))

	_, err = w.Write(out)

	return err
}
