package diag

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/afero"
)

const stoppedMessage = "Too many errors, stopped..."

// WriterSink writes every message to an io.Writer.
type WriterSink struct {
	budget

	w      io.Writer
	closer io.Closer
}

// NewWriter returns a Sink writing messages to w,
// it stops after limit messages.
func NewWriter(w io.Writer, limit int) *WriterSink {
	return &WriterSink{
		budget: budget{limit: limit},
		w:      w,
	}
}

// NewFile returns a Sink writing messages to the file at the given path,
// the file is created or truncated.
func NewFile(fs afero.Fs, path string, limit int) (*WriterSink, error) {
	f, err := fs.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create error file %q: %w", path, err)
	}

	s := NewWriter(f, limit)
	s.closer = f

	return s, nil
}

func (s *WriterSink) Report(msg string) bool {
	ok := s.spend()

	// Messages are best effort, a broken writer must not hide the failure itself.
	_, _ = io.WriteString(s.w, terminated(msg))

	if !ok {
		_, _ = io.WriteString(s.w, stoppedMessage+"\n")
	}

	return ok
}

// Close closes the underlying file, if any.
func (s *WriterSink) Close() error {
	if s.closer == nil {
		return nil
	}

	return s.closer.Close()
}

func terminated(msg string) string {
	if strings.HasSuffix(msg, "\n") {
		return msg
	}

	return msg + "\n"
}
