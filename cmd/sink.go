package cmd

import (
	"github.com/seal-io/bendump/pkg/config"
	"github.com/seal-io/bendump/pkg/diag"
)

// newSink selects the diagnostic sink named by the configuration,
// the returned function releases it.
func newSink(stdio IO, cfg *config.Config) (diag.Sink, func() error, error) {
	nop := func() error { return nil }

	switch cfg.ErrorsTo {
	case config.ErrorsToStderr:
		return diag.NewWriter(stdio.Stderr, cfg.MaxErrors), nop, nil
	case config.ErrorsToStdout:
		return diag.NewWriter(stdio.Stdout, cfg.MaxErrors), nop, nil
	case config.ErrorsToDiscard:
		return diag.Discard(cfg.MaxErrors), nop, nil
	}

	s, err := diag.NewFile(stdio.Fs, cfg.ErrorsTo, cfg.MaxErrors)
	if err != nil {
		return nil, nil, err
	}

	return s, s.Close, nil
}
