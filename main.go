package main

import (
	"os"

	"github.com/spf13/afero"

	"github.com/seal-io/bendump/cmd"
	"github.com/seal-io/bendump/utils/logging"
	"github.com/seal-io/bendump/utils/signals"
	"github.com/seal-io/bendump/utils/version"
)

func main() {
	logging.Debug("starting", "version", version.Get(), "args", os.Args[1:])

	err := cmd.Run(signals.SetupSignalHandler(), cmd.IO{
		Fs:     afero.NewOsFs(),
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}, os.Args[1:])
	if err != nil {
		os.Exit(1)
	}
}
