package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/cartforge/cartlint/pkg/cli"
	"github.com/cartforge/cartlint/pkg/console"
)

// version is stamped at build time via
// -ldflags "-X main.version=v1.2.3".
var version = "dev"

func main() {
	cli.SetVersionInfo(version)

	if err := cli.NewRootCommand().Execute(); err != nil {
		// Validation findings were already printed; anything else still
		// needs a line.
		if !errors.Is(err, cli.ErrValidationFailed) {
			fmt.Fprintln(os.Stderr, console.FormatErrorMessage(err.Error()))
		}
		os.Exit(1)
	}
}
