package cli

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
)

// cliVersion is stamped at build time via
// -ldflags "-X github.com/cartforge/cartlint/pkg/cli.cliVersion=v1.2.3".
var cliVersion = "dev"

// SetVersionInfo overrides the reported version.
func SetVersionInfo(version string) {
	if version != "" {
		cliVersion = version
	}
}

// GetVersion returns the version string the CLI reports.
func GetVersion() string {
	return cliVersion
}

// NewVersionCommand creates the version command
func NewVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the cartlint version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "cartlint %s (%s/%s)\n", GetVersion(), runtime.GOOS, runtime.GOARCH)
		},
	}
}
