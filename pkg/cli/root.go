package cli

import (
	"github.com/spf13/cobra"
)

// NewRootCommand assembles the cartlint command tree.
func NewRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:     "cartlint",
		Short:   "Validate cartridge documents against stack profiles",
		Long:    "cartlint checks cartridge documents for front matter contract violations,\nmissing or misordered sections, forbidden technology references, and\nquality-gate coverage.",
		Version: GetVersion(),

		// Findings are the output; usage spam on a failed validation helps
		// nobody.
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(NewValidateCommand())
	root.AddCommand(NewStacksCommand())
	root.AddCommand(NewVersionCommand())

	return root
}
