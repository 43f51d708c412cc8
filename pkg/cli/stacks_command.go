package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/cartforge/cartlint/pkg/console"
	"github.com/cartforge/cartlint/pkg/registry"
)

// NewStacksCommand creates the stacks command
func NewStacksCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stacks",
		Short: "List the stack profiles in the registry",
		Long: `List every stack profile the registry resolves, with the technologies
cartridge documents bound to that stack are expected to mention.

Examples:
  cartlint stacks                       # Table of registered stacks
  cartlint stacks --stacks-dir ./profiles
  cartlint stacks --json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			stacksDir, _ := cmd.Flags().GetString("stacks-dir")
			jsonOutput, _ := cmd.Flags().GetBool("json")

			if !cmd.Flags().Changed("stacks-dir") {
				if env := os.Getenv(stacksDirEnvVar); env != "" {
					stacksDir = env
				}
			}

			reg, err := registry.Load(stacksDir)
			if err != nil {
				return err
			}
			for _, problem := range reg.Problems() {
				fmt.Fprintln(cmd.ErrOrStderr(), console.FormatErrorMessage(problem))
			}

			out := cmd.OutOrStdout()

			if jsonOutput {
				profiles := make([]*registry.StackProfile, 0, reg.Len())
				for _, id := range reg.IDs() {
					profile, _ := reg.Resolve(id)
					profiles = append(profiles, profile)
				}
				encoder := json.NewEncoder(out)
				encoder.SetIndent("", "  ")
				return encoder.Encode(profiles)
			}

			if reg.Len() == 0 {
				fmt.Fprintln(out, console.FormatInfoMessage(fmt.Sprintf("no stack profiles found in %s", stacksDir)))
				return nil
			}

			table := console.TableConfig{
				Title:   fmt.Sprintf("Stack profiles (%s)", stacksDir),
				Headers: []string{"ID", "Framework", "Language", "ORM", "API", "Forbidden"},
			}
			for _, id := range reg.IDs() {
				profile, _ := reg.Resolve(id)
				table.Rows = append(table.Rows, []string{
					profile.ID,
					profile.Framework,
					profile.Language,
					profile.ORM,
					profile.APIPattern,
					strconv.Itoa(len(profile.Forbidden)),
				})
			}
			fmt.Fprint(out, console.RenderTable(table))
			return nil
		},
	}

	cmd.Flags().StringP("stacks-dir", "s", defaultStacksDir, "Directory containing stack profile YAML files")
	cmd.Flags().BoolP("json", "j", false, "Output stack profiles in JSON format")

	return cmd
}
