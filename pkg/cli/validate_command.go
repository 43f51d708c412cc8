package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/cartforge/cartlint/pkg/console"
	"github.com/cartforge/cartlint/pkg/linter"
	"github.com/cartforge/cartlint/pkg/logger"
	"github.com/cartforge/cartlint/pkg/registry"
)

var validateLog = logger.New("cli:validate_command")

// stacksDirEnvVar overrides the default registry location when the flag is
// not given.
const stacksDirEnvVar = "CARTLINT_STACKS_DIR"

const defaultStacksDir = "stacks"

// ErrValidationFailed signals a non-zero exit without an extra error line:
// the findings were already printed.
var ErrValidationFailed = errors.New("validation failed")

// NewValidateCommand creates the validate command
func NewValidateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate [cartridge]...",
		Short: "Validate cartridge documents against the stack registry",
		Long: `Validate one or more cartridge documents: front matter contract, required
sections, stack compliance, and quality gates.

If no documents are specified, all *.cartridge.md files under the current
directory are validated.

Examples:
  cartlint validate                          # Validate every cartridge document
  cartlint validate api.cartridge.md         # Validate a specific document
  cartlint validate --stacks-dir ./profiles  # Use a custom stack registry
  cartlint validate --json                   # Output results in JSON format
  cartlint validate --sarif                  # Output results in SARIF format
  cartlint validate --watch api.cartridge.md # Revalidate on every change`,
		RunE: func(cmd *cobra.Command, args []string) error {
			stacksDir, _ := cmd.Flags().GetString("stacks-dir")
			jsonOutput, _ := cmd.Flags().GetBool("json")
			sarifOutput, _ := cmd.Flags().GetBool("sarif")
			watch, _ := cmd.Flags().GetBool("watch")
			jobs, _ := cmd.Flags().GetInt("jobs")
			quiet, _ := cmd.Flags().GetBool("quiet")

			if jsonOutput && sarifOutput {
				return errors.New("--json and --sarif are mutually exclusive")
			}

			if !cmd.Flags().Changed("stacks-dir") {
				if env := os.Getenv(stacksDirEnvVar); env != "" {
					stacksDir = env
				}
			}

			validateLog.Printf("Running validate command: documents=%v, stacksDir=%s", args, stacksDir)

			reg, err := registry.Load(stacksDir)
			if err != nil {
				return err
			}
			for _, problem := range reg.Problems() {
				fmt.Fprintln(cmd.ErrOrStderr(), console.FormatErrorMessage(problem))
			}

			lint := linter.New(reg)
			out := cmd.OutOrStdout()

			if watch {
				if len(args) != 1 {
					return errors.New("--watch requires exactly one cartridge document")
				}
				return watchAndValidate(out, lint, args[0], quiet)
			}

			paths, err := resolveTargets(args)
			if err != nil {
				return err
			}
			if len(paths) == 0 {
				fmt.Fprintln(out, console.FormatInfoMessage("no cartridge documents found"))
				return nil
			}

			results := validateDocuments(lint, paths, jobs)

			switch {
			case jsonOutput:
				if err := writeJSON(out, results); err != nil {
					return err
				}
			case sarifOutput:
				if err := writeSARIF(out, results, cmd.Root().Version); err != nil {
					return err
				}
			default:
				for _, result := range results {
					printReport(out, result, quiet)
				}
				if len(results) > 1 {
					printBatchSummary(out, results)
				}
			}

			for _, result := range results {
				if !result.Valid {
					return ErrValidationFailed
				}
			}
			return nil
		},
	}

	cmd.Flags().StringP("stacks-dir", "s", defaultStacksDir, "Directory containing stack profile YAML files")
	cmd.Flags().BoolP("json", "j", false, "Output results in JSON format")
	cmd.Flags().Bool("sarif", false, "Output results in SARIF 2.1.0 format")
	cmd.Flags().BoolP("watch", "w", false, "Revalidate the document on every file change")
	cmd.Flags().Int("jobs", 0, "Number of concurrent validation workers (default: number of CPUs)")
	cmd.Flags().BoolP("quiet", "q", false, "Only print documents with findings")

	return cmd
}
