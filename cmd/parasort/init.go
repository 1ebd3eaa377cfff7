package main

import (
	"errors"
	"fmt"

	"github.com/nao1215/parasort/internal/config"
	"github.com/spf13/cobra"
)

// NewInitCmd creates the init command.
func NewInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write the built-in category wordlist to a file",
		Long: `Init writes the built-in parameter categories as an editable JSON file.

parasort reads this file on every run. Add, remove, or rename categories
and parameter names there; the file is created automatically on first run
when it does not exist.

Examples:
  # Create ~/.parasort/parameter_categories.json
  parasort init

  # Create the wordlist at a specific path
  parasort init -o my_categories.json

  # Force overwrite an existing file
  parasort init -f`,
		Args: cobra.NoArgs,
		RunE: runInitCmd,
	}

	cmd.Flags().StringP("output", "o", config.DefaultWordlistPath(),
		"Output file path for the wordlist")
	cmd.Flags().BoolP("force", "f", false,
		"Overwrite existing wordlist file")

	return cmd
}

// runInitCmd executes the init command.
func runInitCmd(cmd *cobra.Command, _ []string) error {
	outputPath, err := cmd.Flags().GetString("output")
	if err != nil {
		return err
	}

	force, err := cmd.Flags().GetBool("force")
	if err != nil {
		return err
	}

	if err := config.WriteDefaultWordlist(outputPath, force); err != nil {
		if errors.Is(err, config.ErrWordlistExists) {
			return fmt.Errorf("%w (use -f to overwrite)", err)
		}
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Created wordlist file: %s\n", outputPath)
	fmt.Fprintln(out, "\nEdit this file to:")
	fmt.Fprintln(out, "  - Add parameter names to existing categories")
	fmt.Fprintln(out, "  - Define new categories for --vuln")
	fmt.Fprintln(out, "Use it for a single run with --config.")

	return nil
}
