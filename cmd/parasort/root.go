package main

import (
	"fmt"
	"os"

	"github.com/nao1215/parasort/internal/config"
	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command for parasort.
// The root command itself performs the sort.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "parasort",
		Short: "Sort URLs into per-domain files by the vulnerability class of their parameters",
		Long: `parasort reads URLs from a file and/or a pipe, groups them by domain, and
writes every URL into one file per vulnerability category whose parameter
names it carries (results/<domain>/<category>-urls.txt). URLs without any
known parameter go to uncategorized-urls.txt.

Categories and their parameter names come from a JSON wordlist, created
with the built-in defaults on first run (see "parasort init").

Examples:
  # Sort a URL list
  parasort -i urls.txt

  # Piped input from other tools
  cat urls.txt | parasort

  # Only SQL injection and XSS candidates, values cleared
  parasort -i urls.txt --vuln sqli,xss --clear

  # Custom parameters
  parasort -i urls.txt -c "id,user,cmd"
  parasort -i urls.txt -f my_params.txt

  # Extract every parameter name per domain
  cat urls.txt | parasort -e`,
		Version:       getVersion(),
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runRootCmd,
	}

	// Global flags that apply to all commands
	cmd.PersistentFlags().BoolP("verbose", "v", false,
		"Show the per-domain summary and debug logging")
	cmd.PersistentFlags().BoolP("silent", "s", false,
		"Print nothing but fatal errors")
	cmd.PersistentFlags().Bool("no-color", false,
		"Disable colored output")
	cmd.PersistentFlags().String("config", "",
		"Wordlist file path (default: XDG config dir if present, else ~/.parasort/parameter_categories.json)")

	// Input and output flags
	cmd.Flags().StringP("input", "i", "",
		"Input file containing URLs (optional when URLs are piped)")
	cmd.Flags().StringP("output", "o", config.DefaultOutputDir,
		"Output directory")
	cmd.Flags().Bool("clear", false,
		"Clear parameter values, keep names only")
	cmd.Flags().BoolP("extract-params", "e", false,
		"Write every parameter name to parameters.txt per domain")
	cmd.Flags().Bool("group-by-root", false,
		"Group subdomains under their registrable domain")

	// Category flags
	cmd.Flags().StringSlice("vuln", []string{config.AllCategories},
		"Categories to sort into (e.g. --vuln sqli,xss)")
	cmd.Flags().StringSliceP("custom-params", "c", nil,
		"Custom parameters, comma or space separated (e.g. -c \"id,user,cmd\")")
	cmd.Flags().StringP("custom-params-file", "f", "",
		"File with one custom parameter per line")
	cmd.Flags().Bool("show-categories", false,
		"List available categories and exit")

	// Report flags
	cmd.Flags().Bool("markdown", false,
		"Write summary.md into the output directory")
	cmd.Flags().Bool("json", false,
		"Write summary.json into the output directory")
	cmd.Flags().Bool("progress", false,
		"Show a progress bar on stderr")

	// Add subcommands
	cmd.AddCommand(NewCategoriesCmd())
	cmd.AddCommand(NewInitCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// buildGlobalConfig creates a Config holding the persistent flags shared
// by every command.
func buildGlobalConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.NewConfig()

	var err error

	cfg.Verbose, err = cmd.Flags().GetBool("verbose")
	if err != nil {
		return nil, err
	}

	cfg.Silent, err = cmd.Flags().GetBool("silent")
	if err != nil {
		return nil, err
	}

	cfg.NoColor, err = cmd.Flags().GetBool("no-color")
	if err != nil {
		return nil, err
	}

	cfg.WordlistFile, err = cmd.Flags().GetString("config")
	if err != nil {
		return nil, err
	}

	return cfg, nil
}

// buildConfig creates a Config from the root command flags.
func buildConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := buildGlobalConfig(cmd)
	if err != nil {
		return nil, err
	}

	cfg.InputFile, err = cmd.Flags().GetString("input")
	if err != nil {
		return nil, err
	}

	cfg.OutputDir, err = cmd.Flags().GetString("output")
	if err != nil {
		return nil, err
	}

	cfg.ClearValues, err = cmd.Flags().GetBool("clear")
	if err != nil {
		return nil, err
	}

	cfg.ExtractParams, err = cmd.Flags().GetBool("extract-params")
	if err != nil {
		return nil, err
	}

	cfg.GroupByRoot, err = cmd.Flags().GetBool("group-by-root")
	if err != nil {
		return nil, err
	}

	vuln, err := cmd.Flags().GetStringSlice("vuln")
	if err != nil {
		return nil, err
	}
	cfg.Categories = config.ParseCategories(vuln)

	customParams, err := cmd.Flags().GetStringSlice("custom-params")
	if err != nil {
		return nil, err
	}
	cfg.CustomParams = config.ParseCustomParams(customParams)

	cfg.CustomParamsFile, err = cmd.Flags().GetString("custom-params-file")
	if err != nil {
		return nil, err
	}

	cfg.ShowCategories, err = cmd.Flags().GetBool("show-categories")
	if err != nil {
		return nil, err
	}

	cfg.MarkdownSummary, err = cmd.Flags().GetBool("markdown")
	if err != nil {
		return nil, err
	}

	cfg.JSONSummary, err = cmd.Flags().GetBool("json")
	if err != nil {
		return nil, err
	}

	cfg.Progress, err = cmd.Flags().GetBool("progress")
	if err != nil {
		return nil, err
	}

	return cfg, nil
}
