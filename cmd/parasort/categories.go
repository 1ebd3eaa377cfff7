package main

import (
	"github.com/spf13/cobra"
)

// NewCategoriesCmd creates the categories command.
func NewCategoriesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List the available categories",
		Long: `Categories lists every category of the wordlist with its number of
parameter names and the first few names. It is the same as
"parasort --show-categories".`,
		Args: cobra.NoArgs,
		RunE: runCategoriesCmd,
	}
}

// runCategoriesCmd executes the categories command.
func runCategoriesCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := buildGlobalConfig(cmd)
	if err != nil {
		return err
	}

	s := newSession(cmd, cfg)
	return s.showCategories(s.loadWordlist())
}
