package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vlivernoche/portfolio/internal/i18n"
)

var i18nCmd = &cobra.Command{
	Use:   "i18n",
	Short: "Inspect the translation tables",
}

var i18nCheckCmd = &cobra.Command{
	Use:   "check",
	Short: "Report keys present in one language but not the other",
	RunE: func(cmd *cobra.Command, args []string) error {
		table, err := i18n.Load()
		if err != nil {
			return fmt.Errorf("loading translations: %w", err)
		}
		out := cmd.OutOrStdout()
		for _, lang := range i18n.Supported {
			fmt.Fprintf(out, "%s: %d keys\n", lang, len(table.Keys(lang)))
		}
		if err := table.MissingError(); err != nil {
			return err
		}
		fmt.Fprintln(out, "all keys present in every language")
		return nil
	},
}

func init() {
	i18nCmd.AddCommand(i18nCheckCmd)
	rootCmd.AddCommand(i18nCmd)
}
