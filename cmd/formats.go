package cmd

import (
	"github.com/spf13/cobra"

	"github.com/papapumpkin/rocketdoc/internal/convert"
	"github.com/papapumpkin/rocketdoc/internal/ui"
)

var formatsCmd = &cobra.Command{
	Use:   "formats",
	Short: "List supported formats and what each can read and write",
	Long: `Lists every registered format. The READ and WRITE columns show "m" for
motors and "r" for rockets.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		ui.NewWithWriters(cmd.OutOrStdout(), cmd.ErrOrStderr()).FormatTable(convert.Formats())
	},
}

func init() {
	rootCmd.AddCommand(formatsCmd)
}
