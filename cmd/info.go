package cmd

import (
	"github.com/spf13/cobra"
)

var infoCmd = &cobra.Command{
	Use:   "info <file>",
	Short: "Show a motor summary or a rocket component tree",
	Args:  cobra.ExactArgs(1),
	RunE:  runInfo,
}

func init() {
	infoCmd.Flags().String("format", "", "input format (default: from extension)")
	rootCmd.AddCommand(infoCmd)
}

func runInfo(cmd *cobra.Command, args []string) error {
	s, err := newSession(cmd)
	if err != nil {
		return err
	}
	ctx := cmd.Context()
	defer s.close(ctx)

	format, _ := cmd.Flags().GetString("format")
	doc, err := s.conv.LoadFile(ctx, args[0], format)
	if err != nil {
		return err
	}
	if doc.Engine != nil {
		s.printer.MotorSummary(doc.Engine)
	} else {
		s.printer.RocketTree(doc.Rocket)
	}
	return nil
}
