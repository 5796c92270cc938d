package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/papapumpkin/rocketdoc/internal/engine"
	"github.com/papapumpkin/rocketdoc/internal/ui"
)

var classifyCmd = &cobra.Command{
	Use:   "classify <impulse>",
	Short: "Print the NAR motor class for a total impulse in N·s",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		impulse, err := parseImpulse(args[0])
		if err != nil {
			return err
		}
		c, ok := engine.Classify(impulse)
		ui.NewWithWriters(cmd.OutOrStdout(), cmd.ErrOrStderr()).Classification(impulse, c, ok)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(classifyCmd)
}

// parseImpulse accepts a plain number with an optional "Ns" suffix.
func parseImpulse(s string) (float64, error) {
	for _, suffix := range []string{"N·s", "Ns", "ns"} {
		if len(s) > len(suffix) && s[len(s)-len(suffix):] == suffix {
			s = s[:len(s)-len(suffix)]
			break
		}
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid impulse %q: %w", s, err)
	}
	return v, nil
}
