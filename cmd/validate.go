package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

// errValidation is returned when a document has structural problems so
// Execute exits non-zero after the report is printed.
var errValidation = errors.New("validation failed")

var validateCmd = &cobra.Command{
	Use:   "validate <file>...",
	Short: "Check rocket and motor files for structural problems",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := newSession(cmd)
		if err != nil {
			return err
		}
		ctx := cmd.Context()
		defer s.close(ctx)

		format, _ := cmd.Flags().GetString("format")
		failed := 0
		for _, path := range args {
			doc, err := s.conv.LoadFile(ctx, path, format)
			if err != nil {
				s.printer.ValidationResult(path, []error{err})
				failed++
				continue
			}
			errs := doc.Validate()
			s.printer.ValidationResult(path, errs)
			if len(errs) > 0 {
				failed++
			}
		}
		if failed > 0 {
			return fmt.Errorf("%w: %d of %d file(s)", errValidation, failed, len(args))
		}
		return nil
	},
}

func init() {
	validateCmd.Flags().String("format", "", "input format (default: from extension)")
	rootCmd.AddCommand(validateCmd)
}
