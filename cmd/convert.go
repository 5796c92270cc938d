package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var convertCmd = &cobra.Command{
	Use:   "convert <in> <out>",
	Short: "Convert a rocket or motor file to another format",
	Long: `Loads <in> and writes it to <out>. Formats are chosen from the file
extensions unless --from or --to name them. An existing <out> is only
replaced with --force (or overwrite: true in the config).`,
	Args: cobra.ExactArgs(2),
	RunE: runConvert,
}

func init() {
	convertCmd.Flags().String("from", "", "input format (default: from extension)")
	convertCmd.Flags().String("to", "", "output format (default: output_format config, then extension)")
	convertCmd.Flags().Bool("force", false, "overwrite an existing output file")
	convertCmd.Flags().Int("samples", 0, "samples per thrust curve segment when synthesising a curve")
	rootCmd.AddCommand(convertCmd)
}

func runConvert(cmd *cobra.Command, args []string) error {
	s, err := newSession(cmd)
	if err != nil {
		return err
	}
	ctx := cmd.Context()
	defer s.close(ctx)

	from, _ := cmd.Flags().GetString("from")
	to, _ := cmd.Flags().GetString("to")
	force, _ := cmd.Flags().GetBool("force")
	if cmd.Flags().Changed("samples") {
		n, _ := cmd.Flags().GetInt("samples")
		if n < 1 {
			return fmt.Errorf("--samples must be at least 1, got %d", n)
		}
		s.conv.Options.CurveSamples = n
	}
	return s.convertFile(ctx, args[0], from, args[1], to, force)
}

// convertFile runs one conversion and reports it.
func (s *session) convertFile(ctx context.Context, in, from, out, to string, force bool) error {
	if to == "" {
		to = s.cfg.OutputFormat
	}
	doc, err := s.conv.Convert(ctx, in, from, out, to, force || s.cfg.Overwrite)
	if err != nil {
		return err
	}
	written := to
	if written == "" {
		written = "by extension"
	}
	s.printer.Converted(in, out, doc.Format+" → "+written)
	return nil
}
