package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/papapumpkin/rocketdoc/internal/convert"
	"github.com/papapumpkin/rocketdoc/internal/logging"
	"github.com/papapumpkin/rocketdoc/internal/telemetry"
	"github.com/papapumpkin/rocketdoc/internal/watch"
)

var watchCmd = &cobra.Command{
	Use:   "watch <in> <outdir>",
	Short: "Re-convert a file into a directory whenever it changes",
	Long: `Converts <in> into <outdir> once, then again after every change until
interrupted. The output file is named after <in> with the extension of
the --to format and is always replaced.`,
	Args: cobra.ExactArgs(2),
	RunE: runWatch,
}

func init() {
	watchCmd.Flags().String("to", "", "output format (default: output_format config)")
	watchCmd.Flags().String("from", "", "input format (default: from extension)")
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	s, err := newSession(cmd)
	if err != nil {
		return err
	}
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	defer s.close(ctx)

	from, _ := cmd.Flags().GetString("from")
	to, _ := cmd.Flags().GetString("to")
	if to == "" {
		to = s.cfg.OutputFormat
	}
	if to == "" {
		return fmt.Errorf("watch needs an output format: pass --to or set output_format")
	}
	out, err := convert.OutputPath(args[0], args[1], to)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(args[1], 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", args[1], err)
	}

	w, err := watch.New(args[0], watch.Options{
		Debounce: time.Duration(s.cfg.WatchDebounceMS) * time.Millisecond,
	})
	if err != nil {
		return err
	}
	if err := w.Start(); err != nil {
		return err
	}
	defer w.Stop()

	s.reconvert(ctx, args[0], from, out, to)
	s.printer.Info("watching " + args[0] + " (ctrl-c to stop)")
	return s.watchLoop(ctx, w, from, out, to)
}

// watchLoop handles watcher events sequentially until ctx is done.
func (s *session) watchLoop(ctx context.Context, w *watch.Watcher, from, out, to string) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		case change, ok := <-w.Changes:
			if !ok {
				return nil
			}
			s.printer.WatchChange(change.File, change.Kind.String())
			if err := s.tel.Emit(telemetry.Event{
				Kind:   telemetry.KindWatchChange,
				Source: change.File,
				Data:   map[string]string{"change": change.Kind.String()},
			}); err != nil {
				s.log.Warn(ctx, "telemetry emit failed", logging.Err(err))
			}
			if change.Kind == watch.ChangeRemoved {
				continue
			}
			s.reconvert(ctx, change.File, from, out, to)
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			s.log.Warn(ctx, "watch error", logging.Err(err))
		}
	}
}

// reconvert converts in to out, reporting failures without stopping the watch.
func (s *session) reconvert(ctx context.Context, in, from, out, to string) {
	if err := s.convertFile(ctx, in, from, out, to, true); err != nil {
		s.printer.Error(err.Error())
	}
}
