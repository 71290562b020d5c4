package cmd

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"cictt/internal/adapters/watch"
	"cictt/internal/core/engine"
	"cictt/internal/platform/logger"

	"github.com/spf13/cobra"
)

func newWatchCmd() *cobra.Command {
	var (
		debounce time.Duration
		exts     []string
		export   bool
	)
	c := &cobra.Command{
		Use:   "watch DIR",
		Short: "Score every report written under DIR until interrupted",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			eng := engine.New(nil)
			an, backend := analyzerFor(eng)
			log := logger.Named("watch").With().Str("dir", args[0]).Str("analyzer", backend).Logger()

			w, err := watch.New(watch.Options{Exts: exts, Debounce: debounce})
			if err != nil {
				return err
			}
			defer func() { _ = w.Stop() }()

			ctx := cmd.Context()
			onChange := func(path string) {
				b, err := os.ReadFile(path)
				if err != nil {
					log.Warn().Err(err).Str("file", path).Msg("read report")
					return
				}
				res, err := an.Analyze(ctx, string(b))
				if err != nil {
					log.Error().Err(err).Str("file", path).Msg("analyze report")
					return
				}
				ev := log.Info().
					Str("file", path).
					Int("overall", res.OverallRiskScore).
					Str("level", string(res.OverallRiskLevel)).
					Int("detected", res.DetectedCount)
				if export {
					out := strings.TrimSuffix(path, filepath.Ext(path)) + ".hazard.json"
					if err := writeReport(out, res); err != nil {
						log.Error().Err(err).Str("file", out).Msg("write report")
					} else {
						ev = ev.Str("report", out)
					}
				}
				ev.Msg(res.Summary)
			}
			onErr := func(err error) { log.Warn().Err(err).Msg("watcher") }

			if err := w.Watch(args[0], onChange, onErr); err != nil {
				return err
			}
			log.Info().Msg("watching for reports")
			<-ctx.Done()
			log.Info().Msg("watch stopped")
			return nil
		},
	}
	c.Flags().DurationVar(&debounce, "debounce", watch.DefaultDebounce, "quiet period before a changed file is scored")
	c.Flags().StringSliceVar(&exts, "ext", watch.DefaultExts, "report file extensions")
	c.Flags().BoolVar(&export, "export", false, "write NAME.hazard.json next to each report")
	return c
}
