package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/yacobolo/cssconf"
	"github.com/yacobolo/cssconf/internal/watch"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Rebuild the stylesheet when sources change",
	Long: `Build once, then rebuild whenever a content file, the base stylesheet
or an icon source directory changes. A failed rebuild keeps the previous
stylesheet in place.`,
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: runWatch,
}

func init() {
	addBuildFlags(watchCmd)
	watchCmd.Flags().Duration("debounce", 0, "Quiet period before a rebuild (default 200ms)")
}

func runWatch(cmd *cobra.Command, _ []string) error {
	config, err := buildConfig()
	if err != nil {
		return err
	}
	logger := newLogger()
	config.Logger = logger
	config.Stdout = cmd.OutOrStdout()
	reporter := newReporter(cmd)
	quiet := getBoolWithFallback("quiet", "quiet", false)

	rebuild := func(context.Context, []string) error {
		result, err := cssconf.Build(config)
		if err != nil {
			return err
		}
		if !quiet {
			reporter.PrintBuild(result)
		}
		return nil
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// A broken first build still starts the watcher
	if err := rebuild(ctx, nil); err != nil {
		reporter.PrintError(err)
	}

	w, err := watch.New(rebuild, watch.Options{
		Debounce: watchDebounce(),
		Ignore:   []string{config.Output, config.Manifest},
		Logger:   logger,
	})
	if err != nil {
		return err
	}

	paths, err := cssconf.WatchPaths(config)
	if err != nil {
		return err
	}
	if err := w.Add(paths...); err != nil {
		return err
	}

	logger.Info("Watching for changes", "dirs", len(w.Dirs()))
	return w.Run(ctx)
}
