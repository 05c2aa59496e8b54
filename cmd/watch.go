package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/grovetools/core/cli"
	"github.com/grovetools/readmegen/pkg/config"
	"github.com/grovetools/readmegen/pkg/watcher"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func newWatchCmd() *cobra.Command {
	var dir string
	var debounceMs int
	var skipInitial bool

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Regenerate the README whenever readmegen.yml changes",
		Long: `Watches readmegen.yml in the project directory (or the file given by --config) and regenerates the README each time it is saved.
Name and description must come from readmegen.yml; there is no interactive form in watch mode.

Example:
  readmegen watch --dir ./myproject --debounce 1000`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWatch(cmd.Context(), getLogger(cmd), dir, cli.GetOptions(cmd).ConfigFile, time.Duration(debounceMs)*time.Millisecond, skipInitial)
		},
	}

	cmd.Flags().StringVar(&dir, "dir", ".", "Project directory")
	cmd.Flags().IntVar(&debounceMs, "debounce", 500, "Debounce interval in milliseconds")
	cmd.Flags().BoolVar(&skipInitial, "skip-initial", false, "Don't generate once before watching")
	return cmd
}

func runWatch(ctx context.Context, logger *logrus.Logger, dir, configFile string, debounce time.Duration, skipInitial bool) error {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := config.LoadEnv(); err != nil {
		logger.WithError(err).Warn("Ignoring .env file")
	}

	watchDir, trigger := dir, config.ConfigFileName
	if configFile != "" {
		watchDir, trigger = filepath.Dir(configFile), filepath.Base(configFile)
	}
	w, err := watcher.New(watchDir, trigger)
	if err != nil {
		return fmt.Errorf("failed to watch %s: %w", watchDir, err)
	}

	if !skipInitial {
		if err := regenerate(ctx, dir, configFile, logger); err != nil {
			logger.WithError(err).Error("Generation failed")
		}
	}

	go func() {
		<-ctx.Done()
		w.Close()
	}()

	logger.Infof("Watching %s for changes (Ctrl+C to stop)", filepath.Join(watchDir, trigger))
	w.Run(debounce, func() {
		if ctx.Err() != nil {
			return
		}
		logger.Infof("%s changed, regenerating", trigger)
		if err := regenerate(ctx, dir, configFile, logger); err != nil {
			logger.WithError(err).Error("Generation failed")
		}
	}, func(err error) {
		logger.WithError(err).Warn("Watcher error")
	})
	return nil
}

// regenerate runs one non-interactive generation from readmegen.yml and the environment.
func regenerate(ctx context.Context, dir, configFile string, logger *logrus.Logger) error {
	if configFile == "" {
		configFile = filepath.Join(dir, config.ConfigFileName)
	}
	project, err := config.LoadProjectFile(configFile)
	if err != nil {
		return fmt.Errorf("failed to load %s: %w", configFile, err)
	}
	settings := mergeSettings(generateOptions{dir: dir}, project, false, false)
	if err := settings.request.Validate(); err != nil {
		return err
	}

	gen, err := newGenerator(ctx, settings.provider, logger)
	if err != nil {
		return err
	}
	content, err := gen.Generate(ctx, settings.request)
	if err != nil {
		return err
	}
	_, err = gen.Save(content, settings.request.Directory, settings.output)
	return err
}
