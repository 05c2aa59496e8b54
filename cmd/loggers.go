package cmd

import (
	"os"

	"github.com/google/uuid"
	"github.com/grovetools/core/cli"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// runIDHook tags every entry of one CLI run with the same id.
type runIDHook struct {
	id string
}

func (h runIDHook) Levels() []logrus.Level { return logrus.AllLevels }

func (h runIDHook) Fire(e *logrus.Entry) error {
	e.Data["run_id"] = h.id
	return nil
}

// getLogger returns the logrus.Logger for use with packages that expect it. It honours the
// standard --verbose and --json flags and always writes to stderr so --stdout output stays clean.
func getLogger(cmd *cobra.Command) *logrus.Logger {
	opts := cli.GetOptions(cmd)

	var formatter logrus.Formatter = &logrus.TextFormatter{DisableTimestamp: true}
	if opts.JSONOutput {
		formatter = &logrus.JSONFormatter{}
	}
	level := logrus.InfoLevel
	if opts.Verbose {
		level = logrus.DebugLevel
	}

	logger := cli.NewLogger(
		cli.WithOutput(os.Stderr),
		cli.WithFormatter(formatter),
		cli.WithLevel(level),
	)
	logger.AddHook(runIDHook{id: uuid.NewString()})
	return logger
}
