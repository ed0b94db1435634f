// Package main is the mbarrier command: it lists the compiled barrier
// backend, runs barriers, benchmarks them and runs the message-passing
// litmus test.
package main

import (
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/llxisdsh/mbarrier/internal/logging"
)

var rootCmd = cobra.Command{
	Use:           "mbarrier",
	Short:         "Inspect, run and measure memory barriers",
	SilenceUsage:  true,
	SilenceErrors: true,

	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level, ok := logging.ParseLevel(rootFlags.log)
		if !ok {
			return usageErrorf("unknown log level %q", rootFlags.log)
		}
		cfg := logging.DefaultConfig()
		cfg.Level = level
		cfg.Output = cmd.ErrOrStderr()
		cfg.Sync = true
		if rootFlags.json {
			cfg.Format = "json"
		}
		if rootFlags.noColor {
			cfg.NoColor = true
			color.NoColor = true
		}
		logging.SetDefault(logging.NewLogger(cfg))
		logging.Debug("logging configured", "level", rootFlags.log, "json", rootFlags.json)
		return nil
	},
}

var rootFlags struct {
	log     string
	json    bool
	noColor bool
}

func init() {
	helpMessage := "mbarrier -- portable memory barriers"
	helpMessage += "\n\nEnvironment Variables:"
	for _, ev := range envVars() {
		helpMessage += "\n  " + ev.Name + " " +
			"(default: \"" + ev.Defv + "\")\n\t" + ev.Desc
	}
	rootCmd.Long = helpMessage

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&rootFlags.log, "log", getEnv(envLog), "log level (debug|info|warn|error)")
	flags.BoolVar(&rootFlags.json, "json", false, "log in JSON format")
	flags.BoolVar(&rootFlags.noColor, "no-color", false, "disable colored output")

	rootCmd.SetHelpCommand(&cobra.Command{Hidden: true})
	rootCmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &usageError{msg: err.Error()}
	})
}

// reportError writes err through a synchronous logger. Flag errors fail
// before the pre-run hook installs the configured logger, and the default one
// would not flush before os.Exit.
func reportError(w io.Writer, err error) {
	if err.Error() == "" {
		return
	}
	cfg := logging.DefaultConfig()
	cfg.Level = logging.LevelError
	cfg.Output = w
	cfg.Sync = true
	if w != os.Stderr {
		cfg.NoColor = true
	}
	if rootFlags.json {
		cfg.Format = "json"
	}
	if rootFlags.noColor {
		cfg.NoColor = true
	}
	logging.NewLogger(cfg).WithError(err).Error(rootCmd.Name() + " failed")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		reportError(os.Stderr, err)
		os.Exit(exitCode(err))
	}
}
