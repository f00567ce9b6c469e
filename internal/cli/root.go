// SPDX-License-Identifier: MIT

package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Configuration keys shared by flags, environment and config file.
const (
	keyLogLevel = "log-level"
	keyOutput   = "output"

	outputTable = "table"
	outputPlain = "plain"
)

// app carries the per-invocation state every subcommand needs.
type app struct {
	v   *viper.Viper
	log hclog.Logger
}

// NewRootCommand builds the segtool command tree. Each call returns an
// independent tree with its own configuration, which keeps tests isolated.
func NewRootCommand() *cobra.Command {
	a := &app{v: viper.New(), log: hclog.NewNullLogger()}

	root := &cobra.Command{
		Use:           "segtool",
		Short:         "Build, normalize and query GPS segment lists",
		Long:          "segtool appends half-open [start, end) segments given on the command line, optionally coalesces them, and answers search and range queries.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init(cmd)
		},
	}

	pf := root.PersistentFlags()
	pf.String("config", "", "config file (default .segtool.yaml in the working or home directory)")
	pf.String(keyLogLevel, "warn", "log level: trace, debug, info, warn, error, off")
	pf.StringP(keyOutput, "o", outputTable, "output format: table or plain")
	_ = a.v.BindPFlag(keyLogLevel, pf.Lookup(keyLogLevel))
	_ = a.v.BindPFlag(keyOutput, pf.Lookup(keyOutput))

	root.AddCommand(
		newCoalesceCommand(a),
		newSearchCommand(a),
		newRangeCommand(a),
		newGenerateCommand(a),
	)

	return root
}

// Execute runs the command tree against os.Args and exits non-zero on error.
func Execute() {
	if err := NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// init reads configuration and sets up logging before any subcommand runs.
func (a *app) init(cmd *cobra.Command) error {
	if cfgFile, _ := cmd.Flags().GetString("config"); cfgFile != "" {
		a.v.SetConfigFile(cfgFile)
	} else {
		a.v.SetConfigName(".segtool")
		a.v.SetConfigType("yaml")
		a.v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			a.v.AddConfigPath(home)
		}
	}
	a.v.SetEnvPrefix("SEGTOOL")
	a.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	a.v.AutomaticEnv()

	if err := a.v.ReadInConfig(); err != nil {
		// No config file is fine; an explicitly named but unreadable one is not.
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("read config: %w", err)
		}
	}

	level := hclog.LevelFromString(a.v.GetString(keyLogLevel))
	if level == hclog.NoLevel {
		return fmt.Errorf("unknown log level %q", a.v.GetString(keyLogLevel))
	}
	a.log = newLogger(cmd.ErrOrStderr(), level)
	a.log.Debug("configuration loaded", "file", a.v.ConfigFileUsed(), "output", a.v.GetString(keyOutput))

	switch out := a.v.GetString(keyOutput); out {
	case outputTable, outputPlain:
	default:
		return fmt.Errorf("unknown output format %q", out)
	}

	return nil
}

// newLogger creates the command logger writing to w.
func newLogger(w io.Writer, level hclog.Level) hclog.Logger {
	return hclog.New(&hclog.LoggerOptions{
		Name:   "segtool",
		Level:  level,
		Output: w,
	})
}
