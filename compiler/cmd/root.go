package cmd

import (
	"log/slog"
	"minipas/compiler/internal"

	"github.com/spf13/cobra"
)

// options are the persistent flags shared by every subcommand.
type options struct {
	cfgFile string
	verbose bool
}

func Execute() error {
	return NewRootCommand().Execute()
}

func NewRootCommand() *cobra.Command {
	opts := &options{}
	rootCmd := &cobra.Command{
		Use:   "minipas",
		Short: "minipas - front end for a small Pascal-like teaching language",
		Long: `minipas tokenizes and syntax checks minipas programs.

A program is one begin ... end block holding integer variables, one
argument integer functions, assignments, if/then/else, read and write.

Outputs, written next to the source unless output_dir is set:
  <name>.dyd  token dump
  <name>.err  diagnostics, in file mode
  <name>.var  declared variables, with --tables
  <name>.pro  declared functions, with --tables`,
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().StringVar(&opts.cfgFile, "config", "", "config file, TOML or YAML (default: built-in defaults)")
	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "debug logging")

	rootCmd.AddCommand(newCompileCommand(opts))
	rootCmd.AddCommand(newTokensCommand(opts))
	rootCmd.AddCommand(newVersionCommand())
	return rootCmd
}

func (opts *options) loadConfig() (*internal.Config, error) {
	if opts.cfgFile == "" {
		return internal.DefaultConfig(), nil
	}
	return internal.LoadConfig(opts.cfgFile)
}

// newLogger writes to the command's stderr. --verbose wins over log_level.
func (opts *options) newLogger(cmd *cobra.Command, cfg *internal.Config) (*slog.Logger, error) {
	level, err := cfg.SlogLevel()
	if err != nil {
		return nil, err
	}
	if opts.verbose {
		level = slog.LevelDebug
	}
	handler := slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})
	return slog.New(handler), nil
}
