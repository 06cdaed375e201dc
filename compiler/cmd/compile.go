package cmd

import (
	"fmt"
	"minipas/compiler/internal"

	"github.com/spf13/cobra"
)

type compileFlags struct {
	mode       string
	recovery   string
	dumpTokens bool
	dumpTables bool
	outputDir  string
	color      bool
}

func newCompileCommand(opts *options) *cobra.Command {
	flags := &compileFlags{}
	compileCmd := &cobra.Command{
		Use:   "compile <file>...",
		Short: "Tokenize and syntax check source files",
		Long: `Tokenizes and parses each file, writes the token dump and prints
"<name>: compiled" or "<name>: syntax error".

Examples:
  minipas compile fact.pas
  minipas compile --mode file --tables fact.pas
  minipas compile --recovery statement --out build/ a.pas b.pas`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCompile(cmd, opts, flags, args)
		},
	}
	compileCmd.Flags().StringVar(&flags.mode, "mode", internal.ModeConsole, "where diagnostics go (console, file)")
	compileCmd.Flags().StringVar(&flags.recovery, "recovery", internal.RecoverySkipLine, "parser recovery strategy (line, statement)")
	compileCmd.Flags().BoolVar(&flags.dumpTokens, "dump-tokens", true, "write <name>.dyd")
	compileCmd.Flags().BoolVar(&flags.dumpTables, "tables", false, "write <name>.var and <name>.pro")
	compileCmd.Flags().StringVarP(&flags.outputDir, "out", "o", "", "output directory (default: next to the source)")
	compileCmd.Flags().BoolVar(&flags.color, "color", false, "color console diagnostics")
	return compileCmd
}

// apply overrides the config with the flags given on the command line.
func (flags *compileFlags) apply(cmd *cobra.Command, cfg *internal.Config) {
	if cmd.Flags().Changed("mode") {
		cfg.Mode = flags.mode
	}
	if cmd.Flags().Changed("recovery") {
		cfg.Recovery = flags.recovery
	}
	if cmd.Flags().Changed("dump-tokens") {
		cfg.DumpTokens = flags.dumpTokens
	}
	if cmd.Flags().Changed("tables") {
		cfg.DumpTables = flags.dumpTables
	}
	if cmd.Flags().Changed("out") {
		cfg.OutputDir = flags.outputDir
	}
	if cmd.Flags().Changed("color") {
		cfg.Color = flags.color
	}
}

func runCompile(cmd *cobra.Command, opts *options, flags *compileFlags, args []string) error {
	cfg, err := opts.loadConfig()
	if err != nil {
		return err
	}
	flags.apply(cmd, cfg)
	logger, err := opts.newLogger(cmd, cfg)
	if err != nil {
		return err
	}
	compiler, err := internal.NewCompiler(cfg, logger, cmd.OutOrStdout())
	if err != nil {
		return err
	}

	failed := 0
	for _, path := range args {
		result, err := compiler.Compile(path)
		if err != nil {
			return err
		}
		if !result.Succeeded() {
			failed++
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", result.Name, result.Status())
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d files failed to compile", failed, len(args))
	}
	return nil
}
