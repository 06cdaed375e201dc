package cmd

import (
	"fmt"
	"minipas/compiler/internal"
	"os"

	"github.com/spf13/cobra"
)

func newTokensCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "tokens <file>",
		Short: "Print the token dump of a source file",
		Long: `Prints the .dyd rendering of the file to stdout, one token per line.
Lexical errors go to stderr.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.loadConfig()
			if err != nil {
				return err
			}
			logger, err := opts.newLogger(cmd, cfg)
			if err != nil {
				return err
			}
			content, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("failed to read source %s: %w", args[0], err)
			}
			logger.Debug("tokens: start tokenizer", "path", args[0])
			tokenizer := internal.NewTokenizer(internal.NewConsoleSink(cmd.ErrOrStderr(), cfg.Color))
			tokens, errs := tokenizer.Tokenize(string(content))
			if err = internal.WriteTokens(cmd.OutOrStdout(), tokens); err != nil {
				return err
			}
			if len(errs) > 0 {
				return fmt.Errorf("%d lexical errors", len(errs))
			}
			return nil
		},
	}
}
