package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command for eojeol.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "eojeol",
		Short: "Korean part-of-speech tagger with eojeol grouping",
		Long: `eojeol runs a MeCab-ko compatible morphological analyzer, expands inflected
forms into their morphemes and groups the morphemes by eojeol (the
whitespace-delimited units of the input).

Phrases are taken from the arguments, or one per line from stdin.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringP("config", "c", "", "Path to a YAML configuration file")
	cmd.PersistentFlags().String("dicdir", "", "Analyzer dictionary path (overrides the config file)")
	cmd.PersistentFlags().String("userdic", "", "User dictionary path (kagome backend only)")
	cmd.PersistentFlags().String("backend", "", "Analyzer backend: mecab or kagome")
	cmd.PersistentFlags().String("mecab-bin", "", "MeCab executable")
	cmd.PersistentFlags().IntP("workers", "w", 0, "Number of concurrent analyzers")
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")
	cmd.PersistentFlags().Bool("debug", false, "Dump results to stderr")

	cmd.AddCommand(NewPosCmd())
	cmd.AddCommand(NewMorphsCmd())
	cmd.AddCommand(NewNounsCmd())
	cmd.AddCommand(NewIndexCmd())
	cmd.AddCommand(NewSearchCmd())
	cmd.AddCommand(NewTagsetCmd())

	return cmd
}

// Execute runs the root command.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := NewRootCmd().ExecuteContext(ctx); err != nil {
		stop()
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
