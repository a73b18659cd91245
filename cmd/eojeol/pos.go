package main

import (
	"github.com/kotaroooo0/eojeol"
	"github.com/spf13/cobra"
)

// NewPosCmd creates the pos command.
func NewPosCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pos [phrase...]",
		Short: "Tag phrases with parts of speech",
		Long: `Pos prints one JSON document per phrase.

Examples:
  # Flat (morpheme, tag) pairs
  eojeol pos "이게 뭔지 알아."

  # Grouped by eojeol, rendered as "morpheme/tag"
  eojeol pos --flatten=false --join "이게 뭔지 알아."`,
		RunE: runPosCmd,
	}

	cmd.Flags().Bool("flatten", true, "Return a flat morpheme list instead of grouping by eojeol")
	cmd.Flags().BoolP("join", "j", false, `Render every morpheme as "morpheme/tag"`)

	return cmd
}

func runPosCmd(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("flatten") {
		cfg.Flatten, _ = cmd.Flags().GetBool("flatten")
	}
	if cmd.Flags().Changed("join") {
		cfg.Join, _ = cmd.Flags().GetBool("join")
	}
	logger := setupLogger(cmd)

	phrases, err := readPhrases(cmd, args)
	if err != nil {
		return err
	}
	outputs, err := newBatchTagger(cfg, logger).Pos(cmd.Context(), phrases, cfg.PosOptions()...)
	if err != nil {
		return err
	}
	return writeJSON(cmd, outputs...)
}

// NewMorphsCmd creates the morphs command.
func NewMorphsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "morphs [phrase...]",
		Short: "Print the morphemes of phrases",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWordsCmd(cmd, args, eojeol.Morphs)
		},
	}
}

// NewNounsCmd creates the nouns command.
func NewNounsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "nouns [phrase...]",
		Short: "Print the nouns of phrases",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWordsCmd(cmd, args, eojeol.Nouns)
		},
	}
}

func runWordsCmd(cmd *cobra.Command, args []string, words func([]eojeol.Morpheme) []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	logger := setupLogger(cmd)

	phrases, err := readPhrases(cmd, args)
	if err != nil {
		return err
	}
	outputs, err := newBatchTagger(cfg, logger).Pos(cmd.Context(), phrases)
	if err != nil {
		return err
	}

	results := make([][]string, len(outputs))
	for i, out := range outputs {
		results[i] = words(out.Pairs)
	}
	return writeJSON(cmd, results...)
}
