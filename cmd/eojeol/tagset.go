package main

import (
	"fmt"

	"github.com/kotaroooo0/eojeol"
	"github.com/spf13/cobra"
)

// NewTagsetCmd creates the tagset command.
func NewTagsetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tagset [tag...]",
		Short: "Describe part-of-speech tags",
		Long: `Tagset lists the mecab-ko-dic tags, or describes the given tags.
Compound tags such as VCP+EF are described part by part.`,
		RunE: runTagsetCmd,
	}
}

func runTagsetCmd(cmd *cobra.Command, args []string) error {
	tags := args
	if len(tags) == 0 {
		tags = eojeol.Tags()
	}

	for _, tag := range tags {
		description, ok := eojeol.Describe(tag)
		if !ok {
			return fmt.Errorf("unknown tag: %s", tag)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", tag, description)
	}
	return nil
}
