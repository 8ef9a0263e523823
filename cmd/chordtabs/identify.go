package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"chordtabs/internal/tabs"
)

var identifyCmd = &cobra.Command{
	Use:   "identify [pattern]",
	Short: "Name the chords a fret pattern plays",
	Long: `Looks a fret pattern up in the dictionary. Patterns list the strings low
to high, x for unplayed, 0-9 then a-z for frets 10 and up.

Example:
  chordtabs identify x32010`,
	Args: cobra.ExactArgs(1),
	RunE: runIdentify,
}

func runIdentify(cmd *cobra.Command, args []string) error {
	pattern, err := tabs.ParsePattern(args[0])
	if err != nil {
		return err
	}

	dict, err := loadDictionary(cmd.Context(), cfg.Dictionary.Database)
	if err != nil {
		return err
	}

	matches := dict.Identify(pattern)
	out := cmd.OutOrStdout()
	if len(matches) == 0 {
		fmt.Fprintf(out, "No chords found with fingering %s\n", args[0])
		return nil
	}
	for _, m := range matches {
		fmt.Fprintf(out, "%s %s (%s shape)\n", m.Root, m.Type, m.Shape)
	}
	return nil
}
