package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"chordtabs/internal/tabs"
)

var (
	tabReq tabs.Request
	tabDB  string
)

var tabCmd = &cobra.Command{
	Use:   "tab [chord-name]",
	Short: "Print the fingering for a chord",
	Long: `Prints one fingering, either from a chord name or from --root/--type.

Example:
  chordtabs tab F#m7 --shape E --position 5
  chordtabs tab --root Bb --type maj7 --option 1`,
	Args: cobra.MaximumNArgs(1),
	RunE: runTab,
}

func init() {
	f := tabCmd.Flags()
	f.StringVar(&tabReq.Root, "root", "", "Root pitch, e.g. C, F#, Bb")
	f.StringVar(&tabReq.Type, "type", "", "Chord type or abbreviation, e.g. major, m7, 7#9")
	f.StringVar(&tabReq.Shape, "shape", "", "CAGED shape: C, A, G, E or D (default: any)")
	f.StringVar(&tabReq.Position, "position", "", "Minimum fret")
	f.IntVar(&tabReq.Option, "option", 0, "Variant index")
	f.StringVar(&tabDB, "db", "", "SQLite dictionary built by build-db")
}

func runTab(cmd *cobra.Command, args []string) error {
	req := tabReq
	if len(args) == 1 {
		root, abbrev, err := tabs.ParseChordName(args[0])
		if err != nil {
			return err
		}
		req.Root, req.Type = root, abbrev
	}

	dbPath := cfg.Dictionary.Database
	if tabDB != "" {
		dbPath = tabDB
	}
	dict, err := loadDictionary(cmd.Context(), dbPath)
	if err != nil {
		return err
	}

	candidates := dict.Candidates(req)
	f := tabs.Select(candidates, req.Option)
	if !f.Valid() {
		return fmt.Errorf("no fingering for %s %s", req.Root, req.Type)
	}
	return printFingering(cmd.OutOrStdout(), f, len(candidates))
}

func printFingering(w io.Writer, f tabs.Fingering, candidates int) error {
	fmt.Fprintf(w, "%s  (%d candidates)\n", f.Pattern(), candidates)

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "string\tfret\ttone")
	for _, s := range tabs.Strings {
		slot := f.Slot(s)
		if !slot.Played {
			fmt.Fprintf(tw, "%s\tx\t-\n", s)
			continue
		}
		fmt.Fprintf(tw, "%s\t%d\t%d\n", s, slot.Fret, slot.Tone)
	}
	return tw.Flush()
}
