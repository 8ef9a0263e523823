package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"chordtabs/internal/store"
	"chordtabs/internal/tabs"
)

var (
	buildSource string
	buildOutput string
)

var buildDBCmd = &cobra.Command{
	Use:   "build-db",
	Short: "Write the chord dictionary into a SQLite database",
	Long: `Validates a chord dictionary (the built-in one, or --source) and writes it
to a fresh SQLite file that "serve --db" can load.`,
	Args: cobra.NoArgs,
	RunE: runBuildDB,
}

func init() {
	buildDBCmd.Flags().StringVar(&buildSource, "source", "", "Dictionary JSON file (default: built-in dictionary)")
	buildDBCmd.Flags().StringVarP(&buildOutput, "output", "o", "chords.db", "Output SQLite database file")
}

func runBuildDB(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	dict, err := readDictionary(buildSource)
	if err != nil {
		return err
	}

	// Remove existing database if it exists
	if _, err := os.Stat(buildOutput); err == nil {
		if err := os.Remove(buildOutput); err != nil {
			return fmt.Errorf("failed to remove existing database: %w", err)
		}
	}

	st, err := store.Open(buildOutput, logger)
	if err != nil {
		return err
	}
	defer st.Close()

	stats, err := st.SaveDictionary(ctx, dict)
	if err != nil {
		return err
	}
	if err := st.Vacuum(ctx); err != nil {
		logger.Warn("Failed to optimize database", zap.Error(err))
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Generated SQLite database at %s\n", buildOutput)
	fmt.Fprintf(out, "Inserted %d chord types\n", stats.Types)
	fmt.Fprintf(out, "Inserted %d templates\n", stats.Templates)
	fmt.Fprintf(out, "Created %d chord aliases\n", stats.Aliases)
	return nil
}

func readDictionary(path string) (*tabs.Dictionary, error) {
	if path == "" {
		return tabs.Default()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read dictionary: %w", err)
	}
	dict, err := tabs.ParseDictionary(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return dict, nil
}
