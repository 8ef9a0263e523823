package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"chordtabs/internal/server"
	"chordtabs/internal/store"
	"chordtabs/internal/tabs"
)

var (
	servePort int
	serveDB   string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve chord fingerings over HTTP",
	Long: `Starts the HTTP API:

  GET /tabs?root=C&type=maj&shape=C&position=5&option=0
  GET /chords/{name}      e.g. /chords/F%23m7?shape=E
  GET /fingers/{pattern}  e.g. /fingers/x32010
  GET /types
  GET /health`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().IntVarP(&servePort, "port", "p", 0, "Port to listen on (overrides config)")
	serveCmd.Flags().StringVar(&serveDB, "db", "", "SQLite dictionary built by build-db (overrides config)")
}

func runServe(cmd *cobra.Command, args []string) error {
	if servePort != 0 {
		cfg.Server.Port = servePort
	}
	if serveDB != "" {
		cfg.Dictionary.Database = serveDB
	}

	dict, err := loadDictionary(cmd.Context(), cfg.Dictionary.Database)
	if err != nil {
		return err
	}

	timeout, err := cfg.GetShutdownTimeout()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := server.New(dict, logger, server.WithAllowedOrigin(cfg.Server.AllowedOrigin))
	return srv.ListenAndRun(ctx, cfg.Addr(), timeout)
}

// loadDictionary reads the SQLite dictionary at path, or the built-in one
// when path is empty.
func loadDictionary(ctx context.Context, path string) (*tabs.Dictionary, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if path == "" {
		logger.Debug("Using built-in chord dictionary")
		return tabs.Default()
	}

	st, err := store.Open(path, logger)
	if err != nil {
		return nil, err
	}
	defer st.Close()

	dict, err := st.LoadDictionary(ctx)
	if err != nil {
		return nil, err
	}
	logger.Info("Using stored chord dictionary", zap.String("path", path))
	return dict, nil
}
