package main

import (
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/antigravity/golfshots/internal/config"
	"github.com/antigravity/golfshots/internal/db"
	"github.com/antigravity/golfshots/internal/handlers"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var addr, dataDir string

	cmd := &cobra.Command{
		Use:          "golfshots",
		Short:        "Serve golf shot statistics charts over HTTP",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(addr, dataDir)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides GOLFSHOTS_ADDR)")
	cmd.Flags().StringVar(&dataDir, "data-dir", "", "directory with the Golf-*.json files (overrides GOLFSHOTS_DATA_DIR)")
	return cmd
}

func run(addr, dataDir string) error {
	// Optional .env next to the binary; absence is fine.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if addr != "" {
		cfg.Addr = addr
	}
	if dataDir != "" {
		cfg.DataDir = dataDir
	}

	logger, err := zap.NewProduction()
	if err != nil {
		return err
	}
	defer logger.Sync()

	snap, err := db.BuildSnapshot(cfg.DataDir, logger)
	if err != nil {
		logger.Error("building snapshot failed", zap.Error(err))
		return err
	}

	h := handlers.New(snap, logger)
	logger.Info("server started", zap.String("addr", cfg.Addr))
	return http.ListenAndServe(cfg.Addr, h.Routes())
}
