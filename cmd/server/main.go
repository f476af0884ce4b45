package main

import (
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/giftflow-app/backend/internal/auth"
	"github.com/giftflow-app/backend/internal/config"
	"github.com/giftflow-app/backend/internal/handlers"
	"github.com/giftflow-app/backend/internal/store"
)

func loadDotenv(logger zerolog.Logger) {
	for _, p := range []string{".env", filepath.Join("..", ".env"), filepath.Join("..", "..", ".env")} {
		if _, err := os.Stat(p); err == nil {
			_ = godotenv.Overload(p)
			logger.Info().Str("path", p).Msg("loaded env file")
			return
		}
	}
}

func main() {
	bootLog := zerolog.New(os.Stderr).With().Timestamp().Logger()
	loadDotenv(bootLog)

	cfg, err := config.Load()
	if err != nil {
		bootLog.Fatal().Err(err).Msg("invalid configuration")
	}
	logger := config.NewLogger(cfg.Logging)

	st := store.New()
	if cfg.MockMode {
		st = store.NewSeeded()
		logger.Info().Msg("mock mode: seeded demo data")
	}

	passwords, tokens := auth.ForConfig(cfg)
	srv := handlers.New(st, cfg, logger, passwords, tokens)

	addr := ":" + cfg.Port
	httpSrv := &http.Server{
		Addr:              addr,
		Handler:           srv.Routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	logger.Info().Str("addr", addr).Bool("mock_mode", cfg.MockMode).Msg("API listening")
	if err := httpSrv.ListenAndServe(); err != nil {
		logger.Fatal().Err(err).Msg("server exited")
	}
}
