package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/kutbudev/agri-api/api/handlers"
	"github.com/kutbudev/agri-api/internal/token"
	"github.com/kutbudev/agri-api/pkg/config"
	"github.com/kutbudev/agri-api/pkg/repository"
)

func main() {
	log := zerolog.New(os.Stderr).With().Timestamp().Logger()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	db, err := repository.NewDatabase(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}

	h := handlers.New(repository.NewStore(db), token.NewService(cfg.Auth.JWTSecret), log)
	r := handlers.NewRouter(h)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	log.Info().Str("addr", addr).Msg("starting server")
	if err := r.Run(addr); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
