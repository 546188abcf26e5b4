// Package handlers implements the HTTP surface of the API.
package handlers

import (
	"github.com/rs/zerolog"

	"github.com/kutbudev/agri-api/internal/token"
	"github.com/kutbudev/agri-api/pkg/repository"
)

// Handler carries the dependencies shared by all endpoints.
type Handler struct {
	store  repository.Store
	tokens *token.Service
	log    zerolog.Logger
}

// New creates a Handler.
func New(store repository.Store, tokens *token.Service, log zerolog.Logger) *Handler {
	return &Handler{store: store, tokens: tokens, log: log}
}
