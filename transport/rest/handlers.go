package rest

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rocketscienceinc/taunttactoe-backend/internal/entity"
	"github.com/rocketscienceinc/taunttactoe-backend/internal/repository"
)

type uGame interface {
	GetGameByID(ctx context.Context, id string) (*entity.Game, error)
}

type Handlers interface {
	PingHandler(w http.ResponseWriter, r *http.Request)
	GameStateHandler(w http.ResponseWriter, r *http.Request)
}

type handler struct {
	logger *slog.Logger
	uGame  uGame
}

func NewHandlers(logger *slog.Logger, uGame uGame) Handlers {
	return &handler{
		logger: logger,
		uGame:  uGame,
	}
}

func (that *handler) PingHandler(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte("pong")); err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
}

type gameStateResponse struct {
	ID       string    `json:"id"`
	Board    [9]string `json:"board"`
	Turn     string    `json:"player_turn"`
	Status   string    `json:"status"`
	Winner   string    `json:"winner,omitempty"`
	Epoch    int       `json:"epoch"`
	Disabled bool      `json:"disabled"`
}

// GameStateHandler returns the current snapshot of a game: board, turn,
// status and whether input is locked while the bot owes a move.
func (that *handler) GameStateHandler(w http.ResponseWriter, r *http.Request) {
	log := that.logger.With("method", "GameStateHandler")

	gameID := mux.Vars(r)["gameID"]

	game, err := that.uGame.GetGameByID(r.Context(), gameID)
	if errors.Is(err, repository.ErrGameNotFound) {
		http.Error(w, "game not found", http.StatusNotFound)
		return
	}

	if err != nil {
		log.Error("failed to get game", "gameID", gameID, "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	resp := gameStateResponse{
		ID:       game.ID,
		Board:    game.Board,
		Turn:     game.Turn,
		Status:   game.Status,
		Winner:   game.Winner,
		Epoch:    game.Epoch,
		Disabled: game.InputLocked(),
	}

	w.Header().Set("Content-Type", "application/json")

	if err = json.NewEncoder(w).Encode(resp); err != nil {
		log.Error("failed to encode response", "error", err)
	}
}
