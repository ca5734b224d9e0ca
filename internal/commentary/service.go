package commentary

import (
	"context"
	"log/slog"
)

// Outcome values reported to producers once a game ends.
const (
	OutcomeBotWon   = "bot_won"
	OutcomeHumanWon = "human_won"
	OutcomeTie      = "tie"
)

// Request is the game snapshot a producer narrates.
type Request struct {
	Board    [9]string `json:"board"`
	LastCell int       `json:"last_cell"` // -1 when no move was played yet
	GameOver bool      `json:"game_over"`
	Outcome  string    `json:"outcome,omitempty"`
}

// Producer turns a game snapshot into one line of trash talk.
type Producer interface {
	Produce(ctx context.Context, req Request) (string, error)
}

// Service wraps a primary producer with a canned fallback, so the game
// loop always gets a line back and never an error.
type Service struct {
	logger   *slog.Logger
	primary  Producer
	fallback *CannedProducer
}

// NewService - primary may be nil, in which case only canned lines are served.
func NewService(logger *slog.Logger, primary Producer) *Service {
	return &Service{
		logger:   logger.With("component", "commentary"),
		primary:  primary,
		fallback: NewCannedProducer(),
	}
}

// Taunt returns a line for the snapshot. A failing producer is logged
// and swapped for a canned line; the caller never sees an error.
func (that *Service) Taunt(ctx context.Context, req Request) string {
	log := that.logger.With("method", "Taunt")

	if that.primary == nil {
		return that.fallback.Line(req)
	}

	line, err := that.primary.Produce(ctx, req)
	if err != nil {
		log.Warn("producer failed, serving a canned line", "error", err)
		return that.fallback.Line(req)
	}

	return line
}
