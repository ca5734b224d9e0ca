package websocket

import (
	"encoding/json"
	"fmt"

	"github.com/rocketscienceinc/taunttactoe-backend/internal/entity"
)

const (
	actionConnect    = "connect"
	actionGameNew    = "game:new"
	actionGameTurn   = "game:turn"
	actionGameReset  = "game:reset"
	actionGameUpdate = "game:update"
	actionCommentary = "game:commentary"
)

// Message is the envelope for everything on the socket, both
// directions: an action name plus an action-specific payload.
type Message struct {
	Action  string          `json:"action"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// Payload carries the fields an action may need; unused ones stay empty.
type Payload struct {
	Player *entity.Player `json:"player,omitempty"`
	Game   *entity.Game   `json:"game,omitempty"`
	Cell   *int           `json:"cell,omitempty"`
	GameID string         `json:"game_id,omitempty"`
	Taunt  string         `json:"taunt,omitempty"`
	Error  string         `json:"error,omitempty"`
}

func newMessage(action string, payload Payload) (*Message, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal payload: %w", err)
	}

	return &Message{
		Action:  action,
		Payload: raw,
	}, nil
}

func parsePayload(msg *Message) (*Payload, error) {
	var payload Payload

	if len(msg.Payload) == 0 {
		return &payload, nil
	}

	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		return nil, fmt.Errorf("failed to unmarshal payload: %w", err)
	}

	return &payload, nil
}
