package websocket

import (
	"fmt"
	"log/slog"
	"sync"

	gws "github.com/gorilla/websocket"
	"github.com/rocketscienceinc/taunttactoe-backend/internal/entity"
)

// connection wraps a socket with a write lock; gorilla allows only one
// concurrent writer per connection.
type connection struct {
	mu   sync.Mutex
	conn *gws.Conn
}

func (that *connection) send(action string, payload Payload) error {
	message, err := newMessage(action, payload)
	if err != nil {
		return err
	}

	that.mu.Lock()
	defer that.mu.Unlock()

	if err = that.conn.WriteJSON(message); err != nil {
		return fmt.Errorf("failed to write message: %w", err)
	}

	return nil
}

// Hub tracks which player sits on which connection and pushes
// server-initiated updates, like bot moves and taunts, to them.
type Hub struct {
	logger *slog.Logger

	mu          sync.RWMutex
	connections map[string]*connection
}

func NewHub(logger *slog.Logger) *Hub {
	return &Hub{
		logger:      logger.With("component", "hub"),
		connections: make(map[string]*connection),
	}
}

func (that *Hub) Register(playerID string, conn *connection) {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.connections[playerID] = conn
}

// UnregisterConn drops the registration owned by the given socket and
// returns the player who held it, if any.
func (that *Hub) UnregisterConn(conn *connection) (string, bool) {
	that.mu.Lock()
	defer that.mu.Unlock()

	for playerID, registered := range that.connections {
		if registered == conn {
			delete(that.connections, playerID)
			return playerID, true
		}
	}

	return "", false
}

func (that *Hub) connectionFor(playerID string) (*connection, bool) {
	that.mu.RLock()
	defer that.mu.RUnlock()

	conn, ok := that.connections[playerID]

	return conn, ok
}

// NotifyGameState pushes the latest game snapshot to the player.
func (that *Hub) NotifyGameState(playerID string, game *entity.Game) {
	log := that.logger.With("method", "NotifyGameState")

	conn, ok := that.connectionFor(playerID)
	if !ok {
		log.Warn("connection not found for player", "playerID", playerID)
		return
	}

	payload := Payload{
		Game: maskGameDetails(game),
	}

	if err := conn.send(actionGameUpdate, payload); err != nil {
		log.Error("failed to send game update", "error", err, "playerID", playerID)
	}
}

// NotifyCommentary pushes one taunt line to the player.
func (that *Hub) NotifyCommentary(playerID, gameID, line string) {
	log := that.logger.With("method", "NotifyCommentary")

	conn, ok := that.connectionFor(playerID)
	if !ok {
		log.Warn("connection not found for player", "playerID", playerID)
		return
	}

	payload := Payload{
		GameID: gameID,
		Taunt:  line,
	}

	if err := conn.send(actionCommentary, payload); err != nil {
		log.Error("failed to send commentary", "error", err, "playerID", playerID)
	}
}
