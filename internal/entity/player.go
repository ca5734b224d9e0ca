package entity

type Player struct {
	ID     string `json:"id"`
	Mark   string `json:"mark,omitempty"`
	GameID string `json:"game_id,omitempty"`
	Bot    bool   `json:"bot,omitempty"`
}

// NewBotPlayer returns the scripted opponent for the given game.
// The bot always plays O; the human side keeps X and the first move.
func NewBotPlayer(gameID string) *Player {
	return &Player{
		ID:     "bot:" + gameID,
		Mark:   PlayerO,
		GameID: gameID,
		Bot:    true,
	}
}

func (that *Player) IsBot() bool {
	return that.Bot
}
