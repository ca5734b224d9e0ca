package entity

const (
	StatusFinished = "finished"
	StatusOngoing  = "ongoing"

	PlayerX   = "X"
	PlayerO   = "O"
	PlayerTie = "-"

	EmptyCell = ""
)

type Game struct {
	ID         string    `json:"id"`
	Board      [9]string `json:"board"`
	Winner     string    `json:"winner"`
	Status     string    `json:"status"`
	Turn       string    `json:"player_turn"`
	Epoch      int       `json:"epoch"`
	BotPending bool      `json:"bot_pending,omitempty"`
	Players    []*Player `json:"players,omitempty"`
}

func NewGame(id string) *Game {
	return &Game{
		ID:     id,
		Board:  [9]string{EmptyCell, EmptyCell, EmptyCell, EmptyCell, EmptyCell, EmptyCell, EmptyCell, EmptyCell, EmptyCell},
		Turn:   PlayerX,
		Status: StatusOngoing,
	}
}

// Reset wipes the board back to the starting position and bumps the
// epoch, so any bot move still scheduled for the old round gets
// discarded when it fires.
func (that *Game) Reset() {
	that.Board = [9]string{EmptyCell, EmptyCell, EmptyCell, EmptyCell, EmptyCell, EmptyCell, EmptyCell, EmptyCell, EmptyCell}
	that.Winner = ""
	that.Status = StatusOngoing
	that.Turn = PlayerX
	that.BotPending = false
	that.Epoch++
}

func (that *Game) IsFinished() bool {
	return that.Status == StatusFinished
}

func (that *Game) IsOngoing() bool {
	return that.Status == StatusOngoing
}

// InputLocked reports whether the human side must not move right now:
// either the bot still owes a move or the game is over.
func (that *Game) InputLocked() bool {
	return that.BotPending || that.IsFinished()
}

func (that *Game) HumanPlayer() *Player {
	for _, player := range that.Players {
		if !player.IsBot() {
			return player
		}
	}
	return nil
}

func (that *Game) BotPlayer() *Player {
	for _, player := range that.Players {
		if player.IsBot() {
			return player
		}
	}
	return nil
}

// Clone returns a deep copy, so stored games can be handed out without
// sharing mutable state with the caller.
func (that *Game) Clone() *Game {
	clone := *that

	if that.Players != nil {
		clone.Players = make([]*Player, len(that.Players))
		for i, player := range that.Players {
			copied := *player
			clone.Players[i] = &copied
		}
	}

	return &clone
}
