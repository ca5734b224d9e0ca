package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGame(t *testing.T) {
	t.Run("Starts with an empty board and X to move", func(t *testing.T) {
		// Given: a fresh game
		game := NewGame("123")

		// Then: the board is empty, X moves first and the game is ongoing
		expectedGame := &Game{
			ID:     "123",
			Board:  [9]string{"", "", "", "", "", "", "", "", ""},
			Turn:   PlayerX,
			Status: StatusOngoing,
		}

		require.Equal(t, expectedGame, game)
	})
}

func TestGameStatusMethods(t *testing.T) {
	t.Run("IsFinished returns true when game status is finished", func(t *testing.T) {
		// Given: a game with StatusFinished
		game := &Game{Status: StatusFinished}

		// When: checking if the game is finished
		isFinished := game.IsFinished()

		// Then: it should return true
		assert.True(t, isFinished)
	})

	t.Run("IsOngoing returns true when game status is ongoing", func(t *testing.T) {
		// Given: a game with StatusOngoing
		game := &Game{Status: StatusOngoing}

		// When: checking if the game is ongoing
		isOngoing := game.IsOngoing()

		// Then: it should return true
		assert.True(t, isOngoing)
	})
}

func TestGame_InputLocked(t *testing.T) {
	t.Run("Returns true while a bot move is pending", func(t *testing.T) {
		// Given: an ongoing game waiting on the bot
		game := &Game{Status: StatusOngoing, BotPending: true}

		// Then: input is locked
		assert.True(t, game.InputLocked())
	})

	t.Run("Returns true when the game is finished", func(t *testing.T) {
		// Given: a finished game
		game := &Game{Status: StatusFinished}

		// Then: input is locked
		assert.True(t, game.InputLocked())
	})

	t.Run("Returns false when it is the human's move", func(t *testing.T) {
		// Given: an ongoing game with no pending bot move
		game := &Game{Status: StatusOngoing, Turn: PlayerX}

		// Then: input is open
		assert.False(t, game.InputLocked())
	})
}

func TestGame_Reset(t *testing.T) {
	t.Run("Clears the round and bumps the epoch", func(t *testing.T) {
		// Given: a finished game with marks on the board and a pending bot move
		game := NewGame("123")
		players := []*Player{
			{ID: "p1", Mark: PlayerX, GameID: "123"},
			NewBotPlayer("123"),
		}
		game.Players = players
		game.Board[0] = PlayerX
		game.Board[4] = PlayerO
		game.Winner = PlayerX
		game.Status = StatusFinished
		game.Turn = ""
		game.BotPending = true

		// When: the game is reset
		game.Reset()

		// Then: the board is fresh, X moves first and the epoch moved on
		assert.Equal(t, [9]string{"", "", "", "", "", "", "", "", ""}, game.Board)
		assert.Equal(t, PlayerX, game.Turn)
		assert.Equal(t, StatusOngoing, game.Status)
		assert.Equal(t, "", game.Winner)
		assert.False(t, game.BotPending)
		assert.Equal(t, 1, game.Epoch)

		// And: identity and players survive the reset
		assert.Equal(t, "123", game.ID)
		assert.Equal(t, players, game.Players)
	})

	t.Run("Each reset bumps the epoch again", func(t *testing.T) {
		// Given: a fresh game
		game := NewGame("123")

		// When: resetting three times in a row
		game.Reset()
		game.Reset()
		game.Reset()

		// Then: the epoch counted every reset
		assert.Equal(t, 3, game.Epoch)
	})
}

func TestGame_PlayerLookup(t *testing.T) {
	t.Run("Finds the human and the bot", func(t *testing.T) {
		// Given: a game with a human and a bot
		game := NewGame("123")
		game.Players = []*Player{
			{ID: "p1", Mark: PlayerX, GameID: "123"},
			NewBotPlayer("123"),
		}

		// Then: lookups return the right sides
		require.NotNil(t, game.HumanPlayer())
		require.NotNil(t, game.BotPlayer())
		assert.Equal(t, "p1", game.HumanPlayer().ID)
		assert.True(t, game.BotPlayer().IsBot())
		assert.Equal(t, PlayerO, game.BotPlayer().Mark)
	})

	t.Run("Returns nil when the side is missing", func(t *testing.T) {
		// Given: a game without players
		game := NewGame("123")

		// Then: both lookups come back empty
		assert.Nil(t, game.HumanPlayer())
		assert.Nil(t, game.BotPlayer())
	})
}

func TestGame_Clone(t *testing.T) {
	t.Run("Mutating the clone leaves the original alone", func(t *testing.T) {
		// Given: a game with players and one mark on the board
		game := NewGame("123")
		game.Players = []*Player{
			{ID: "p1", Mark: PlayerX, GameID: "123"},
			NewBotPlayer("123"),
		}
		game.Board[4] = PlayerX

		// When: cloning and mutating the copy
		clone := game.Clone()
		clone.Board[0] = PlayerO
		clone.Players[0].Mark = PlayerO
		clone.Status = StatusFinished

		// Then: the original is untouched
		assert.Equal(t, EmptyCell, game.Board[0])
		assert.Equal(t, PlayerX, game.Players[0].Mark)
		assert.Equal(t, StatusOngoing, game.Status)
	})
}
