package tictactoe

import (
	"testing"

	"github.com/rocketscienceinc/taunttactoe-backend/internal/apperror"
	"github.com/rocketscienceinc/taunttactoe-backend/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGame_MakeTurn(t *testing.T) {
	t.Run("MakeTurn", func(t *testing.T) {
		// Given: create a new game
		game := entity.NewGame("123")

		// When: player X makes a turn
		err := MakeTurn(game, entity.PlayerX, 0)
		require.NoError(t, err)

		// Then: the game state should reflect the turn and queue change
		expectedGame := &entity.Game{
			ID:     "123",
			Board:  [9]string{entity.PlayerX, "", "", "", "", "", "", "", ""},
			Turn:   entity.PlayerO,
			Winner: "",
			Status: entity.StatusOngoing,
		}

		require.Equal(t, expectedGame, game)
	})

	t.Run("Error on cell already occupied", func(t *testing.T) {
		// Given: new game with player X's queue
		game := entity.NewGame("123")

		// When: player X moves to cell 0
		err := MakeTurn(game, entity.PlayerX, 0)
		require.NoError(t, err)

		// When: player O tries to make a move to the same square
		err = MakeTurn(game, entity.PlayerO, 0)

		// Then: an error ErrCellOccupied must be returned
		require.ErrorIs(t, err, apperror.ErrCellOccupied)

		// Then: the game state remains unchanged
		expectedGame := &entity.Game{
			ID:     "123",
			Board:  [9]string{entity.PlayerX, "", "", "", "", "", "", "", ""},
			Turn:   entity.PlayerO,
			Winner: "",
			Status: entity.StatusOngoing,
		}

		require.Equal(t, expectedGame, game)
	})

	t.Run("Error on playing out of turn", func(t *testing.T) {
		// Given: a new game
		game := entity.NewGame("123")

		// When: player O tries to make a move when it is player X's turn
		err := MakeTurn(game, entity.PlayerO, 1)

		// Then: an error ErrNotYourTurn must be returned
		require.ErrorIs(t, err, apperror.ErrNotYourTurn)

		// Then: the game state remains unchanged
		expectedGame := &entity.Game{
			ID:     "123",
			Board:  [9]string{"", "", "", "", "", "", "", "", ""},
			Turn:   entity.PlayerX,
			Winner: "",
			Status: entity.StatusOngoing,
		}

		require.Equal(t, expectedGame, game)
	})

	t.Run("Invalid Cell", func(t *testing.T) {
		// Given: a new game
		game := entity.NewGame("123")

		// When: an invalid cell index is passed (greater than the range)
		err := MakeTurn(game, entity.PlayerX, 20)

		// Then: an error ErrInvalidCell must be returned
		assert.ErrorIs(t, err, apperror.ErrInvalidCell)
	})

	t.Run("Invalid Negative Cell", func(t *testing.T) {
		// Given: a new game
		game := entity.NewGame("123")

		// When: negative cell index is transmitted
		err := MakeTurn(game, entity.PlayerX, -1)

		// Then: an error ErrInvalidCell must be returned
		assert.ErrorIs(t, err, apperror.ErrInvalidCell)
	})

	t.Run("Occupied cell reported before turn ownership", func(t *testing.T) {
		// Given: a game where X already holds cell 0 and it is O's move
		game := entity.NewGame("123")
		err := MakeTurn(game, entity.PlayerX, 0)
		require.NoError(t, err)

		// When: player X plays out of turn into the occupied cell
		err = MakeTurn(game, entity.PlayerX, 0)

		// Then: the occupancy check wins over the turn check
		assert.ErrorIs(t, err, apperror.ErrCellOccupied)
	})

	t.Run("Winning move settles the game", func(t *testing.T) {
		// Given: a game one move away from X completing the left column
		game := entity.NewGame("123")
		for _, turn := range []struct {
			mark string
			cell int
		}{
			{entity.PlayerX, 0},
			{entity.PlayerO, 1},
			{entity.PlayerX, 3},
			{entity.PlayerO, 2},
		} {
			require.NoError(t, MakeTurn(game, turn.mark, turn.cell))
		}

		// When: player X completes the column
		err := MakeTurn(game, entity.PlayerX, 6)
		require.NoError(t, err)

		// Then: the game is finished, X is the winner and nobody is on turn
		assert.Equal(t, entity.PlayerX, game.Winner)
		assert.Equal(t, entity.StatusFinished, game.Status)
		assert.Equal(t, "", game.Turn)
	})

	t.Run("Full board without a line ends in a tie", func(t *testing.T) {
		// Given: a new game
		game := entity.NewGame("123")

		// When: both sides fill the board without making a line
		for _, turn := range []struct {
			mark string
			cell int
		}{
			{entity.PlayerX, 0},
			{entity.PlayerO, 1},
			{entity.PlayerX, 2},
			{entity.PlayerO, 4},
			{entity.PlayerX, 3},
			{entity.PlayerO, 5},
			{entity.PlayerX, 7},
			{entity.PlayerO, 6},
			{entity.PlayerX, 8},
		} {
			require.NoError(t, MakeTurn(game, turn.mark, turn.cell))
		}

		// Then: the game settles as a tie
		assert.Equal(t, entity.PlayerTie, game.Winner)
		assert.Equal(t, entity.StatusFinished, game.Status)
		assert.Equal(t, "", game.Turn)
	})

	t.Run("Turn alternates with every accepted move", func(t *testing.T) {
		// Given: a fresh game
		game := entity.NewGame("123")

		// When/Then: after each accepted move the turn belongs to the
		// other side: X on even move counts, O on odd
		for n, cell := range []int{0, 4, 1, 3, 8} {
			if n%2 == 0 {
				require.Equal(t, entity.PlayerX, game.Turn)
			} else {
				require.Equal(t, entity.PlayerO, game.Turn)
			}

			require.NoError(t, MakeTurn(game, game.Turn, cell))
		}
	})

	t.Run("Move After Game Finished", func(t *testing.T) {
		// Given: a game where player X has already won
		game := &entity.Game{
			Board:  [9]string{entity.PlayerX, entity.PlayerX, entity.PlayerX, "", entity.PlayerO, "", "", entity.PlayerO, ""},
			Status: entity.StatusFinished,
			Winner: entity.PlayerX,
		}

		// When: player O tries to make a move after the game is over
		err := MakeTurn(game, entity.PlayerO, 3)

		// Then: an error apperror.ErrGameFinished should be returned
		assert.ErrorIs(t, err, apperror.ErrGameFinished)
	})

	t.Run("Move After Tie", func(t *testing.T) {
		// Given: a game that ended in a draw
		game := &entity.Game{
			Board:  [9]string{entity.PlayerO, entity.PlayerX, entity.PlayerO, entity.PlayerO, entity.PlayerX, entity.PlayerX, entity.PlayerX, entity.PlayerO, entity.PlayerO},
			Status: entity.StatusFinished,
			Winner: entity.PlayerTie,
		}

		// When: player X tries to make a move after a draw
		err := MakeTurn(game, entity.PlayerX, 3)

		// Then: an error apperror.ErrGameFinished should be returned
		assert.ErrorIs(t, err, apperror.ErrGameFinished)
	})
}

func TestGame_Evaluate(t *testing.T) {
	t.Run("Winner X", func(t *testing.T) {
		// Given: a game where player X has a winning combination
		board := [9]string{entity.PlayerX, entity.PlayerO, "", entity.PlayerX, entity.PlayerO, "", entity.PlayerX, "", ""}

		// When: evaluate the board
		winner := Evaluate(board)

		// Then: player X should be declared the winner
		require.Equal(t, entity.PlayerX, winner)
	})

	t.Run("Every line wins", func(t *testing.T) {
		// Given: each of the eight winning combinations in turn
		for _, combo := range WinCombos {
			board := [9]string{}
			for _, cell := range combo {
				board[cell] = entity.PlayerO
			}

			// Then: the line owner is the winner
			assert.Equal(t, entity.PlayerO, Evaluate(board))
		}
	})

	t.Run("Ongoing Game", func(t *testing.T) {
		// Given: a game where there is no winner yet
		board := [9]string{entity.PlayerX, entity.PlayerO, entity.PlayerX, "", entity.PlayerO, "", entity.PlayerX, "", ""}

		// When: evaluate the board
		winner := Evaluate(board)

		// Then: the game should continue (no winner)
		require.Equal(t, "", winner)
	})

	t.Run("Full board with crossing marks is a tie", func(t *testing.T) {
		// Given: a full board where neither side completed a line
		board := [9]string{
			entity.PlayerX, entity.PlayerO, entity.PlayerX,
			entity.PlayerX, entity.PlayerO, entity.PlayerO,
			entity.PlayerO, entity.PlayerX, entity.PlayerX,
		}

		// Then: the position is a tie
		assert.Equal(t, entity.PlayerTie, Evaluate(board))
	})

	t.Run("Tie", func(t *testing.T) {
		// Given: a game that ended in a tie
		board := [9]string{entity.PlayerO, entity.PlayerX, entity.PlayerO, entity.PlayerO, entity.PlayerX, entity.PlayerX, entity.PlayerX, entity.PlayerO, entity.PlayerX}

		// When: evaluate the board
		winner := Evaluate(board)

		// Then: the game should be declared a tie
		assert.Equal(t, entity.PlayerTie, winner)
	})
}

func TestToggleMark(t *testing.T) {
	t.Run("Returns the opposing mark", func(t *testing.T) {
		assert.Equal(t, entity.PlayerO, ToggleMark(entity.PlayerX))
		assert.Equal(t, entity.PlayerX, ToggleMark(entity.PlayerO))
	})
}
