package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/taunttactoe-backend/internal/apperror"
	"github.com/rocketscienceinc/taunttactoe-backend/internal/entity"
)

var WinCombos = [][3]int{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

// MakeTurn - applies a mark to a cell and advances the game state.
func MakeTurn(game *entity.Game, mark string, cell int) error {
	if game.IsFinished() {
		return apperror.ErrGameFinished
	}

	if err := validateMove(game, mark, cell); err != nil {
		return fmt.Errorf("invalid turn: %w", err)
	}

	game.Board[cell] = mark
	updateGameStatus(game, mark)

	return nil
}

// validateMove - checks the move preconditions: cell bounds first,
// then occupancy, then turn ownership.
func validateMove(game *entity.Game, mark string, cell int) error {
	if cell < 0 || cell >= len(game.Board) {
		return apperror.ErrInvalidCell
	}

	if game.Board[cell] != entity.EmptyCell {
		return apperror.ErrCellOccupied
	}

	if game.Turn != mark {
		return apperror.ErrNotYourTurn
	}

	return nil
}

// updateGameStatus - settles the game after a move: records the winner
// and freezes the board, or passes the turn to the other mark.
func updateGameStatus(game *entity.Game, mark string) {
	switch winner := Evaluate(game.Board); winner {
	case entity.PlayerX, entity.PlayerO:
		game.Winner = winner
		game.Status = entity.StatusFinished
		game.Turn = ""
	case entity.PlayerTie:
		game.Winner = entity.PlayerTie
		game.Status = entity.StatusFinished
		game.Turn = ""
	default:
		game.Turn = ToggleMark(mark)
	}
}

// ToggleMark - returns the opposing mark.
func ToggleMark(currentMark string) string {
	if currentMark == entity.PlayerX {
		return entity.PlayerO
	}
	return entity.PlayerX
}

// Evaluate - scans the eight lines for a winner, then checks for a
// tie. Returns the winner mark, entity.PlayerTie when the board is
// full, or an empty string while the game is still open.
func Evaluate(board [9]string) string {
	for _, combo := range WinCombos {
		a, b, c := board[combo[0]], board[combo[1]], board[combo[2]]
		if a != entity.EmptyCell && a == b && b == c {
			return a
		}
	}

	for _, cell := range board {
		if cell == entity.EmptyCell {
			return ""
		}
	}

	return entity.PlayerTie
}
