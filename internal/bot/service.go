package bot

import (
	"errors"

	"github.com/rocketscienceinc/taunttactoe-backend/internal/entity"
	"github.com/rocketscienceinc/taunttactoe-backend/internal/tictactoe"
)

var ErrNoAvailableMoves = errors.New("no available moves")

const centerCell = 4

// cellPriority orders the fallback picks: corners before edges.
var cellPriority = [...]int{0, 2, 6, 8, 1, 3, 5, 7}

type Service interface {
	ChooseCell(board [9]string, mark string) (int, error)
}

type service struct{}

func NewService() Service {
	return &service{}
}

// ChooseCell picks the bot's next cell. The ladder only reacts to what
// is already on the board: finish an own line, block the opponent's
// line, take the center, then walk cellPriority. There is no lookahead
// past one move, and the same board always yields the same cell.
func (that *service) ChooseCell(board [9]string, mark string) (int, error) {
	if cell, ok := findCompletingCell(board, mark); ok {
		return cell, nil
	}

	if cell, ok := findCompletingCell(board, tictactoe.ToggleMark(mark)); ok {
		return cell, nil
	}

	if board[centerCell] == entity.EmptyCell {
		return centerCell, nil
	}

	for _, cell := range cellPriority {
		if board[cell] == entity.EmptyCell {
			return cell, nil
		}
	}

	return 0, ErrNoAvailableMoves
}

// findCompletingCell - returns the lowest-indexed empty cell that turns
// one of mark's lines into three in a row.
func findCompletingCell(board [9]string, mark string) (int, bool) {
	for cell, value := range board {
		if value != entity.EmptyCell {
			continue
		}

		probe := board
		probe[cell] = mark

		if tictactoe.Evaluate(probe) == mark {
			return cell, true
		}
	}

	return 0, false
}
