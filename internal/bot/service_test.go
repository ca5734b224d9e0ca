package bot

import (
	"testing"

	"github.com/rocketscienceinc/taunttactoe-backend/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestService_ChooseCell(t *testing.T) {
	botService := NewService()

	t.Run("Takes its own winning cell even when a block is available", func(t *testing.T) {
		// Given: O can win at 2 while X threatens to win at 5
		board := [9]string{entity.PlayerO, entity.PlayerO, "", entity.PlayerX, entity.PlayerX, "", "", "", entity.PlayerX}

		// When: the bot picks a cell for O
		cell, err := botService.ChooseCell(board, entity.PlayerO)

		// Then: it finishes its own line instead of blocking
		require.NoError(t, err)
		assert.Equal(t, 2, cell)
	})

	t.Run("Blocks the opponent's winning cell", func(t *testing.T) {
		// Given: X threatens the top row at cell 2 and O has no win of its own
		board := [9]string{entity.PlayerX, entity.PlayerX, "", "", entity.PlayerO, "", "", entity.PlayerO, entity.PlayerX}

		// When: the bot picks a cell for O
		cell, err := botService.ChooseCell(board, entity.PlayerO)

		// Then: it blocks at 2
		require.NoError(t, err)
		assert.Equal(t, 2, cell)
	})

	t.Run("Takes the center when there is nothing tactical", func(t *testing.T) {
		// Given: X opened in a corner
		board := [9]string{entity.PlayerX, "", "", "", "", "", "", "", ""}

		// When: the bot picks a cell for O
		cell, err := botService.ChooseCell(board, entity.PlayerO)

		// Then: it takes the center
		require.NoError(t, err)
		assert.Equal(t, 4, cell)
	})

	t.Run("Falls back to the first free corner when the center is taken", func(t *testing.T) {
		// Given: X opened in the center
		board := [9]string{"", "", "", "", entity.PlayerX, "", "", "", ""}

		// When: the bot picks a cell for O
		cell, err := botService.ChooseCell(board, entity.PlayerO)

		// Then: it takes the first corner in priority order
		require.NoError(t, err)
		assert.Equal(t, 0, cell)
	})

	t.Run("Skips occupied cells while walking the priority order", func(t *testing.T) {
		// Given: the center and corner 0 are taken and no line can be
		// completed by either side in one move
		board := [9]string{entity.PlayerO, entity.PlayerX, "", "", entity.PlayerX, "", "", entity.PlayerO, entity.PlayerX}

		// When: the bot picks a cell for O
		cell, err := botService.ChooseCell(board, entity.PlayerO)

		// Then: it skips corner 0 and takes corner 2
		require.NoError(t, err)
		assert.Equal(t, 2, cell)
	})

	t.Run("Walks the priority order to the last free cell", func(t *testing.T) {
		// Given: a board with a single free cell and no winning probe
		board := [9]string{entity.PlayerX, entity.PlayerO, entity.PlayerX, entity.PlayerX, entity.PlayerO, entity.PlayerO, entity.PlayerO, entity.PlayerX, ""}

		// When: the bot picks a cell for X
		cell, err := botService.ChooseCell(board, entity.PlayerX)

		// Then: it lands on the only cell left
		require.NoError(t, err)
		assert.Equal(t, 8, cell)
	})

	t.Run("Returns ErrNoAvailableMoves on a full board", func(t *testing.T) {
		// Given: a completely filled board
		board := [9]string{entity.PlayerX, entity.PlayerO, entity.PlayerX, entity.PlayerX, entity.PlayerO, entity.PlayerO, entity.PlayerO, entity.PlayerX, entity.PlayerX}

		// When: the bot is asked for a cell anyway
		_, err := botService.ChooseCell(board, entity.PlayerO)

		// Then: it reports that nothing is left
		assert.ErrorIs(t, err, ErrNoAvailableMoves)
	})

	t.Run("Same board always yields the same cell", func(t *testing.T) {
		// Given: a mid-game position
		board := [9]string{entity.PlayerX, "", "", "", entity.PlayerO, "", "", "", entity.PlayerX}

		// When: asking twice for the same position
		first, err := botService.ChooseCell(board, entity.PlayerO)
		require.NoError(t, err)

		second, err := botService.ChooseCell(board, entity.PlayerO)
		require.NoError(t, err)

		// Then: the pick does not change
		assert.Equal(t, first, second)
	})
}
