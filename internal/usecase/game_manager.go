package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"sync"
	"time"

	"github.com/rocketscienceinc/taunttactoe-backend/internal/apperror"
	"github.com/rocketscienceinc/taunttactoe-backend/internal/commentary"
	"github.com/rocketscienceinc/taunttactoe-backend/internal/entity"
	"github.com/rocketscienceinc/taunttactoe-backend/internal/pkg"
	"github.com/rocketscienceinc/taunttactoe-backend/internal/repository"
	"github.com/rocketscienceinc/taunttactoe-backend/internal/tictactoe"
)

const (
	botTurnTimeout    = 5 * time.Second
	commentaryTimeout = 15 * time.Second
)

type playerRepo interface {
	CreateOrUpdate(ctx context.Context, player *entity.Player) error
	GetByID(ctx context.Context, id string) (*entity.Player, error)
}

type gameRepo interface {
	CreateOrUpdate(ctx context.Context, game *entity.Game) error
	GetByID(ctx context.Context, id string) (*entity.Game, error)
	DeleteByID(ctx context.Context, id string) error
}

type botService interface {
	ChooseCell(board [9]string, mark string) (int, error)
}

type commentator interface {
	Taunt(ctx context.Context, req commentary.Request) string
}

type notifier interface {
	NotifyGameState(playerID string, game *entity.Game)
	NotifyCommentary(playerID, gameID, line string)
}

type GameManager struct {
	logger     *slog.Logger
	playerRepo playerRepo
	gameRepo   gameRepo
	bot        botService
	commentary commentator
	notifier   notifier

	thinkDelayMin time.Duration
	thinkDelayMax time.Duration

	mu        sync.Mutex
	gameLocks map[string]*sync.Mutex
	botTimers map[string]*time.Timer
}

func NewGameManager(
	logger *slog.Logger,
	playerRepo playerRepo,
	gameRepo gameRepo,
	bot botService,
	commentary commentator,
	notifier notifier,
	thinkDelayMin, thinkDelayMax time.Duration,
) *GameManager {
	return &GameManager{
		logger: logger,

		playerRepo: playerRepo,
		gameRepo:   gameRepo,
		bot:        bot,
		commentary: commentary,
		notifier:   notifier,

		thinkDelayMin: thinkDelayMin,
		thinkDelayMax: thinkDelayMax,

		gameLocks: make(map[string]*sync.Mutex),
		botTimers: make(map[string]*time.Timer),
	}
}

// MakeTurn plays the human's move. When the move leaves the game open,
// the bot's reply is scheduled to land after a short thinking pause
// and the call returns without waiting for it.
func (that *GameManager) MakeTurn(ctx context.Context, playerID string, cell int) (*entity.Game, error) {
	player, err := that.getPlayerByID(ctx, playerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get player by id: %w", err)
	}

	lock := that.lockGame(player.GameID)
	lock.Lock()
	defer lock.Unlock()

	game, err := that.GetGameByID(ctx, player.GameID)
	if err != nil {
		return nil, fmt.Errorf("failed to get game by id: %w", err)
	}

	if err = tictactoe.MakeTurn(game, player.Mark, cell); err != nil {
		return nil, fmt.Errorf("failed to make turn: %w", err)
	}

	if game.IsOngoing() {
		that.scheduleBotTurn(game)
	}

	if err = that.updateGame(ctx, game); err != nil {
		return nil, fmt.Errorf("failed to update game: %w", err)
	}

	that.dispatchCommentary(game, cell)

	return game, nil
}

// ResetGame starts a new round on the same game: cells cleared, X to
// move. Works mid-game and after a finished game alike.
func (that *GameManager) ResetGame(ctx context.Context, playerID string) (*entity.Game, error) {
	player, err := that.getPlayerByID(ctx, playerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get player by id: %w", err)
	}

	lock := that.lockGame(player.GameID)
	lock.Lock()
	defer lock.Unlock()

	game, err := that.GetGameByID(ctx, player.GameID)
	if err != nil {
		return nil, fmt.Errorf("failed to get game by id: %w", err)
	}

	that.stopBotTimer(game.ID)

	game.Reset()

	if err = that.updateGame(ctx, game); err != nil {
		return nil, fmt.Errorf("failed to update game: %w", err)
	}

	return game, nil
}

// GetOrCreateGame returns the player's current game, creating a fresh
// one against the bot when the player has none yet.
func (that *GameManager) GetOrCreateGame(ctx context.Context, playerID string) (*entity.Game, error) {
	player, err := that.GetOrCreatePlayer(ctx, playerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get or create player: %w", err)
	}

	if player.GameID == "" {
		game, err := that.createGame(ctx, player)
		if err != nil {
			return nil, fmt.Errorf("failed to create game: %w", err)
		}

		return game, nil
	}

	lock := that.lockGame(player.GameID)
	lock.Lock()
	defer lock.Unlock()

	game, err := that.GetGameByID(ctx, player.GameID)
	if errors.Is(err, repository.ErrGameNotFound) {
		game, err = that.createGame(ctx, player)
		if err != nil {
			return nil, fmt.Errorf("failed to create game: %w", err)
		}

		return game, nil
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get game by id: %w", err)
	}

	that.rearmBotTurn(game)

	return game, nil
}

// EndSession tears down the player's game when the connection goes
// away. Game state is session-scoped; the next connect starts fresh.
func (that *GameManager) EndSession(ctx context.Context, playerID string) error {
	player, err := that.getPlayerByID(ctx, playerID)
	if err != nil {
		return fmt.Errorf("failed to get player by id: %w", err)
	}

	if player.GameID == "" {
		return nil
	}

	lock := that.lockGame(player.GameID)
	lock.Lock()
	defer lock.Unlock()

	that.stopBotTimer(player.GameID)

	game, err := that.GetGameByID(ctx, player.GameID)
	if errors.Is(err, repository.ErrGameNotFound) {
		return nil
	}

	if err != nil {
		return fmt.Errorf("failed to get game by id: %w", err)
	}

	that.deleteGame(ctx, game)

	return nil
}

func (that *GameManager) GetOrCreatePlayer(ctx context.Context, id string) (*entity.Player, error) {
	if id == "" {
		id = pkg.GenerateNewSessionID()
	}

	player, err := that.playerRepo.GetByID(ctx, id)
	if errors.Is(err, repository.ErrPlayerNotFound) {
		player = &entity.Player{ID: id}

		if err = that.updatePlayer(ctx, player); err != nil {
			return nil, fmt.Errorf("failed to create player: %w", err)
		}

		return player, nil
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get player by id: %w", err)
	}

	return player, nil
}

func (that *GameManager) GetGameByID(ctx context.Context, id string) (*entity.Game, error) {
	game, err := that.gameRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get game: %w", err)
	}

	return game, nil
}

// scheduleBotTurn arms a one-shot timer that plays the bot's reply.
// The game's current epoch is captured now and checked again when the
// timer fires, so a reset in between turns the move into a no-op.
func (that *GameManager) scheduleBotTurn(game *entity.Game) {
	game.BotPending = true

	gameID := game.ID
	epoch := game.Epoch

	that.mu.Lock()
	defer that.mu.Unlock()

	if timer, ok := that.botTimers[gameID]; ok {
		timer.Stop()
	}

	that.botTimers[gameID] = time.AfterFunc(that.thinkDelay(), func() {
		that.playBotTurn(gameID, epoch)
	})
}

// rearmBotTurn re-schedules a bot reply that was pending in storage
// without a live timer, e.g. after a restart on the redis backend.
func (that *GameManager) rearmBotTurn(game *entity.Game) {
	if !game.BotPending || !game.IsOngoing() {
		return
	}

	that.mu.Lock()
	_, armed := that.botTimers[game.ID]
	that.mu.Unlock()

	if armed {
		return
	}

	that.scheduleBotTurn(game)
}

// playBotTurn fires from the timer armed by scheduleBotTurn. The move
// is dropped when the round it was scheduled for is gone: the epoch
// moved on, the game finished, or no bot move is expected anymore.
func (that *GameManager) playBotTurn(gameID string, epoch int) {
	log := that.logger.With("method", "playBotTurn")

	ctx, cancel := context.WithTimeout(context.Background(), botTurnTimeout)
	defer cancel()

	that.mu.Lock()
	delete(that.botTimers, gameID)
	that.mu.Unlock()

	lock := that.lockGame(gameID)
	lock.Lock()
	defer lock.Unlock()

	game, err := that.GetGameByID(ctx, gameID)
	if err != nil {
		log.Error("failed to get game by id", "error", err)
		return
	}

	if game.Epoch != epoch || !game.BotPending || game.IsFinished() {
		log.Debug("dropping bot move", "reason", apperror.ErrStaleMove, "game_id", gameID)
		return
	}

	botPlayer := game.BotPlayer()
	if botPlayer == nil {
		log.Error("game has no bot player", "game_id", gameID)
		return
	}

	cell, err := that.bot.ChooseCell(game.Board, botPlayer.Mark)
	if err != nil {
		log.Error("failed to choose cell", "error", err, "game_id", gameID)
		return
	}

	if err = tictactoe.MakeTurn(game, botPlayer.Mark, cell); err != nil {
		log.Error("failed to make bot turn", "error", err, "game_id", gameID)
		return
	}

	game.BotPending = false

	if err = that.updateGame(ctx, game); err != nil {
		log.Error("failed to update game", "error", err)
		return
	}

	humanPlayer := game.HumanPlayer()
	if humanPlayer == nil {
		return
	}

	that.notifier.NotifyGameState(humanPlayer.ID, game)

	if game.IsFinished() {
		that.dispatchCommentary(game, cell)
	}
}

// dispatchCommentary requests one taunt line for the snapshot and
// pushes it to the human side when it arrives. It runs detached from
// the move that triggered it: a slow producer never holds up play.
func (that *GameManager) dispatchCommentary(game *entity.Game, lastCell int) {
	humanPlayer := game.HumanPlayer()
	if humanPlayer == nil {
		return
	}

	req := commentary.Request{
		Board:    game.Board,
		LastCell: lastCell,
		GameOver: game.IsFinished(),
	}

	if req.GameOver {
		req.Outcome = outcomeFor(game)
	}

	gameID := game.ID
	playerID := humanPlayer.ID

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), commentaryTimeout)
		defer cancel()

		line := that.commentary.Taunt(ctx, req)
		that.notifier.NotifyCommentary(playerID, gameID, line)
	}()
}

func (that *GameManager) createGame(ctx context.Context, player *entity.Player) (*entity.Game, error) {
	gameID, err := pkg.GenerateGameID()
	if err != nil {
		return nil, fmt.Errorf("failed to generate game id: %w", err)
	}

	player.GameID = gameID
	player.Mark = entity.PlayerX

	if err = that.updatePlayer(ctx, player); err != nil {
		return nil, fmt.Errorf("failed to update player: %w", err)
	}

	game := entity.NewGame(gameID)
	game.Players = []*entity.Player{player, entity.NewBotPlayer(gameID)}

	if err = that.gameRepo.CreateOrUpdate(ctx, game); err != nil {
		return nil, fmt.Errorf("failed to create game: %w", err)
	}

	return game, nil
}

func (that *GameManager) deleteGame(ctx context.Context, game *entity.Game) {
	log := that.logger.With("method", "deleteGame")

	if err := that.gameRepo.DeleteByID(ctx, game.ID); err != nil {
		log.Error("failed to delete game", "error", err)
	}

	for _, player := range game.Players {
		if player.IsBot() {
			continue
		}

		player.Mark = ""
		player.GameID = ""

		if err := that.playerRepo.CreateOrUpdate(ctx, player); err != nil {
			log.Error("failed to update player", "error", err)
		}
	}

	log.Info("game deleted", "game_id", game.ID)
}

func (that *GameManager) stopBotTimer(gameID string) {
	that.mu.Lock()
	defer that.mu.Unlock()

	if timer, ok := that.botTimers[gameID]; ok {
		timer.Stop()
		delete(that.botTimers, gameID)
	}
}

// lockGame returns the per-game mutex, so moves, resets and the bot's
// timer callback serialize against each other game by game.
func (that *GameManager) lockGame(gameID string) *sync.Mutex {
	that.mu.Lock()
	defer that.mu.Unlock()

	lock, ok := that.gameLocks[gameID]
	if !ok {
		lock = &sync.Mutex{}
		that.gameLocks[gameID] = lock
	}

	return lock
}

func (that *GameManager) thinkDelay() time.Duration {
	if that.thinkDelayMax <= that.thinkDelayMin {
		return that.thinkDelayMin
	}

	spread := that.thinkDelayMax - that.thinkDelayMin

	return that.thinkDelayMin + time.Duration(rand.Int63n(int64(spread))) //nolint: gosec // it's ok
}

func (that *GameManager) getPlayerByID(ctx context.Context, id string) (*entity.Player, error) {
	player, err := that.playerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get player: %w", err)
	}

	return player, nil
}

func (that *GameManager) updateGame(ctx context.Context, game *entity.Game) error {
	if err := that.gameRepo.CreateOrUpdate(ctx, game); err != nil {
		return fmt.Errorf("failed to update game: %w", err)
	}

	return nil
}

func (that *GameManager) updatePlayer(ctx context.Context, player *entity.Player) error {
	if err := that.playerRepo.CreateOrUpdate(ctx, player); err != nil {
		return fmt.Errorf("failed to update player: %w", err)
	}

	return nil
}

func outcomeFor(game *entity.Game) string {
	if game.Winner == entity.PlayerTie {
		return commentary.OutcomeTie
	}

	if botPlayer := game.BotPlayer(); botPlayer != nil && game.Winner == botPlayer.Mark {
		return commentary.OutcomeBotWon
	}

	return commentary.OutcomeHumanWon
}
