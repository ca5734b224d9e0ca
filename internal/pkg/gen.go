package pkg

import (
	"crypto/rand"
	"fmt"
	"math/big"

	"github.com/google/uuid"
)

var gameIDLimit = big.NewInt(100000000)

// GenerateGameID - generates a short numeric identifier for a game.
func GenerateGameID() (string, error) {
	n, err := rand.Int(rand.Reader, gameIDLimit)
	if err != nil {
		return "", fmt.Errorf("failed to generate game ID: %w", err)
	}

	return fmt.Sprintf("%08d", n.Int64()), nil
}

// GenerateNewSessionID - generates a unique identifier for a connected player.
func GenerateNewSessionID() string {
	return uuid.NewString()
}
