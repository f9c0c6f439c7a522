package pkg

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

const maxGameID = 99999999

// GenerateGameID - generates a random numeric identifier for a game session.
func GenerateGameID() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(maxGameID))
	if err != nil {
		return "", fmt.Errorf("failed to read random number: %w", err)
	}

	return fmt.Sprintf("%08d", n.Int64()), nil
}
