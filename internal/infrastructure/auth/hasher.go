package auth

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// bcrypt only reads the first 72 bytes of input, so longer passwords are
// rejected instead of being silently truncated.
const maxPasswordBytes = 72

// BcryptPasswordHasher hashes editor account passwords with bcrypt. An
// out-of-range cost falls back to the library default.
type BcryptPasswordHasher struct {
	cost int
}

func NewBcryptPasswordHasher(cost int) *BcryptPasswordHasher {
	return &BcryptPasswordHasher{cost: clampCost(cost)}
}

func clampCost(cost int) int {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		return bcrypt.DefaultCost
	}
	return cost
}

func (h *BcryptPasswordHasher) Hash(password string) (string, error) {
	if len(password) > maxPasswordBytes {
		return "", fmt.Errorf("password exceeds %d bytes", maxPasswordBytes)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", fmt.Errorf("failed to generate password hash: %w", err)
	}
	return string(hash), nil
}

// Verify reports the same generic failure for a wrong password and a
// malformed stored hash.
func (h *BcryptPasswordHasher) Verify(password, hash string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		return fmt.Errorf("password verification failed")
	}
	return nil
}
