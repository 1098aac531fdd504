package usecases

import (
	"context"

	"relnotes/internal/application/user/dto"
)

// PasswordHasher hashes and verifies account passwords.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, hash string) error
}

// TokenPair carries the signed tokens issued after a successful login.
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"`
}

// TokenIssuer signs token pairs for authenticated accounts.
type TokenIssuer interface {
	Generate(userID uint, username, role string) (*TokenPair, error)
}

type LoginExecutor interface {
	Execute(ctx context.Context, cmd LoginCommand) (*LoginResult, error)
}

type GetUserExecutor interface {
	Execute(ctx context.Context, query GetUserQuery) (*dto.UserDTO, error)
}
