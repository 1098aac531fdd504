package usecases

import (
	"context"

	"relnotes/internal/application/user/dto"
	"relnotes/internal/domain/user"
	"relnotes/internal/shared/constants"
	"relnotes/internal/shared/errors"
	"relnotes/internal/shared/logger"
)

type LoginCommand struct {
	Username string
	Password string
}

type LoginResult struct {
	User   *dto.UserDTO `json:"user"`
	Tokens *TokenPair   `json:"tokens"`
}

// LoginUseCase authenticates an account with username and password and
// issues a token pair. Failures never reveal whether the username or the
// password was wrong.
type LoginUseCase struct {
	userRepo user.Repository
	hasher   PasswordHasher
	tokens   TokenIssuer
	logger   logger.Interface
}

func NewLoginUseCase(
	userRepo user.Repository,
	hasher PasswordHasher,
	tokens TokenIssuer,
	logger logger.Interface,
) *LoginUseCase {
	return &LoginUseCase{
		userRepo: userRepo,
		hasher:   hasher,
		tokens:   tokens,
		logger:   logger,
	}
}

func (uc *LoginUseCase) Execute(ctx context.Context, cmd LoginCommand) (*LoginResult, error) {
	if cmd.Username == "" || cmd.Password == "" {
		return nil, errors.NewValidationError("username and password are required")
	}

	entity, err := uc.userRepo.GetByUsername(ctx, cmd.Username)
	if err != nil {
		return nil, err
	}
	if entity == nil {
		uc.logger.Warnw("login attempt for unknown account", "username", cmd.Username)
		return nil, errors.NewUnauthorizedError("invalid credentials")
	}

	if err := uc.hasher.Verify(cmd.Password, entity.PasswordHash()); err != nil {
		uc.logger.Warnw("login attempt with wrong password", "username", cmd.Username)
		return nil, errors.NewUnauthorizedError("invalid credentials")
	}

	role := ""
	if entity.IsStaff() {
		role = constants.RoleStaff
	}

	pair, err := uc.tokens.Generate(entity.ID(), entity.Username(), role)
	if err != nil {
		uc.logger.Errorw("failed to issue tokens", "username", cmd.Username, "error", err)
		return nil, errors.NewInternalError("failed to issue tokens")
	}

	return &LoginResult{
		User:   dto.FromUserEntity(entity),
		Tokens: pair,
	}, nil
}
