package usecases

import (
	"context"

	"relnotes/internal/application/user/dto"
	"relnotes/internal/domain/user"
	"relnotes/internal/shared/errors"
	"relnotes/internal/shared/logger"
)

type CreateUserCommand struct {
	Username string
	Password string
	IsStaff  bool
}

type CreateUserUseCase struct {
	userRepo user.Repository
	hasher   PasswordHasher
	logger   logger.Interface
}

func NewCreateUserUseCase(
	userRepo user.Repository,
	hasher PasswordHasher,
	logger logger.Interface,
) *CreateUserUseCase {
	return &CreateUserUseCase{
		userRepo: userRepo,
		hasher:   hasher,
		logger:   logger,
	}
}

func (uc *CreateUserUseCase) Execute(ctx context.Context, cmd CreateUserCommand) (*dto.UserDTO, error) {
	if cmd.Username == "" {
		return nil, errors.NewValidationError("username is required")
	}
	if len(cmd.Password) < 8 {
		return nil, errors.NewValidationError("password must be at least 8 characters")
	}

	exists, err := uc.userRepo.ExistsByUsername(ctx, cmd.Username)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, errors.NewConflictError("username already taken")
	}

	hash, err := uc.hasher.Hash(cmd.Password)
	if err != nil {
		uc.logger.Errorw("failed to hash password", "error", err)
		return nil, errors.NewInternalError("failed to hash password")
	}

	entity, err := user.NewUser(cmd.Username, hash, cmd.IsStaff)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.userRepo.Create(ctx, entity); err != nil {
		return nil, err
	}

	uc.logger.Infow("account created", "username", cmd.Username, "is_staff", cmd.IsStaff)
	return dto.FromUserEntity(entity), nil
}
