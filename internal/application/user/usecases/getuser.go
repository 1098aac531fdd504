package usecases

import (
	"context"

	"relnotes/internal/application/user/dto"
	"relnotes/internal/domain/user"
	"relnotes/internal/shared/errors"
	"relnotes/internal/shared/logger"
)

type GetUserQuery struct {
	ID uint
}

type GetUserUseCase struct {
	userRepo user.Repository
	logger   logger.Interface
}

func NewGetUserUseCase(userRepo user.Repository, logger logger.Interface) *GetUserUseCase {
	return &GetUserUseCase{
		userRepo: userRepo,
		logger:   logger,
	}
}

func (uc *GetUserUseCase) Execute(ctx context.Context, query GetUserQuery) (*dto.UserDTO, error) {
	entity, err := uc.userRepo.GetByID(ctx, query.ID)
	if err != nil {
		return nil, err
	}
	if entity == nil {
		return nil, errors.NewNotFoundError("account not found")
	}
	return dto.FromUserEntity(entity), nil
}
