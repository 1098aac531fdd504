package usecases

import (
	"context"

	"relnotes/internal/application/release/dto"
	"relnotes/internal/domain/release"
	vo "relnotes/internal/domain/release/valueobjects"
	"relnotes/internal/shared/errors"
	"relnotes/internal/shared/logger"
)

type GetReleaseQuery struct {
	ID uint
	// Product and Version form the natural key lookup used when ID is zero.
	Product string
	Version string
}

type GetReleaseUseCase struct {
	releaseRepo release.ReleaseRepository
	logger      logger.Interface
}

func NewGetReleaseUseCase(
	releaseRepo release.ReleaseRepository,
	logger logger.Interface,
) *GetReleaseUseCase {
	return &GetReleaseUseCase{
		releaseRepo: releaseRepo,
		logger:      logger,
	}
}

func (uc *GetReleaseUseCase) Execute(ctx context.Context, query GetReleaseQuery) (*dto.ReleaseDTO, error) {
	var (
		entity *release.Release
		err    error
	)

	if query.ID != 0 {
		entity, err = uc.releaseRepo.GetByID(ctx, query.ID)
	} else {
		var product vo.Product
		product, err = vo.NewProduct(query.Product)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		entity, err = uc.releaseRepo.GetByProductVersion(ctx, product, query.Version)
	}
	if err != nil {
		return nil, err
	}
	if entity == nil {
		return nil, errors.NewNotFoundError("release not found")
	}

	return dto.FromReleaseEntity(entity), nil
}
