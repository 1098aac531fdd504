package usecases

import (
	"context"

	"relnotes/internal/domain/release"
	"relnotes/internal/shared/errors"
	"relnotes/internal/shared/logger"
)

type DeleteReleaseCommand struct {
	ID uint
}

type DeleteReleaseUseCase struct {
	releaseRepo release.ReleaseRepository
	invalidator ProjectionInvalidator
	logger      logger.Interface
}

func NewDeleteReleaseUseCase(
	releaseRepo release.ReleaseRepository,
	invalidator ProjectionInvalidator,
	logger logger.Interface,
) *DeleteReleaseUseCase {
	return &DeleteReleaseUseCase{
		releaseRepo: releaseRepo,
		invalidator: invalidator,
		logger:      logger,
	}
}

func (uc *DeleteReleaseUseCase) Execute(ctx context.Context, cmd DeleteReleaseCommand) error {
	uc.logger.Infow("executing delete release use case", "id", cmd.ID)

	entity, err := uc.releaseRepo.GetByID(ctx, cmd.ID)
	if err != nil {
		return err
	}
	if entity == nil {
		return errors.NewNotFoundError("release not found")
	}

	if err := uc.releaseRepo.Delete(ctx, cmd.ID); err != nil {
		uc.logger.Errorw("failed to delete release", "id", cmd.ID, "error", err)
		return err
	}

	invalidateProjections(ctx, uc.invalidator, uc.logger, []uint{cmd.ID})

	uc.logger.Infow("release deleted successfully", "id", cmd.ID)
	return nil
}
