package usecases

import (
	"context"

	"relnotes/internal/application/release/dto"
	"relnotes/internal/domain/release"
	"relnotes/internal/shared/errors"
	"relnotes/internal/shared/logger"
)

type CopyReleaseCommand struct {
	SourceID uint
}

// CopyReleaseUseCase duplicates a release with all of its note links.
// The copy is named after the source version: "copy-<version>" for the
// first copy, "copy<N>-<version>" after that, where N counts every
// release of the product whose version ends with the source version.
type CopyReleaseUseCase struct {
	releaseRepo release.ReleaseRepository
	invalidator ProjectionInvalidator
	logger      logger.Interface
}

func NewCopyReleaseUseCase(
	releaseRepo release.ReleaseRepository,
	invalidator ProjectionInvalidator,
	logger logger.Interface,
) *CopyReleaseUseCase {
	return &CopyReleaseUseCase{
		releaseRepo: releaseRepo,
		invalidator: invalidator,
		logger:      logger,
	}
}

func (uc *CopyReleaseUseCase) Execute(ctx context.Context, cmd CopyReleaseCommand) (*dto.ReleaseDTO, error) {
	uc.logger.Infow("executing copy release use case", "source_id", cmd.SourceID)

	source, err := uc.releaseRepo.GetByID(ctx, cmd.SourceID)
	if err != nil {
		return nil, err
	}
	if source == nil {
		return nil, errors.NewNotFoundError("release not found")
	}

	count, err := uc.releaseRepo.CountVersionSuffix(ctx, source.Product(), source.Version())
	if err != nil {
		return nil, err
	}

	newVersion := release.CopyVersionName(source.Version(), count)

	copied, err := uc.releaseRepo.Copy(ctx, cmd.SourceID, newVersion)
	if err != nil {
		uc.logger.Errorw("failed to copy release", "source_id", cmd.SourceID, "error", err)
		return nil, err
	}

	// The copy bumps the linked notes' modified timestamps, which are part
	// of the source release's cached projection.
	invalidateProjections(ctx, uc.invalidator, uc.logger, []uint{cmd.SourceID, copied.ID()})

	uc.logger.Infow("release copied successfully",
		"source_id", cmd.SourceID,
		"copy_id", copied.ID(),
		"version", newVersion)

	return dto.FromReleaseEntity(copied), nil
}
