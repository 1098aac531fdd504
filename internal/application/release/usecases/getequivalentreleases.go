package usecases

import (
	"context"

	"relnotes/internal/application/release/dto"
	"relnotes/internal/domain/release"
	"relnotes/internal/shared/errors"
	"relnotes/internal/shared/logger"
)

type GetEquivalentReleaseQuery struct {
	ReleaseID uint
}

type EquivalentReleaseResult struct {
	// Product is the counterpart product the lookup ran against.
	Product string `json:"product"`
	// Release is the best equivalent release, or nil when none exists.
	Release *dto.ReleaseDTO `json:"release"`
}

// GetEquivalentReleaseUseCase finds the counterpart-product release that
// matches a release's major version on the same channel. Firefox pairs
// with Firefox for Android; other products have no counterpart.
type GetEquivalentReleaseUseCase struct {
	releaseRepo release.ReleaseRepository
	// devMode includes non-public releases in the candidate set.
	devMode bool
	logger  logger.Interface
}

func NewGetEquivalentReleaseUseCase(
	releaseRepo release.ReleaseRepository,
	devMode bool,
	logger logger.Interface,
) *GetEquivalentReleaseUseCase {
	return &GetEquivalentReleaseUseCase{
		releaseRepo: releaseRepo,
		devMode:     devMode,
		logger:      logger,
	}
}

func (uc *GetEquivalentReleaseUseCase) Execute(ctx context.Context, query GetEquivalentReleaseQuery) (*EquivalentReleaseResult, error) {
	entity, err := uc.releaseRepo.GetByID(ctx, query.ReleaseID)
	if err != nil {
		return nil, err
	}
	if entity == nil {
		return nil, errors.NewNotFoundError("release not found")
	}

	counterpart, ok := release.EquivalentProductFor(entity.Product())
	if !ok {
		return nil, errors.NewBadRequestError("product has no counterpart for equivalence lookup")
	}

	// Match whole major versions only: prefix "33." keeps 40.x out of a
	// lookup for major 4.
	publicOnly := !uc.devMode
	candidates, err := uc.releaseRepo.EquivalenceCandidates(
		ctx, counterpart, entity.Channel(), entity.MajorVersion()+".", publicOnly)
	if err != nil {
		uc.logger.Errorw("failed to load equivalence candidates",
			"release_id", query.ReleaseID, "error", err)
		return nil, err
	}

	best := release.SelectEquivalent(candidates)

	return &EquivalentReleaseResult{
		Product: counterpart.String(),
		Release: dto.FromReleaseEntity(best),
	}, nil
}
