package usecases

import (
	"context"
	"time"

	"relnotes/internal/application/release/dto"
	"relnotes/internal/domain/release"
	"relnotes/internal/shared/errors"
	"relnotes/internal/shared/logger"
)

type UpdateReleaseCommand struct {
	ID                 uint
	ReleaseDate        *time.Time
	Text               *string
	IsPublic           *bool
	BugList            *string
	BugSearchURL       *string
	SystemRequirements *string
}

type UpdateReleaseUseCase struct {
	releaseRepo release.ReleaseRepository
	invalidator ProjectionInvalidator
	logger      logger.Interface
}

func NewUpdateReleaseUseCase(
	releaseRepo release.ReleaseRepository,
	invalidator ProjectionInvalidator,
	logger logger.Interface,
) *UpdateReleaseUseCase {
	return &UpdateReleaseUseCase{
		releaseRepo: releaseRepo,
		invalidator: invalidator,
		logger:      logger,
	}
}

func (uc *UpdateReleaseUseCase) Execute(ctx context.Context, cmd UpdateReleaseCommand) (*dto.ReleaseDTO, error) {
	uc.logger.Infow("executing update release use case", "id", cmd.ID)

	entity, err := uc.releaseRepo.GetByID(ctx, cmd.ID)
	if err != nil {
		return nil, err
	}
	if entity == nil {
		return nil, errors.NewNotFoundError("release not found")
	}

	text := entity.Text()
	if cmd.Text != nil {
		text = *cmd.Text
	}
	bugList := entity.BugList()
	if cmd.BugList != nil {
		bugList = *cmd.BugList
	}
	bugSearchURL := entity.BugSearchURLOverride()
	if cmd.BugSearchURL != nil {
		bugSearchURL = *cmd.BugSearchURL
	}
	systemRequirements := entity.SystemRequirements()
	if cmd.SystemRequirements != nil {
		systemRequirements = *cmd.SystemRequirements
	}
	entity.UpdateContent(text, bugList, bugSearchURL, systemRequirements)

	if cmd.ReleaseDate != nil {
		if err := entity.UpdateReleaseDate(*cmd.ReleaseDate); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}

	if cmd.IsPublic != nil {
		if *cmd.IsPublic {
			entity.Publish()
		} else {
			entity.Unpublish()
		}
	}

	if err := uc.releaseRepo.Update(ctx, entity); err != nil {
		uc.logger.Errorw("failed to update release", "id", cmd.ID, "error", err)
		return nil, err
	}

	invalidateProjections(ctx, uc.invalidator, uc.logger, []uint{cmd.ID})

	uc.logger.Infow("release updated successfully", "id", cmd.ID)
	return dto.FromReleaseEntity(entity), nil
}
