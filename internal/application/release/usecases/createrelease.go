package usecases

import (
	"context"
	"time"

	"relnotes/internal/application/release/dto"
	"relnotes/internal/domain/release"
	vo "relnotes/internal/domain/release/valueobjects"
	"relnotes/internal/shared/errors"
	"relnotes/internal/shared/logger"
)

type CreateReleaseCommand struct {
	Product            string
	Channel            string
	Version            string
	ReleaseDate        time.Time
	Text               string
	IsPublic           bool
	BugList            string
	BugSearchURL       string
	SystemRequirements string
}

type CreateReleaseUseCase struct {
	releaseRepo release.ReleaseRepository
	logger      logger.Interface
}

func NewCreateReleaseUseCase(
	releaseRepo release.ReleaseRepository,
	logger logger.Interface,
) *CreateReleaseUseCase {
	return &CreateReleaseUseCase{
		releaseRepo: releaseRepo,
		logger:      logger,
	}
}

func (uc *CreateReleaseUseCase) Execute(ctx context.Context, cmd CreateReleaseCommand) (*dto.ReleaseDTO, error) {
	uc.logger.Infow("executing create release use case",
		"product", cmd.Product, "version", cmd.Version)

	product, err := vo.NewProduct(cmd.Product)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	channel, err := vo.NewChannel(cmd.Channel)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	existing, err := uc.releaseRepo.GetByProductVersion(ctx, product, cmd.Version)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, errors.NewConflictError("release already exists for this product and version")
	}

	entity, err := release.NewRelease(product, channel, cmd.Version, cmd.ReleaseDate)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	entity.UpdateContent(cmd.Text, cmd.BugList, cmd.BugSearchURL, cmd.SystemRequirements)
	if cmd.IsPublic {
		entity.Publish()
	}

	if err := uc.releaseRepo.Create(ctx, entity); err != nil {
		if errors.IsDuplicateError(err) {
			return nil, errors.NewConflictError("release already exists for this product and version")
		}
		uc.logger.Errorw("failed to save release", "error", err)
		return nil, err
	}

	uc.logger.Infow("release created successfully", "id", entity.ID())
	return dto.FromReleaseEntity(entity), nil
}
