package usecases

import (
	"context"

	"relnotes/internal/application/release/dto"
	"relnotes/internal/domain/release"
	vo "relnotes/internal/domain/release/valueobjects"
	"relnotes/internal/shared/errors"
	"relnotes/internal/shared/logger"
)

type CreateNoteCommand struct {
	Bug              *int
	Note             string
	Tag              string
	SortNum          int
	IsKnownIssue     bool
	IsPublic         bool
	FixedInReleaseID *uint
	ReleaseIDs       []uint
}

type CreateNoteUseCase struct {
	noteRepo    release.NoteRepository
	releaseRepo release.ReleaseRepository
	invalidator ProjectionInvalidator
	logger      logger.Interface
}

func NewCreateNoteUseCase(
	noteRepo release.NoteRepository,
	releaseRepo release.ReleaseRepository,
	invalidator ProjectionInvalidator,
	logger logger.Interface,
) *CreateNoteUseCase {
	return &CreateNoteUseCase{
		noteRepo:    noteRepo,
		releaseRepo: releaseRepo,
		invalidator: invalidator,
		logger:      logger,
	}
}

func (uc *CreateNoteUseCase) Execute(ctx context.Context, cmd CreateNoteCommand) (*dto.NoteDTO, error) {
	uc.logger.Infow("executing create note use case", "releases", len(cmd.ReleaseIDs))

	tag, err := vo.NewTag(cmd.Tag)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	for _, releaseID := range cmd.ReleaseIDs {
		existing, err := uc.releaseRepo.GetByID(ctx, releaseID)
		if err != nil {
			return nil, err
		}
		if existing == nil {
			return nil, errors.NewNotFoundError("release not found")
		}
	}

	entity, err := release.NewNote(cmd.Note, tag)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := entity.Update(cmd.Bug, cmd.Note, tag, cmd.SortNum, cmd.IsKnownIssue, cmd.IsPublic, cmd.FixedInReleaseID); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.noteRepo.Create(ctx, entity, cmd.ReleaseIDs); err != nil {
		uc.logger.Errorw("failed to save note", "error", err)
		return nil, err
	}

	invalidateProjections(ctx, uc.invalidator, uc.logger, cmd.ReleaseIDs)

	uc.logger.Infow("note created successfully", "id", entity.ID())

	result := dto.FromNoteEntity(entity)
	result.Releases = cmd.ReleaseIDs
	return result, nil
}
