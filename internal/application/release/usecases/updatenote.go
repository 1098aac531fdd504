package usecases

import (
	"context"

	"relnotes/internal/application/release/dto"
	"relnotes/internal/domain/release"
	vo "relnotes/internal/domain/release/valueobjects"
	"relnotes/internal/shared/errors"
	"relnotes/internal/shared/logger"
)

type UpdateNoteCommand struct {
	ID               uint
	Bug              *int
	Note             *string
	Tag              *string
	SortNum          *int
	IsKnownIssue     *bool
	IsPublic         *bool
	FixedInReleaseID *uint
	// ClearFixedIn removes the fixed-in link when true.
	ClearFixedIn bool
}

type UpdateNoteUseCase struct {
	noteRepo    release.NoteRepository
	invalidator ProjectionInvalidator
	logger      logger.Interface
}

func NewUpdateNoteUseCase(
	noteRepo release.NoteRepository,
	invalidator ProjectionInvalidator,
	logger logger.Interface,
) *UpdateNoteUseCase {
	return &UpdateNoteUseCase{
		noteRepo:    noteRepo,
		invalidator: invalidator,
		logger:      logger,
	}
}

func (uc *UpdateNoteUseCase) Execute(ctx context.Context, cmd UpdateNoteCommand) (*dto.NoteDTO, error) {
	uc.logger.Infow("executing update note use case", "id", cmd.ID)

	entity, err := uc.noteRepo.GetByID(ctx, cmd.ID)
	if err != nil {
		return nil, err
	}
	if entity == nil {
		return nil, errors.NewNotFoundError("note not found")
	}

	bug := entity.Bug()
	if cmd.Bug != nil {
		bug = cmd.Bug
	}
	text := entity.Text()
	if cmd.Note != nil {
		text = *cmd.Note
	}
	tag := entity.Tag()
	if cmd.Tag != nil {
		tag, err = vo.NewTag(*cmd.Tag)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}
	sortNum := entity.SortNum()
	if cmd.SortNum != nil {
		sortNum = *cmd.SortNum
	}
	isKnownIssue := entity.IsKnownIssue()
	if cmd.IsKnownIssue != nil {
		isKnownIssue = *cmd.IsKnownIssue
	}
	isPublic := entity.IsPublic()
	if cmd.IsPublic != nil {
		isPublic = *cmd.IsPublic
	}
	fixedIn := entity.FixedInReleaseID()
	if cmd.ClearFixedIn {
		fixedIn = nil
	} else if cmd.FixedInReleaseID != nil {
		fixedIn = cmd.FixedInReleaseID
	}

	if err := entity.Update(bug, text, tag, sortNum, isKnownIssue, isPublic, fixedIn); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.noteRepo.Update(ctx, entity); err != nil {
		uc.logger.Errorw("failed to update note", "id", cmd.ID, "error", err)
		return nil, err
	}

	releaseIDs, err := uc.noteRepo.ReleaseIDsForNote(ctx, cmd.ID)
	if err == nil {
		invalidateProjections(ctx, uc.invalidator, uc.logger, releaseIDs)
	}

	uc.logger.Infow("note updated successfully", "id", cmd.ID)

	result := dto.FromNoteEntity(entity)
	result.Releases = releaseIDs
	return result, nil
}
