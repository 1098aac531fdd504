package usecases

import (
	"context"

	"relnotes/internal/domain/release"
	"relnotes/internal/shared/errors"
	"relnotes/internal/shared/logger"
)

type DeleteNoteCommand struct {
	ID uint
}

type DeleteNoteUseCase struct {
	noteRepo    release.NoteRepository
	invalidator ProjectionInvalidator
	logger      logger.Interface
}

func NewDeleteNoteUseCase(
	noteRepo release.NoteRepository,
	invalidator ProjectionInvalidator,
	logger logger.Interface,
) *DeleteNoteUseCase {
	return &DeleteNoteUseCase{
		noteRepo:    noteRepo,
		invalidator: invalidator,
		logger:      logger,
	}
}

func (uc *DeleteNoteUseCase) Execute(ctx context.Context, cmd DeleteNoteCommand) error {
	uc.logger.Infow("executing delete note use case", "id", cmd.ID)

	entity, err := uc.noteRepo.GetByID(ctx, cmd.ID)
	if err != nil {
		return err
	}
	if entity == nil {
		return errors.NewNotFoundError("note not found")
	}

	releaseIDs, _ := uc.noteRepo.ReleaseIDsForNote(ctx, cmd.ID)

	if err := uc.noteRepo.Delete(ctx, cmd.ID); err != nil {
		uc.logger.Errorw("failed to delete note", "id", cmd.ID, "error", err)
		return err
	}

	invalidateProjections(ctx, uc.invalidator, uc.logger, releaseIDs)

	uc.logger.Infow("note deleted successfully", "id", cmd.ID)
	return nil
}
