package usecases

import (
	"context"

	"relnotes/internal/domain/release"
	"relnotes/internal/shared/errors"
	"relnotes/internal/shared/logger"
)

type LinkNoteCommand struct {
	NoteID    uint
	ReleaseID uint
}

// LinkNoteUseCase associates or dissociates a note and a release.
type LinkNoteUseCase struct {
	noteRepo    release.NoteRepository
	releaseRepo release.ReleaseRepository
	invalidator ProjectionInvalidator
	logger      logger.Interface
}

func NewLinkNoteUseCase(
	noteRepo release.NoteRepository,
	releaseRepo release.ReleaseRepository,
	invalidator ProjectionInvalidator,
	logger logger.Interface,
) *LinkNoteUseCase {
	return &LinkNoteUseCase{
		noteRepo:    noteRepo,
		releaseRepo: releaseRepo,
		invalidator: invalidator,
		logger:      logger,
	}
}

func (uc *LinkNoteUseCase) Link(ctx context.Context, cmd LinkNoteCommand) error {
	if err := uc.verify(ctx, cmd); err != nil {
		return err
	}

	existing, err := uc.noteRepo.ReleaseIDsForNote(ctx, cmd.NoteID)
	if err != nil {
		return err
	}
	for _, id := range existing {
		if id == cmd.ReleaseID {
			return errors.NewConflictError("note is already linked to this release")
		}
	}

	if err := uc.noteRepo.Link(ctx, cmd.NoteID, cmd.ReleaseID); err != nil {
		uc.logger.Errorw("failed to link note",
			"note_id", cmd.NoteID, "release_id", cmd.ReleaseID, "error", err)
		return err
	}

	invalidateProjections(ctx, uc.invalidator, uc.logger, []uint{cmd.ReleaseID})

	uc.logger.Infow("note linked", "note_id", cmd.NoteID, "release_id", cmd.ReleaseID)
	return nil
}

func (uc *LinkNoteUseCase) Unlink(ctx context.Context, cmd LinkNoteCommand) error {
	if err := uc.verify(ctx, cmd); err != nil {
		return err
	}

	if err := uc.noteRepo.Unlink(ctx, cmd.NoteID, cmd.ReleaseID); err != nil {
		uc.logger.Errorw("failed to unlink note",
			"note_id", cmd.NoteID, "release_id", cmd.ReleaseID, "error", err)
		return err
	}

	invalidateProjections(ctx, uc.invalidator, uc.logger, []uint{cmd.ReleaseID})

	uc.logger.Infow("note unlinked", "note_id", cmd.NoteID, "release_id", cmd.ReleaseID)
	return nil
}

func (uc *LinkNoteUseCase) verify(ctx context.Context, cmd LinkNoteCommand) error {
	note, err := uc.noteRepo.GetByID(ctx, cmd.NoteID)
	if err != nil {
		return err
	}
	if note == nil {
		return errors.NewNotFoundError("note not found")
	}

	rel, err := uc.releaseRepo.GetByID(ctx, cmd.ReleaseID)
	if err != nil {
		return err
	}
	if rel == nil {
		return errors.NewNotFoundError("release not found")
	}

	return nil
}
