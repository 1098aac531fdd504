package usecases

import (
	"context"

	"relnotes/internal/application/release/dto"
	"relnotes/internal/domain/release"
	"relnotes/internal/shared/errors"
	"relnotes/internal/shared/logger"
)

// ScreenshotStore persists note screenshots and returns their
// media-relative path and pixel dimensions.
type ScreenshotStore interface {
	Save(noteID uint, filename string, data []byte) (path string, width, height int, err error)
	Remove(relPath string) error
}

type UploadNoteImageCommand struct {
	NoteID   uint
	Filename string
	Data     []byte
}

type UploadNoteImageUseCase struct {
	noteRepo    release.NoteRepository
	store       ScreenshotStore
	invalidator ProjectionInvalidator
	logger      logger.Interface
}

func NewUploadNoteImageUseCase(
	noteRepo release.NoteRepository,
	store ScreenshotStore,
	invalidator ProjectionInvalidator,
	logger logger.Interface,
) *UploadNoteImageUseCase {
	return &UploadNoteImageUseCase{
		noteRepo:    noteRepo,
		store:       store,
		invalidator: invalidator,
		logger:      logger,
	}
}

func (uc *UploadNoteImageUseCase) Execute(ctx context.Context, cmd UploadNoteImageCommand) (*dto.NoteDTO, error) {
	uc.logger.Infow("executing upload note image use case",
		"note_id", cmd.NoteID, "filename", cmd.Filename)

	entity, err := uc.noteRepo.GetByID(ctx, cmd.NoteID)
	if err != nil {
		return nil, err
	}
	if entity == nil {
		return nil, errors.NewNotFoundError("note not found")
	}

	previous := entity.ImagePath()

	path, width, height, err := uc.store.Save(cmd.NoteID, cmd.Filename, cmd.Data)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	entity.AttachImage(path)

	if err := uc.noteRepo.Update(ctx, entity); err != nil {
		uc.logger.Errorw("failed to persist note image", "note_id", cmd.NoteID, "error", err)
		return nil, err
	}

	if previous != "" && previous != path {
		if err := uc.store.Remove(previous); err != nil {
			uc.logger.Warnw("failed to remove previous screenshot",
				"note_id", cmd.NoteID, "path", previous, "error", err)
		}
	}

	releaseIDs, err := uc.noteRepo.ReleaseIDsForNote(ctx, cmd.NoteID)
	if err == nil {
		invalidateProjections(ctx, uc.invalidator, uc.logger, releaseIDs)
	}

	uc.logger.Infow("note image uploaded", "note_id", cmd.NoteID, "path", path)

	result := dto.FromNoteEntity(entity)
	result.Releases = releaseIDs
	result.ImageWidth = width
	result.ImageHeight = height
	return result, nil
}
