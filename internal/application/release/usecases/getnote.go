package usecases

import (
	"context"

	"relnotes/internal/application/release/dto"
	"relnotes/internal/domain/release"
	"relnotes/internal/shared/errors"
	"relnotes/internal/shared/logger"
)

type GetNoteQuery struct {
	ID uint
}

type GetNoteUseCase struct {
	noteRepo release.NoteRepository
	logger   logger.Interface
}

func NewGetNoteUseCase(
	noteRepo release.NoteRepository,
	logger logger.Interface,
) *GetNoteUseCase {
	return &GetNoteUseCase{
		noteRepo: noteRepo,
		logger:   logger,
	}
}

func (uc *GetNoteUseCase) Execute(ctx context.Context, query GetNoteQuery) (*dto.NoteDTO, error) {
	entity, err := uc.noteRepo.GetByID(ctx, query.ID)
	if err != nil {
		return nil, err
	}
	if entity == nil {
		return nil, errors.NewNotFoundError("note not found")
	}

	releaseIDs, err := uc.noteRepo.ReleaseIDsForNote(ctx, query.ID)
	if err != nil {
		return nil, err
	}

	result := dto.FromNoteEntity(entity)
	result.Releases = releaseIDs
	return result, nil
}
