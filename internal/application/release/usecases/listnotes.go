package usecases

import (
	"context"
	"time"

	"relnotes/internal/application/release/dto"
	"relnotes/internal/domain/release"
	vo "relnotes/internal/domain/release/valueobjects"
	"relnotes/internal/shared/errors"
	"relnotes/internal/shared/logger"
	"relnotes/internal/shared/utils"
)

type ListNotesQuery struct {
	Tag            string
	IsKnownIssue   *bool
	IsPublic       *bool
	ReleaseID      *uint
	CreatedBefore  *time.Time
	CreatedAfter   *time.Time
	ModifiedBefore *time.Time
	ModifiedAfter  *time.Time
	Page           int
	PageSize       int
}

type ListNotesResult struct {
	Notes    []*dto.NoteDTO
	Total    int64
	Page     int
	PageSize int
}

type ListNotesUseCase struct {
	noteRepo release.NoteRepository
	logger   logger.Interface
}

func NewListNotesUseCase(
	noteRepo release.NoteRepository,
	logger logger.Interface,
) *ListNotesUseCase {
	return &ListNotesUseCase{
		noteRepo: noteRepo,
		logger:   logger,
	}
}

func (uc *ListNotesUseCase) Execute(ctx context.Context, query ListNotesQuery) (*ListNotesResult, error) {
	pagination := utils.ValidatePagination(query.Page, query.PageSize)

	filter := release.NoteFilter{
		IsKnownIssue:   query.IsKnownIssue,
		IsPublic:       query.IsPublic,
		ReleaseID:      query.ReleaseID,
		CreatedBefore:  query.CreatedBefore,
		CreatedAfter:   query.CreatedAfter,
		ModifiedBefore: query.ModifiedBefore,
		ModifiedAfter:  query.ModifiedAfter,
		Page:           pagination.Page,
		PageSize:       pagination.PageSize,
	}

	if query.Tag != "" {
		tag, err := vo.NewTag(query.Tag)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		filter.Tag = &tag
	}

	entities, total, err := uc.noteRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list notes", "error", err)
		return nil, err
	}

	return &ListNotesResult{
		Notes:    dto.FromNoteEntities(entities),
		Total:    total,
		Page:     pagination.Page,
		PageSize: pagination.PageSize,
	}, nil
}
