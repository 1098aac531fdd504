package usecases

import (
	"context"

	"relnotes/internal/application/release/dto"
	"relnotes/internal/domain/release"
	"relnotes/internal/shared/errors"
	"relnotes/internal/shared/logger"
	"relnotes/internal/shared/markdown"
)

// ProjectionCache abstracts the optional cache in front of the note
// projection. Implementations must treat a miss as (false, nil).
type ProjectionCache interface {
	Get(ctx context.Context, releaseID uint, publicOnly bool, dest interface{}) (bool, error)
	Set(ctx context.Context, releaseID uint, publicOnly bool, value interface{}) error
}

type GetReleaseNotesQuery struct {
	ReleaseID uint
	// PublicOnly drops non-public notes from both projected lists.
	PublicOnly bool
}

// GetReleaseNotesUseCase projects a release's notes into the two display
// lists: new features and known issues. Notes arrive from storage ordered
// by sort_num descending; the projection then applies tag priority and
// pulls dot-fix notes to the front.
type GetReleaseNotesUseCase struct {
	releaseRepo release.ReleaseRepository
	noteRepo    release.NoteRepository
	markdown    markdown.Service
	cache       ProjectionCache
	logger      logger.Interface
}

func NewGetReleaseNotesUseCase(
	releaseRepo release.ReleaseRepository,
	noteRepo release.NoteRepository,
	markdownSvc markdown.Service,
	cache ProjectionCache,
	logger logger.Interface,
) *GetReleaseNotesUseCase {
	return &GetReleaseNotesUseCase{
		releaseRepo: releaseRepo,
		noteRepo:    noteRepo,
		markdown:    markdownSvc,
		cache:       cache,
		logger:      logger,
	}
}

func (uc *GetReleaseNotesUseCase) Execute(ctx context.Context, query GetReleaseNotesQuery) (*dto.ReleaseNotesDTO, error) {
	if uc.cache != nil {
		var cached dto.ReleaseNotesDTO
		hit, err := uc.cache.Get(ctx, query.ReleaseID, query.PublicOnly, &cached)
		if err != nil {
			uc.logger.Warnw("projection cache read failed", "release_id", query.ReleaseID, "error", err)
		} else if hit {
			return &cached, nil
		}
	}

	entity, err := uc.releaseRepo.GetByID(ctx, query.ReleaseID)
	if err != nil {
		return nil, err
	}
	if entity == nil {
		return nil, errors.NewNotFoundError("release not found")
	}

	notes, err := uc.noteRepo.NotesForRelease(ctx, query.ReleaseID)
	if err != nil {
		uc.logger.Errorw("failed to load notes", "release_id", query.ReleaseID, "error", err)
		return nil, err
	}

	newFeatures, knownIssues := release.ProjectNotes(entity, notes, query.PublicOnly)

	result := &dto.ReleaseNotesDTO{
		Release:     dto.FromReleaseEntity(entity),
		NewFeatures: uc.renderNotes(newFeatures),
		KnownIssues: uc.renderNotes(knownIssues),
	}

	if uc.cache != nil {
		if err := uc.cache.Set(ctx, query.ReleaseID, query.PublicOnly, result); err != nil {
			uc.logger.Warnw("projection cache write failed", "release_id", query.ReleaseID, "error", err)
		}
	}

	return result, nil
}

func (uc *GetReleaseNotesUseCase) renderNotes(notes []*release.Note) []*dto.NoteDTO {
	dtos := dto.FromNoteEntities(notes)
	for _, noteDTO := range dtos {
		html, err := uc.markdown.ToHTMLSanitized(noteDTO.Note)
		if err != nil {
			uc.logger.Warnw("failed to render note markdown", "note_id", noteDTO.ID, "error", err)
			continue
		}
		noteDTO.NoteHTML = html
	}
	return dtos
}
