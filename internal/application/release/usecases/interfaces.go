package usecases

import (
	"context"

	"relnotes/internal/application/release/dto"
	"relnotes/internal/shared/logger"
)

// ProjectionInvalidator drops cached note projections for releases whose
// contents changed. A nil invalidator disables caching concerns entirely.
type ProjectionInvalidator interface {
	Invalidate(ctx context.Context, releaseID uint) error
}

type CreateReleaseExecutor interface {
	Execute(ctx context.Context, cmd CreateReleaseCommand) (*dto.ReleaseDTO, error)
}

type UpdateReleaseExecutor interface {
	Execute(ctx context.Context, cmd UpdateReleaseCommand) (*dto.ReleaseDTO, error)
}

type DeleteReleaseExecutor interface {
	Execute(ctx context.Context, cmd DeleteReleaseCommand) error
}

type GetReleaseExecutor interface {
	Execute(ctx context.Context, query GetReleaseQuery) (*dto.ReleaseDTO, error)
}

type ListReleasesExecutor interface {
	Execute(ctx context.Context, query ListReleasesQuery) (*ListReleasesResult, error)
}

type CopyReleaseExecutor interface {
	Execute(ctx context.Context, cmd CopyReleaseCommand) (*dto.ReleaseDTO, error)
}

type GetReleaseNotesExecutor interface {
	Execute(ctx context.Context, query GetReleaseNotesQuery) (*dto.ReleaseNotesDTO, error)
}

type GetEquivalentReleaseExecutor interface {
	Execute(ctx context.Context, query GetEquivalentReleaseQuery) (*EquivalentReleaseResult, error)
}

type CreateNoteExecutor interface {
	Execute(ctx context.Context, cmd CreateNoteCommand) (*dto.NoteDTO, error)
}

type UpdateNoteExecutor interface {
	Execute(ctx context.Context, cmd UpdateNoteCommand) (*dto.NoteDTO, error)
}

type DeleteNoteExecutor interface {
	Execute(ctx context.Context, cmd DeleteNoteCommand) error
}

type GetNoteExecutor interface {
	Execute(ctx context.Context, query GetNoteQuery) (*dto.NoteDTO, error)
}

type ListNotesExecutor interface {
	Execute(ctx context.Context, query ListNotesQuery) (*ListNotesResult, error)
}

type NoteLinker interface {
	Link(ctx context.Context, cmd LinkNoteCommand) error
	Unlink(ctx context.Context, cmd LinkNoteCommand) error
}

type UploadNoteImageExecutor interface {
	Execute(ctx context.Context, cmd UploadNoteImageCommand) (*dto.NoteDTO, error)
}

func invalidateProjections(ctx context.Context, invalidator ProjectionInvalidator, log logger.Interface, releaseIDs []uint) {
	if invalidator == nil {
		return
	}
	for _, releaseID := range releaseIDs {
		if err := invalidator.Invalidate(ctx, releaseID); err != nil {
			log.Warnw("failed to invalidate projection cache", "release_id", releaseID, "error", err)
		}
	}
}
