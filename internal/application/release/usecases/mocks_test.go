package usecases

import (
	"context"
	"time"

	"relnotes/internal/domain/release"
	vo "relnotes/internal/domain/release/valueobjects"
	"relnotes/internal/shared/logger"
)

type mockReleaseRepository struct {
	CreateFunc                   func(ctx context.Context, entity *release.Release) error
	UpdateFunc                   func(ctx context.Context, entity *release.Release) error
	UpdatePreservingModifiedFunc func(ctx context.Context, entity *release.Release) error
	DeleteFunc                   func(ctx context.Context, id uint) error
	GetByIDFunc                  func(ctx context.Context, id uint) (*release.Release, error)
	GetByProductVersionFunc      func(ctx context.Context, product vo.Product, version string) (*release.Release, error)
	ListFunc                     func(ctx context.Context, filter release.ReleaseFilter) ([]*release.Release, int64, error)
	EquivalenceCandidatesFunc    func(ctx context.Context, product vo.Product, channel vo.Channel, versionPrefix string, publicOnly bool) ([]*release.Release, error)
	CountVersionSuffixFunc       func(ctx context.Context, product vo.Product, versionSuffix string) (int64, error)
	CopyFunc                     func(ctx context.Context, sourceID uint, newVersion string) (*release.Release, error)
	LatestModifiedFunc           func(ctx context.Context) (*time.Time, error)
}

func (m *mockReleaseRepository) Create(ctx context.Context, entity *release.Release) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, entity)
	}
	return nil
}

func (m *mockReleaseRepository) Update(ctx context.Context, entity *release.Release) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, entity)
	}
	return nil
}

func (m *mockReleaseRepository) UpdatePreservingModified(ctx context.Context, entity *release.Release) error {
	if m.UpdatePreservingModifiedFunc != nil {
		return m.UpdatePreservingModifiedFunc(ctx, entity)
	}
	return nil
}

func (m *mockReleaseRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *mockReleaseRepository) GetByID(ctx context.Context, id uint) (*release.Release, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockReleaseRepository) GetByProductVersion(ctx context.Context, product vo.Product, version string) (*release.Release, error) {
	if m.GetByProductVersionFunc != nil {
		return m.GetByProductVersionFunc(ctx, product, version)
	}
	return nil, nil
}

func (m *mockReleaseRepository) List(ctx context.Context, filter release.ReleaseFilter) ([]*release.Release, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return nil, 0, nil
}

func (m *mockReleaseRepository) EquivalenceCandidates(ctx context.Context, product vo.Product, channel vo.Channel, versionPrefix string, publicOnly bool) ([]*release.Release, error) {
	if m.EquivalenceCandidatesFunc != nil {
		return m.EquivalenceCandidatesFunc(ctx, product, channel, versionPrefix, publicOnly)
	}
	return nil, nil
}

func (m *mockReleaseRepository) CountVersionSuffix(ctx context.Context, product vo.Product, versionSuffix string) (int64, error) {
	if m.CountVersionSuffixFunc != nil {
		return m.CountVersionSuffixFunc(ctx, product, versionSuffix)
	}
	return 0, nil
}

func (m *mockReleaseRepository) Copy(ctx context.Context, sourceID uint, newVersion string) (*release.Release, error) {
	if m.CopyFunc != nil {
		return m.CopyFunc(ctx, sourceID, newVersion)
	}
	return nil, nil
}

func (m *mockReleaseRepository) LatestModified(ctx context.Context) (*time.Time, error) {
	if m.LatestModifiedFunc != nil {
		return m.LatestModifiedFunc(ctx)
	}
	return nil, nil
}

type mockNoteRepository struct {
	CreateFunc                   func(ctx context.Context, entity *release.Note, releaseIDs []uint) error
	UpdateFunc                   func(ctx context.Context, entity *release.Note) error
	UpdatePreservingModifiedFunc func(ctx context.Context, entity *release.Note, releaseIDs []uint) error
	DeleteFunc                   func(ctx context.Context, id uint) error
	GetByIDFunc                  func(ctx context.Context, id uint) (*release.Note, error)
	ListFunc                     func(ctx context.Context, filter release.NoteFilter) ([]*release.Note, int64, error)
	NotesForReleaseFunc          func(ctx context.Context, releaseID uint) ([]*release.Note, error)
	ReleaseIDsForNoteFunc        func(ctx context.Context, noteID uint) ([]uint, error)
	LinkFunc                     func(ctx context.Context, noteID, releaseID uint) error
	UnlinkFunc                   func(ctx context.Context, noteID, releaseID uint) error
	LatestModifiedFunc           func(ctx context.Context) (*time.Time, error)
}

func (m *mockNoteRepository) Create(ctx context.Context, entity *release.Note, releaseIDs []uint) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, entity, releaseIDs)
	}
	return nil
}

func (m *mockNoteRepository) Update(ctx context.Context, entity *release.Note) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, entity)
	}
	return nil
}

func (m *mockNoteRepository) UpdatePreservingModified(ctx context.Context, entity *release.Note, releaseIDs []uint) error {
	if m.UpdatePreservingModifiedFunc != nil {
		return m.UpdatePreservingModifiedFunc(ctx, entity, releaseIDs)
	}
	return nil
}

func (m *mockNoteRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *mockNoteRepository) GetByID(ctx context.Context, id uint) (*release.Note, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockNoteRepository) List(ctx context.Context, filter release.NoteFilter) ([]*release.Note, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return nil, 0, nil
}

func (m *mockNoteRepository) NotesForRelease(ctx context.Context, releaseID uint) ([]*release.Note, error) {
	if m.NotesForReleaseFunc != nil {
		return m.NotesForReleaseFunc(ctx, releaseID)
	}
	return nil, nil
}

func (m *mockNoteRepository) ReleaseIDsForNote(ctx context.Context, noteID uint) ([]uint, error) {
	if m.ReleaseIDsForNoteFunc != nil {
		return m.ReleaseIDsForNoteFunc(ctx, noteID)
	}
	return nil, nil
}

func (m *mockNoteRepository) Link(ctx context.Context, noteID, releaseID uint) error {
	if m.LinkFunc != nil {
		return m.LinkFunc(ctx, noteID, releaseID)
	}
	return nil
}

func (m *mockNoteRepository) Unlink(ctx context.Context, noteID, releaseID uint) error {
	if m.UnlinkFunc != nil {
		return m.UnlinkFunc(ctx, noteID, releaseID)
	}
	return nil
}

func (m *mockNoteRepository) LatestModified(ctx context.Context) (*time.Time, error) {
	if m.LatestModifiedFunc != nil {
		return m.LatestModifiedFunc(ctx)
	}
	return nil, nil
}

func testLogger() logger.Interface {
	return logger.NewLogger()
}
