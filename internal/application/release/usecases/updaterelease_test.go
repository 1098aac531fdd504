package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"relnotes/internal/domain/release"
	vo "relnotes/internal/domain/release/valueobjects"
	"relnotes/internal/shared/errors"
)

type mockInvalidator struct {
	invalidated []uint
}

func (m *mockInvalidator) Invalidate(ctx context.Context, releaseID uint) error {
	m.invalidated = append(m.invalidated, releaseID)
	return nil
}

func TestUpdateReleaseUseCase_AppliesPartialUpdate(t *testing.T) {
	entity := testRelease(t, 3, "42.0")
	var saved *release.Release
	repo := &mockReleaseRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*release.Release, error) {
			return entity, nil
		},
		UpdateFunc: func(ctx context.Context, r *release.Release) error {
			saved = r
			return nil
		},
	}

	text := "updated body"
	public := false
	uc := NewUpdateReleaseUseCase(repo, nil, testLogger())
	result, err := uc.Execute(context.Background(), UpdateReleaseCommand{
		ID:       3,
		Text:     &text,
		IsPublic: &public,
	})

	require.NoError(t, err)
	require.NotNil(t, saved)
	assert.Equal(t, "updated body", saved.Text())
	assert.False(t, saved.IsPublic())
	assert.Equal(t, "updated body", result.Text)
}

func TestUpdateReleaseUseCase_InvalidatesProjection(t *testing.T) {
	entity := testRelease(t, 3, "42.0")
	repo := &mockReleaseRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*release.Release, error) {
			return entity, nil
		},
	}
	invalidator := &mockInvalidator{}

	public := false
	uc := NewUpdateReleaseUseCase(repo, invalidator, testLogger())
	_, err := uc.Execute(context.Background(), UpdateReleaseCommand{ID: 3, IsPublic: &public})

	require.NoError(t, err)
	assert.Equal(t, []uint{3}, invalidator.invalidated)
}

func TestUpdateReleaseUseCase_NotFound(t *testing.T) {
	repo := &mockReleaseRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*release.Release, error) {
			return nil, nil
		},
	}

	uc := NewUpdateReleaseUseCase(repo, nil, testLogger())
	_, err := uc.Execute(context.Background(), UpdateReleaseCommand{ID: 99})

	require.Error(t, err)
	assert.True(t, errors.IsNotFoundError(err))
}

func TestDeleteReleaseUseCase_InvalidatesProjection(t *testing.T) {
	entity := testRelease(t, 7, "42.0")
	repo := &mockReleaseRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*release.Release, error) {
			return entity, nil
		},
	}
	invalidator := &mockInvalidator{}

	uc := NewDeleteReleaseUseCase(repo, invalidator, testLogger())
	err := uc.Execute(context.Background(), DeleteReleaseCommand{ID: 7})

	require.NoError(t, err)
	assert.Equal(t, []uint{7}, invalidator.invalidated)
}

func TestCopyReleaseUseCase_InvalidatesSourceProjection(t *testing.T) {
	source := testRelease(t, 5, "42.0")
	copied := testRelease(t, 6, "copy-42.0")
	repo := &mockReleaseRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*release.Release, error) {
			return source, nil
		},
		CountVersionSuffixFunc: func(ctx context.Context, product vo.Product, versionSuffix string) (int64, error) {
			return 1, nil
		},
		CopyFunc: func(ctx context.Context, sourceID uint, newVersion string) (*release.Release, error) {
			return copied, nil
		},
	}
	invalidator := &mockInvalidator{}

	uc := NewCopyReleaseUseCase(repo, invalidator, testLogger())
	_, err := uc.Execute(context.Background(), CopyReleaseCommand{SourceID: 5})

	require.NoError(t, err)
	assert.Equal(t, []uint{5, 6}, invalidator.invalidated)
}
