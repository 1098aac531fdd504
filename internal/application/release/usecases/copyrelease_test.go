package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"relnotes/internal/domain/release"
	vo "relnotes/internal/domain/release/valueobjects"
	"relnotes/internal/shared/errors"
)

func testRelease(t *testing.T, id uint, version string) *release.Release {
	t.Helper()
	now := time.Now().UTC()
	r, err := release.ReconstructRelease(
		id, vo.ProductFirefox, vo.ChannelRelease, version,
		now, "", true, "", "", "", now, now,
	)
	require.NoError(t, err)
	return r
}

func TestCopyReleaseUseCase_FirstCopy(t *testing.T) {
	source := testRelease(t, 1, "42.0")

	var copiedVersion string
	repo := &mockReleaseRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*release.Release, error) {
			return source, nil
		},
		CountVersionSuffixFunc: func(ctx context.Context, product vo.Product, suffix string) (int64, error) {
			assert.Equal(t, "42.0", suffix)
			return 1, nil
		},
		CopyFunc: func(ctx context.Context, sourceID uint, newVersion string) (*release.Release, error) {
			copiedVersion = newVersion
			return testRelease(t, 2, newVersion), nil
		},
	}

	uc := NewCopyReleaseUseCase(repo, nil, testLogger())
	result, err := uc.Execute(context.Background(), CopyReleaseCommand{SourceID: 1})
	require.NoError(t, err)

	assert.Equal(t, "copy-42.0", copiedVersion)
	assert.Equal(t, "copy-42.0", result.Version)
}

func TestCopyReleaseUseCase_SubsequentCopiesAreNumbered(t *testing.T) {
	source := testRelease(t, 1, "42.0")

	repo := &mockReleaseRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*release.Release, error) {
			return source, nil
		},
		CountVersionSuffixFunc: func(ctx context.Context, product vo.Product, suffix string) (int64, error) {
			// Source plus an existing copy.
			return 2, nil
		},
		CopyFunc: func(ctx context.Context, sourceID uint, newVersion string) (*release.Release, error) {
			return testRelease(t, 3, newVersion), nil
		},
	}

	uc := NewCopyReleaseUseCase(repo, nil, testLogger())
	result, err := uc.Execute(context.Background(), CopyReleaseCommand{SourceID: 1})
	require.NoError(t, err)

	assert.Equal(t, "copy2-42.0", result.Version)
}

func TestCopyReleaseUseCase_SourceNotFound(t *testing.T) {
	repo := &mockReleaseRepository{}

	uc := NewCopyReleaseUseCase(repo, nil, testLogger())
	_, err := uc.Execute(context.Background(), CopyReleaseCommand{SourceID: 99})
	require.Error(t, err)
	assert.True(t, errors.IsNotFoundError(err))
}
