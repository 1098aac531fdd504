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

func androidRelease(t *testing.T, id uint, version string) *release.Release {
	t.Helper()
	now := time.Now().UTC()
	r, err := release.ReconstructRelease(
		id, vo.ProductFirefoxAndroid, vo.ChannelRelease, version,
		now, "", true, "", "", "", now, now,
	)
	require.NoError(t, err)
	return r
}

func TestGetEquivalentReleaseUseCase_FindsAndroidCounterpart(t *testing.T) {
	desktop := testRelease(t, 1, "33.0.3")

	var queriedProduct vo.Product
	var queriedPrefix string
	var queriedPublicOnly bool

	repo := &mockReleaseRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*release.Release, error) {
			return desktop, nil
		},
		EquivalenceCandidatesFunc: func(ctx context.Context, product vo.Product, channel vo.Channel, prefix string, publicOnly bool) ([]*release.Release, error) {
			queriedProduct = product
			queriedPrefix = prefix
			queriedPublicOnly = publicOnly
			// Version-descending storage order.
			return []*release.Release{
				androidRelease(t, 12, "33.1"),
				androidRelease(t, 11, "33.0.3"),
			}, nil
		},
	}

	uc := NewGetEquivalentReleaseUseCase(repo, false, testLogger())
	result, err := uc.Execute(context.Background(), GetEquivalentReleaseQuery{ReleaseID: 1})
	require.NoError(t, err)

	assert.Equal(t, vo.ProductFirefoxAndroid, queriedProduct)
	// The trailing dot keeps e.g. major 4 from matching 40.x.
	assert.Equal(t, "33.", queriedPrefix)
	assert.True(t, queriedPublicOnly)
	require.NotNil(t, result.Release)
	assert.Equal(t, "33.1", result.Release.Version)
}

func TestGetEquivalentReleaseUseCase_SingleDigitMajorStaysInMajor(t *testing.T) {
	desktop := testRelease(t, 1, "4.0")

	var queriedPrefix string
	repo := &mockReleaseRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*release.Release, error) {
			return desktop, nil
		},
		EquivalenceCandidatesFunc: func(ctx context.Context, product vo.Product, channel vo.Channel, prefix string, publicOnly bool) ([]*release.Release, error) {
			queriedPrefix = prefix
			// With prefix "4." only 4.x survives; 40.0 and 41.0.1 must not.
			return []*release.Release{androidRelease(t, 20, "4.0")}, nil
		},
	}

	uc := NewGetEquivalentReleaseUseCase(repo, false, testLogger())
	result, err := uc.Execute(context.Background(), GetEquivalentReleaseQuery{ReleaseID: 1})
	require.NoError(t, err)

	assert.Equal(t, "4.", queriedPrefix)
	require.NotNil(t, result.Release)
	assert.Equal(t, "4.0", result.Release.Version)
}

func TestGetEquivalentReleaseUseCase_DevModeIncludesNonPublic(t *testing.T) {
	desktop := testRelease(t, 1, "42.0")

	var queriedPublicOnly bool
	repo := &mockReleaseRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*release.Release, error) {
			return desktop, nil
		},
		EquivalenceCandidatesFunc: func(ctx context.Context, product vo.Product, channel vo.Channel, prefix string, publicOnly bool) ([]*release.Release, error) {
			queriedPublicOnly = publicOnly
			return nil, nil
		},
	}

	uc := NewGetEquivalentReleaseUseCase(repo, true, testLogger())
	result, err := uc.Execute(context.Background(), GetEquivalentReleaseQuery{ReleaseID: 1})
	require.NoError(t, err)

	assert.False(t, queriedPublicOnly)
	assert.Nil(t, result.Release)
}

func TestGetEquivalentReleaseUseCase_NoCounterpartProduct(t *testing.T) {
	now := time.Now().UTC()
	tbird, err := release.ReconstructRelease(
		1, vo.ProductThunderbird, vo.ChannelRelease, "31.0",
		now, "", true, "", "", "", now, now,
	)
	require.NoError(t, err)

	repo := &mockReleaseRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*release.Release, error) {
			return tbird, nil
		},
	}

	uc := NewGetEquivalentReleaseUseCase(repo, false, testLogger())
	_, err = uc.Execute(context.Background(), GetEquivalentReleaseQuery{ReleaseID: 1})
	require.Error(t, err)

	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
}
