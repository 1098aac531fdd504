package sync

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	syncapp "relnotes/internal/application/sync"
	"relnotes/internal/shared/config"
	"relnotes/internal/shared/logger"
)

func newTestClient(baseURL string) *Client {
	return NewClient(&config.SyncConfig{
		BaseURL:  baseURL,
		Token:    "secret-token",
		PageSize: 2,
	}, logger.NewLogger())
}

func TestFetchReleases_SendsAuthAndCursor(t *testing.T) {
	var gotAuth, gotCursor string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotCursor = r.URL.Query().Get("modified_after")
		json.NewEncoder(w).Encode(releasePage{
			Count: 1,
			Results: []syncapp.RemoteRelease{
				{ID: 7, Product: "Firefox", Channel: "Release", Version: "42.0"},
			},
		})
	}))
	defer server.Close()

	cursor := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	releases, err := newTestClient(server.URL).FetchReleases(context.Background(), &cursor)
	require.NoError(t, err)

	require.Len(t, releases, 1)
	assert.Equal(t, uint(7), releases[0].ID)
	assert.Equal(t, "Token secret-token", gotAuth)
	assert.Equal(t, "2026-05-01T12:00:00Z", gotCursor)
}

func TestFetchReleases_FollowsPagination(t *testing.T) {
	var server *httptest.Server
	server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("page") == "2" {
			json.NewEncoder(w).Encode(releasePage{
				Count:   3,
				Results: []syncapp.RemoteRelease{{ID: 3, Version: "44.0"}},
			})
			return
		}
		next := server.URL + "/rna/releases/?page=2"
		json.NewEncoder(w).Encode(releasePage{
			Count: 3,
			Next:  &next,
			Results: []syncapp.RemoteRelease{
				{ID: 1, Version: "42.0"},
				{ID: 2, Version: "43.0"},
			},
		})
	}))
	defer server.Close()

	releases, err := newTestClient(server.URL).FetchReleases(context.Background(), nil)
	require.NoError(t, err)

	require.Len(t, releases, 3)
	assert.Equal(t, uint(1), releases[0].ID)
	assert.Equal(t, uint(3), releases[2].ID)
}

func TestFetchNotes_ErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer server.Close()

	_, err := newTestClient(server.URL).FetchNotes(context.Background(), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected status 403")
}

func TestFetchNotes_DecodesRelations(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fixed := "https://remote.example/rna/releases/12/"
		json.NewEncoder(w).Encode(notePage{
			Count: 1,
			Results: []syncapp.RemoteNote{
				{
					ID:             5,
					Note:           "Fixed a crash",
					Tag:            "Fixed",
					FixedInRelease: &fixed,
					Releases: []string{
						"https://remote.example/rna/releases/12/",
						"https://remote.example/rna/releases/13/",
					},
				},
			},
		})
	}))
	defer server.Close()

	notes, err := newTestClient(server.URL).FetchNotes(context.Background(), nil)
	require.NoError(t, err)

	require.Len(t, notes, 1)
	require.NotNil(t, notes[0].FixedInRelease)
	assert.Len(t, notes[0].Releases, 2)
}
