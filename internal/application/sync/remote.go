package sync

import (
	"context"
	"time"
)

// RemoteRelease is the wire representation of a release on the remote
// instance. Timestamps stay as strings; the restore path decides how to
// treat unparsable values.
type RemoteRelease struct {
	ID                 uint   `json:"id"`
	Product            string `json:"product"`
	Channel            string `json:"channel"`
	Version            string `json:"version"`
	ReleaseDate        string `json:"release_date"`
	Text               string `json:"text"`
	IsPublic           bool   `json:"is_public"`
	BugList            string `json:"bug_list"`
	BugSearchURL       string `json:"bug_search_url"`
	SystemRequirements string `json:"system_requirements"`
	Created            string `json:"created"`
	Modified           string `json:"modified"`
}

// RemoteNote is the wire representation of a note. Related releases come
// through as hyperlinks ending in the remote primary key.
type RemoteNote struct {
	ID             uint     `json:"id"`
	Bug            *int     `json:"bug"`
	Note           string   `json:"note"`
	Tag            string   `json:"tag"`
	SortNum        int      `json:"sort_num"`
	IsKnownIssue   bool     `json:"is_known_issue"`
	IsPublic       bool     `json:"is_public"`
	FixedInRelease *string  `json:"fixed_in_release"`
	Releases       []string `json:"releases"`
	Image          string   `json:"image"`
	Created        string   `json:"created"`
	Modified       string   `json:"modified"`
}

// RemoteReader pulls release-notes data from a remote instance.
type RemoteReader interface {
	// FetchReleases returns every remote release modified strictly after
	// the cursor; a nil cursor fetches everything.
	FetchReleases(ctx context.Context, modifiedAfter *time.Time) ([]RemoteRelease, error)
	// FetchNotes mirrors FetchReleases for notes.
	FetchNotes(ctx context.Context, modifiedAfter *time.Time) ([]RemoteNote, error)
	// FetchRelease resolves a single release by remote primary key.
	FetchRelease(ctx context.Context, id uint) (*RemoteRelease, error)
}
