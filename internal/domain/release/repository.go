package release

import (
	"context"
	"time"

	vo "relnotes/internal/domain/release/valueobjects"
)

// ReleaseFilter narrows release listings. Nil fields are ignored.
type ReleaseFilter struct {
	Product        *vo.Product
	Channel        *vo.Channel
	Version        *string
	IsPublic       *bool
	CreatedBefore  *time.Time
	CreatedAfter   *time.Time
	ModifiedBefore *time.Time
	ModifiedAfter  *time.Time
	// OrderBy overrides the default listing order when set. The column name
	// must already be validated by the caller.
	OrderBy   string
	OrderDesc bool
	Page      int
	PageSize  int
}

// NoteFilter narrows note listings. Nil fields are ignored.
type NoteFilter struct {
	Tag            *vo.Tag
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

type ReleaseRepository interface {
	Create(ctx context.Context, release *Release) error
	Update(ctx context.Context, release *Release) error
	// UpdatePreservingModified writes the release without bumping its
	// modified timestamp; the sync client uses it to keep remote cursor
	// semantics intact.
	UpdatePreservingModified(ctx context.Context, release *Release) error
	Delete(ctx context.Context, id uint) error
	GetByID(ctx context.Context, id uint) (*Release, error)
	GetByProductVersion(ctx context.Context, product vo.Product, version string) (*Release, error)
	// List returns releases in the default ordering: product, version
	// descending as a plain string, channel.
	List(ctx context.Context, filter ReleaseFilter) ([]*Release, int64, error)
	// EquivalenceCandidates returns releases of the given product on the
	// given channel whose version starts with the given prefix, version
	// descending. publicOnly drops non-public rows at the query.
	EquivalenceCandidates(ctx context.Context, product vo.Product, channel vo.Channel, versionPrefix string, publicOnly bool) ([]*Release, error)
	// CountVersionSuffix counts releases of a product whose version ends
	// with the given suffix. Copy-release derives the copy name from it.
	CountVersionSuffix(ctx context.Context, product vo.Product, versionSuffix string) (int64, error)
	// Copy atomically duplicates a release as an unpublished record under
	// the new version and re-links every note of the source, refreshing
	// the notes' modified timestamps. Either everything commits or
	// nothing does.
	Copy(ctx context.Context, sourceID uint, newVersion string) (*Release, error)
	// LatestModified returns the most recent modified timestamp across
	// all releases, or nil when the table is empty.
	LatestModified(ctx context.Context) (*time.Time, error)
}

type NoteRepository interface {
	Create(ctx context.Context, note *Note, releaseIDs []uint) error
	Update(ctx context.Context, note *Note) error
	// UpdatePreservingModified mirrors the release variant for sync.
	UpdatePreservingModified(ctx context.Context, note *Note, releaseIDs []uint) error
	Delete(ctx context.Context, id uint) error
	GetByID(ctx context.Context, id uint) (*Note, error)
	List(ctx context.Context, filter NoteFilter) ([]*Note, int64, error)
	// NotesForRelease returns all notes linked to a release in display
	// order: sort_num descending, ties by id ascending.
	NotesForRelease(ctx context.Context, releaseID uint) ([]*Note, error)
	// ReleaseIDsForNote returns the IDs of the releases a note is linked to.
	ReleaseIDsForNote(ctx context.Context, noteID uint) ([]uint, error)
	Link(ctx context.Context, noteID, releaseID uint) error
	Unlink(ctx context.Context, noteID, releaseID uint) error
	LatestModified(ctx context.Context) (*time.Time, error)
}
