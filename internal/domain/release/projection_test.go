package release

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vo "relnotes/internal/domain/release/valueobjects"
)

// projectionNote builds a note for projection tests. Notes are handed to
// ProjectNotes in the order built, mirroring the sort_num-descending
// storage order.
type projectionNote struct {
	id           uint
	tag          vo.Tag
	text         string
	isKnownIssue bool
	isPublic     bool
	fixedIn      *uint
}

func buildNotes(t *testing.T, specs []projectionNote) []*Note {
	t.Helper()
	now := time.Now().UTC()
	notes := make([]*Note, 0, len(specs))
	for _, s := range specs {
		n, err := ReconstructNote(s.id, nil, s.text, s.tag, 0, s.isKnownIssue, s.isPublic, s.fixedIn, "", now, now)
		require.NoError(t, err)
		notes = append(notes, n)
	}
	return notes
}

func noteIDs(notes []*Note) []uint {
	ids := make([]uint, len(notes))
	for i, n := range notes {
		ids[i] = n.ID()
	}
	return ids
}

func TestProjectNotes_PartitionAndDotFix(t *testing.T) {
	r := reconstructedRelease(t, 10, vo.ProductFirefox, vo.ChannelRelease, "42.0.1")
	other := uint(99)
	this := uint(10)

	notes := buildNotes(t, []projectionNote{
		// Highest sort_num first, as storage would return them.
		{id: 1, tag: vo.TagNone, text: "plain feature", isPublic: true},
		{id: 2, tag: vo.TagChanged, text: "changed behavior", isPublic: true},
		{id: 3, tag: vo.TagFixed, text: "42.0.1 rendering glitches", isPublic: true},
		{id: 4, tag: vo.TagNone, text: "open issue", isKnownIssue: true, isPublic: true, fixedIn: &other},
		{id: 5, tag: vo.TagNone, text: "fixed here", isKnownIssue: true, isPublic: true, fixedIn: &this},
	})

	newFeatures, knownIssues := ProjectNotes(r, notes, false)

	// The note fixed in this release leaves the known-issue list and the
	// dot fix jumps over everything despite its lower sort_num.
	assert.Equal(t, []uint{4}, noteIDs(knownIssues))
	assert.Equal(t, []uint{3, 1, 5, 2}, noteIDs(newFeatures))
}

func TestProjectNotes_TagPriorityOrdersFeatures(t *testing.T) {
	r := reconstructedRelease(t, 10, vo.ProductFirefox, vo.ChannelRelease, "42.0")

	notes := buildNotes(t, []projectionNote{
		{id: 1, tag: vo.TagFixed, text: "crash fix", isPublic: true},
		{id: 2, tag: vo.TagDeveloper, text: "devtools", isPublic: true},
		{id: 3, tag: vo.TagChanged, text: "changed", isPublic: true},
		{id: 4, tag: vo.TagNone, text: "untagged", isPublic: true},
		{id: 5, tag: vo.TagNew, text: "brand new", isPublic: true},
	})

	newFeatures, knownIssues := ProjectNotes(r, notes, false)

	assert.Empty(t, knownIssues)
	// Untagged shares priority 0 with New; ties keep storage order.
	assert.Equal(t, []uint{4, 5, 3, 2, 1}, noteIDs(newFeatures))
}

func TestProjectNotes_SameTagKeepsStorageOrder(t *testing.T) {
	r := reconstructedRelease(t, 10, vo.ProductFirefox, vo.ChannelRelease, "42.0")

	notes := buildNotes(t, []projectionNote{
		{id: 1, tag: vo.TagChanged, text: "first", isPublic: true},
		{id: 2, tag: vo.TagChanged, text: "second", isPublic: true},
		{id: 3, tag: vo.TagChanged, text: "third", isPublic: true},
	})

	newFeatures, _ := ProjectNotes(r, notes, false)
	assert.Equal(t, []uint{1, 2, 3}, noteIDs(newFeatures))
}

func TestProjectNotes_PublicOnlyDropsFromBothLists(t *testing.T) {
	r := reconstructedRelease(t, 10, vo.ProductFirefox, vo.ChannelRelease, "42.0")

	notes := buildNotes(t, []projectionNote{
		{id: 1, tag: vo.TagNone, text: "public feature", isPublic: true},
		{id: 2, tag: vo.TagNone, text: "private feature", isPublic: false},
		{id: 3, tag: vo.TagNone, text: "public issue", isKnownIssue: true, isPublic: true},
		{id: 4, tag: vo.TagNone, text: "private issue", isKnownIssue: true, isPublic: false},
	})

	newFeatures, knownIssues := ProjectNotes(r, notes, true)

	assert.Equal(t, []uint{1}, noteIDs(newFeatures))
	assert.Equal(t, []uint{3}, noteIDs(knownIssues))
}

func TestProjectNotes_EmptyInput(t *testing.T) {
	r := reconstructedRelease(t, 10, vo.ProductFirefox, vo.ChannelRelease, "42.0")

	newFeatures, knownIssues := ProjectNotes(r, nil, false)

	assert.NotNil(t, newFeatures)
	assert.NotNil(t, knownIssues)
	assert.Empty(t, newFeatures)
	assert.Empty(t, knownIssues)
}

func TestProjectNotes_Idempotent(t *testing.T) {
	r := reconstructedRelease(t, 10, vo.ProductFirefox, vo.ChannelRelease, "42.0.1")
	other := uint(3)

	notes := buildNotes(t, []projectionNote{
		{id: 1, tag: vo.TagFixed, text: "42.0.1 fix", isPublic: true},
		{id: 2, tag: vo.TagChanged, text: "changed", isPublic: true},
		{id: 3, tag: vo.TagNone, text: "issue", isKnownIssue: true, isPublic: true, fixedIn: &other},
	})

	first1, first2 := ProjectNotes(r, notes, false)
	second1, second2 := ProjectNotes(r, notes, false)

	assert.Equal(t, noteIDs(first1), noteIDs(second1))
	assert.Equal(t, noteIDs(first2), noteIDs(second2))
}
