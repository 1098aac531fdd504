package release

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vo "relnotes/internal/domain/release/valueobjects"
)

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

// reconstructedRelease builds a persisted-style release with defaults.
func reconstructedRelease(t *testing.T, id uint, product vo.Product, channel vo.Channel, version string) *Release {
	t.Helper()
	now := time.Now().UTC()
	r, err := ReconstructRelease(
		id, product, channel, version,
		now,   // releaseDate
		"",    // text
		false, // isPublic
		"",    // bugList
		"",    // bugSearchURL
		"",    // systemRequirements
		now, now,
	)
	require.NoError(t, err)
	return r
}

// ---------------------------------------------------------------------------
// Constructor tests
// ---------------------------------------------------------------------------

func TestNewRelease_ValidInput(t *testing.T) {
	date := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)
	r, err := NewRelease(vo.ProductFirefox, vo.ChannelRelease, "42.0", date)
	require.NoError(t, err)
	require.NotNil(t, r)

	assert.Equal(t, vo.ProductFirefox, r.Product())
	assert.Equal(t, vo.ChannelRelease, r.Channel())
	assert.Equal(t, "42.0", r.Version())
	assert.Equal(t, date, r.ReleaseDate())
	assert.False(t, r.IsPublic(), "new releases start non-public")
	assert.False(t, r.Created().IsZero())
	assert.False(t, r.Modified().IsZero())
}

func TestNewRelease_InvalidInput(t *testing.T) {
	date := time.Now()

	tests := []struct {
		name    string
		product vo.Product
		channel vo.Channel
		version string
		date    time.Time
	}{
		{"invalid product", vo.Product("Netscape"), vo.ChannelRelease, "1.0", date},
		{"invalid channel", vo.ProductFirefox, vo.Channel("Canary"), "1.0", date},
		{"empty version", vo.ProductFirefox, vo.ChannelRelease, "", date},
		{"zero release date", vo.ProductFirefox, vo.ChannelRelease, "1.0", time.Time{}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r, err := NewRelease(tc.product, tc.channel, tc.version, tc.date)
			require.Error(t, err)
			assert.Nil(t, r)
		})
	}
}

// ---------------------------------------------------------------------------
// MajorVersion
// ---------------------------------------------------------------------------

func TestMajorVersion(t *testing.T) {
	tests := []struct {
		version string
		want    string
	}{
		{"42.0", "42"},
		{"42", "42"},
		{"42.0.1", "42"},
		{"copy-42.0", "copy-42"},
		{"33.1", "33"},
	}

	for _, tc := range tests {
		t.Run(tc.version, func(t *testing.T) {
			r := reconstructedRelease(t, 1, vo.ProductFirefox, vo.ChannelRelease, tc.version)
			assert.Equal(t, tc.want, r.MajorVersion())
		})
	}
}

// ---------------------------------------------------------------------------
// BugSearchURL
// ---------------------------------------------------------------------------

func TestBugSearchURL_OverrideWinsVerbatim(t *testing.T) {
	now := time.Now().UTC()
	r, err := ReconstructRelease(
		1, vo.ProductFirefox, vo.ChannelRelease, "42.0",
		now, "", false, "", "http://example.com", "", now, now,
	)
	require.NoError(t, err)
	assert.Equal(t, "http://example.com", r.BugSearchURL())
}

func TestBugSearchURL_Default(t *testing.T) {
	r := reconstructedRelease(t, 1, vo.ProductFirefox, vo.ChannelRelease, "42.0")
	assert.Equal(t,
		"https://bugzilla.mozilla.org/buglist.cgi?"+
			"j_top=OR&f1=target_milestone&o3=equals&v3=Firefox%2042&"+
			"o1=equals&resolution=FIXED&o2=anyexact&query_format=advanced&"+
			"f3=target_milestone&f2=cf_status_firefox42&"+
			"bug_status=RESOLVED&bug_status=VERIFIED&bug_status=CLOSED&"+
			"v1=mozilla42&v2=fixed%2Cverified&limit=0",
		r.BugSearchURL())
}

func TestBugSearchURL_Thunderbird(t *testing.T) {
	r := reconstructedRelease(t, 1, vo.ProductThunderbird, vo.ChannelRelease, "42.0")
	assert.Equal(t,
		"https://bugzilla.mozilla.org/buglist.cgi?"+
			"classification=Client%20Software&query_format=advanced&"+
			"bug_status=RESOLVED&bug_status=VERIFIED&bug_status=CLOSED&"+
			"target_milestone=Thunderbird%2042.0&product=Thunderbird"+
			"&resolution=FIXED",
		r.BugSearchURL())
}

// ---------------------------------------------------------------------------
// Mutators
// ---------------------------------------------------------------------------

func TestPagePath(t *testing.T) {
	tests := []struct {
		name    string
		product vo.Product
		version string
		want    string
	}{
		{"desktop", vo.ProductFirefox, "42.0", "/firefox/42.0/releasenotes/"},
		{"esr shares the desktop page", vo.ProductFirefoxESR, "31.0", "/firefox/31.0/releasenotes/"},
		{"android", vo.ProductFirefoxAndroid, "42.0", "/mobile/42.0/releasenotes/"},
		{"thunderbird", vo.ProductThunderbird, "31.0", "/thunderbird/31.0/releasenotes/"},
		{"firefox os uses its own layout", vo.ProductFirefoxOS, "1.4", "/firefox/os/notes/1.4/"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r := reconstructedRelease(t, 1, tc.product, vo.ChannelRelease, tc.version)
			assert.Equal(t, tc.want, r.PagePath())
		})
	}
}

func TestPublishUnpublish(t *testing.T) {
	r := reconstructedRelease(t, 1, vo.ProductFirefox, vo.ChannelBeta, "43.0b1")
	before := r.Modified()

	time.Sleep(time.Millisecond)
	r.Publish()
	assert.True(t, r.IsPublic())
	assert.True(t, r.Modified().After(before), "publish must bump modified")

	stamp := r.Modified()
	r.Publish()
	assert.Equal(t, stamp, r.Modified(), "publishing an already-public release is a no-op")

	time.Sleep(time.Millisecond)
	r.Unpublish()
	assert.False(t, r.IsPublic())
	assert.True(t, r.Modified().After(stamp))
}

func TestUpdateContent_BumpsModified(t *testing.T) {
	r := reconstructedRelease(t, 1, vo.ProductFirefox, vo.ChannelRelease, "42.0")
	before := r.Modified()

	time.Sleep(time.Millisecond)
	r.UpdateContent("body", "123,456", "", "Windows 7+")

	assert.Equal(t, "body", r.Text())
	assert.Equal(t, "123,456", r.BugList())
	assert.Equal(t, "Windows 7+", r.SystemRequirements())
	assert.True(t, r.Modified().After(before))
}

func TestStringer(t *testing.T) {
	r := reconstructedRelease(t, 1, vo.ProductFirefox, vo.ChannelRelease, "12.0.1")
	assert.Equal(t, "Firefox 12.0.1 Release", r.String())
}

// ---------------------------------------------------------------------------
// Copy naming
// ---------------------------------------------------------------------------

func TestCopyVersionName(t *testing.T) {
	tests := []struct {
		name  string
		count int64
		want  string
	}{
		{"first copy", 1, "copy-42.0"},
		{"second copy", 2, "copy2-42.0"},
		{"fifth copy", 5, "copy5-42.0"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, CopyVersionName("42.0", tc.count))
		})
	}
}
