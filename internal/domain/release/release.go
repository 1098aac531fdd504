package release

import (
	"fmt"
	"strings"
	"time"

	vo "relnotes/internal/domain/release/valueobjects"
)

// Bugzilla search templates, parameterized only by major version.
const (
	thunderbirdBugSearchTemplate = "https://bugzilla.mozilla.org/buglist.cgi?" +
		"classification=Client%20Software&query_format=advanced&" +
		"bug_status=RESOLVED&bug_status=VERIFIED&bug_status=CLOSED&" +
		"target_milestone=Thunderbird%20{version}.0&product=Thunderbird" +
		"&resolution=FIXED"

	defaultBugSearchTemplate = "https://bugzilla.mozilla.org/buglist.cgi?" +
		"j_top=OR&f1=target_milestone&o3=equals&v3=Firefox%20{version}&" +
		"o1=equals&resolution=FIXED&o2=anyexact&query_format=advanced&" +
		"f3=target_milestone&f2=cf_status_firefox{version}&" +
		"bug_status=RESOLVED&bug_status=VERIFIED&bug_status=CLOSED&" +
		"v1=mozilla{version}&v2=fixed%2Cverified&limit=0"
)

// Release is one shipped version of a product on a channel. Identity is
// the (product, version) pair; the numeric ID is storage-assigned.
type Release struct {
	id                 uint
	product            vo.Product
	channel            vo.Channel
	version            string
	releaseDate        time.Time
	text               string
	isPublic           bool
	bugList            string
	bugSearchURL       string
	systemRequirements string
	created            time.Time
	modified           time.Time
}

func NewRelease(
	product vo.Product,
	channel vo.Channel,
	version string,
	releaseDate time.Time,
) (*Release, error) {
	if !product.IsValid() {
		return nil, fmt.Errorf("invalid product: %s", product)
	}
	if !channel.IsValid() {
		return nil, fmt.Errorf("invalid channel: %s", channel)
	}
	if len(version) == 0 {
		return nil, fmt.Errorf("version is required")
	}
	if releaseDate.IsZero() {
		return nil, fmt.Errorf("release date is required")
	}

	now := time.Now().UTC()
	return &Release{
		product:     product,
		channel:     channel,
		version:     version,
		releaseDate: releaseDate,
		created:     now,
		modified:    now,
	}, nil
}

func ReconstructRelease(
	id uint,
	product vo.Product,
	channel vo.Channel,
	version string,
	releaseDate time.Time,
	text string,
	isPublic bool,
	bugList string,
	bugSearchURL string,
	systemRequirements string,
	created, modified time.Time,
) (*Release, error) {
	if id == 0 {
		return nil, fmt.Errorf("release ID cannot be zero")
	}
	if !product.IsValid() {
		return nil, fmt.Errorf("invalid product: %s", product)
	}
	if !channel.IsValid() {
		return nil, fmt.Errorf("invalid channel: %s", channel)
	}
	if len(version) == 0 {
		return nil, fmt.Errorf("version is required")
	}

	return &Release{
		id:                 id,
		product:            product,
		channel:            channel,
		version:            version,
		releaseDate:        releaseDate,
		text:               text,
		isPublic:           isPublic,
		bugList:            bugList,
		bugSearchURL:       bugSearchURL,
		systemRequirements: systemRequirements,
		created:            created,
		modified:           modified,
	}, nil
}

func (r *Release) ID() uint {
	return r.id
}

func (r *Release) Product() vo.Product {
	return r.product
}

func (r *Release) Channel() vo.Channel {
	return r.channel
}

func (r *Release) Version() string {
	return r.version
}

func (r *Release) ReleaseDate() time.Time {
	return r.releaseDate
}

func (r *Release) Text() string {
	return r.text
}

func (r *Release) IsPublic() bool {
	return r.isPublic
}

func (r *Release) BugList() string {
	return r.bugList
}

func (r *Release) BugSearchURLOverride() string {
	return r.bugSearchURL
}

func (r *Release) SystemRequirements() string {
	return r.systemRequirements
}

func (r *Release) Created() time.Time {
	return r.created
}

func (r *Release) Modified() time.Time {
	return r.modified
}

func (r *Release) SetID(id uint) error {
	if r.id != 0 {
		return fmt.Errorf("release ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("release ID cannot be zero")
	}
	r.id = id
	return nil
}

// MajorVersion returns the version up to, not including, the first dot.
// A version with no dot is its own major version.
func (r *Release) MajorVersion() string {
	return strings.SplitN(r.version, ".", 2)[0]
}

// BugSearchURL returns the explicit override verbatim when set, otherwise
// a bug-tracker search URL synthesized from the product's template and the
// major version. No network call is made.
func (r *Release) BugSearchURL() string {
	if r.bugSearchURL != "" {
		return r.bugSearchURL
	}

	template := defaultBugSearchTemplate
	if r.product == vo.ProductThunderbird {
		template = thunderbirdBugSearchTemplate
	}
	return strings.ReplaceAll(template, "{version}", r.MajorVersion())
}

// PagePath returns the site-relative release notes page path, built from
// the product's page slug. Used for staging and production page links. A
// product without a page slug yields an empty path.
func (r *Release) PagePath() string {
	if r.product == vo.ProductFirefoxOS {
		return fmt.Sprintf("/firefox/os/notes/%s/", r.version)
	}
	slug, ok := r.product.PageSlug()
	if !ok {
		return ""
	}
	return fmt.Sprintf("/%s/%s/releasenotes/", slug, r.version)
}

// UpdateContent edits the free-form fields. Identity fields (product,
// version, channel) are fixed after creation.
func (r *Release) UpdateContent(text, bugList, bugSearchURL, systemRequirements string) {
	r.text = text
	r.bugList = bugList
	r.bugSearchURL = bugSearchURL
	r.systemRequirements = systemRequirements
	r.touch()
}

func (r *Release) UpdateReleaseDate(date time.Time) error {
	if date.IsZero() {
		return fmt.Errorf("release date is required")
	}
	r.releaseDate = date
	r.touch()
	return nil
}

func (r *Release) Publish() {
	if r.isPublic {
		return
	}
	r.isPublic = true
	r.touch()
}

func (r *Release) Unpublish() {
	if !r.isPublic {
		return
	}
	r.isPublic = false
	r.touch()
}

func (r *Release) touch() {
	r.modified = time.Now().UTC()
}

func (r *Release) String() string {
	return fmt.Sprintf("%s %s %s", r.product, r.version, r.channel)
}

// CopyVersionName derives the version string for a copy of a release.
// existingCount is the number of releases of the same product whose
// version ends with the source version; the source itself always matches,
// so the first copy sees a count of 1.
func CopyVersionName(version string, existingCount int64) string {
	if existingCount > 1 {
		return fmt.Sprintf("copy%d-%s", existingCount, version)
	}
	return "copy-" + version
}
