package release

import (
	"fmt"
	"time"

	vo "relnotes/internal/domain/release/valueobjects"
)

// Note is a single release-note entry. A note can be linked to many
// releases; an issue note may additionally point at the release that
// fixed it.
type Note struct {
	id               uint
	bug              *int
	text             string
	tag              vo.Tag
	sortNum          int
	isKnownIssue     bool
	isPublic         bool
	fixedInReleaseID *uint
	imagePath        string
	created          time.Time
	modified         time.Time
}

func NewNote(text string, tag vo.Tag) (*Note, error) {
	if !tag.IsValid() {
		return nil, fmt.Errorf("invalid tag: %s", tag)
	}

	now := time.Now().UTC()
	return &Note{
		text:     text,
		tag:      tag,
		isPublic: true,
		created:  now,
		modified: now,
	}, nil
}

func ReconstructNote(
	id uint,
	bug *int,
	text string,
	tag vo.Tag,
	sortNum int,
	isKnownIssue bool,
	isPublic bool,
	fixedInReleaseID *uint,
	imagePath string,
	created, modified time.Time,
) (*Note, error) {
	if id == 0 {
		return nil, fmt.Errorf("note ID cannot be zero")
	}
	if !tag.IsValid() {
		return nil, fmt.Errorf("invalid tag: %s", tag)
	}

	return &Note{
		id:               id,
		bug:              bug,
		text:             text,
		tag:              tag,
		sortNum:          sortNum,
		isKnownIssue:     isKnownIssue,
		isPublic:         isPublic,
		fixedInReleaseID: fixedInReleaseID,
		imagePath:        imagePath,
		created:          created,
		modified:         modified,
	}, nil
}

func (n *Note) ID() uint {
	return n.id
}

func (n *Note) Bug() *int {
	return n.bug
}

func (n *Note) Text() string {
	return n.text
}

func (n *Note) Tag() vo.Tag {
	return n.tag
}

func (n *Note) SortNum() int {
	return n.sortNum
}

func (n *Note) IsKnownIssue() bool {
	return n.isKnownIssue
}

func (n *Note) IsPublic() bool {
	return n.isPublic
}

func (n *Note) FixedInReleaseID() *uint {
	return n.fixedInReleaseID
}

func (n *Note) ImagePath() string {
	return n.imagePath
}

func (n *Note) Created() time.Time {
	return n.created
}

func (n *Note) Modified() time.Time {
	return n.modified
}

func (n *Note) SetID(id uint) error {
	if n.id != 0 {
		return fmt.Errorf("note ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("note ID cannot be zero")
	}
	n.id = id
	return nil
}

// IsKnownIssueForRelease reports whether the note is an open known issue
// on the given release: flagged as a known issue and not fixed by that
// exact release. A note fixed in release R stops being a known issue for
// R only; it stays open for every other linked release.
func (n *Note) IsKnownIssueForRelease(releaseID uint) bool {
	if !n.isKnownIssue {
		return false
	}
	return n.fixedInReleaseID == nil || *n.fixedInReleaseID != releaseID
}

// IsDotFixFor reports whether the note is a point-release fix for the
// given release: tagged Fixed with a body that leads with the exact
// release version.
func (n *Note) IsDotFixFor(version string) bool {
	return n.tag.IsFixed() && len(n.text) >= len(version) && n.text[:len(version)] == version
}

func (n *Note) Update(bug *int, text string, tag vo.Tag, sortNum int, isKnownIssue, isPublic bool, fixedInReleaseID *uint) error {
	if !tag.IsValid() {
		return fmt.Errorf("invalid tag: %s", tag)
	}

	n.bug = bug
	n.text = text
	n.tag = tag
	n.sortNum = sortNum
	n.isKnownIssue = isKnownIssue
	n.isPublic = isPublic
	n.fixedInReleaseID = fixedInReleaseID
	n.touch()
	return nil
}

func (n *Note) AttachImage(path string) {
	n.imagePath = path
	n.touch()
}

// RefreshModified bumps the modified timestamp without any field change.
// Copy-release uses it so copied note links surface to sync cursors.
func (n *Note) RefreshModified() {
	n.touch()
}

func (n *Note) touch() {
	n.modified = time.Now().UTC()
}

func (n *Note) String() string {
	return n.text
}
