package valueobjects

import "fmt"

// Tag classifies a note. The blank tag is valid and means "untagged".
type Tag string

const (
	TagNone      Tag = ""
	TagNew       Tag = "New"
	TagChanged   Tag = "Changed"
	TagHTML5     Tag = "HTML5"
	TagFeature   Tag = "Feature"
	TagLanguage  Tag = "Language"
	TagDeveloper Tag = "Developer"
	TagFixed     Tag = "Fixed"
)

// orderedTags fixes the display priority of tagged notes. The index is the
// priority; untagged or unrecognized tags share priority 0 with "New".
var orderedTags = []Tag{
	TagNew,
	TagChanged,
	TagHTML5,
	TagFeature,
	TagLanguage,
	TagDeveloper,
	TagFixed,
}

var tagPriorities = func() map[Tag]int {
	m := make(map[Tag]int, len(orderedTags))
	for i, t := range orderedTags {
		m[t] = i
	}
	return m
}()

func (t Tag) String() string {
	return string(t)
}

func (t Tag) IsValid() bool {
	if t == TagNone {
		return true
	}
	_, ok := tagPriorities[t]
	return ok
}

// Priority returns the sort priority of the tag. Blank and unrecognized
// tags sort with "New" at priority 0.
func (t Tag) Priority() int {
	if p, ok := tagPriorities[t]; ok {
		return p
	}
	return 0
}

func (t Tag) IsFixed() bool {
	return t == TagFixed
}

func NewTag(s string) (Tag, error) {
	t := Tag(s)
	if !t.IsValid() {
		return "", fmt.Errorf("invalid tag: %s", s)
	}
	return t, nil
}

// Tags returns the recognized non-blank tags in priority order.
func Tags() []Tag {
	tags := make([]Tag, len(orderedTags))
	copy(tags, orderedTags)
	return tags
}
