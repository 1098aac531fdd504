package release

import "sort"

// ProjectNotes partitions and orders the notes linked to a release into
// the two lists a release page shows: new features and known issues.
//
// The input slice must already be in release-wide display order, sort_num
// highest first (ties in storage order); both output lists inherit it.
// Known issues keep that order untouched. New features get two further
// stable sort passes: first ascending by tag priority (untagged notes
// share the top priority with "New"), then a pull-to-top pass that moves
// dot fixes - "Fixed"-tagged notes whose body starts with this exact
// release version - ahead of everything else. The passes are deliberately
// separate stable sorts, not one composite comparator; the later pass
// dominates and ties keep the earlier pass's order.
//
// Pure derivation: the input is never mutated and no I/O happens here.
func ProjectNotes(r *Release, notes []*Note, publicOnly bool) (newFeatures, knownIssues []*Note) {
	newFeatures = make([]*Note, 0, len(notes))
	knownIssues = make([]*Note, 0)

	for _, n := range notes {
		if publicOnly && !n.IsPublic() {
			continue
		}
		if n.IsKnownIssueForRelease(r.ID()) {
			knownIssues = append(knownIssues, n)
		} else {
			newFeatures = append(newFeatures, n)
		}
	}

	sort.SliceStable(newFeatures, func(i, j int) bool {
		return newFeatures[i].Tag().Priority() < newFeatures[j].Tag().Priority()
	})

	version := r.Version()
	sort.SliceStable(newFeatures, func(i, j int) bool {
		return newFeatures[i].IsDotFixFor(version) && !newFeatures[j].IsDotFixFor(version)
	})

	return newFeatures, knownIssues
}
