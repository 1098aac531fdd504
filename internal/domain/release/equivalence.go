package release

import (
	"sort"
	"strings"

	vo "relnotes/internal/domain/release/valueobjects"
)

// SelectEquivalent picks the release that represents "the same point in
// time" from a candidate list. Candidates must already share the source
// release's channel and major version (version prefix "<major>.") and
// carry the target product, ordered version descending; visibility
// filtering happens before this call.
//
// Two stable sort passes decide the winner:
//  1. descending by the number of dot-separated version segments, so a
//     more specific point release ("42.0.1") outranks "42.0" when the
//     second pass ties;
//  2. descending by the second segment compared as a string, stable over
//     pass one. This makes 33.1 outrank 33.0.3: minor "1" beats "0" even
//     though 0.3 is numerically larger. String comparison is intentional;
//     do not replace it with numeric version ordering.
//
// A version without a second segment compares as the lowest value rather
// than failing. Returns nil when no candidates remain.
func SelectEquivalent(candidates []*Release) *Release {
	if len(candidates) == 0 {
		return nil
	}

	sorted := make([]*Release, len(candidates))
	copy(sorted, candidates)

	sort.SliceStable(sorted, func(i, j int) bool {
		return segmentCount(sorted[i].Version()) > segmentCount(sorted[j].Version())
	})

	sort.SliceStable(sorted, func(i, j int) bool {
		return minorSegment(sorted[i].Version()) > minorSegment(sorted[j].Version())
	})

	return sorted[0]
}

func segmentCount(version string) int {
	return len(strings.Split(version, "."))
}

// minorSegment returns the second dot-separated segment of a version, or
// the empty string when there is none. The empty string sorts below every
// non-empty segment, which is the required degradation for malformed
// versions.
func minorSegment(version string) string {
	parts := strings.Split(version, ".")
	if len(parts) < 2 {
		return ""
	}
	return parts[1]
}

// EquivalentProductFor returns the product whose releases should be
// searched for this release's counterpart, or false when the product has
// no sibling (equivalence lookups then yield no result without touching
// storage).
func EquivalentProductFor(product vo.Product) (vo.Product, bool) {
	return product.Counterpart()
}
