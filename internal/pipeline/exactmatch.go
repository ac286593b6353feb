package pipeline

import (
	"github.com/utoken-go/utoken/internal/resource"
)

// scanExact implements the "leftmost match, then longest" tie-break shared
// by every exact-match resource kind (lexical, abbrev, contraction,
// misspelling, repair): scan positions left to right, and at the first
// position that has any match at all, prefer the longest key.
// maxLen bounds how far to probe per position so a huge line doesn't make
// this quadratic in the number of distinct key lengths.
func scanExact(rt *Runtime, kind resource.Kind, i, j int) (pos, end int, entry *resource.Entry, ok bool) {
	maxLen := rt.Store.MaxKeyLen(kind)
	if maxLen == 0 {
		return 0, 0, nil, false
	}
	for p := i; p < j; p++ {
		upper := maxLen
		if p+upper > j {
			upper = j - p
		}
		for l := upper; l >= 1; l-- {
			candidate := rt.CleanSlice(p, p+l)
			if e, found := rt.Store.Lookup(kind, candidate); found {
				return p, p + l, e, true
			}
		}
	}
	return 0, 0, nil, false
}
