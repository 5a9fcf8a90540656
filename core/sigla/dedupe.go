package sigla

import "github.com/oremus-tools/sigla/core/refs"

// dedupeFilter is an order-preserving membership filter over structured
// references. Duplicates are references equal in all five structural fields.
type dedupeFilter struct {
	seen map[refs.Reference]struct{}
}

func newDedupeFilter() *dedupeFilter {
	return &dedupeFilter{seen: make(map[refs.Reference]struct{})}
}

// Add reports whether ref is new, recording it if so.
func (f *dedupeFilter) Add(ref refs.Reference) bool {
	if _, dup := f.seen[ref]; dup {
		return false
	}
	f.seen[ref] = struct{}{}
	return true
}

// Dedupe collapses structurally identical references, keeping first-seen
// order.
func Dedupe(references []refs.Reference) []refs.Reference {
	filter := newDedupeFilter()
	out := make([]refs.Reference, 0, len(references))
	for _, ref := range references {
		if filter.Add(ref) {
			out = append(out, ref)
		}
	}
	return out
}
