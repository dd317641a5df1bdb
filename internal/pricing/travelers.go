package pricing

// Range is one selectable traveler-count band on a speculative group.
type Range struct {
	Min      int
	Max      int
	Selected bool
}

// Group models the two traveler-count shapes a quote can have: a known
// scalar count, or a speculative set of ranges of which at least one is
// expected to be selected.
type Group struct {
	Speculative   bool
	TravelerCount int
	Ranges        []Range
}

// SelectedRanges returns the selected bands in their stored order.
func (g Group) SelectedRanges() []Range {
	out := make([]Range, 0, len(g.Ranges))
	for _, r := range g.Ranges {
		if r.Selected {
			out = append(out, r)
		}
	}
	return out
}

// EffectiveTravelers resolves the traveler count a per-person price scales
// by. An explicit per-entity override wins; known groups use the quote's
// count; speculative groups use the minimum of the first selected range.
// A group with nothing to go on resolves to 0.
func (g Group) EffectiveTravelers(override int) int {
	if override > 0 {
		return override
	}
	if !g.Speculative {
		if g.TravelerCount > 0 {
			return g.TravelerCount
		}
		return 0
	}
	for _, r := range g.Ranges {
		if r.Selected {
			return r.Min
		}
	}
	return 0
}
