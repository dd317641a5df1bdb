package pricing

// Activity is the pricing view of one activity line: its USD-normalised
// cost, whether it scales per traveler, and an optional traveler override
// for activities only part of the group joins.
type Activity struct {
	CostUSD          float64
	PerPerson        bool
	TravelerOverride int
}

// ActivityCost computes the scalar USD total of an activity against the
// given group. Flat-priced activities ignore the traveler count entirely.
func ActivityCost(a Activity, g Group) float64 {
	if !a.PerPerson {
		return RoundCents(a.CostUSD)
	}
	return RoundCents(a.CostUSD * float64(g.EffectiveTravelers(a.TravelerOverride)))
}

// RangeCost is the per-band cost spread of a per-person activity for a
// speculative group. Labels are left to the presentation layer.
type RangeCost struct {
	Min     int
	Max     int
	CostMin float64
	CostMax float64
}

// ActivityRangeCosts enumerates one cost band per selected traveler range.
// Known groups and flat-priced activities yield nil.
func ActivityRangeCosts(a Activity, g Group) []RangeCost {
	if !g.Speculative || !a.PerPerson {
		return nil
	}
	selected := g.SelectedRanges()
	if len(selected) == 0 {
		return nil
	}
	out := make([]RangeCost, 0, len(selected))
	for _, r := range selected {
		out = append(out, RangeCost{
			Min:     r.Min,
			Max:     r.Max,
			CostMin: RoundCents(a.CostUSD * float64(r.Min)),
			CostMax: RoundCents(a.CostUSD * float64(r.Max)),
		})
	}
	return out
}
