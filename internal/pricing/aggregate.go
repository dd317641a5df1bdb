package pricing

// Input is everything the aggregator needs from a quote document.
type Input struct {
	Hotels     []Hotel
	Activities []Activity
	Transports []Transport
	Group      Group
	Budget     float64
}

// Summary aggregates the computed cost categories of a quote.
type Summary struct {
	Accommodation  float64 `json:"accommodation"`
	Activities     float64 `json:"activities"`
	Transportation float64 `json:"transportation"`
	Total          float64 `json:"total"`
	Budget         float64 `json:"budget"`
	Remaining      float64 `json:"remaining"`
	PerPerson      float64 `json:"perPerson"`
}

// Compute derives the full cost summary for a quote. Accommodation counts
// primary hotels only; remaining budget may go negative; per-person cost is
// 0 when no traveler count can be resolved.
func Compute(in Input) Summary {
	accommodation := 0.0
	for _, hotel := range in.Hotels {
		if !hotel.Primary {
			continue
		}
		accommodation += HotelCost(hotel)
	}
	activities := 0.0
	for _, activity := range in.Activities {
		activities += ActivityCost(activity, in.Group)
	}
	fallback := in.Group.EffectiveTravelers(0)
	transportation := 0.0
	for _, leg := range in.Transports {
		transportation += TransportCost(leg, fallback)
	}
	total := RoundCents(accommodation + activities + transportation)
	perPerson := 0.0
	if fallback > 0 {
		perPerson = RoundCents(total / float64(fallback))
	}
	return Summary{
		Accommodation:  RoundCents(accommodation),
		Activities:     RoundCents(activities),
		Transportation: RoundCents(transportation),
		Total:          total,
		Budget:         in.Budget,
		Remaining:      RoundCents(in.Budget - total),
		PerPerson:      perPerson,
	}
}
