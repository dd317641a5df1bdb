package quote

import "github.com/noah-isme/backend-quotes/internal/pricing"

// group maps the quote's traveler model into the pricing engine's shape.
func (q *Quote) group() pricing.Group {
	ranges := make([]pricing.Range, 0, len(q.GroupRanges))
	for _, r := range q.GroupRanges {
		ranges = append(ranges, pricing.Range{Min: r.Min, Max: r.Max, Selected: r.Selected})
	}
	return pricing.Group{
		Speculative:   q.GroupType == GroupSpeculative,
		TravelerCount: q.TravelerCount,
		Ranges:        ranges,
	}
}

// activityCostUSD returns the stored USD cost, deriving it from the local
// amount and rate snapshot when the derived field was never populated.
func activityCostUSD(a Activity) float64 {
	if a.CostUSD != 0 {
		return a.CostUSD
	}
	return pricing.NormalizeUSD(a.Cost, a.Currency, a.ExchangeRate)
}

func pricingHotel(h Hotel) pricing.Hotel {
	rooms := make([]pricing.Room, 0, len(h.RoomCategories))
	for _, rc := range h.RoomCategories {
		rooms = append(rooms, pricing.Room{Name: rc.Category, Rate: rc.Rate, Quantity: rc.Quantity})
	}
	extras := make([]pricing.Extra, 0, len(h.Extras))
	for _, ex := range h.Extras {
		extras = append(extras, pricing.Extra{Name: ex.Name, Rate: ex.Rate, Quantity: ex.Quantity, Nights: ex.Nights})
	}
	return pricing.Hotel{
		Primary:  h.IsPrimary,
		Currency: h.Currency,
		FxRate:   h.ExchangeRate,
		Rooms:    rooms,
		Extras:   extras,
	}
}

func pricingTransport(t Transportation) pricing.Transport {
	leg := pricing.Transport{Type: pricing.TransportType(t.Type), Cost: t.Cost}
	if t.Air != nil {
		leg.Air = &pricing.Air{
			GroupRate:     t.Air.GroupRate,
			RatePerPerson: t.Air.RatePerPerson,
			TravelerCount: t.Air.TravelerCount,
		}
	}
	if t.Coaching != nil {
		classes := make([]pricing.CoachClass, 0, len(t.Coaching.Classes))
		for _, class := range t.Coaching.Classes {
			classes = append(classes, pricing.CoachClass{
				Enabled:          class.Enabled,
				DailyRate:        class.DailyRate,
				EntireRate:       class.EntireRate,
				Luxury:           class.Luxury,
				ServicesIncluded: class.AdditionalServicesIncluded,
			})
		}
		extras := make([]pricing.CoachExtra, 0, len(t.Coaching.Extras))
		for _, extra := range t.Coaching.Extras {
			extras = append(extras, pricing.CoachExtra{Enabled: extra.Enabled, Rate: extra.Rate, Days: extra.Days})
		}
		leg.Coaching = &pricing.Coaching{
			DriverDays: t.Coaching.DriverDays,
			Currency:   t.Coaching.Currency,
			FxRate:     t.Coaching.ExchangeRate,
			Markup:     t.Coaching.MarkupRate,
			Classes:    classes,
			Extras:     extras,
		}
	}
	return leg
}

// Summarize computes the authoritative cost summary for a quote document.
func Summarize(q *Quote) pricing.Summary {
	hotels := make([]pricing.Hotel, 0, len(q.Hotels))
	for _, h := range q.Hotels {
		hotels = append(hotels, pricingHotel(h))
	}
	activities := make([]pricing.Activity, 0, len(q.Activities))
	for _, a := range q.Activities {
		activities = append(activities, pricing.Activity{
			CostUSD:          activityCostUSD(a),
			PerPerson:        a.PerPerson,
			TravelerOverride: a.TravelerCount,
		})
	}
	transports := make([]pricing.Transport, 0, len(q.Transportation))
	for _, t := range q.Transportation {
		transports = append(transports, pricingTransport(t))
	}
	return pricing.Compute(pricing.Input{
		Hotels:     hotels,
		Activities: activities,
		Transports: transports,
		Group:      q.group(),
		Budget:     q.Budget,
	})
}
