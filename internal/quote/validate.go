package quote

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/noah-isme/backend-quotes/internal/pricing"
)

// minKnownGroupSize is the smallest group the agency quotes as "known".
const minKnownGroupSize = 10

var validate = validator.New(validator.WithRequiredStructEnabled())

// ValidateWire runs schema validation on an inbound document. Only shape
// problems are hard errors; business rules stay warnings.
func ValidateWire(w WireQuote) error {
	return validate.Struct(w)
}

// Warnings evaluates the soft business rules of a quote. Nothing here
// blocks a save; the rules surface in responses for the client to display.
func Warnings(q *Quote) []string {
	var warnings []string

	switch q.GroupType {
	case GroupSpeculative:
		selected := 0
		for _, r := range q.GroupRanges {
			if r.Selected {
				selected++
			}
		}
		if selected == 0 {
			warnings = append(warnings, "speculative group has no traveler range selected")
		}
	default:
		if q.TravelerCount < minKnownGroupSize {
			warnings = append(warnings, fmt.Sprintf("known groups require at least %d travelers", minKnownGroupSize))
		}
	}

	if start, err := time.Parse(DateLayout, q.StartDate); err == nil {
		if end, err := time.Parse(DateLayout, q.EndDate); err == nil && end.Before(start) {
			warnings = append(warnings, "trip end date is before the start date")
		}
	}

	primaries := make(map[string]int, len(q.Cities))
	for _, h := range q.Hotels {
		if h.IsPrimary {
			primaries[h.City]++
		}
	}
	for _, city := range q.Cities {
		if n := primaries[city.ID]; n != 1 {
			warnings = append(warnings, fmt.Sprintf("city %q has %d primary hotels, expected exactly 1", city.Name, n))
		}
	}

	if q.GroupType != GroupSpeculative && q.TravelerCount > 0 {
		for _, h := range q.Hotels {
			if !h.IsPrimary {
				continue
			}
			rooms := make([]pricing.Room, 0, len(h.RoomCategories))
			for _, rc := range h.RoomCategories {
				rooms = append(rooms, pricing.Room{Name: rc.Category, Quantity: rc.Quantity})
			}
			if capacity := pricing.Capacity(rooms); len(rooms) > 0 && capacity != q.TravelerCount {
				warnings = append(warnings, fmt.Sprintf("hotel %q sleeps %d but the group has %d travelers", h.Name, capacity, q.TravelerCount))
			}
		}
		for _, a := range q.Activities {
			if a.TravelerCount > q.TravelerCount {
				warnings = append(warnings, fmt.Sprintf("activity %q has more participants than the group", a.Name))
			}
		}
	}

	return warnings
}
