package quote

import (
	"fmt"
	"time"
)

// maxItineraryDays caps materialization against absurd date ranges.
const maxItineraryDays = 120

// MaterializeItinerary returns one itinerary day per calendar date between
// the trip start and end (inclusive). Days the agent already edited keep
// their id and description; gaps are filled with fresh days carrying the
// activities dated on them. Quotes without a valid date range keep their
// stored days untouched.
func MaterializeItinerary(q *Quote) []ItineraryDay {
	start, err := time.Parse(DateLayout, q.StartDate)
	if err != nil {
		return q.Itinerary
	}
	end, err := time.Parse(DateLayout, q.EndDate)
	if err != nil || end.Before(start) {
		return q.Itinerary
	}

	existing := make(map[string]ItineraryDay, len(q.Itinerary))
	for _, day := range q.Itinerary {
		existing[day.Date] = day
	}
	activitiesByDate := make(map[string][]string, len(q.Activities))
	for _, a := range q.Activities {
		if a.Date != "" {
			activitiesByDate[a.Date] = append(activitiesByDate[a.Date], a.ID)
		}
	}

	days := make([]ItineraryDay, 0, int(end.Sub(start).Hours()/24)+1)
	for d, n := start, 0; !d.After(end) && n < maxItineraryDays; d, n = d.AddDate(0, 0, 1), n+1 {
		date := d.Format(DateLayout)
		if day, ok := existing[date]; ok {
			day.ActivityIDs = activitiesByDate[date]
			days = append(days, day)
			continue
		}
		days = append(days, ItineraryDay{
			ID:          fmt.Sprintf("day-%s", date),
			Date:        date,
			ActivityIDs: activitiesByDate[date],
		})
	}
	return days
}
