package quote

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

// The wire document is the shape the builder UI posts on save and preview:
// city-linked entities carry a denormalized cityName instead of the city id,
// activity dates move to dateString, derived USD costs move to costUsd, and
// currency-bearing lines gain a precomputed rateUsd. FromWire reverses the
// reshaping so the stored document keeps its internal linkage.

// flexFloat decodes a JSON number, a numeric string, or null. Malformed
// values coerce to 0 instead of failing the request.
type flexFloat float64

func (f *flexFloat) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || string(data) == "null" {
		*f = 0
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			*f = 0
			return nil
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil {
			*f = 0
			return nil
		}
		*f = flexFloat(v)
		return nil
	}
	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		*f = 0
		return nil
	}
	*f = flexFloat(v)
	return nil
}

// flexInt mirrors flexFloat for integer fields, truncating fractions.
type flexInt int

func (i *flexInt) UnmarshalJSON(data []byte) error {
	var f flexFloat
	if err := f.UnmarshalJSON(data); err != nil {
		*i = 0
		return nil
	}
	*i = flexInt(f)
	return nil
}

// WireQuote is the document shape exchanged with clients.
type WireQuote struct {
	ID             string               `json:"id,omitempty"`
	Name           string               `json:"name" validate:"required"`
	StartDate      string               `json:"startDate" validate:"omitempty,datetime=2006-01-02"`
	EndDate        string               `json:"endDate" validate:"omitempty,datetime=2006-01-02"`
	AgentID        string               `json:"agentId,omitempty"`
	AgentName      string               `json:"agentName,omitempty"`
	Agency         string               `json:"agency,omitempty"`
	GroupType      GroupType            `json:"groupType" validate:"omitempty,oneof=known speculative"`
	TravelerCount  flexInt              `json:"travelerCount"`
	GroupRanges    []WireGroupRange     `json:"groupRanges,omitempty"`
	Budget         flexFloat            `json:"budget"`
	Cities         []City               `json:"cities"`
	Hotels         []WireHotel          `json:"hotels"`
	Activities     []WireActivity       `json:"activities"`
	Transportation []WireTransportation `json:"transportation"`
	Itinerary      []ItineraryDay       `json:"itinerary"`
	Inclusions     []string             `json:"inclusions,omitempty"`
	Exclusions     []string             `json:"exclusions,omitempty"`
	Terms          string               `json:"terms,omitempty"`
	Status         string               `json:"status,omitempty"`
}

// WireGroupRange mirrors GroupRange with coercing numerics.
type WireGroupRange struct {
	Min      flexInt `json:"min"`
	Max      flexInt `json:"max"`
	Selected bool    `json:"selected"`
}

// WireHotel replaces the city id with a denormalized cityName.
type WireHotel struct {
	ID             string             `json:"id"`
	CityName       string             `json:"cityName,omitempty"`
	Name           string             `json:"name"`
	IsPrimary      bool               `json:"isPrimary"`
	Currency       string             `json:"currency,omitempty"`
	RateUsd        flexFloat          `json:"rateUsd,omitempty"`
	RoomCategories []WireRoomCategory `json:"roomCategories,omitempty"`
	Extras         []WireRoomExtra    `json:"extras,omitempty"`
	Notes          string             `json:"notes,omitempty"`
}

// WireRoomCategory mirrors RoomCategory with coercing numerics.
type WireRoomCategory struct {
	ID       string    `json:"id"`
	Category string    `json:"category"`
	Rate     flexFloat `json:"rate"`
	Quantity flexInt   `json:"quantity"`
}

// WireRoomExtra mirrors RoomExtra with coercing numerics.
type WireRoomExtra struct {
	ID       string    `json:"id"`
	Name     string    `json:"name"`
	Rate     flexFloat `json:"rate"`
	Quantity flexInt   `json:"quantity"`
	Nights   flexInt   `json:"nights,omitempty"`
}

// WireActivity carries cityName/dateString/costUsd in place of the
// internal city/date/costUSD fields.
type WireActivity struct {
	ID            string       `json:"id"`
	CityName      string       `json:"cityName,omitempty"`
	DateString    string       `json:"dateString,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Type          ActivityType `json:"type,omitempty"`
	Name          string       `json:"name"`
	Cost          flexFloat    `json:"cost"`
	Currency      string       `json:"currency,omitempty"`
	RateUsd       flexFloat    `json:"rateUsd,omitempty"`
	CostUsd       flexFloat    `json:"costUsd"`
	PerPerson     bool         `json:"perPerson"`
	TravelerCount flexInt      `json:"travelerCount,omitempty"`
	Remarks       string       `json:"remarks,omitempty"`
	InternalNotes string       `json:"internalNotes,omitempty"`
	MeetingPoint  string       `json:"meetingPoint,omitempty"`
	VendorContact string       `json:"vendorContact,omitempty"`
}

// WireTransportation mirrors Transportation with coercing numerics.
type WireTransportation struct {
	ID       string               `json:"id"`
	Type     TransportType        `json:"type"`
	From     string               `json:"from,omitempty"`
	To       string               `json:"to,omitempty"`
	Date     string               `json:"date,omitempty"`
	Cost     flexFloat            `json:"cost"`
	Air      *WireAirDetails      `json:"airDetails,omitempty"`
	Coaching *WireCoachingDetails `json:"coachingDetails,omitempty"`
}

// WireAirDetails mirrors AirDetails with coercing numerics.
type WireAirDetails struct {
	Airline       string    `json:"airline,omitempty"`
	FlightNumber  string    `json:"flightNumber,omitempty"`
	DepartureTime string    `json:"departureTime,omitempty"`
	ArrivalTime   string    `json:"arrivalTime,omitempty"`
	TicketClass   string    `json:"ticketClass,omitempty"`
	GroupRate     flexFloat `json:"groupRate,omitempty"`
	RatePerPerson flexFloat `json:"ratePerPerson,omitempty"`
	TravelerCount flexInt   `json:"travelerCount,omitempty"`
}

// WireCoachingDetails mirrors CoachingDetails with coercing numerics and a
// rateUsd snapshot alongside the local exchange rate.
type WireCoachingDetails struct {
	DriverDays flexInt          `json:"driverDays,omitempty"`
	Currency   string           `json:"currency,omitempty"`
	RateUsd    flexFloat        `json:"rateUsd,omitempty"`
	MarkupRate flexFloat        `json:"markupRate,omitempty"`
	Classes    []WireCoachClass `json:"classes,omitempty"`
	Extras     []WireCoachExtra `json:"extras,omitempty"`
}

// WireCoachClass mirrors CoachClass with coercing numerics.
type WireCoachClass struct {
	ID                         string    `json:"id"`
	Name                       string    `json:"name,omitempty"`
	Capacity                   flexInt   `json:"capacity,omitempty"`
	DailyRate                  flexFloat `json:"dailyRate"`
	EntireRate                 bool      `json:"entireRate,omitempty"`
	Enabled                    bool      `json:"enabled"`
	Luxury                     bool      `json:"luxury,omitempty"`
	AdditionalServicesIncluded bool      `json:"additionalServicesIncluded,omitempty"`
}

// WireCoachExtra mirrors CoachExtra with coercing numerics.
type WireCoachExtra struct {
	ID      string    `json:"id"`
	Name    string    `json:"name,omitempty"`
	Rate    flexFloat `json:"rate"`
	Days    flexInt   `json:"days,omitempty"`
	Enabled bool      `json:"enabled"`
}

// ToWire reshapes a stored quote into the client document shape.
func ToWire(q *Quote) WireQuote {
	w := WireQuote{
		ID:            q.ID,
		Name:          q.Name,
		StartDate:     q.StartDate,
		EndDate:       q.EndDate,
		AgentID:       q.AgentID,
		AgentName:     q.AgentName,
		Agency:        q.Agency,
		GroupType:     q.GroupType,
		TravelerCount: flexInt(q.TravelerCount),
		Budget:        flexFloat(q.Budget),
		Cities:        q.Cities,
		Itinerary:     q.Itinerary,
		Inclusions:    q.Inclusions,
		Exclusions:    q.Exclusions,
		Terms:         q.Terms,
		Status:        q.Status,
	}
	for _, r := range q.GroupRanges {
		w.GroupRanges = append(w.GroupRanges, WireGroupRange{
			Min: flexInt(r.Min), Max: flexInt(r.Max), Selected: r.Selected,
		})
	}
	for _, h := range q.Hotels {
		wh := WireHotel{
			ID:        h.ID,
			CityName:  q.CityName(h.City),
			Name:      h.Name,
			IsPrimary: h.IsPrimary,
			Currency:  h.Currency,
			RateUsd:   flexFloat(h.ExchangeRate),
			Notes:     h.Notes,
		}
		for _, rc := range h.RoomCategories {
			wh.RoomCategories = append(wh.RoomCategories, WireRoomCategory{
				ID: rc.ID, Category: rc.Category, Rate: flexFloat(rc.Rate), Quantity: flexInt(rc.Quantity),
			})
		}
		for _, ex := range h.Extras {
			wh.Extras = append(wh.Extras, WireRoomExtra{
				ID: ex.ID, Name: ex.Name, Rate: flexFloat(ex.Rate), Quantity: flexInt(ex.Quantity), Nights: flexInt(ex.Nights),
			})
		}
		w.Hotels = append(w.Hotels, wh)
	}
	for _, a := range q.Activities {
		w.Activities = append(w.Activities, WireActivity{
			ID:            a.ID,
			CityName:      q.CityName(a.City),
			DateString:    a.Date,
			Type:          a.Type,
			Name:          a.Name,
			Cost:          flexFloat(a.Cost),
			Currency:      a.Currency,
			RateUsd:       flexFloat(a.ExchangeRate),
			CostUsd:       flexFloat(a.CostUSD),
			PerPerson:     a.PerPerson,
			TravelerCount: flexInt(a.TravelerCount),
			Remarks:       a.Remarks,
			InternalNotes: a.InternalNotes,
			MeetingPoint:  a.MeetingPoint,
			VendorContact: a.VendorContact,
		})
	}
	for _, t := range q.Transportation {
		wt := WireTransportation{
			ID: t.ID, Type: t.Type, From: t.From, To: t.To, Date: t.Date, Cost: flexFloat(t.Cost),
		}
		if t.Air != nil {
			wt.Air = &WireAirDetails{
				Airline:       t.Air.Airline,
				FlightNumber:  t.Air.FlightNumber,
				DepartureTime: t.Air.DepartureTime,
				ArrivalTime:   t.Air.ArrivalTime,
				TicketClass:   t.Air.TicketClass,
				GroupRate:     flexFloat(t.Air.GroupRate),
				RatePerPerson: flexFloat(t.Air.RatePerPerson),
				TravelerCount: flexInt(t.Air.TravelerCount),
			}
		}
		if t.Coaching != nil {
			wc := &WireCoachingDetails{
				DriverDays: flexInt(t.Coaching.DriverDays),
				Currency:   t.Coaching.Currency,
				RateUsd:    flexFloat(t.Coaching.ExchangeRate),
				MarkupRate: flexFloat(t.Coaching.MarkupRate),
			}
			for _, class := range t.Coaching.Classes {
				wc.Classes = append(wc.Classes, WireCoachClass{
					ID:                         class.ID,
					Name:                       class.Name,
					Capacity:                   flexInt(class.Capacity),
					DailyRate:                  flexFloat(class.DailyRate),
					EntireRate:                 class.EntireRate,
					Enabled:                    class.Enabled,
					Luxury:                     class.Luxury,
					AdditionalServicesIncluded: class.AdditionalServicesIncluded,
				})
			}
			for _, extra := range t.Coaching.Extras {
				wc.Extras = append(wc.Extras, WireCoachExtra{
					ID: extra.ID, Name: extra.Name, Rate: flexFloat(extra.Rate), Days: flexInt(extra.Days), Enabled: extra.Enabled,
				})
			}
			wt.Coaching = wc
		}
		w.Transportation = append(w.Transportation, wt)
	}
	return w
}

// FromWire rehydrates the internal document: city links recover their ids
// by name against the cities array, activity dates and USD costs move back
// to their internal fields, and rate snapshots come from rateUsd.
func FromWire(w WireQuote) Quote {
	q := Quote{
		ID:            w.ID,
		Name:          w.Name,
		StartDate:     w.StartDate,
		EndDate:       w.EndDate,
		AgentID:       w.AgentID,
		AgentName:     w.AgentName,
		Agency:        w.Agency,
		GroupType:     w.GroupType,
		TravelerCount: int(w.TravelerCount),
		Budget:        float64(w.Budget),
		Cities:        w.Cities,
		Itinerary:     w.Itinerary,
		Inclusions:    w.Inclusions,
		Exclusions:    w.Exclusions,
		Terms:         w.Terms,
		Status:        w.Status,
	}
	if q.GroupType == "" {
		q.GroupType = GroupKnown
	}
	for _, r := range w.GroupRanges {
		q.GroupRanges = append(q.GroupRanges, GroupRange{Min: int(r.Min), Max: int(r.Max), Selected: r.Selected})
	}
	for _, wh := range w.Hotels {
		h := Hotel{
			ID:           wh.ID,
			City:         q.CityIDByName(wh.CityName),
			Name:         wh.Name,
			IsPrimary:    wh.IsPrimary,
			Currency:     wh.Currency,
			ExchangeRate: float64(wh.RateUsd),
			Notes:        wh.Notes,
		}
		for _, rc := range wh.RoomCategories {
			h.RoomCategories = append(h.RoomCategories, RoomCategory{
				ID: rc.ID, Category: rc.Category, Rate: float64(rc.Rate), Quantity: int(rc.Quantity),
			})
		}
		for _, ex := range wh.Extras {
			h.Extras = append(h.Extras, RoomExtra{
				ID: ex.ID, Name: ex.Name, Rate: float64(ex.Rate), Quantity: int(ex.Quantity), Nights: int(ex.Nights),
			})
		}
		q.Hotels = append(q.Hotels, h)
	}
	for _, wa := range w.Activities {
		q.Activities = append(q.Activities, Activity{
			ID:            wa.ID,
			City:          q.CityIDByName(wa.CityName),
			Date:          wa.DateString,
			Type:          wa.Type,
			Name:          wa.Name,
			Cost:          float64(wa.Cost),
			Currency:      wa.Currency,
			ExchangeRate:  float64(wa.RateUsd),
			CostUSD:       float64(wa.CostUsd),
			PerPerson:     wa.PerPerson,
			TravelerCount: int(wa.TravelerCount),
			Remarks:       wa.Remarks,
			InternalNotes: wa.InternalNotes,
			MeetingPoint:  wa.MeetingPoint,
			VendorContact: wa.VendorContact,
		})
	}
	for _, wt := range w.Transportation {
		t := Transportation{
			ID: wt.ID, Type: wt.Type, From: wt.From, To: wt.To, Date: wt.Date, Cost: float64(wt.Cost),
		}
		if wt.Air != nil {
			t.Air = &AirDetails{
				Airline:       wt.Air.Airline,
				FlightNumber:  wt.Air.FlightNumber,
				DepartureTime: wt.Air.DepartureTime,
				ArrivalTime:   wt.Air.ArrivalTime,
				TicketClass:   wt.Air.TicketClass,
				GroupRate:     float64(wt.Air.GroupRate),
				RatePerPerson: float64(wt.Air.RatePerPerson),
				TravelerCount: int(wt.Air.TravelerCount),
			}
		}
		if wt.Coaching != nil {
			c := &CoachingDetails{
				DriverDays:   int(wt.Coaching.DriverDays),
				Currency:     wt.Coaching.Currency,
				ExchangeRate: float64(wt.Coaching.RateUsd),
				MarkupRate:   float64(wt.Coaching.MarkupRate),
			}
			for _, class := range wt.Coaching.Classes {
				c.Classes = append(c.Classes, CoachClass{
					ID:                         class.ID,
					Name:                       class.Name,
					Capacity:                   int(class.Capacity),
					DailyRate:                  float64(class.DailyRate),
					EntireRate:                 class.EntireRate,
					Enabled:                    class.Enabled,
					Luxury:                     class.Luxury,
					AdditionalServicesIncluded: class.AdditionalServicesIncluded,
				})
			}
			for _, extra := range wt.Coaching.Extras {
				c.Extras = append(c.Extras, CoachExtra{
					ID: extra.ID, Name: extra.Name, Rate: float64(extra.Rate), Days: int(extra.Days), Enabled: extra.Enabled,
				})
			}
			t.Coaching = c
		}
		q.Transportation = append(q.Transportation, t)
	}
	return q
}
