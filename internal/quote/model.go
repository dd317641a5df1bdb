package quote

// GroupType distinguishes quotes with a confirmed traveler count from
// speculative quotes priced against candidate group-size ranges.
type GroupType string

const (
	GroupKnown       GroupType = "known"
	GroupSpeculative GroupType = "speculative"
)

// Quote statuses.
const (
	StatusDraft     = "draft"
	StatusFinalized = "finalized"
)

// Dates inside a quote are local calendar dates serialized as YYYY-MM-DD.
const DateLayout = "2006-01-02"

// Quote is the aggregate root of the builder: trip metadata plus every
// child collection the phases edit. It is persisted by value on save.
type Quote struct {
	ID             string           `json:"id,omitempty"`
	Name           string           `json:"name"`
	StartDate      string           `json:"startDate"`
	EndDate        string           `json:"endDate"`
	AgentID        string           `json:"agentId,omitempty"`
	AgentName      string           `json:"agentName,omitempty"`
	Agency         string           `json:"agency,omitempty"`
	GroupType      GroupType        `json:"groupType"`
	TravelerCount  int              `json:"travelerCount"`
	GroupRanges    []GroupRange     `json:"groupRanges,omitempty"`
	Budget         float64          `json:"budget"`
	Cities         []City           `json:"cities"`
	Hotels         []Hotel          `json:"hotels"`
	Activities     []Activity       `json:"activities"`
	Transportation []Transportation `json:"transportation"`
	Itinerary      []ItineraryDay   `json:"itinerary"`
	Inclusions     []string         `json:"inclusions,omitempty"`
	Exclusions     []string         `json:"exclusions,omitempty"`
	Terms          string           `json:"terms,omitempty"`
	Status         string           `json:"status,omitempty"`
}

// GroupRange is one selectable traveler-count band on a speculative quote.
type GroupRange struct {
	Min      int  `json:"min"`
	Max      int  `json:"max"`
	Selected bool `json:"selected"`
}

// City is a destination on the trip. Hotels and activities reference it by
// id; transportation legs relate to it only by date.
type City struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Country  string `json:"country,omitempty"`
	CheckIn  string `json:"checkIn,omitempty"`
	CheckOut string `json:"checkOut,omitempty"`
}

// Hotel is an accommodation option within a city. Exactly one hotel per
// city is expected to be primary; the others are priced alternatives.
type Hotel struct {
	ID             string         `json:"id"`
	City           string         `json:"city,omitempty"`
	Name           string         `json:"name"`
	IsPrimary      bool           `json:"isPrimary"`
	Currency       string         `json:"currency,omitempty"`
	ExchangeRate   float64        `json:"exchangeRate,omitempty"`
	RoomCategories []RoomCategory `json:"roomCategories,omitempty"`
	Extras         []RoomExtra    `json:"extras,omitempty"`
	Notes          string         `json:"notes,omitempty"`
}

// RoomCategory is one room line held at a hotel.
type RoomCategory struct {
	ID       string  `json:"id"`
	Category string  `json:"category"`
	Rate     float64 `json:"rate"`
	Quantity int     `json:"quantity"`
}

// RoomExtra is an ancillary hotel charge. Nights defaults to 1 when unset.
type RoomExtra struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Rate     float64 `json:"rate"`
	Quantity int     `json:"quantity"`
	Nights   int     `json:"nights,omitempty"`
}

// ActivityType enumerates activity kinds.
type ActivityType string

const (
	ActivityTour       ActivityType = "tour"
	ActivityRestaurant ActivityType = "restaurant"
	ActivityGolf       ActivityType = "golf"
	ActivityOther      ActivityType = "other"
)

// Activity is a priced excursion, meal or event within a city.
type Activity struct {
	ID            string       `json:"id"`
	City          string       `json:"city,omitempty"`
	Date          string       `json:"date,omitempty"`
	Type          ActivityType `json:"type,omitempty"`
	Name          string       `json:"name"`
	Cost          float64      `json:"cost"`
	Currency      string       `json:"currency,omitempty"`
	ExchangeRate  float64      `json:"exchangeRate,omitempty"`
	CostUSD       float64      `json:"costUSD"`
	PerPerson     bool         `json:"perPerson"`
	TravelerCount int          `json:"travelerCount,omitempty"`
	Remarks       string       `json:"remarks,omitempty"`
	InternalNotes string       `json:"internalNotes,omitempty"`
	MeetingPoint  string       `json:"meetingPoint,omitempty"`
	VendorContact string       `json:"vendorContact,omitempty"`
}

// TransportType enumerates transportation leg kinds.
type TransportType string

const (
	TransportCoaching TransportType = "coaching"
	TransportAir      TransportType = "air"
	TransportTrain    TransportType = "train"
	TransportFerry    TransportType = "ferry"
	TransportOther    TransportType = "other"
)

// Transportation is one leg of the trip. Cost is USD; air and coaching
// legs carry detail sub-objects their cost derives from.
type Transportation struct {
	ID       string           `json:"id"`
	Type     TransportType    `json:"type"`
	From     string           `json:"from,omitempty"`
	To       string           `json:"to,omitempty"`
	Date     string           `json:"date,omitempty"`
	Cost     float64          `json:"cost"`
	Air      *AirDetails      `json:"airDetails,omitempty"`
	Coaching *CoachingDetails `json:"coachingDetails,omitempty"`
}

// AirDetails carries flight specifics. A flat group rate takes precedence
// over the per-person rate; the traveler count falls back to the quote's.
type AirDetails struct {
	Airline       string  `json:"airline,omitempty"`
	FlightNumber  string  `json:"flightNumber,omitempty"`
	DepartureTime string  `json:"departureTime,omitempty"`
	ArrivalTime   string  `json:"arrivalTime,omitempty"`
	TicketClass   string  `json:"ticketClass,omitempty"`
	GroupRate     float64 `json:"groupRate,omitempty"`
	RatePerPerson float64 `json:"ratePerPerson,omitempty"`
	TravelerCount int     `json:"travelerCount,omitempty"`
}

// CoachingDetails carries coach-hire specifics: local-currency class rates
// and extras, converted and marked up into the leg's USD cost.
type CoachingDetails struct {
	DriverDays   int          `json:"driverDays,omitempty"`
	Currency     string       `json:"currency,omitempty"`
	ExchangeRate float64      `json:"exchangeRate,omitempty"`
	MarkupRate   float64      `json:"markupRate,omitempty"`
	Classes      []CoachClass `json:"classes,omitempty"`
	Extras       []CoachExtra `json:"extras,omitempty"`
}

// CoachClass is one coach capacity tier.
type CoachClass struct {
	ID                         string  `json:"id"`
	Name                       string  `json:"name,omitempty"`
	Capacity                   int     `json:"capacity,omitempty"`
	DailyRate                  float64 `json:"dailyRate"`
	EntireRate                 bool    `json:"entireRate,omitempty"`
	Enabled                    bool    `json:"enabled"`
	Luxury                     bool    `json:"luxury,omitempty"`
	AdditionalServicesIncluded bool    `json:"additionalServicesIncluded,omitempty"`
}

// CoachExtra is an ancillary coaching charge billed per day.
type CoachExtra struct {
	ID      string  `json:"id"`
	Name    string  `json:"name,omitempty"`
	Rate    float64 `json:"rate"`
	Days    int     `json:"days,omitempty"`
	Enabled bool    `json:"enabled"`
}

// ItineraryDay is one calendar day of the trip with its description and
// the activities scheduled on it.
type ItineraryDay struct {
	ID          string   `json:"id"`
	Date        string   `json:"date"`
	Description string   `json:"description,omitempty"`
	ActivityIDs []string `json:"activityIds,omitempty"`
}

// CityName resolves a city id to its display name, empty when unknown.
func (q *Quote) CityName(cityID string) string {
	for _, city := range q.Cities {
		if city.ID == cityID {
			return city.Name
		}
	}
	return ""
}

// CityIDByName resolves a display name back to a city id.
func (q *Quote) CityIDByName(name string) string {
	for _, city := range q.Cities {
		if city.Name == name {
			return city.ID
		}
	}
	return ""
}
