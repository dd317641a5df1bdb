package pricing

// TransportType enumerates the transportation leg kinds.
type TransportType string

const (
	TransportCoaching TransportType = "coaching"
	TransportAir      TransportType = "air"
	TransportTrain    TransportType = "train"
	TransportFerry    TransportType = "ferry"
	TransportOther    TransportType = "other"
)

// Coaching defaults applied when the quote leaves them unset.
const (
	defaultDriverDays = 7
	defaultMarkup     = 1.45
)

// Air carries air-leg pricing. A flat group rate wins over a per-person
// rate; the per-person rate multiplies the leg's own traveler count or,
// when unset, the quote's.
type Air struct {
	GroupRate     float64
	RatePerPerson float64
	TravelerCount int
}

// AirCost computes the USD cost of an air leg.
func AirCost(a Air, fallbackTravelers int) float64 {
	if a.GroupRate > 0 {
		return RoundCents(a.GroupRate)
	}
	travelers := a.TravelerCount
	if travelers <= 0 {
		travelers = fallbackTravelers
	}
	if travelers <= 0 {
		return 0
	}
	return RoundCents(a.RatePerPerson * float64(travelers))
}

// CoachClass is one coach capacity tier offered on a coaching leg. EntireRate
// means DailyRate already covers the whole hire rather than one driver day.
// ServicesIncluded means the class rate already folds in the extras.
type CoachClass struct {
	Enabled          bool
	DailyRate        float64
	EntireRate       bool
	Luxury           bool
	ServicesIncluded bool
}

// CoachExtra is an ancillary coaching charge billed per day.
type CoachExtra struct {
	Enabled bool
	Rate    float64
	Days    int
}

// Coaching is the coach-hire pricing detail of a transportation leg. Rates
// are in the leg's local currency; FxRate converts to USD and Markup is the
// sell-side multiplier applied on top of net.
type Coaching struct {
	DriverDays int
	Currency   string
	FxRate     float64
	Markup     float64
	Classes    []CoachClass
	Extras     []CoachExtra
}

func (c Coaching) driverDays() int {
	if c.DriverDays > 0 {
		return c.DriverDays
	}
	return defaultDriverDays
}

func (c Coaching) fx() float64 {
	if c.Currency == USD || c.Currency == "" || c.FxRate <= 0 {
		return 1
	}
	return c.FxRate
}

func (c Coaching) markup() float64 {
	if c.Markup > 0 {
		return c.Markup
	}
	return defaultMarkup
}

// classSell returns the USD sell price of a single class without extras.
func (c Coaching) classSell(class CoachClass) float64 {
	net := class.DailyRate
	if !class.EntireRate {
		net *= float64(c.driverDays())
	}
	return net * c.fx() * c.markup()
}

// extrasSell returns the USD sell price of all enabled extras. An extra
// with no days billed contributes nothing.
func (c Coaching) extrasSell() float64 {
	total := 0.0
	for _, extra := range c.Extras {
		if !extra.Enabled || extra.Days <= 0 {
			continue
		}
		total += extra.Rate * float64(extra.Days) * c.fx() * c.markup()
	}
	return total
}

// CoachClassCost is the USD sell price of one class as quoted on its own:
// the class rate plus extras, unless the class already includes services.
func CoachClassCost(c Coaching, class CoachClass) float64 {
	total := c.classSell(class)
	if !class.ServicesIncluded {
		total += c.extrasSell()
	}
	return RoundCents(total)
}

// CoachingCost computes the USD total of a coaching leg: every enabled
// class's sell price, plus the extras counted once when at least one
// enabled class does not already include them.
func CoachingCost(c Coaching) float64 {
	total := 0.0
	extrasApply := false
	for _, class := range c.Classes {
		if !class.Enabled {
			continue
		}
		total += c.classSell(class)
		if !class.ServicesIncluded {
			extrasApply = true
		}
	}
	if extrasApply {
		total += c.extrasSell()
	}
	return RoundCents(total)
}

// Transport is the pricing view of a transportation leg. Cost is the stored
// flat amount used for train, ferry and other legs; air and coaching legs
// derive their cost from the detail sub-objects.
type Transport struct {
	Type     TransportType
	Cost     float64
	Air      *Air
	Coaching *Coaching
}

// TransportCost computes the USD cost of a single leg.
func TransportCost(t Transport, fallbackTravelers int) float64 {
	switch t.Type {
	case TransportAir:
		if t.Air != nil {
			return AirCost(*t.Air, fallbackTravelers)
		}
	case TransportCoaching:
		if t.Coaching != nil {
			return CoachingCost(*t.Coaching)
		}
	}
	return RoundCents(t.Cost)
}
