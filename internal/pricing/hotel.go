package pricing

// Room is one room category line on a hotel: a nightly rate in the hotel's
// local currency and how many rooms of that category are held.
type Room struct {
	Name     string
	Rate     float64
	Quantity int
}

// Extra is an ancillary hotel charge (porterage, welcome drinks, parking).
// Nights below 1 count as a single night.
type Extra struct {
	Name     string
	Rate     float64
	Quantity int
	Nights   int
}

// Total returns the extra's local-currency amount.
func (e Extra) Total() float64 {
	nights := e.Nights
	if nights < 1 {
		nights = 1
	}
	if e.Quantity <= 0 {
		return 0
	}
	return e.Rate * float64(e.Quantity) * float64(nights)
}

// Hotel carries the pricing-relevant slice of an accommodation option. Only
// hotels marked Primary contribute to the accommodation total; the rest are
// alternatives kept for reference.
type Hotel struct {
	Primary  bool
	Currency string
	FxRate   float64
	Rooms    []Room
	Extras   []Extra
}

// HotelCost computes the USD cost of a hotel: room rates times quantities
// plus extras, converted with the hotel's own rate snapshot.
func HotelCost(h Hotel) float64 {
	local := 0.0
	for _, room := range h.Rooms {
		if room.Quantity <= 0 {
			continue
		}
		local += room.Rate * float64(room.Quantity)
	}
	for _, extra := range h.Extras {
		local += extra.Total()
	}
	return RoundCents(NormalizeUSD(local, h.Currency, h.FxRate))
}
