package pricing

import "testing"

func TestAirCostGroupRateWins(t *testing.T) {
	air := Air{GroupRate: 5000, RatePerPerson: 400, TravelerCount: 14}
	if got := AirCost(air, 14); got != 5000 {
		t.Fatalf("expected 5000, got %v", got)
	}
}

func TestAirCostPerPerson(t *testing.T) {
	air := Air{RatePerPerson: 400, TravelerCount: 12}
	if got := AirCost(air, 14); got != 4800 {
		t.Fatalf("expected 4800, got %v", got)
	}
}

func TestAirCostFallbackTravelers(t *testing.T) {
	air := Air{RatePerPerson: 400}
	if got := AirCost(air, 14); got != 5600 {
		t.Fatalf("expected 5600, got %v", got)
	}
	if got := AirCost(air, 0); got != 0 {
		t.Fatalf("expected 0 with no travelers, got %v", got)
	}
}

func TestCoachingCostSingleClass(t *testing.T) {
	coaching := Coaching{
		DriverDays: 5,
		Currency:   "EUR",
		FxRate:     1.1,
		Markup:     1.45,
		Classes: []CoachClass{
			{Enabled: true, DailyRate: 500},
		},
	}
	// 500 * 5 * 1.1 * 1.45 = 3987.50
	if got := CoachingCost(coaching); got != 3987.50 {
		t.Fatalf("expected 3987.50, got %v", got)
	}
}

func TestCoachingCostEntireRate(t *testing.T) {
	coaching := Coaching{
		DriverDays: 5,
		Currency:   "USD",
		Markup:     2,
		Classes: []CoachClass{
			{Enabled: true, DailyRate: 1000, EntireRate: true},
		},
	}
	if got := CoachingCost(coaching); got != 2000 {
		t.Fatalf("expected 2000, got %v", got)
	}
}

func TestCoachingCostExtrasCountedOnce(t *testing.T) {
	coaching := Coaching{
		DriverDays: 2,
		Currency:   "USD",
		Markup:     1,
		Classes: []CoachClass{
			{Enabled: true, DailyRate: 100},
			{Enabled: true, DailyRate: 200},
		},
		Extras: []CoachExtra{
			{Enabled: true, Rate: 50, Days: 2},
			{Rate: 999, Days: 9},
		},
	}
	// (100+200)*2 + 50*2 = 700, disabled extra ignored
	if got := CoachingCost(coaching); got != 700 {
		t.Fatalf("expected 700, got %v", got)
	}
}

func TestCoachingCostExtraWithoutDaysBillsNothing(t *testing.T) {
	coaching := Coaching{
		DriverDays: 1,
		Currency:   "USD",
		Markup:     1,
		Classes:    []CoachClass{{Enabled: true, DailyRate: 100}},
		Extras:     []CoachExtra{{Enabled: true, Rate: 50}},
	}
	if got := CoachingCost(coaching); got != 100 {
		t.Fatalf("expected 100, got %v", got)
	}
}

func TestCoachingCostExtrasSkippedWhenAllServicesIncluded(t *testing.T) {
	coaching := Coaching{
		DriverDays: 2,
		Currency:   "USD",
		Markup:     1,
		Classes: []CoachClass{
			{Enabled: true, DailyRate: 100, ServicesIncluded: true},
		},
		Extras: []CoachExtra{{Enabled: true, Rate: 50, Days: 2}},
	}
	if got := CoachingCost(coaching); got != 200 {
		t.Fatalf("expected 200, got %v", got)
	}
}

func TestCoachClassCostHonorsServicesIncluded(t *testing.T) {
	coaching := Coaching{
		DriverDays: 3,
		Currency:   "USD",
		Markup:     1,
		Extras:     []CoachExtra{{Enabled: true, Rate: 10, Days: 3}},
	}
	with := CoachClass{Enabled: true, DailyRate: 100}
	without := CoachClass{Enabled: true, DailyRate: 100, ServicesIncluded: true}
	if got := CoachClassCost(coaching, with); got != 330 {
		t.Fatalf("expected 330, got %v", got)
	}
	if got := CoachClassCost(coaching, without); got != 300 {
		t.Fatalf("expected 300, got %v", got)
	}
}

func TestCoachingDefaults(t *testing.T) {
	coaching := Coaching{
		Currency: "USD",
		Classes:  []CoachClass{{Enabled: true, DailyRate: 100}},
	}
	// default 7 driver days, default 1.45 markup
	if got := CoachingCost(coaching); got != 1015 {
		t.Fatalf("expected 1015, got %v", got)
	}
}

func TestTransportCostDispatch(t *testing.T) {
	flat := Transport{Type: TransportTrain, Cost: 320}
	if got := TransportCost(flat, 14); got != 320 {
		t.Fatalf("expected 320, got %v", got)
	}
	air := Transport{Type: TransportAir, Air: &Air{RatePerPerson: 100}}
	if got := TransportCost(air, 14); got != 1400 {
		t.Fatalf("expected 1400, got %v", got)
	}
	coach := Transport{
		Type: TransportCoaching,
		Cost: 1,
		Coaching: &Coaching{
			DriverDays: 1, Currency: "USD", Markup: 1,
			Classes: []CoachClass{{Enabled: true, DailyRate: 250}},
		},
	}
	if got := TransportCost(coach, 14); got != 250 {
		t.Fatalf("expected computed 250 over stored cost, got %v", got)
	}
}
