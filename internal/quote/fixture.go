package quote

// SampleQuote returns the Ireland & Scotland demo quote used by the seeder
// and tests: a known group of 14 with four cities, priced hotels in three
// currencies, per-person and flat activities, and a mixed transport plan.
func SampleQuote() Quote {
	return Quote{
		Name:          "Ireland & Scotland Group Tour",
		StartDate:     "2026-05-10",
		EndDate:       "2026-05-21",
		AgentName:     "Mary O'Connor",
		Agency:        "Emerald Isle Travel",
		GroupType:     GroupKnown,
		TravelerCount: 14,
		GroupRanges: []GroupRange{
			{Min: 10, Max: 14},
			{Min: 15, Max: 19},
			{Min: 20, Max: 24},
		},
		Budget: 75000,
		Cities: []City{
			{ID: "city-dublin", Name: "Dublin", Country: "Ireland", CheckIn: "2026-05-10", CheckOut: "2026-05-13"},
			{ID: "city-killarney", Name: "Killarney", Country: "Ireland", CheckIn: "2026-05-13", CheckOut: "2026-05-16"},
			{ID: "city-edinburgh", Name: "Edinburgh", Country: "Scotland", CheckIn: "2026-05-16", CheckOut: "2026-05-19"},
			{ID: "city-glasgow", Name: "Glasgow", Country: "Scotland", CheckIn: "2026-05-19", CheckOut: "2026-05-21"},
		},
		Hotels: []Hotel{
			{
				ID: "hotel-shelbourne", City: "city-dublin", Name: "The Shelbourne",
				IsPrimary: true, Currency: "EUR", ExchangeRate: 1.09,
				RoomCategories: []RoomCategory{
					{ID: "rc-1", Category: "Double", Rate: 310, Quantity: 6},
					{ID: "rc-2", Category: "Single", Rate: 240, Quantity: 2},
				},
				Extras: []RoomExtra{
					{ID: "re-1", Name: "Porterage", Rate: 8, Quantity: 14, Nights: 1},
				},
			},
			{
				ID: "hotel-killarney-park", City: "city-killarney", Name: "Killarney Park Hotel",
				IsPrimary: true, Currency: "EUR", ExchangeRate: 1.09,
				RoomCategories: []RoomCategory{
					{ID: "rc-3", Category: "Double", Rate: 280, Quantity: 6},
					{ID: "rc-4", Category: "Single", Rate: 215, Quantity: 2},
				},
			},
			{
				ID: "hotel-balmoral", City: "city-edinburgh", Name: "The Balmoral",
				IsPrimary: true, Currency: "GBP", ExchangeRate: 1.27,
				RoomCategories: []RoomCategory{
					{ID: "rc-5", Category: "Double", Rate: 345, Quantity: 6},
					{ID: "rc-6", Category: "Single", Rate: 260, Quantity: 2},
				},
				Extras: []RoomExtra{
					{ID: "re-2", Name: "Welcome drinks", Rate: 12, Quantity: 14, Nights: 1},
				},
			},
			{
				ID: "hotel-kimpton", City: "city-glasgow", Name: "Kimpton Blythswood Square",
				IsPrimary: true, Currency: "GBP", ExchangeRate: 1.27,
				RoomCategories: []RoomCategory{
					{ID: "rc-7", Category: "Double", Rate: 290, Quantity: 6},
					{ID: "rc-8", Category: "Single", Rate: 220, Quantity: 2},
				},
			},
		},
		Activities: []Activity{
			{
				ID: "act-guinness", City: "city-dublin", Date: "2026-05-11", Type: ActivityTour,
				Name: "Guinness Storehouse tour", Cost: 32, Currency: "EUR", ExchangeRate: 1.09,
				CostUSD: 34.88, PerPerson: true,
			},
			{
				ID: "act-trinity", City: "city-dublin", Date: "2026-05-12", Type: ActivityTour,
				Name: "Trinity College & Book of Kells", Cost: 25, Currency: "EUR", ExchangeRate: 1.09,
				CostUSD: 27.25, PerPerson: true,
			},
			{
				ID: "act-ring-kerry", City: "city-killarney", Date: "2026-05-14", Type: ActivityTour,
				Name: "Ring of Kerry private coach day", Cost: 950, Currency: "EUR", ExchangeRate: 1.09,
				CostUSD: 1035.50, PerPerson: false,
			},
			{
				ID: "act-killarney-golf", City: "city-killarney", Date: "2026-05-15", Type: ActivityGolf,
				Name: "Killarney Golf & Fishing Club round", Cost: 120, Currency: "EUR", ExchangeRate: 1.09,
				CostUSD: 130.80, PerPerson: true, TravelerCount: 8,
				Remarks: "Golfers only",
			},
			{
				ID: "act-edinburgh-castle", City: "city-edinburgh", Date: "2026-05-17", Type: ActivityTour,
				Name: "Edinburgh Castle guided visit", Cost: 22, Currency: "GBP", ExchangeRate: 1.27,
				CostUSD: 27.94, PerPerson: true,
			},
			{
				ID: "act-farewell-dinner", City: "city-glasgow", Date: "2026-05-20", Type: ActivityRestaurant,
				Name: "Farewell dinner at The Gannet", Cost: 1100, Currency: "GBP", ExchangeRate: 1.27,
				CostUSD: 1397, PerPerson: false,
			},
		},
		Transportation: []Transportation{
			{
				ID: "trans-air-outbound", Type: TransportAir, From: "New York JFK", To: "Dublin",
				Date: "2026-05-10",
				Air: &AirDetails{
					Airline: "Aer Lingus", FlightNumber: "EI 104",
					DepartureTime: "19:30", ArrivalTime: "07:10", TicketClass: "Economy",
					RatePerPerson: 780,
				},
			},
			{
				ID: "trans-coach-ireland", Type: TransportCoaching, From: "Dublin", To: "Killarney",
				Date: "2026-05-13",
				Coaching: &CoachingDetails{
					DriverDays: 6, Currency: "EUR", ExchangeRate: 1.09, MarkupRate: 1.45,
					Classes: []CoachClass{
						{ID: "cc-1", Name: "49-seat touring coach", Capacity: 49, DailyRate: 620, Enabled: true},
						{ID: "cc-2", Name: "Luxury mini coach", Capacity: 24, DailyRate: 540, Luxury: true},
					},
					Extras: []CoachExtra{
						{ID: "ce-1", Name: "Driver accommodation", Rate: 95, Days: 6, Enabled: true},
					},
				},
			},
			{
				ID: "trans-ferry", Type: TransportFerry, From: "Belfast", To: "Cairnryan",
				Date: "2026-05-16", Cost: 1240,
			},
			{
				ID: "trans-coach-scotland", Type: TransportCoaching, From: "Cairnryan", To: "Edinburgh",
				Date: "2026-05-16",
				Coaching: &CoachingDetails{
					DriverDays: 5, Currency: "GBP", ExchangeRate: 1.27, MarkupRate: 1.45,
					Classes: []CoachClass{
						{ID: "cc-3", Name: "49-seat touring coach", Capacity: 49, DailyRate: 580, Enabled: true, AdditionalServicesIncluded: true},
					},
				},
			},
			{
				ID: "trans-train", Type: TransportTrain, From: "Edinburgh", To: "Glasgow",
				Date: "2026-05-19", Cost: 420,
			},
			{
				ID: "trans-air-return", Type: TransportAir, From: "Glasgow", To: "New York JFK",
				Date: "2026-05-21",
				Air: &AirDetails{
					Airline: "Delta", FlightNumber: "DL 209",
					DepartureTime: "11:05", ArrivalTime: "13:45", TicketClass: "Economy",
					GroupRate: 11200,
				},
			},
		},
		Inclusions: []string{
			"Accommodation with full Irish/Scottish breakfast",
			"Private coach transportation as itinerary",
			"Entrance fees for listed attractions",
		},
		Exclusions: []string{
			"Travel insurance",
			"Meals not listed",
			"Gratuities",
		},
		Terms:  "50% deposit due at confirmation, balance 60 days before departure.",
		Status: StatusDraft,
	}
}
