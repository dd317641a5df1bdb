package quote

import (
	"encoding/json"
	"testing"
)

func TestWireRoundTrip(t *testing.T) {
	original := SampleQuote()
	wire := ToWire(&original)

	if wire.Activities[0].CityName != "Dublin" {
		t.Fatalf("expected denormalized cityName Dublin, got %q", wire.Activities[0].CityName)
	}
	if wire.Activities[0].DateString != original.Activities[0].Date {
		t.Fatalf("expected dateString %q, got %q", original.Activities[0].Date, wire.Activities[0].DateString)
	}
	if float64(wire.Activities[0].CostUsd) != original.Activities[0].CostUSD {
		t.Fatalf("expected costUsd %v, got %v", original.Activities[0].CostUSD, wire.Activities[0].CostUsd)
	}

	restored := FromWire(wire)
	for i, a := range restored.Activities {
		want := original.Activities[i]
		if a.City != want.City {
			t.Fatalf("activity %d: city %q, want %q", i, a.City, want.City)
		}
		if a.Date != want.Date {
			t.Fatalf("activity %d: date %q, want %q", i, a.Date, want.Date)
		}
		if a.CostUSD != want.CostUSD {
			t.Fatalf("activity %d: costUSD %v, want %v", i, a.CostUSD, want.CostUSD)
		}
	}
	for i, h := range restored.Hotels {
		if h.City != original.Hotels[i].City {
			t.Fatalf("hotel %d: city %q, want %q", i, h.City, original.Hotels[i].City)
		}
		if h.ExchangeRate != original.Hotels[i].ExchangeRate {
			t.Fatalf("hotel %d: rate %v, want %v", i, h.ExchangeRate, original.Hotels[i].ExchangeRate)
		}
	}
}

func TestWireRoundTripThroughJSON(t *testing.T) {
	original := SampleQuote()
	raw, err := json.Marshal(ToWire(&original))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var wire WireQuote
	if err := json.Unmarshal(raw, &wire); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	restored := FromWire(wire)
	if Summarize(&restored).Total != Summarize(&original).Total {
		t.Fatalf("cost total changed across the wire")
	}
}

func TestFlexNumericsCoerceMalformedInput(t *testing.T) {
	payload := `{
		"name": "Test",
		"budget": "not-a-number",
		"travelerCount": "12",
		"cities": [],
		"hotels": [{"id": "h1", "name": "H", "isPrimary": true,
			"roomCategories": [{"id": "r1", "category": "Double", "rate": "abc", "quantity": null}]}],
		"activities": [{"id": "a1", "name": "A", "cost": "15.5", "costUsd": {}}],
		"transportation": []
	}`
	var wire WireQuote
	if err := json.Unmarshal([]byte(payload), &wire); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if wire.Budget != 0 {
		t.Fatalf("expected malformed budget to coerce to 0, got %v", wire.Budget)
	}
	if wire.TravelerCount != 12 {
		t.Fatalf("expected numeric string traveler count 12, got %v", wire.TravelerCount)
	}
	if wire.Hotels[0].RoomCategories[0].Rate != 0 || wire.Hotels[0].RoomCategories[0].Quantity != 0 {
		t.Fatalf("expected malformed room numerics to coerce to 0")
	}
	if wire.Activities[0].Cost != 15.5 {
		t.Fatalf("expected cost 15.5, got %v", wire.Activities[0].Cost)
	}
	if wire.Activities[0].CostUsd != 0 {
		t.Fatalf("expected malformed costUsd to coerce to 0, got %v", wire.Activities[0].CostUsd)
	}
}

func TestFromWireDefaultsGroupType(t *testing.T) {
	q := FromWire(WireQuote{Name: "Test"})
	if q.GroupType != GroupKnown {
		t.Fatalf("expected default group type known, got %q", q.GroupType)
	}
}
