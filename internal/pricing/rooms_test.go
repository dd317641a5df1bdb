package pricing

import "testing"

func TestOccupancy(t *testing.T) {
	cases := []struct {
		name string
		want int
	}{
		{"Single", 1},
		{"double room", 2},
		{"Triple", 3},
		{"Quad", 4},
		{"Family Room (5 people)", 5},
		{"Double Room (3 people)", 2},
		{"Executive King", 2},
		{"Garden View Single", 1},
		{"Penthouse", 2},
		{"", 0},
	}
	for _, tc := range cases {
		if got := Occupancy(tc.name); got != tc.want {
			t.Fatalf("Occupancy(%q) = %d, want %d", tc.name, got, tc.want)
		}
	}
}

func TestPerPersonRate(t *testing.T) {
	if got := PerPersonRate("Double", 150); got != 75 {
		t.Fatalf("expected 75, got %v", got)
	}
	if got := PerPersonRate("Triple", 100); got != 33.33 {
		t.Fatalf("expected 33.33, got %v", got)
	}
	if got := PerPersonRate("", 150); got != 150 {
		t.Fatalf("expected full rate for unknown occupancy, got %v", got)
	}
}

func TestCapacity(t *testing.T) {
	rooms := []Room{
		{Name: "Double", Quantity: 5},
		{Name: "Single", Quantity: 2},
		{Name: "Triple", Quantity: 0},
	}
	if got := Capacity(rooms); got != 12 {
		t.Fatalf("expected 12, got %d", got)
	}
}
