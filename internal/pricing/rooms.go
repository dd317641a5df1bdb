package pricing

import (
	"regexp"
	"strconv"
	"strings"
)

// defaultOccupancy is assumed when a room name matches nothing below.
const defaultOccupancy = 2

// roomOccupancies maps well-known room type names to how many travelers they
// sleep. Order matters: substring matching takes the first hit.
var roomOccupancies = []struct {
	name    string
	persons int
}{
	{"single", 1},
	{"double", 2},
	{"twin", 2},
	{"triple", 3},
	{"quad", 4},
	{"king", 2},
	{"queen", 2},
	{"standard", 2},
	{"deluxe", 2},
	{"suite", 2},
}

var occupancyPattern = regexp.MustCompile(`\((\d+)\s*(?:person|people)\)`)

// Occupancy infers how many travelers a room category sleeps from its name.
// Exact matches win, then substring matches, then an explicit "(N people)"
// suffix. Unknown names fall back to double occupancy.
func Occupancy(roomType string) int {
	if roomType == "" {
		return 0
	}
	name := strings.ToLower(roomType)
	for _, entry := range roomOccupancies {
		if name == entry.name || name == entry.name+" room" {
			return entry.persons
		}
	}
	for _, entry := range roomOccupancies {
		if strings.Contains(name, entry.name) {
			return entry.persons
		}
	}
	if m := occupancyPattern.FindStringSubmatch(name); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil {
			return n
		}
	}
	return defaultOccupancy
}

// PerPersonRate divides a nightly room rate by the occupancy implied by the
// room name. Rooms with unknown occupancy report the full rate.
func PerPersonRate(roomType string, rate float64) float64 {
	persons := Occupancy(roomType)
	if persons <= 0 {
		return rate
	}
	return RoundCents(rate / float64(persons))
}

// Capacity sums the traveler capacity of the given room categories.
func Capacity(rooms []Room) int {
	total := 0
	for _, room := range rooms {
		if room.Quantity <= 0 {
			continue
		}
		total += Occupancy(room.Name) * room.Quantity
	}
	return total
}
