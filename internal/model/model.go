package model

import (
	"errors"
	"fmt"
	"strings"
)

// Cabin is a fare tier carried on a flight.
type Cabin string

const (
	CabinEconomy  Cabin = "economy"
	CabinBusiness Cabin = "business"
	CabinFirst    Cabin = "first"
)

// Cabins returns the known cabin classes in presentation order.
func Cabins() []Cabin {
	return []Cabin{CabinEconomy, CabinBusiness, CabinFirst}
}

// ParseCabin normalizes and validates a cabin class name.
func ParseCabin(s string) (Cabin, error) {
	c := Cabin(strings.ToLower(strings.TrimSpace(s)))
	switch c {
	case CabinEconomy, CabinBusiness, CabinFirst:
		return c, nil
	default:
		return "", fmt.Errorf("unknown cabin %q (expected economy, business or first)", s)
	}
}

// ErrCabinUnavailable is returned by Itinerary.TotalPrice when a leg does
// not carry the requested cabin.
var ErrCabinUnavailable = errors.New("cabin not available on all legs")

// Flight is one scheduled flight. Values are immutable after ingestion;
// Arrive > Depart is guaranteed by the schedule loaders.
type Flight struct {
	Origin      string        `json:"origin"`
	Destination string        `json:"destination"`
	Number      string        `json:"flight_number"`
	Depart      Clock         `json:"depart"`
	Arrive      Clock         `json:"arrive"`
	Prices      map[Cabin]int `json:"prices"`
}

// Price reports the fare for cabin, with ok=false when the flight does not
// carry that cabin.
func (f Flight) Price(cabin Cabin) (int, bool) {
	p, ok := f.Prices[cabin]
	return p, ok
}

// Itinerary is an ordered sequence of connected flights. It is produced
// only by a successful search and never mutated afterwards.
type Itinerary struct {
	Flights []Flight `json:"flights"`
}

func (it Itinerary) Origin() string {
	if len(it.Flights) == 0 {
		return ""
	}
	return it.Flights[0].Origin
}

func (it Itinerary) Destination() string {
	if len(it.Flights) == 0 {
		return ""
	}
	return it.Flights[len(it.Flights)-1].Destination
}

func (it Itinerary) DepartTime() Clock {
	if len(it.Flights) == 0 {
		return 0
	}
	return it.Flights[0].Depart
}

func (it Itinerary) ArriveTime() Clock {
	if len(it.Flights) == 0 {
		return 0
	}
	return it.Flights[len(it.Flights)-1].Arrive
}

// Duration is the total journey time in minutes, layovers included.
func (it Itinerary) Duration() int {
	return int(it.ArriveTime() - it.DepartTime())
}

func (it Itinerary) Stops() int {
	if len(it.Flights) == 0 {
		return 0
	}
	return len(it.Flights) - 1
}

// TotalPrice sums the fare for cabin over all legs. It fails with
// ErrCabinUnavailable if any leg does not carry the cabin.
func (it Itinerary) TotalPrice(cabin Cabin) (int, error) {
	total := 0
	for _, f := range it.Flights {
		p, ok := f.Price(cabin)
		if !ok {
			return 0, fmt.Errorf("flight %s: %w", f.Number, ErrCabinUnavailable)
		}
		total += p
	}
	return total, nil
}
