// Package schedule loads flight schedule files into model.Flight records.
// All validation lives here: the search engine trusts that every loaded
// flight has arrive > depart, non-negative fares and canonical upper-case
// airport codes.
package schedule

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/flywise/flywise/internal/model"
)

// Loader reads a schedule file into validated flight records.
type Loader interface {
	Load(path string) ([]model.Flight, error)
}

// ForPath picks a loader by file extension. Anything that is not .csv is
// treated as the whitespace text format.
func ForPath(path string) Loader {
	if strings.EqualFold(filepath.Ext(path), ".csv") {
		return CSVLoader{}
	}
	return TXTLoader{}
}

// Load reads path with the loader matching its extension.
func Load(path string) ([]model.Flight, error) {
	flights, err := ForPath(path).Load(path)
	if err != nil {
		return nil, err
	}
	log.Debug().Str("path", path).Int("flights", len(flights)).Msg("schedule loaded")
	return flights, nil
}

// fareMarkerNone marks a cabin a flight does not carry.
const fareMarkerNone = "-"

// parseFare reads a fare cell. An empty cell or "-" means the cabin is
// not offered on the flight.
func parseFare(s string) (fare int, offered bool, err error) {
	s = strings.TrimSpace(s)
	if s == "" || s == fareMarkerNone {
		return 0, false, nil
	}
	fare, err = strconv.Atoi(s)
	if err != nil {
		return 0, false, fmt.Errorf("invalid fare %q", s)
	}
	if fare < 0 {
		return 0, false, fmt.Errorf("fare must be non-negative, got %d", fare)
	}
	return fare, true, nil
}

type fares struct {
	economy, business, first string
}

func newFlight(origin, dest, number string, depart, arrive model.Clock, f fares) (model.Flight, error) {
	if arrive <= depart {
		return model.Flight{}, fmt.Errorf("arrival %s must be after departure %s", arrive, depart)
	}
	prices := make(map[model.Cabin]int, 3)
	for cabin, cell := range map[model.Cabin]string{
		model.CabinEconomy:  f.economy,
		model.CabinBusiness: f.business,
		model.CabinFirst:    f.first,
	} {
		fare, offered, err := parseFare(cell)
		if err != nil {
			return model.Flight{}, fmt.Errorf("%s fare: %w", cabin, err)
		}
		if offered {
			prices[cabin] = fare
		}
	}
	return model.Flight{
		Origin:      strings.ToUpper(strings.TrimSpace(origin)),
		Destination: strings.ToUpper(strings.TrimSpace(dest)),
		Number:      strings.TrimSpace(number),
		Depart:      depart,
		Arrive:      arrive,
		Prices:      prices,
	}, nil
}
