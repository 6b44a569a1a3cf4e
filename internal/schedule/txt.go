package schedule

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/flywise/flywise/internal/model"
)

// TXTLoader reads the whitespace-separated schedule format: one flight
// per line with 8 fields (origin dest flight_number depart arrive
// economy business first). Blank lines and lines starting with # are
// skipped. A fare of "-" means the cabin is not offered.
type TXTLoader struct{}

func (TXTLoader) Load(path string) ([]model.Flight, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var flights []model.Flight
	sc := bufio.NewScanner(f)
	lineno := 0
	for sc.Scan() {
		lineno++
		flight, ok, err := parseTXTLine(sc.Text())
		if err != nil {
			return nil, fmt.Errorf("%s:%d: %w", path, lineno, err)
		}
		if ok {
			flights = append(flights, flight)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return flights, nil
}

func parseTXTLine(line string) (model.Flight, bool, error) {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return model.Flight{}, false, nil
	}
	parts := strings.Fields(line)
	if len(parts) != 8 {
		return model.Flight{}, false, fmt.Errorf("expected 8 fields, got %d", len(parts))
	}
	depart, err := model.ParseClock(parts[3])
	if err != nil {
		return model.Flight{}, false, fmt.Errorf("departure: %w", err)
	}
	arrive, err := model.ParseClock(parts[4])
	if err != nil {
		return model.Flight{}, false, fmt.Errorf("arrival: %w", err)
	}
	flight, err := newFlight(parts[0], parts[1], parts[2], depart, arrive,
		fares{economy: parts[5], business: parts[6], first: parts[7]})
	if err != nil {
		return model.Flight{}, false, err
	}
	return flight, true, nil
}
