package schedule

import (
	"fmt"
	"os"

	"github.com/gocarina/gocsv"

	"github.com/flywise/flywise/internal/model"
)

// CSVLoader reads the tabular schedule format. The header must carry the
// columns below; surplus columns are ignored. An empty or "-" fare cell
// means the cabin is not offered.
type CSVLoader struct{}

type csvRow struct {
	Origin      string      `csv:"origin"`
	Destination string      `csv:"dest"`
	Number      string      `csv:"flight_number"`
	Depart      model.Clock `csv:"depart"`
	Arrive      model.Clock `csv:"arrive"`
	Economy     string      `csv:"economy"`
	Business    string      `csv:"business"`
	First       string      `csv:"first"`
}

func (CSVLoader) Load(path string) ([]model.Flight, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	// Missing required columns must fail loudly rather than load zeroed
	// records.
	gocsv.FailIfUnmatchedStructTags = true

	var rows []csvRow
	if err := gocsv.UnmarshalFile(f, &rows); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	flights := make([]model.Flight, 0, len(rows))
	for i, row := range rows {
		flight, err := newFlight(row.Origin, row.Destination, row.Number, row.Depart, row.Arrive,
			fares{economy: row.Economy, business: row.Business, first: row.First})
		if err != nil {
			// +2: header line plus 1-based data rows.
			return nil, fmt.Errorf("%s: row %d: %w", path, i+2, err)
		}
		flights = append(flights, flight)
	}
	return flights, nil
}
