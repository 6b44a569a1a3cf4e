// Package compare runs the criterion/cabin combinations for a route and
// collects them into presentation-ready rows.
package compare

import (
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/sourcegraph/conc"

	"github.com/flywise/flywise/internal/model"
	"github.com/flywise/flywise/internal/search"
)

// NoItineraryNote annotates rows whose search came back empty.
const NoItineraryNote = "(no valid itinerary)"

// Row is one line of the comparison: a criterion, the cabin it was priced
// in (empty for earliest arrival), and the itinerary if one exists. A nil
// Itinerary always comes with an explanatory Note.
type Row struct {
	Mode      string           `json:"mode"`
	Cabin     model.Cabin      `json:"cabin,omitempty"`
	Itinerary *model.Itinerary `json:"itinerary,omitempty"`
	Note      string           `json:"note,omitempty"`
}

// Run produces the earliest-arrival row followed by a cheapest-fare row
// per cabin. The graph is read-only and every search owns its frontier
// and visited map, so the searches run concurrently, each filling its own
// slot.
func Run(g search.Graph, q search.Query, cabins []model.Cabin) []Row {
	start := time.Now()
	rows := make([]Row, 1+len(cabins))

	var wg conc.WaitGroup
	wg.Go(func() {
		it, ok := search.EarliestArrival(g, q)
		rows[0] = newRow("Earliest arrival", "", it, ok)
	})
	for i, cabin := range cabins {
		wg.Go(func() {
			it, ok := search.CheapestFare(g, q, cabin)
			rows[i+1] = newRow(fmt.Sprintf("Cheapest (%s)", titleCase(string(cabin))), cabin, it, ok)
		})
	}
	wg.Wait()

	log.Debug().
		Str("origin", q.Origin).
		Str("destination", q.Destination).
		Int("rows", len(rows)).
		Dur("elapsed", time.Since(start)).
		Msg("comparison complete")
	return rows
}

func newRow(mode string, cabin model.Cabin, it model.Itinerary, found bool) Row {
	row := Row{Mode: mode, Cabin: cabin}
	if !found {
		row.Note = NoItineraryNote
		return row
	}
	row.Itinerary = &it
	return row
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
