package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/flywise/flywise/internal/compare"
	"github.com/flywise/flywise/internal/model"
	"github.com/flywise/flywise/internal/search"
)

const comparisonRowFormat = "%-20s %-10s %-6s %-6s %-10s %-5s %-12s %s"

// renderComparison lays the rows out as a fixed-width table, one line per
// (criterion, cabin) request. Cells without an itinerary read N/A with
// the row note explaining why.
func renderComparison(q search.Query, rows []compare.Row) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Route: %s -> %s  Earliest: %s\n\n", q.Origin, q.Destination, q.DepartAfter)

	header := fmt.Sprintf(comparisonRowFormat, "Mode", "Cabin", "Dep", "Arr", "Duration", "Stops", "Total Price", "Note")
	b.WriteString(header + "\n")
	b.WriteString(strings.Repeat("-", len(header)) + "\n")

	for _, row := range rows {
		dep, arr, dur, stops, price := "N/A", "N/A", "N/A", "N/A", "N/A"
		if it := row.Itinerary; it != nil {
			dep = it.DepartTime().String()
			arr = it.ArriveTime().String()
			dur = model.FormatMinutes(it.Duration())
			stops = strconv.Itoa(it.Stops())
			if row.Cabin != "" {
				if total, err := it.TotalPrice(row.Cabin); err == nil {
					price = strconv.Itoa(total)
				}
			}
		}
		cabin := string(row.Cabin)
		if cabin == "" {
			cabin = "-"
		}
		fmt.Fprintf(&b, comparisonRowFormat+"\n", row.Mode, cabin, dep, arr, dur, stops, price, row.Note)
	}
	return b.String()
}

func writeJSON(w io.Writer, v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(b))
	return err
}
