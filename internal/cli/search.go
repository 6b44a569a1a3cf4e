package cli

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/flywise/flywise/internal/model"
	"github.com/flywise/flywise/internal/search"
)

func searchCommand() *cli.Command {
	return &cli.Command{
		Name:  "search",
		Usage: "Find a single optimal itinerary for a route",
		Flags: append(routeFlags(),
			&cli.StringFlag{Name: "by", Value: "earliest", Usage: "criterion: earliest or cheapest"},
			&cli.StringFlag{Name: "cabin", Value: "economy", Usage: "cabin class priced by --by cheapest"},
			&cli.BoolFlag{Name: "json", Usage: "emit the itinerary as JSON"},
		),
		Action: runSearch,
	}
}

// searchResult is the JSON shape of a single search.
type searchResult struct {
	By         string          `json:"by"`
	Cabin      model.Cabin     `json:"cabin,omitempty"`
	Itinerary  model.Itinerary `json:"itinerary"`
	TotalPrice *int            `json:"total_price,omitempty"`
}

func runSearch(c *cli.Context) error {
	q, err := queryFromFlags(c)
	if err != nil {
		return newExitError(ExitInvalidUsage, "%v", err)
	}

	var cabin model.Cabin
	by := c.String("by")
	switch by {
	case "earliest":
	case "cheapest":
		cabin, err = model.ParseCabin(c.String("cabin"))
		if err != nil {
			return newExitError(ExitInvalidUsage, "--cabin: %v", err)
		}
	default:
		return newExitError(ExitInvalidUsage, "--by must be earliest or cheapest, got %q", by)
	}

	g, err := loadGraph(c)
	if err != nil {
		return err
	}

	var it model.Itinerary
	var found bool
	if by == "earliest" {
		it, found = search.EarliestArrival(g, q)
	} else {
		it, found = search.CheapestFare(g, q, cabin)
	}
	if !found {
		return newExitError(ExitNoItinerary, "no valid itinerary from %s to %s departing at or after %s",
			q.Origin, q.Destination, q.DepartAfter)
	}

	if c.Bool("json") {
		res := searchResult{By: by, Cabin: cabin, Itinerary: it}
		if cabin != "" {
			if total, err := it.TotalPrice(cabin); err == nil {
				res.TotalPrice = &total
			}
		}
		return writeJSON(c.App.Writer, res)
	}

	w := c.App.Writer
	for i, f := range it.Flights {
		fmt.Fprintf(w, "%2d) %-8s %s -> %s  %s - %s\n", i+1, f.Number, f.Origin, f.Destination, f.Depart, f.Arrive)
	}
	fmt.Fprintf(w, "Arrives %s, duration %s, stops: %d\n", it.ArriveTime(), model.FormatMinutes(it.Duration()), it.Stops())
	if cabin != "" {
		if total, err := it.TotalPrice(cabin); err == nil {
			fmt.Fprintf(w, "Total price (%s): %d\n", cabin, total)
		}
	}
	return nil
}
