package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"

	"github.com/flywise/flywise/internal/model"
	"github.com/flywise/flywise/internal/schedule"
	"github.com/flywise/flywise/internal/search"
)

// NewApp builds the flywise command tree.
func NewApp(version string) *cli.App {
	return &cli.App{
		Name:    "flywise",
		Usage:   "Compare flight itineraries from a static schedule",
		Version: version,
		Commands: []*cli.Command{
			compareCommand(),
			searchCommand(),
			validateCommand(),
			configCommand(),
		},
	}
}

func routeFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{Name: "file", Aliases: []string{"f"}, Usage: "schedule file (.txt or .csv)"},
		&cli.StringFlag{Name: "from", Usage: "origin airport code"},
		&cli.StringFlag{Name: "to", Usage: "destination airport code"},
		&cli.StringFlag{Name: "depart", Usage: "earliest departure time (HH:MM, 24-hour)"},
	}
}

func queryFromFlags(c *cli.Context) (search.Query, error) {
	from := strings.ToUpper(strings.TrimSpace(c.String("from")))
	to := strings.ToUpper(strings.TrimSpace(c.String("to")))
	if c.String("file") == "" || from == "" || to == "" || c.String("depart") == "" {
		return search.Query{}, errors.New("--file, --from, --to, and --depart are required")
	}
	departAfter, err := model.ParseClock(c.String("depart"))
	if err != nil {
		return search.Query{}, fmt.Errorf("--depart: %w", err)
	}
	return search.Query{Origin: from, Destination: to, DepartAfter: departAfter}, nil
}

func loadGraph(c *cli.Context) (search.Graph, error) {
	flights, err := schedule.Load(c.String("file"))
	if err != nil {
		return nil, wrapExitError(ExitBadSchedule, err)
	}
	g := search.BuildGraph(flights)
	log.Debug().Int("flights", len(flights)).Int("airports", len(g)).Msg("schedule graph built")
	return g, nil
}
