package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/flywise/flywise/internal/compare"
	"github.com/flywise/flywise/internal/config"
	"github.com/flywise/flywise/internal/model"
)

func compareCommand() *cli.Command {
	return &cli.Command{
		Name:  "compare",
		Usage: "Compare earliest-arrival and cheapest-per-cabin itineraries for a route",
		Flags: append(routeFlags(),
			&cli.StringFlag{Name: "cabins", Usage: "comma-separated cabins to price (default from config)"},
			&cli.BoolFlag{Name: "json", Usage: "emit comparison rows as JSON"},
		),
		Action: runCompare,
	}
}

func runCompare(c *cli.Context) error {
	q, err := queryFromFlags(c)
	if err != nil {
		return newExitError(ExitInvalidUsage, "%v", err)
	}
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	cabins, err := resolveCabins(c.String("cabins"), cfg)
	if err != nil {
		return newExitError(ExitInvalidUsage, "%v", err)
	}
	g, err := loadGraph(c)
	if err != nil {
		return err
	}

	rows := compare.Run(g, q, cabins)
	if c.Bool("json") || (!c.IsSet("json") && cfg.Output == config.OutputJSON) {
		return writeJSON(c.App.Writer, rows)
	}
	fmt.Fprint(c.App.Writer, renderComparison(q, rows))
	return nil
}

func resolveCabins(flagValue string, cfg config.Config) ([]model.Cabin, error) {
	names := cfg.DefaultCabins
	if flagValue != "" {
		names = strings.Split(flagValue, ",")
	}
	cabins := make([]model.Cabin, 0, len(names))
	for _, name := range names {
		cabin, err := model.ParseCabin(name)
		if err != nil {
			return nil, err
		}
		cabins = append(cabins, cabin)
	}
	if len(cabins) == 0 {
		return nil, errors.New("no cabins to compare")
	}
	return cabins, nil
}
