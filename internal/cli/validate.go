package cli

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/flywise/flywise/internal/schedule"
	"github.com/flywise/flywise/internal/search"
)

func validateCommand() *cli.Command {
	return &cli.Command{
		Name:  "validate",
		Usage: "Check a schedule file and report what it contains",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "file", Aliases: []string{"f"}, Usage: "schedule file (.txt or .csv)"},
		},
		Action: runValidate,
	}
}

func runValidate(c *cli.Context) error {
	path := c.String("file")
	if path == "" {
		return newExitError(ExitInvalidUsage, "--file is required")
	}
	flights, err := schedule.Load(path)
	if err != nil {
		return wrapExitError(ExitBadSchedule, err)
	}
	g := search.BuildGraph(flights)
	fmt.Fprintf(c.App.Writer, "%s: %d flights, %d airports with departures\n", path, len(flights), len(g))
	return nil
}
