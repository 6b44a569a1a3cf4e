package cli

import (
	"fmt"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/flywise/flywise/internal/config"
)

func configCommand() *cli.Command {
	return &cli.Command{
		Name:  "config",
		Usage: "Read or write stored defaults",
		Subcommands: []*cli.Command{
			{
				Name:  "path",
				Usage: "Print the config file location",
				Action: func(c *cli.Context) error {
					path, err := config.ConfigPath()
					if err != nil {
						return err
					}
					fmt.Fprintln(c.App.Writer, path)
					return nil
				},
			},
			{
				Name:      "get",
				Usage:     "Print a config value",
				ArgsUsage: "<key>",
				Action:    runConfigGet,
			},
			{
				Name:      "set",
				Usage:     "Update a config value",
				ArgsUsage: "<key> <value>",
				Action:    runConfigSet,
			},
		},
	}
}

func runConfigGet(c *cli.Context) error {
	if c.NArg() != 1 {
		return newExitError(ExitInvalidUsage, "usage: flywise config get <key>")
	}
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	key := c.Args().Get(0)
	val, ok := configGet(cfg, key)
	if !ok {
		return newExitError(ExitInvalidUsage, "unknown key %q", key)
	}
	fmt.Fprintln(c.App.Writer, val)
	return nil
}

func runConfigSet(c *cli.Context) error {
	if c.NArg() != 2 {
		return newExitError(ExitInvalidUsage, "usage: flywise config set <key> <value>")
	}
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if err := configSet(&cfg, c.Args().Get(0), c.Args().Get(1)); err != nil {
		return newExitError(ExitInvalidUsage, "%v", err)
	}
	return config.Save(cfg)
}

func configGet(cfg config.Config, key string) (string, bool) {
	switch key {
	case "default_cabins":
		return strings.Join(cfg.DefaultCabins, ","), true
	case "output":
		return cfg.Output, true
	default:
		return "", false
	}
}

func configSet(cfg *config.Config, key, value string) error {
	switch key {
	case "default_cabins":
		cabins := []string{}
		for _, c := range strings.Split(value, ",") {
			if c = strings.TrimSpace(c); c != "" {
				cabins = append(cabins, c)
			}
		}
		if len(cabins) == 0 {
			return fmt.Errorf("default_cabins needs at least one cabin")
		}
		cfg.DefaultCabins = cabins
	case "output":
		if value != config.OutputTable && value != config.OutputJSON {
			return fmt.Errorf("output must be %q or %q", config.OutputTable, config.OutputJSON)
		}
		cfg.Output = value
	default:
		return fmt.Errorf("unknown key %q", key)
	}
	return nil
}
