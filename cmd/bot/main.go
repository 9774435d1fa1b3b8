package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli"
)

var version = "dev"

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	app := cli.NewApp()
	app.Name = "adhan-bot"
	app.HelpName = "adhan-bot"
	app.Usage = "sends Slack reminders at the daily prayer times"
	app.UsageText = "adhan-bot [command] [arguments...]"
	app.Version = version
	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:   "config, c",
			Usage:  "optional YAML configuration file",
			EnvVar: "CONFIG_FILE",
		},
	}
	app.Before = func(c *cli.Context) error {
		if path := c.String("config"); path != "" {
			return os.Setenv("CONFIG_FILE", path)
		}
		return nil
	}
	app.Commands = []cli.Command{
		{
			Name:   "run",
			Usage:  "runs the reminder daemon (default)",
			Action: runDaemon,
		},
		{
			Name:    "today",
			Aliases: []string{"t"},
			Usage:   "prints today's schedule",
			Action:  printToday,
		},
		{
			Name:  "members",
			Usage: "manages the recipients",
			Subcommands: []cli.Command{
				{
					Name:   "list",
					Usage:  "lists the active recipients",
					Action: listMembers,
				},
				{
					Name:      "import",
					Usage:     "activates every member of a name=SLACKID file",
					ArgsUsage: "<file>",
					Action:    importMembers,
				},
				{
					Name:      "export",
					Usage:     "dumps the workspace user list as JSON",
					ArgsUsage: "<file>",
					Action:    exportTeam,
				},
			},
		},
		{
			Name:  "history",
			Usage: "prints the last days of the event log",
			Flags: []cli.Flag{
				cli.IntFlag{
					Name:  "days, d",
					Value: 7,
					Usage: "number of days to print",
				},
			},
			Action: printHistory,
		},
	}
	app.Action = runDaemon
	return app
}
