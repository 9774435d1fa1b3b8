package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/diegoclair/adhan-bot/internal/config"
	"github.com/diegoclair/adhan-bot/internal/database"
	"github.com/diegoclair/adhan-bot/internal/domain/service"
	"github.com/diegoclair/adhan-bot/internal/eventlog"
	"github.com/diegoclair/adhan-bot/internal/handlers"
	"github.com/slack-go/slack"
	"github.com/urfave/cli"
)

func printToday(c *cli.Context) error {
	a, err := bootstrap((*config.Config).Validate)
	if err != nil {
		return cli.NewExitError(err.Error(), 1)
	}

	provider, err := a.timeTable()
	if err != nil {
		return cli.NewExitError(err.Error(), 1)
	}

	scheduler := service.NewScheduler(a.schedulerConfig(), provider, nil, nil, nil, nil, service.NewClock(), a.log)
	today, err := scheduler.Today(context.Background())
	if err != nil {
		return cli.NewExitError(err.Error(), 1)
	}

	fmt.Fprint(c.App.Writer, strings.ReplaceAll(handlers.FormatSchedule(today), "*", ""))
	return nil
}

// withMembers opens the database and builds the services the members
// subcommands need.
func withMembers(fn func(ctx context.Context, instance *service.Instance) error) error {
	a, err := bootstrap((*config.Config).Validate)
	if err != nil {
		return cli.NewExitError(err.Error(), 1)
	}

	db, err := a.openDB()
	if err != nil {
		return cli.NewExitError(err.Error(), 1)
	}
	defer db.Close()

	instance := service.NewInstance(service.Dependencies{
		DataManager:     database.NewInstance(db),
		SlackClient:     slack.New(a.cfg.SlackAuthToken),
		Fs:              a.fs,
		SlackRatePerSec: a.cfg.SlackRatePerSec,
		RetentionDays:   a.cfg.HistoryRetentionDays,
	}, a.schedulerConfig(), a.log)

	if err := fn(context.Background(), instance); err != nil {
		return cli.NewExitError(err.Error(), 1)
	}
	return nil
}

func listMembers(c *cli.Context) error {
	return withMembers(func(ctx context.Context, instance *service.Instance) error {
		members, err := instance.Members.List(ctx)
		if err != nil {
			return err
		}
		if len(members) == 0 {
			fmt.Fprintln(c.App.Writer, "no active recipients")
			return nil
		}
		for _, m := range members {
			fmt.Fprintf(c.App.Writer, "%s\t%s\n", m.SlackUserID, m.Mention())
		}
		return nil
	})
}

func importMembers(c *cli.Context) error {
	path := c.Args().First()
	if path == "" {
		return cli.NewExitError("usage: adhan-bot members import <file>", 1)
	}

	return withMembers(func(ctx context.Context, instance *service.Instance) error {
		n, err := instance.Members.Import(ctx, path)
		if err != nil {
			return err
		}
		fmt.Fprintf(c.App.Writer, "imported %d members from %s\n", n, path)
		return nil
	})
}

func exportTeam(c *cli.Context) error {
	path := c.Args().First()
	if path == "" {
		return cli.NewExitError("usage: adhan-bot members export <file>", 1)
	}

	return withMembers(func(ctx context.Context, instance *service.Instance) error {
		n, err := instance.Members.ExportTeam(ctx, path)
		if err != nil {
			return err
		}
		fmt.Fprintf(c.App.Writer, "exported %d users to %s\n", n, path)
		return nil
	})
}

func printHistory(c *cli.Context) error {
	a, err := bootstrap((*config.Config).Validate)
	if err != nil {
		return cli.NewExitError(err.Error(), 1)
	}

	f, err := a.fs.Open(a.cfg.EventLogPath)
	if errors.Is(err, os.ErrNotExist) {
		fmt.Fprintln(c.App.Writer, "event log is empty")
		return nil
	}
	if err != nil {
		return cli.NewExitError(err.Error(), 1)
	}
	defer f.Close()

	days, err := eventlog.Parse(f, a.loc)
	if err != nil {
		return cli.NewExitError(err.Error(), 1)
	}

	writeHistory(c.App.Writer, days, c.Int("days"))
	return nil
}

// writeHistory prints the last n days of the log, all of them when n <= 0.
func writeHistory(w io.Writer, days []eventlog.Day, n int) {
	if n > 0 && len(days) > n {
		days = days[len(days)-n:]
	}
	for _, d := range days {
		fmt.Fprintf(w, "%s (%s since %s)\n", d.Date().Format("2006-01-02"), d.Status, d.Since.Format(eventlog.TimeLayout))
		for _, e := range d.Entries {
			verb := "called"
			if e.Skipped {
				verb = "skipped"
			}
			fmt.Fprintf(w, "  %-8s %-7s %s\n", e.Label, verb, e.At.Format("15:04"))
		}
	}
}
