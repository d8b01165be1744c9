package main

import (
	"errors"
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"resort/di"
	"resort/internal/offline/agent"
	"resort/internal/offline/model"
	"resort/internal/offline/queue"

	"github.com/urfave/cli/v2"
)

const (
	flagAccommodation = "accommodation"
	flagPackage       = "package"
	flagCheckIn       = "check-in"
	flagCheckOut      = "check-out"
	flagGuests        = "guests"
	flagName          = "name"
	flagEmail         = "email"
	flagPhone         = "phone"
	flagRequests      = "requests"
	flagTotal         = "total"
	flagRefresh       = "refresh"
	flagPending       = "pending"
)

// withAgent builds the offline components for one command and releases the store afterwards.
func withAgent(action func(c *cli.Context, a *agent.Agent) error) cli.ActionFunc {
	return func(c *cli.Context) error {
		a, cleanup, err := di.InitializeAgent()
		if err != nil {
			return fmt.Errorf("error opening front desk store: %w", err)
		}

		defer cleanup()

		return action(c, a)
	}
}

func bookCommand() *cli.Command {
	return &cli.Command{
		Name:  "book",
		Usage: "submit a booking, saving it offline when the server is unreachable",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: flagAccommodation, Usage: "accommodation id", Required: true},
			&cli.StringFlag{Name: flagPackage, Usage: "package id"},
			&cli.StringFlag{Name: flagCheckIn, Usage: "check-in date, YYYY-MM-DD", Required: true},
			&cli.StringFlag{Name: flagCheckOut, Usage: "check-out date, YYYY-MM-DD", Required: true},
			&cli.IntFlag{Name: flagGuests, Usage: "number of guests", Value: 1},
			&cli.StringFlag{Name: flagName, Usage: "guest name", Required: true},
			&cli.StringFlag{Name: flagEmail, Usage: "guest email", Required: true},
			&cli.StringFlag{Name: flagPhone, Usage: "guest phone", Required: true},
			&cli.StringFlag{Name: flagRequests, Usage: "special requests"},
			&cli.Float64Flag{Name: flagTotal, Usage: "override the computed total amount"},
		},
		Action: withAgent(func(c *cli.Context, a *agent.Agent) error {
			draft := model.Draft{
				AccommodationID: c.String(flagAccommodation),
				CheckInDate:     c.String(flagCheckIn),
				CheckOutDate:    c.String(flagCheckOut),
				Guests:          c.Int(flagGuests),
				GuestName:       c.String(flagName),
				GuestEmail:      c.String(flagEmail),
				GuestPhone:      c.String(flagPhone),
				SpecialRequests: c.String(flagRequests),
			}

			if c.IsSet(flagPackage) {
				pkg := c.String(flagPackage)
				draft.PackageID = &pkg
			}

			if c.IsSet(flagTotal) {
				total := c.Float64(flagTotal)
				draft.TotalAmount = &total
			}

			a.Notifier.Probe(c.Context)

			res, err := a.Submitter.Submit(c.Context, draft)
			if err != nil {
				return err
			}

			out := c.App.Writer

			fmt.Fprintln(out, res.Headline())
			fmt.Fprintf(out, "Reference: %s\n", res.Reference)

			if res.Offline {
				fmt.Fprintf(out, "Offline ID: %s\n", res.Entry.OfflineID)
				fmt.Fprintln(out, "The booking will be sent when the server is reachable. The reference above is provisional.")

				return nil
			}

			fmt.Fprintf(out, "Total: %.2f for %d night(s)\n", res.Booking.TotalAmount, res.Booking.Nights)

			return nil
		}),
	}
}

func historyCommand() *cli.Command {
	return &cli.Command{
		Name:  "history",
		Usage: "list bookings saved on this front desk",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: flagPending, Usage: "only show bookings waiting to sync"},
		},
		Action: withAgent(func(c *cli.Context, a *agent.Agent) error {
			list := a.Queue.ListAll
			if c.Bool(flagPending) {
				list = a.Queue.ListPending
			}

			entries, err := list(c.Context)
			if err != nil {
				return err
			}

			printEntries(c.App.Writer, entries)

			return nil
		}),
	}
}

func retryCommand() *cli.Command {
	return &cli.Command{
		Name:      "retry",
		Usage:     "queue a failed booking for another sync attempt",
		ArgsUsage: "<offline-id>",
		Action: withAgent(func(c *cli.Context, a *agent.Agent) error {
			offlineID := c.Args().First()
			if offlineID == "" {
				return cli.Exit("offline id is required", 2)
			}

			entry, err := a.Queue.Retry(c.Context, offlineID)
			if errors.Is(err, queue.ErrNotFound) {
				return cli.Exit(err.Error(), 1)
			}

			if err != nil {
				return err
			}

			if err := a.Registrations.Register(c.Context, model.SyncTag); err != nil {
				return err
			}

			fmt.Fprintf(c.App.Writer, "%s is %s\n", entry.Reference(), entry.SyncStatus)

			return nil
		}),
	}
}

func syncCommand() *cli.Command {
	return &cli.Command{
		Name:  "sync",
		Usage: "send pending bookings to the server now",
		Action: withAgent(func(c *cli.Context, a *agent.Agent) error {
			out := c.App.Writer

			if !a.Notifier.Probe(c.Context) {
				fmt.Fprintln(out, "Server unreachable, pending bookings stay queued.")

				return nil
			}

			report := a.Coordinator.Drain(c.Context)

			fmt.Fprintf(out, "Attempted %d, synced %d, failed %d\n", report.Attempted, report.Synced, len(report.Failed))

			for _, failed := range report.Failed {
				hint := "fix the booking and book again"
				if failed.Retryable {
					hint = "run retry " + failed.OfflineID
				}

				fmt.Fprintf(out, "  %s: %s (%s)\n", failed.OfflineID, failed.Reason, hint)
			}

			return nil
		}),
	}
}

func catalogCommand() *cli.Command {
	return &cli.Command{
		Name:  "catalog",
		Usage: "show accommodations and packages, from the server or the last snapshot",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: flagRefresh, Usage: "fail unless both lists came from the server"},
		},
		Action: withAgent(func(c *cli.Context, a *agent.Agent) error {
			if c.Bool(flagRefresh) {
				if err := a.Catalog.Refresh(c.Context); err != nil {
					return err
				}
			}

			out := c.App.Writer
			writer := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)

			accommodations := a.Catalog.Accommodations(c.Context)
			fmt.Fprintf(writer, "ACCOMMODATIONS%s\n", staleNote(accommodations.Stale, accommodations.FetchedAt))
			fmt.Fprintln(writer, "ID\tNAME\tTYPE\tPRICE/NIGHT\tCAPACITY")

			for _, item := range accommodations.Items {
				fmt.Fprintf(writer, "%s\t%s\t%s\t%.2f\t%d\n", item.ID, item.Name, item.Type, item.PricePerNight, item.Capacity)
			}

			packages := a.Catalog.Packages(c.Context)
			fmt.Fprintf(writer, "\nPACKAGES%s\n", staleNote(packages.Stale, packages.FetchedAt))
			fmt.Fprintln(writer, "ID\tCODE\tNAME\tPRICE")

			for _, item := range packages.Items {
				fmt.Fprintf(writer, "%s\t%s\t%s\t%.2f\n", item.ID, item.Code, item.Name, item.Price)
			}

			return writer.Flush()
		}),
	}
}

func agentCommand() *cli.Command {
	return &cli.Command{
		Name:  "agent",
		Usage: "run the background sync agent",
		Action: withAgent(func(c *cli.Context, a *agent.Agent) error {
			return a.Run(c.Context)
		}),
	}
}

func staleNote(stale bool, fetchedAt time.Time) string {
	switch {
	case !stale:
		return ""
	case fetchedAt.IsZero():
		return " (offline, no saved copy)"
	default:
		return " (offline, saved " + fetchedAt.Local().Format(time.DateTime) + ")"
	}
}

func printEntries(out io.Writer, entries []model.Entry) {
	writer := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)

	fmt.Fprintln(writer, "REFERENCE\tSTATUS\tGUEST\tCHECK-IN\tCHECK-OUT\tATTEMPTS\tOFFLINE ID\tLAST ERROR")

	for _, entry := range entries {
		fmt.Fprintf(writer, "%s\t%s\t%s\t%s\t%s\t%d\t%s\t%s\n",
			entry.Reference(),
			entry.SyncStatus,
			entry.GuestName,
			entry.CheckInDate,
			entry.CheckOutDate,
			entry.Attempts,
			entry.OfflineID,
			entry.LastError,
		)
	}

	writer.Flush()
}
