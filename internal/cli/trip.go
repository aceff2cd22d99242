package cli

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/example/fleetctl/internal/core/trip"
	"github.com/example/fleetctl/internal/ports/primary"
	"github.com/example/fleetctl/internal/wire"
)

// TripCmd returns the trip command
func TripCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "trip",
		Short: "Manage scheduled trips",
		Long:  `Schedule trips and track their delivery progress.`,
	}

	cmd.AddCommand(tripAddCmd())
	cmd.AddCommand(tripListCmd())
	cmd.AddCommand(tripShowCmd())
	cmd.AddCommand(tripDoneCmd())
	cmd.AddCommand(tripUndoCmd())
	cmd.AddCommand(tripStatusCmd())
	cmd.AddCommand(tripScheduledCmd())
	cmd.AddCommand(tripDeleteCmd())
	cmd.AddCommand(tripStatsCmd())

	return cmd
}

func tripAddCmd() *cobra.Command {
	var truckID, destinationID int64
	var planned int
	var date string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Schedule a new trip",
		Long: `Schedule a trip for a truck to a destination on a date, with the
planned number of deliveries.

Examples:
  fleetctl trip add --truck 1 --destination 2 --planned 3 --date 2026-08-30`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			created, err := wire.TripService().CreateTrip(ctx, primary.CreateTripRequest{
				TruckID:       truckID,
				DestinationID: destinationID,
				PlannedCount:  planned,
				ScheduledDate: date,
			})
			if err != nil {
				return fmt.Errorf("failed to schedule trip: %w", err)
			}

			fmt.Printf("✓ Scheduled trip %d: %s → %s on %s (%d planned)\n",
				created.ID, created.TruckName, created.DestinationName,
				created.ScheduledDate, created.PlannedCount)
			return nil
		},
	}

	cmd.Flags().Int64VarP(&truckID, "truck", "t", 0, "Truck ID")
	cmd.Flags().Int64VarP(&destinationID, "destination", "d", 0, "Destination ID")
	cmd.Flags().IntVarP(&planned, "planned", "p", 1, "Planned delivery count")
	cmd.Flags().StringVar(&date, "date", "", "Scheduled date (YYYY-MM-DD)")
	cmd.MarkFlagRequired("truck")
	cmd.MarkFlagRequired("destination")
	cmd.MarkFlagRequired("date")

	return cmd
}

func tripListCmd() *cobra.Command {
	var truckID int64
	var activeOnly bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List trips",
		Long: `List trips, newest scheduled date first.

With --active only in-progress trips are shown, soonest date first. With
--truck the listing is limited to one truck.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			var trips []*primary.Trip
			var err error
			switch {
			case activeOnly:
				trips, err = wire.TripService().ListInProgress(ctx)
			case truckID != 0:
				trips, err = wire.TripService().ListTripsByTruck(ctx, truckID)
			default:
				trips, err = wire.TripService().ListTrips(ctx)
			}
			if err != nil {
				return fmt.Errorf("failed to list trips: %w", err)
			}

			if len(trips) == 0 {
				fmt.Println("No trips found.")
				return nil
			}

			printTripTable(trips)
			return nil
		},
	}

	cmd.Flags().Int64VarP(&truckID, "truck", "t", 0, "Limit to one truck")
	cmd.Flags().BoolVarP(&activeOnly, "active", "a", false, "Only in-progress trips")

	return cmd
}

func tripShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show [trip-id]",
		Short: "Show trip details and its delivery log",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			t, err := wire.TripService().GetTrip(ctx, id)
			if err != nil {
				return fmt.Errorf("failed to get trip: %w", err)
			}

			fmt.Printf("Trip: %d\n", t.ID)
			fmt.Printf("Truck: %s\n", t.TruckName)
			fmt.Printf("Destination: %s\n", t.DestinationName)
			if t.DestinationLocation != "" {
				fmt.Printf("Location: %s\n", t.DestinationLocation)
			}
			fmt.Printf("Date: %s\n", t.ScheduledDate)
			fmt.Printf("Progress: %d/%d\n", t.CompletedCount, t.PlannedCount)
			fmt.Printf("Status: %s\n", renderStatus(t.Status))

			events, err := wire.DeliveryLogService().ListByTrip(ctx, id)
			if err != nil {
				return fmt.Errorf("failed to list deliveries: %w", err)
			}
			if len(events) == 0 {
				return nil
			}

			fmt.Println()
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
			fmt.Fprintln(w, "DELIVERED\tQTY\tLOGGED AT")
			for _, e := range events {
				fmt.Fprintf(w, "%s\t%d\t%s\n", e.DeliveryDate, e.Quantity, e.CreatedAt)
			}
			w.Flush()

			return nil
		},
	}
}

func tripDoneCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "done [trip-id]",
		Short: "Record one completed delivery",
		Long: `Record one completed delivery on a trip. The counter stops at the
planned count; reaching it marks the trip completed.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			result, err := wire.TripService().IncrementCompleted(ctx, id)
			if err != nil {
				return fmt.Errorf("failed to record delivery: %w", err)
			}

			fmt.Printf("✓ Trip %d: %d completed, %s\n",
				id, result.CompletedCount, renderStatus(result.Status))
			return nil
		},
	}
}

func tripUndoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "undo [trip-id]",
		Short: "Take back the most recent delivery",
		Long: `Take back the most recently recorded delivery on a trip. The counter
stops at zero and the trip returns to in progress.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			result, err := wire.TripService().DecrementCompleted(ctx, id)
			if err != nil {
				return fmt.Errorf("failed to undo delivery: %w", err)
			}

			fmt.Printf("✓ Trip %d: %d completed, %s\n",
				id, result.CompletedCount, renderStatus(result.Status))
			return nil
		},
	}
}

func tripStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status [trip-id] [in_progress|completed]",
		Short: "Override a trip's status",
		Long: `Set a trip's status directly, without touching the delivery counter.
The counter and status can end up out of sync; the next delivery recorded
re-derives the status from the counter.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			if err := wire.TripService().SetStatus(ctx, id, args[1]); err != nil {
				return fmt.Errorf("failed to set status: %w", err)
			}

			fmt.Printf("✓ Trip %d: %s\n", id, renderStatus(args[1]))
			return nil
		},
	}
}

func tripScheduledCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "scheduled",
		Short: "List trips still in progress, soonest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			trips, err := wire.TripService().ListInProgress(ctx)
			if err != nil {
				return fmt.Errorf("failed to list trips: %w", err)
			}

			if len(trips) == 0 {
				fmt.Println("No trips in progress.")
				return nil
			}

			printTripTable(trips)
			return nil
		},
	}
}

func tripDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete [trip-id]",
		Short: "Delete a trip and its delivery log",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			if err := wire.TripService().DeleteTrip(ctx, id); err != nil {
				return fmt.Errorf("failed to delete trip: %w", err)
			}

			fmt.Printf("✓ Trip %d deleted\n", id)
			return nil
		},
	}
}

func tripStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show daily trip statistics",
		Long:  `Aggregate trips by scheduled date, most recent 30 dates.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			stats, err := wire.TripService().DailyStats(ctx)
			if err != nil {
				return fmt.Errorf("failed to get stats: %w", err)
			}

			if len(stats) == 0 {
				fmt.Println("No trips scheduled yet.")
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
			fmt.Fprintln(w, "DATE\tTRIPS\tPLANNED\tCOMPLETED")
			fmt.Fprintln(w, "----\t-----\t-------\t---------")

			for _, s := range stats {
				fmt.Fprintf(w, "%s\t%d\t%d\t%d\n",
					s.ScheduledDate, s.TripCount, s.PlannedTotal, s.CompletedTotal)
			}

			w.Flush()
			return nil
		},
	}
}

func printTripTable(trips []*primary.Trip) {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "ID\tDATE\tTRUCK\tDESTINATION\tPROGRESS\tSTATUS")
	fmt.Fprintln(w, "--\t----\t-----\t-----------\t--------\t------")

	for _, t := range trips {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%d/%d\t%s\n",
			t.ID, t.ScheduledDate, t.TruckName, t.DestinationName,
			t.CompletedCount, t.PlannedCount, renderStatus(t.Status))
	}

	w.Flush()
}

func renderStatus(status string) string {
	switch trip.Status(status) {
	case trip.StatusCompleted:
		return color.New(color.FgHiGreen).Sprint("completed")
	case trip.StatusInProgress:
		return color.New(color.FgYellow).Sprint("in progress")
	default:
		return status
	}
}
