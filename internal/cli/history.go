package cli

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/example/fleetctl/internal/ports/primary"
	"github.com/example/fleetctl/internal/wire"
)

// HistoryCmd returns the history command
func HistoryCmd() *cobra.Command {
	var truckID int64

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show the delivery history",
		Long: `Show logged deliveries grouped by date, truck, destination and trip,
newest date first. With --truck the history is limited to one truck.

Examples:
  fleetctl history
  fleetctl history --truck 1`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			var entries []*primary.HistoryEntry
			var err error
			if truckID != 0 {
				entries, err = wire.DeliveryLogService().HistoryByTruck(ctx, truckID)
			} else {
				entries, err = wire.DeliveryLogService().HistoryByDate(ctx)
			}
			if err != nil {
				return fmt.Errorf("failed to get history: %w", err)
			}

			if len(entries) == 0 {
				fmt.Println("No deliveries logged yet.")
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
			fmt.Fprintln(w, "DATE\tTRUCK\tDESTINATION\tTRIP\tDELIVERIES")
			fmt.Fprintln(w, "----\t-----\t-----------\t----\t----------")

			for _, e := range entries {
				fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%d\n",
					e.DeliveryDate, e.TruckName, e.DestinationName, e.TripID, e.TotalDeliveries)
			}

			w.Flush()
			return nil
		},
	}

	cmd.Flags().Int64VarP(&truckID, "truck", "t", 0, "Limit to one truck")

	return cmd
}
