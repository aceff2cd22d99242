// Package cli contains the cobra commands driving the services through the
// primary ports.
package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/example/fleetctl/internal/wire"
)

// TruckCmd returns the truck command
func TruckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "truck",
		Short: "Manage fleet trucks",
		Long:  `Add, list, rename and remove the trucks of the fleet.`,
	}

	cmd.AddCommand(truckAddCmd())
	cmd.AddCommand(truckListCmd())
	cmd.AddCommand(truckShowCmd())
	cmd.AddCommand(truckRenameCmd())
	cmd.AddCommand(truckDeleteCmd())

	return cmd
}

func truckAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add [name]",
		Short: "Add a new truck",
		Long: `Add a truck to the fleet.

Examples:
  fleetctl truck add "Truck F4"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			truck, err := wire.TruckService().CreateTruck(ctx, args[0])
			if err != nil {
				return fmt.Errorf("failed to add truck: %w", err)
			}

			fmt.Printf("✓ Added truck %d: %s\n", truck.ID, truck.Name)
			return nil
		},
	}
}

func truckListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all trucks",
		Long:  `List all trucks with their completed-delivery totals.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			trucks, err := wire.TruckService().ListTrucks(ctx)
			if err != nil {
				return fmt.Errorf("failed to list trucks: %w", err)
			}

			if len(trucks) == 0 {
				fmt.Println("No trucks found.")
				fmt.Println()
				fmt.Println("Add your first truck:")
				fmt.Println("  fleetctl truck add \"Truck F1\"")
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
			fmt.Fprintln(w, "ID\tNAME\tCOMPLETED")
			fmt.Fprintln(w, "--\t----\t---------")

			for _, t := range trucks {
				fmt.Fprintf(w, "%d\t%s\t%d\n", t.ID, t.Name, t.TripsCompleted)
			}

			w.Flush()
			return nil
		},
	}
}

func truckShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show [truck-id]",
		Short: "Show truck details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			truck, err := wire.TruckService().GetTruck(ctx, id)
			if err != nil {
				return fmt.Errorf("failed to get truck: %w", err)
			}
			if truck == nil {
				return fmt.Errorf("truck %d not found", id)
			}

			fmt.Printf("Truck: %d\n", truck.ID)
			fmt.Printf("Name: %s\n", truck.Name)
			fmt.Printf("Completed deliveries: %d\n", truck.TripsCompleted)

			return nil
		},
	}
}

func truckRenameCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rename [truck-id] [name]",
		Short: "Rename a truck",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			if err := wire.TruckService().RenameTruck(ctx, id, args[1]); err != nil {
				return fmt.Errorf("failed to rename truck: %w", err)
			}

			fmt.Printf("✓ Truck %d renamed to %s\n", id, args[1])
			return nil
		},
	}
}

func truckDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete [truck-id]",
		Short: "Delete a truck",
		Long: `Delete a truck from the fleet.

Trips scheduled for the truck are kept and show a blank truck name.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			if err := wire.TruckService().DeleteTruck(ctx, id); err != nil {
				return fmt.Errorf("failed to delete truck: %w", err)
			}

			fmt.Printf("✓ Truck %d deleted\n", id)
			return nil
		},
	}
}

func parseID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid id %q", arg)
	}
	return id, nil
}
