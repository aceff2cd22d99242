package cli

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/example/fleetctl/internal/wire"
)

// DestinationCmd returns the destination command
func DestinationCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "destination",
		Aliases: []string{"dest"},
		Short:   "Manage delivery destinations",
		Long:    `Add, list, update and remove delivery destinations.`,
	}

	cmd.AddCommand(destinationAddCmd())
	cmd.AddCommand(destinationListCmd())
	cmd.AddCommand(destinationShowCmd())
	cmd.AddCommand(destinationUpdateCmd())
	cmd.AddCommand(destinationDeleteCmd())

	return cmd
}

func destinationAddCmd() *cobra.Command {
	var location string

	cmd := &cobra.Command{
		Use:   "add [name]",
		Short: "Add a new destination",
		Long: `Add a delivery destination. Location is optional.

Examples:
  fleetctl destination add "Central Depot"
  fleetctl destination add "North Yard" --location "Industrial Ave 12"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			dest, err := wire.DestinationService().CreateDestination(ctx, args[0], location)
			if err != nil {
				return fmt.Errorf("failed to add destination: %w", err)
			}

			fmt.Printf("✓ Added destination %d: %s\n", dest.ID, dest.Name)
			if dest.Location != "" {
				fmt.Printf("  Location: %s\n", dest.Location)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&location, "location", "l", "", "Destination address or area")

	return cmd
}

func destinationListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all destinations",
		Long:  `List all destinations ordered by name.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			destinations, err := wire.DestinationService().ListDestinations(ctx)
			if err != nil {
				return fmt.Errorf("failed to list destinations: %w", err)
			}

			if len(destinations) == 0 {
				fmt.Println("No destinations found.")
				fmt.Println()
				fmt.Println("Add your first destination:")
				fmt.Println("  fleetctl destination add \"Central Depot\"")
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
			fmt.Fprintln(w, "ID\tNAME\tLOCATION")
			fmt.Fprintln(w, "--\t----\t--------")

			for _, d := range destinations {
				fmt.Fprintf(w, "%d\t%s\t%s\n", d.ID, d.Name, d.Location)
			}

			w.Flush()
			return nil
		},
	}
}

func destinationShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show [destination-id]",
		Short: "Show destination details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			dest, err := wire.DestinationService().GetDestination(ctx, id)
			if err != nil {
				return fmt.Errorf("failed to get destination: %w", err)
			}
			if dest == nil {
				return fmt.Errorf("destination %d not found", id)
			}

			fmt.Printf("Destination: %d\n", dest.ID)
			fmt.Printf("Name: %s\n", dest.Name)
			if dest.Location != "" {
				fmt.Printf("Location: %s\n", dest.Location)
			}

			return nil
		},
	}
}

func destinationUpdateCmd() *cobra.Command {
	var location string

	cmd := &cobra.Command{
		Use:   "update [destination-id] [name]",
		Short: "Update a destination's name and location",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			if err := wire.DestinationService().UpdateDestination(ctx, id, args[1], location); err != nil {
				return fmt.Errorf("failed to update destination: %w", err)
			}

			fmt.Printf("✓ Destination %d updated\n", id)
			return nil
		},
	}

	cmd.Flags().StringVarP(&location, "location", "l", "", "Destination address or area")

	return cmd
}

func destinationDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete [destination-id]",
		Short: "Delete a destination",
		Long: `Delete a destination.

Trips scheduled to the destination are kept and show a blank name.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			if err := wire.DestinationService().DeleteDestination(ctx, id); err != nil {
				return fmt.Errorf("failed to delete destination: %w", err)
			}

			fmt.Printf("✓ Destination %d deleted\n", id)
			return nil
		},
	}
}
