package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/example/fleetctl/internal/cli"
	"github.com/example/fleetctl/internal/version"
)

func main() {
	rootCmd := &cobra.Command{
		Use:     "fleetctl",
		Short:   "fleetctl - delivery tracking for a truck fleet",
		Version: version.String(),
		Long: `fleetctl tracks a fleet of delivery trucks: the trucks themselves, the
destinations they serve, the trips scheduled between them, and a log of
every delivery completed along the way.`,
	}

	rootCmd.AddCommand(cli.TruckCmd())
	rootCmd.AddCommand(cli.DestinationCmd())
	rootCmd.AddCommand(cli.TripCmd())
	rootCmd.AddCommand(cli.HistoryCmd())

	defer cli.Shutdown()

	if err := rootCmd.Execute(); err != nil {
		cli.Shutdown()
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
