package main

import (
	"github.com/fjacquet/sl_tools/internal/catalog"
	"github.com/fjacquet/sl_tools/internal/config"
	"github.com/fjacquet/sl_tools/internal/display"
	"github.com/fjacquet/sl_tools/internal/guests"
	"github.com/fjacquet/sl_tools/internal/logging"
	"github.com/spf13/cobra"
)

// vmsConfigFile is the primary credential candidate for the vms command.
const vmsConfigFile = "vm_list.ini"

func newVMsCmd() *cobra.Command {
	var (
		query     string
		csvOut    bool
		migration bool
		location  bool
	)

	cmd := &cobra.Command{
		Use:   "vms",
		Short: "List the account's virtual guests",
		Long: "Vms lists the account's virtual guests with their disks, network\n" +
			"speeds and OS code. -l adds datacenter/pod/rack columns, -m the\n" +
			"pending-migration column, -c also writes " + display.CSVFileName + ".",
		// The historical tool parsed options best-effort; unknown flags and
		// stray arguments are ignored rather than rejected.
		Args:               cobra.ArbitraryArgs,
		FParseErrWhitelist: cobra.FParseErrWhitelist{UnknownFlags: true},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(vmsConfigFile)
			if err != nil {
				return err
			}
			cat, err := catalog.Load(catalog.OverrideFile)
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			client, cleanup := newAPIClient(ctx, cfg)
			defer cleanup()

			pods, err := client.GetNetworkPods(ctx, cat.PodDatacenters)
			if err != nil {
				logging.LogRemoteError(err)
				return nil
			}
			list, err := client.GetVirtualGuests(ctx, query)
			if err != nil {
				logging.LogRemoteError(err)
				return nil
			}

			rows := guests.BuildRows(list, guests.BuildPodIndex(pods))
			cols := display.Columns{Location: location, Migration: migration}

			display.RenderTable(cmd.OutOrStdout(), rows, cols)

			if csvOut {
				if err := display.WriteCSV(display.CSVFileName, rows, cols); err != nil {
					return err
				}
				logging.LogInfo("Wrote " + display.CSVFileName)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&query, "query", "q", "", "Filter guests by hostname substring")
	cmd.Flags().BoolVarP(&csvOut, "csv", "c", false, "Also write the listing to "+display.CSVFileName)
	cmd.Flags().BoolVarP(&migration, "migration", "m", false, "Include the migration column; CSV keeps pending migrations only")
	cmd.Flags().BoolVarP(&location, "location", "l", false, "Include datacenter/pod/rack columns")
	return cmd
}
