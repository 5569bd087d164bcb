package main

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/fjacquet/sl_tools/internal/catalog"
	"github.com/fjacquet/sl_tools/internal/config"
	"github.com/fjacquet/sl_tools/internal/logging"
	"github.com/fjacquet/sl_tools/internal/ordering"
	"github.com/spf13/cobra"
)

// orderConfigFile is the primary credential candidate for the order command.
const orderConfigFile = "order_storage.ini"

// confirmOrder prompts the operator to approve the order interactively.
func confirmOrder(req ordering.Request) (bool, error) {
	var ok bool
	err := huh.NewConfirm().
		Title(fmt.Sprintf("Order %s, %d GB, in %s (%q)?",
			req.Type, req.CapacityGB, req.Datacenter, req.Description)).
		Affirmative("Place order").
		Negative("Cancel").
		Value(&ok).
		Run()
	if err != nil {
		return false, fmt.Errorf("confirmation prompt failed: %w", err)
	}
	return ok, nil
}

func newOrderCmd() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "order TYPE CAPACITY_IN_GB DATA_CENTER DESCRIPTION",
		Short: "Order a portable or network-attached storage device",
		Long: "Order verifies and places a storage order. TYPE is PORTABLE_STORAGE or\n" +
			"NETWORK_ATTACHED_STORAGE, CAPACITY_IN_GB a non-negative integer and\n" +
			"DATA_CENTER one of the known location codes. When no catalog price\n" +
			"matches the requested capacity, the available capacities are listed\n" +
			"instead of placing an order.",
		Args: cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := catalog.Load(catalog.OverrideFile)
			if err != nil {
				return err
			}

			// Argument validation happens before any remote call; failures
			// surface the valid value sets plus usage and exit 1.
			req, err := ordering.ParseArgs(args, cat)
			if err != nil {
				return err
			}

			cfg, err := config.Load(orderConfigFile)
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			client, cleanup := newAPIClient(ctx, cfg)
			defer cleanup()

			err = ordering.Run(ctx, client, req, ordering.Options{
				SkipConfirm: yes,
				Confirm:     confirmOrder,
				Out:         cmd.OutOrStdout(),
			})

			var lookupErr *ordering.LookupError
			if errors.As(err, &lookupErr) {
				return err
			}
			if err != nil {
				// Remote/API failures past validation are reported on
				// standard error; the process terminates normally.
				logging.LogRemoteError(err)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&yes, "yes", false, "Place the order without the confirmation prompt")
	return cmd
}
