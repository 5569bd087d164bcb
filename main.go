// sl_tools is a pair of operational commands against the SoftLayer (IBM
// Cloud classic infrastructure) REST API:
//
//   - "order" places a portable or network-attached storage order after
//     verifying it against the product catalog.
//   - "vms" lists the account's virtual guests with optional location and
//     migration annotations and a CSV export.
//
// Usage:
//
//	sl_tools order TYPE CAPACITY_IN_GB DATA_CENTER DESCRIPTION [--yes]
//	sl_tools vms [-q substring] [-c] [-m] [-l]
//
// Credentials come from an INI file with a [softlayer] section (username,
// api_key, endpoint_url, timeout). Each command probes its own file first,
// then ~/.softlayer, then /etc/softlayer.conf.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/fjacquet/sl_tools/internal/logging"
	"github.com/fjacquet/sl_tools/internal/models"
	"github.com/fjacquet/sl_tools/internal/slapi"
	"github.com/fjacquet/sl_tools/internal/telemetry"
	"github.com/spf13/cobra"
)

const (
	programName     = "sl_tools"
	programVersion  = "1.1.0"
	shutdownTimeout = 5 * time.Second // trace flush budget at command exit
)

var debug bool

// newAPIClient wires telemetry (when enabled) into a fresh API client. The
// returned cleanup flushes pending spans and must run before process exit.
func newAPIClient(ctx context.Context, cfg *models.Config) (slapi.Client, func()) {
	manager := telemetry.NewManager(telemetry.Config{
		Enabled:        cfg.Telemetry.Enabled,
		Endpoint:       cfg.Telemetry.Endpoint,
		Insecure:       cfg.Telemetry.Insecure,
		SamplingRate:   cfg.Telemetry.SamplingRate,
		ServiceName:    programName,
		ServiceVersion: programVersion,
		APIEndpoint:    cfg.SoftLayer.EndpointURL,
	})
	_ = manager.Initialize(ctx) // degrades gracefully, never fails the command

	var opts []slapi.ClientOption
	if manager.IsEnabled() {
		opts = append(opts, slapi.WithTracerProvider(manager.TracerProvider()))
	}
	client := slapi.NewRestClient(*cfg, opts...)

	cleanup := func() {
		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := manager.Shutdown(ctx); err != nil {
			logging.LogError(fmt.Sprintf("telemetry shutdown: %v", err))
		}
	}
	return client, cleanup
}

func main() {
	rootCmd := &cobra.Command{
		Use:   programName,
		Short: "Operational CLI for SoftLayer storage orders and VM listings",
		Long: "sl_tools talks to the SoftLayer REST API to place storage-device\n" +
			"orders and list account virtual guests.",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.Setup(debug)
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "Enable debug mode")
	rootCmd.AddCommand(newOrderCmd())
	rootCmd.AddCommand(newVMsCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
