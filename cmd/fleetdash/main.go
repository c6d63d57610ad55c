// Package main provides the CLI for the FleetDash fleet performance dashboard.
package main

import (
	"os"

	"github.com/leapstack-labs/fleetdash/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
