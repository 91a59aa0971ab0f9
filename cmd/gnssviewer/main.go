package main

import (
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/kibi-sigz/zed-f9p-gnss-viewer/internal/catalog"
)

var flagJSON bool

func main() {
	log.SetLevel(log.WarnLevel)

	rootCmd := &cobra.Command{
		Use:   "gnssviewer",
		Short: "Inspection tool for the ZED-F9P GNSS viewer configuration and data",
		Long: `gnssviewer inspects the environment-driven configuration, the protocol
constant tables and the recorded position history of the GNSS viewer.

All settings come from environment variables. Run "gnssviewer config" to see
the effective values and "gnssviewer check" to validate a deployment before
starting the viewer itself.`,
		Version:      catalog.Version,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "Print machine-readable JSON output")

	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newCheckCmd())
	rootCmd.AddCommand(newConstantsCmd())
	rootCmd.AddCommand(newSatellitesCmd())
	rootCmd.AddCommand(newTrackCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
