package main

import (
	"github.com/opsbotics/controlroom/pkg/crsdk"
	"github.com/spf13/cobra"
)

var licenseCmd = &cobra.Command{
	Use:   "license",
	Short: "Inspect Control Room licensing",
}

func init() {
	licenseCmd.AddCommand(
		listCommand("details", "Installed license details", func(cmd *cobra.Command, s *crsdk.Session) (any, error) {
			return s.GetLicenseDetails(cmd.Context())
		}),
		listCommand("products", "Per-product license counters", func(cmd *cobra.Command, s *crsdk.Session) (any, error) {
			return s.ListProductLicenses(cmd.Context())
		}),
	)

	rootCmd.AddCommand(licenseCmd)
}
