package main

import (
	"github.com/opsbotics/controlroom/pkg/crsdk"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List Control Room resources",
}

// listCommand builds one "list <resource>" subcommand over a session fetch.
func listCommand(use, short string, fetch func(*cobra.Command, *crsdk.Session) (any, error)) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			session, err := connect(ctx)
			if err != nil {
				return err
			}
			defer closeSession(ctx, session)

			out, err := fetch(cmd, session)
			if err != nil {
				return err
			}

			return printJSON(out)
		},
	}
}

func init() {
	listCmd.AddCommand(
		listCommand("devices", "Registered bot-agent devices", func(cmd *cobra.Command, s *crsdk.Session) (any, error) {
			return s.ListDevices(cmd.Context())
		}),
		listCommand("pools", "Device pools", func(cmd *cobra.Command, s *crsdk.Session) (any, error) {
			return s.ListDevicePools(cmd.Context())
		}),
		listCommand("runners", "Run-as user contexts", func(cmd *cobra.Command, s *crsdk.Session) (any, error) {
			return s.ListRunAsUsers(cmd.Context())
		}),
		listCommand("users", "Control Room accounts", func(cmd *cobra.Command, s *crsdk.Session) (any, error) {
			return s.ListUsers(cmd.Context())
		}),
		listCommand("roles", "Permission roles", func(cmd *cobra.Command, s *crsdk.Session) (any, error) {
			return s.ListRoles(cmd.Context())
		}),
		listCommand("files", "Repository bots and folders", func(cmd *cobra.Command, s *crsdk.Session) (any, error) {
			return s.ListRepositoryFiles(cmd.Context())
		}),
		listCommand("workitemmodels", "WLM work item models", func(cmd *cobra.Command, s *crsdk.Session) (any, error) {
			return s.ListWorkItemModels(cmd.Context())
		}),
		listCommand("wlmautomations", "WLM automations", func(cmd *cobra.Command, s *crsdk.Session) (any, error) {
			return s.ListWLMAutomations(cmd.Context())
		}),
	)

	rootCmd.AddCommand(listCmd)
}
