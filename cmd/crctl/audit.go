package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/opsbotics/controlroom/pkg/crsdk"
	"github.com/spf13/cobra"
)

var (
	auditRange string
	auditFrom  string
	auditTo    string
)

var auditCmd = &cobra.Command{
	Use:   "audit",
	Short: "Search audit messages within a date range",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		dr, err := resolveRange(ctx, auditRange, auditFrom, auditTo)
		if errors.Is(err, crsdk.ErrCancelled) {
			fmt.Fprintln(os.Stderr, "cancelled")
			return nil
		}
		if err != nil {
			return err
		}

		session, err := connect(ctx)
		if err != nil {
			return err
		}
		defer closeSession(ctx, session)

		msgs, err := session.SearchAuditMessages(ctx, dr)
		if err != nil {
			return err
		}

		return printJSON(msgs)
	},
}

func init() {
	auditCmd.Flags().StringVar(&auditRange, "range", "", "range shortcut (Yesterday, Today, SinceYesterday, ThisWeek, Last30Days, OneYear)")
	auditCmd.Flags().StringVar(&auditFrom, "from", "", "explicit start date (YYYY-MM-DD)")
	auditCmd.Flags().StringVar(&auditTo, "to", "", "explicit end date (YYYY-MM-DD)")
	rootCmd.AddCommand(auditCmd)
}
