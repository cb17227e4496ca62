package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/opsbotics/controlroom/pkg/crsdk"
	"github.com/spf13/cobra"
)

var (
	insightRange string
	insightFrom  string
	insightTo    string
	insightLimit int
	insightPage  int
)

var insightCmd = &cobra.Command{
	Use:   "insight",
	Short: "Query Bot Insight telemetry",
}

var insightRunDataCmd = &cobra.Command{
	Use:   "rundata",
	Short: "Fetch automation run telemetry",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runInsight(cmd, func(s *crsdk.Session, q crsdk.InsightQuery) (any, error) {
			return s.GetBotRunData(cmd.Context(), q)
		})
	},
}

var insightTaskLogCmd = &cobra.Command{
	Use:   "tasklog",
	Short: "Fetch business task-log records",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runInsight(cmd, func(s *crsdk.Session, q crsdk.InsightQuery) (any, error) {
			return s.GetTaskLogData(cmd.Context(), q)
		})
	},
}

func runInsight(cmd *cobra.Command, fetch func(*crsdk.Session, crsdk.InsightQuery) (any, error)) error {
	ctx := cmd.Context()

	q := crsdk.InsightQuery{Limit: insightLimit, PageNo: insightPage}

	// Bot Insight accepts unbounded queries, so only resolve a range when
	// the caller asked for one.
	if insightRange != "" || insightFrom != "" || insightTo != "" {
		dr, err := resolveRange(ctx, insightRange, insightFrom, insightTo)
		if errors.Is(err, crsdk.ErrCancelled) {
			fmt.Fprintln(os.Stderr, "cancelled")
			return nil
		}
		if err != nil {
			return err
		}
		q.Range = dr
	}

	session, err := connect(ctx)
	if err != nil {
		return err
	}
	defer closeSession(ctx, session)

	out, err := fetch(session, q)
	if err != nil {
		return err
	}

	return printJSON(out)
}

func init() {
	for _, cmd := range []*cobra.Command{insightRunDataCmd, insightTaskLogCmd} {
		cmd.Flags().StringVar(&insightRange, "range", "", "range shortcut")
		cmd.Flags().StringVar(&insightFrom, "from", "", "explicit start date (YYYY-MM-DD)")
		cmd.Flags().StringVar(&insightTo, "to", "", "explicit end date (YYYY-MM-DD)")
		cmd.Flags().IntVar(&insightLimit, "limit", 0, "page size (0 for server default)")
		cmd.Flags().IntVar(&insightPage, "page", 0, "page number (0 for first)")
	}

	insightCmd.AddCommand(insightRunDataCmd, insightTaskLogCmd)
	rootCmd.AddCommand(insightCmd)
}
