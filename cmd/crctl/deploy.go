package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	deployFileID int
	deployRunAs  []int
)

var deployCmd = &cobra.Command{
	Use:   "deploy",
	Short: "Start an automation on one or more runners",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		session, err := connect(ctx)
		if err != nil {
			return err
		}
		defer closeSession(ctx, session)

		deploymentID, err := session.DeployAutomation(ctx, deployFileID, deployRunAs)
		if err != nil {
			return err
		}

		fmt.Println(deploymentID)
		return nil
	},
}

func init() {
	deployCmd.Flags().IntVar(&deployFileID, "file-id", 0, "repository file ID of the automation")
	deployCmd.Flags().IntSliceVar(&deployRunAs, "run-as", nil, "run-as user IDs (repeatable)")
	_ = deployCmd.MarkFlagRequired("file-id")
	_ = deployCmd.MarkFlagRequired("run-as")
	rootCmd.AddCommand(deployCmd)
}
