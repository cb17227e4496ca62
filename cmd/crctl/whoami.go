package main

import (
	"github.com/spf13/cobra"
)

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Log in and show the bearer token's claims",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		session, err := connect(ctx)
		if err != nil {
			return err
		}
		defer closeSession(ctx, session)

		claims, err := session.TokenClaims()
		if err != nil {
			return err
		}

		return printJSON(claims)
	},
}

func init() {
	rootCmd.AddCommand(whoamiCmd)
}
