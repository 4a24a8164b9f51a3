package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var usersDelInvitationCmd = &cobra.Command{
	Use:   "del-invitation <email>",
	Short: "Withdraw a pending invitation",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}

		if err := client.DeleteInvitation(cfg.Team, args[0]); err != nil {
			return err
		}
		fmt.Println("OK")
		return nil
	},
}

func init() {
	usersCmd.AddCommand(usersDelInvitationCmd)
}
