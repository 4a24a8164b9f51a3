package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var usersInviteGroup string

var usersInviteCmd = &cobra.Command{
	Use:   "invite <email>",
	Short: "Invite a user into the team",
	Long: `Sends a team invitation to an email address. On acceptance the
user joins the given group. Bitbucket disallows adding a member directly
by username, so this is the way in.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		email := args[0]

		client, err := newClient()
		if err != nil {
			return err
		}

		if err := client.InviteUser(cfg.Team, email, usersInviteGroup); err != nil {
			return err
		}
		fmt.Printf("Invitation sent to %s (group %s)\n", email, usersInviteGroup)
		return nil
	},
}

func init() {
	usersCmd.AddCommand(usersInviteCmd)
	usersInviteCmd.Flags().StringVar(&usersInviteGroup, "group", "developers", "group the invitee joins on acceptance")
}
