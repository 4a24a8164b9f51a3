package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var usersAddCmd = &cobra.Command{
	Use:   "add <username>",
	Short: "Add an existing Bitbucket user",
	Long: `Adds a user into the team by putting them into the developers
group. Adding a user to any group makes them a team member; Bitbucket
creates the administrators and developers groups by default, so
developers is the sensible target.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}

		if err := client.AddGroupMember(cfg.Team, "developers", args[0]); err != nil {
			return err
		}
		fmt.Println("OK")
		return nil
	},
}

func init() {
	usersCmd.AddCommand(usersAddCmd)
}
