package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var groupsListUsersVerbose bool

var groupsListUsersCmd = &cobra.Command{
	Use:   "list-users <group_name>",
	Short: "List all the users in a group",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}

		members, err := client.ListGroupMembers(cfg.Team, args[0])
		if err != nil {
			return err
		}

		if groupsListUsersVerbose {
			return printJSON(members)
		}
		for _, member := range members {
			if member.Username != "" {
				fmt.Println(member.Username)
			} else {
				fmt.Println(member.DisplayName)
			}
		}
		return nil
	},
}

func init() {
	groupsCmd.AddCommand(groupsListUsersCmd)
	groupsListUsersCmd.Flags().BoolVar(&groupsListUsersVerbose, "verbose", false, "print JSON output")
}
