package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var groupsAddUserCmd = &cobra.Command{
	Use:   "add-user <group_name> <username>",
	Short: "Add a user into a group",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}

		if err := client.AddGroupMember(cfg.Team, args[0], args[1]); err != nil {
			return err
		}
		fmt.Println("OK")
		return nil
	},
}

func init() {
	groupsCmd.AddCommand(groupsAddUserCmd)
}
