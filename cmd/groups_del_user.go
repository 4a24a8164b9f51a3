package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var groupsDelUserCmd = &cobra.Command{
	Use:   "del-user <group_name> <username>",
	Short: "Delete a user from a group",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}

		if err := client.DeleteGroupMember(cfg.Team, args[0], args[1]); err != nil {
			return err
		}
		fmt.Println("OK")
		return nil
	},
}

func init() {
	groupsCmd.AddCommand(groupsDelUserCmd)
}
