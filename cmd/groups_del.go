package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var groupsDelCmd = &cobra.Command{
	Use:   "del <group_name>",
	Short: "Delete a group",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}

		if err := client.DeleteGroup(cfg.Team, args[0]); err != nil {
			return err
		}
		fmt.Println("OK")
		return nil
	},
}

func init() {
	groupsCmd.AddCommand(groupsDelCmd)
}
