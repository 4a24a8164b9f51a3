package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var groupsAddCmd = &cobra.Command{
	Use:   "add <group_name>",
	Short: "Add a new group",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}

		body, err := client.CreateGroup(cfg.Team, args[0])
		if err != nil {
			return err
		}
		fmt.Println(body)
		return nil
	},
}

func init() {
	groupsCmd.AddCommand(groupsAddCmd)
}
