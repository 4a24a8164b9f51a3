package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var groupsListVerbose bool

var groupsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all groups",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}

		groups, err := client.ListGroups(cfg.Team)
		if err != nil {
			return err
		}

		if groupsListVerbose {
			return printJSON(groups)
		}
		for _, group := range groups {
			fmt.Println(group.Slug)
		}
		return nil
	},
}

func init() {
	groupsCmd.AddCommand(groupsListCmd)
	groupsListCmd.Flags().BoolVar(&groupsListVerbose, "verbose", false, "print JSON output")
}
