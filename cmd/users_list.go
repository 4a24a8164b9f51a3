package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var usersListVerbose bool

var usersListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all the users (sort of)",
	Long: `Lists the members of the team. Only the first page of members is
fetched.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}

		members, err := client.ListMembers(cfg.Team)
		if err != nil {
			return err
		}

		if usersListVerbose {
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
	usersCmd.AddCommand(usersListCmd)
	usersListCmd.Flags().BoolVar(&usersListVerbose, "verbose", false, "print JSON output")
}
