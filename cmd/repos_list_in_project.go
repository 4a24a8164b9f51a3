package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var reposListInProjectCmd = &cobra.Command{
	Use:   "list-in-project <project>",
	Short: "List repositories in a project",
	Long:  `Lists the names of the repositories whose project key matches <project>.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}

		names, err := client.ListProjectRepos(cfg.Team, args[0])
		if err != nil {
			return err
		}
		for _, name := range names {
			fmt.Println(name)
		}
		return nil
	},
}

func init() {
	reposCmd.AddCommand(reposListInProjectCmd)
}
