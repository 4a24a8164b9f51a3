package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/Genzer/bitbucklet/internal/format"
)

var accessesListAllFormat string

var accessesListAllCmd = &cobra.Command{
	Use:   "list-all",
	Short: "List all accesses of all users",
	Long: `Produces, for every member of the team, the repositories and
groups they can access. Bitbucket has no bulk endpoint for this, so one
request is issued per member with a 2-second pause in between; expect the
command to take a while on large teams. Requires BITBUCKET_CLOUD_SESSION.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}

		summaries, err := client.ListAllAccesses(cfg.Team, nil)
		if err != nil {
			return err
		}

		return format.Write(os.Stdout, format.Parse(accessesListAllFormat), summaries)
	},
}

func init() {
	accessesCmd.AddCommand(accessesListAllCmd)
	accessesListAllCmd.Flags().StringVarP(&accessesListAllFormat, "format", "f", "table", "format the output: table, json or pipe")
}
