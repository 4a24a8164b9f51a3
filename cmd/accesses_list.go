package cmd

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var accessesListCmd = &cobra.Command{
	Use:   "list <user>",
	Short: "List all accesses of a user",
	Long: `Shows the repositories and groups one user can access.
<user> is the account id of the user. Requires BITBUCKET_CLOUD_SESSION.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}

		teamUUID, err := client.ResolveTeamUUID(cfg.Team)
		if err != nil {
			return err
		}
		summary, err := client.GetUserAccess(teamUUID, args[0])
		if err != nil {
			return err
		}

		// Unlike list-all, the single-user view identifies the user by
		// the uuid the access payload reports.
		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "#\tUSER\tUSER_ID\tREPOS\tGROUPS")
		fmt.Fprintln(w, "-\t----\t-------\t-----\t------")
		fmt.Fprintf(w, "1\t%s\t%s\t%s\t%s\n",
			summary.DisplayName,
			summary.UUID,
			strings.Join(summary.Repos, ","),
			strings.Join(summary.Groups, ","),
		)
		return w.Flush()
	},
}

func init() {
	accessesCmd.AddCommand(accessesListCmd)
}
