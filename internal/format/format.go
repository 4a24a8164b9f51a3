// Package format renders access summaries for humans (table), machines
// (json), or pipelines (tab-separated).
package format

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/Genzer/bitbucklet/internal/api"
)

// Format selects an output renderer.
type Format string

const (
	Table Format = "table"
	JSON  Format = "json"
	Pipe  Format = "pipe"
)

// Parse maps a --format value to a Format. Empty or unrecognized values
// fall back to the table renderer.
func Parse(s string) Format {
	switch Format(strings.ToLower(s)) {
	case JSON:
		return JSON
	case Pipe:
		return Pipe
	default:
		return Table
	}
}

// Write renders the summaries in the chosen format.
func Write(w io.Writer, f Format, summaries []api.AccessSummary) error {
	switch f {
	case JSON:
		return writeJSON(w, summaries)
	case Pipe:
		return writePipe(w, summaries)
	default:
		return writeTable(w, summaries)
	}
}

func writeTable(w io.Writer, summaries []api.AccessSummary) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "#\tUSER\tUSER_ID\tREPOS\tGROUPS")
	fmt.Fprintln(tw, "-\t----\t-------\t-----\t------")
	for i, s := range summaries {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\n",
			i+1,
			s.DisplayName,
			s.AccountID,
			strings.Join(s.Repos, ","),
			strings.Join(s.Groups, ","),
		)
	}
	return tw.Flush()
}

func writeJSON(w io.Writer, summaries []api.AccessSummary) error {
	// Emit [] rather than null for an empty team.
	if summaries == nil {
		summaries = []api.AccessSummary{}
	}
	out, err := json.MarshalIndent(summaries, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(out))
	return err
}

// writePipe prints one line per user/repo pair, ready for awk and
// friends.
func writePipe(w io.Writer, summaries []api.AccessSummary) error {
	for _, s := range summaries {
		for _, repo := range s.Repos {
			if _, err := fmt.Fprintf(w, "%s\t%s\t%s\n", s.DisplayName, s.AccountID, repo); err != nil {
				return err
			}
		}
	}
	return nil
}
