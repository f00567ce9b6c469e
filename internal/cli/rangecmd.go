// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

func newRangeCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "range",
		Short:   "Print the earliest start and latest end of the list",
		Example: `  segtool range --seg 30:40 --seg 10:20`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			l, err := listFromFlags(cmd, a.log)
			if err != nil {
				return err
			}
			start, end, err := l.Range()
			if err != nil {
				return err
			}

			places := l.DecimalPlaces()
			w := cmd.OutOrStdout()
			if a.v.GetString(keyOutput) == outputPlain {
				fmt.Fprintf(w, "%s %s\n", start.Format(places), end.Format(places))
				return nil
			}

			tbl := table.NewWriter()
			tbl.SetOutputMirror(w)
			tbl.SetStyle(table.StyleLight)
			tbl.AppendHeader(table.Row{"start", "end", "span", "segments"})
			tbl.AppendRow(table.Row{start.Format(places), end.Format(places), end.Sub(start).String(), summary(l)})
			tbl.Render()

			return nil
		},
	}
	addSegmentFlag(cmd)

	return cmd
}
