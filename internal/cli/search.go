// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvseg/gps"
)

func newSearchCommand(a *app) *cobra.Command {
	var (
		at       []string
		coalesce bool
	)

	cmd := &cobra.Command{
		Use:     "search",
		Short:   "Find the segment containing each query time",
		Example: `  segtool search --seg 10:20:1 --seg 30:40:2 --at 15 --at 25 --at 30`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if len(at) == 0 {
				return fmt.Errorf("at least one --at is required")
			}
			l, err := listFromFlags(cmd, a.log)
			if err != nil {
				return err
			}
			if coalesce {
				if err := l.Coalesce(); err != nil {
					return err
				}
			}

			places := l.DecimalPlaces()
			plain := a.v.GetString(keyOutput) == outputPlain
			w := cmd.OutOrStdout()
			tbl := table.NewWriter()
			tbl.SetOutputMirror(w)
			tbl.SetStyle(table.StyleLight)
			tbl.AppendHeader(table.Row{"time", "id", "start", "end"})

			hits := 0
			for _, text := range at {
				t, err := gps.Parse(text)
				if err != nil {
					return fmt.Errorf("--at %q: %w", text, err)
				}
				seg, ok, err := l.Search(&t)
				if err != nil {
					return err
				}
				a.log.Debug("search", "time", t.String(), "found", ok)

				if !ok {
					if plain {
						fmt.Fprintf(w, "%s -\n", text)
					} else {
						tbl.AppendRow(table.Row{text, "-", "", ""})
					}
					continue
				}
				hits++
				if plain {
					fmt.Fprintf(w, "%s %d %s %s\n", text, seg.ID, seg.Start.Format(places), seg.End.Format(places))
				} else {
					tbl.AppendRow(table.Row{text, seg.ID, seg.Start.Format(places), seg.End.Format(places)})
				}
			}
			if !plain {
				tbl.AppendFooter(table.Row{"", "", "hits", fmt.Sprintf("%d/%d", hits, len(at))})
				tbl.Render()
			}

			return nil
		},
	}
	addSegmentFlag(cmd)
	cmd.Flags().StringArrayVar(&at, "at", nil, "query time, repeatable")
	cmd.Flags().BoolVar(&coalesce, "coalesce", false, "coalesce the list before searching")

	return cmd
}
