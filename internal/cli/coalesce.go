// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvseg/gps"
)

func newCoalesceCommand(a *app) *cobra.Command {
	var keep []string

	cmd := &cobra.Command{
		Use:   "coalesce",
		Short: "Sort and merge overlapping or touching segments",
		Example: `  segtool coalesce --seg 10:20 --seg 15:30 --seg 40:50
  segtool coalesce --seg 10:20 --seg 30:40 --keep 12 --keep 35 -o plain`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			l, err := listFromFlags(cmd, a.log)
			if err != nil {
				return err
			}
			before := l.Len()
			if err := l.Coalesce(); err != nil {
				return err
			}
			a.log.Info("coalesced", "before", before, "after", l.Len())

			if len(keep) > 0 {
				lo, hi, err := parseWindow(keep)
				if err != nil {
					return err
				}
				if err := l.Keep(&lo, &hi); err != nil {
					return err
				}
				a.log.Info("clipped", "start", lo.String(), "end", hi.String(), "remaining", l.Len())
			}

			a.renderList(cmd.OutOrStdout(), l)

			return nil
		},
	}
	addSegmentFlag(cmd)
	cmd.Flags().StringSliceVar(&keep, "keep", nil, "clip the result to the window start,end")

	return cmd
}

// parseWindow reads the two bounds given to --keep.
func parseWindow(bounds []string) (lo, hi gps.Time, err error) {
	if len(bounds) != 2 {
		return lo, hi, fmt.Errorf("--keep wants exactly two times, got %d", len(bounds))
	}
	if lo, err = gps.Parse(bounds[0]); err != nil {
		return lo, hi, fmt.Errorf("--keep start: %w", err)
	}
	if hi, err = gps.Parse(bounds[1]); err != nil {
		return lo, hi, fmt.Errorf("--keep end: %w", err)
	}

	return lo, hi, nil
}
