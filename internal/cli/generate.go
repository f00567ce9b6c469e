// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvseg/builder"
	"github.com/katalvlaran/lvseg/gps"
)

func newGenerateCommand(a *app) *cobra.Command {
	var (
		n                      int
		startText              string
		duration, gap, span    time.Duration
		seed                   int64
		random, shuffle, merge bool
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Print a synthetic segment list",
		Example: `  segtool generate --n 4 --start 1000 --duration 60s --gap 30s
  segtool generate --random --n 10 --start 1000 --span 1h --duration 5m --seed 7 --coalesce`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			start, err := gps.Parse(startText)
			if err != nil {
				return fmt.Errorf("--start: %w", err)
			}

			var opts []builder.BuilderOption
			if cmd.Flags().Changed("seed") || random || shuffle {
				opts = append(opts, builder.WithSeed(seed))
			}
			if shuffle {
				opts = append(opts, builder.WithShuffle())
			}

			con := builder.Regular(n, start, duration, gap)
			if random {
				con = builder.Random(n, start, span, duration)
			}
			l, err := builder.BuildList(opts, con)
			if err != nil {
				return err
			}
			a.log.Info("generated", "segments", l.Len(), "random", random, "seed", seed)

			if merge {
				if err := l.Coalesce(); err != nil {
					return err
				}
				a.log.Info("coalesced", "segments", l.Len())
			}
			a.renderList(cmd.OutOrStdout(), l)

			return nil
		},
	}
	f := cmd.Flags()
	f.IntVar(&n, "n", 10, "number of segments")
	f.StringVar(&startText, "start", "0", "GPS time of the first segment")
	f.DurationVar(&duration, "duration", time.Minute, "segment duration (maximum duration with --random)")
	f.DurationVar(&gap, "gap", 0, "gap between consecutive regular segments")
	f.DurationVar(&span, "span", time.Hour, "window the random starts fall in")
	f.Int64Var(&seed, "seed", 1, "random seed")
	f.BoolVar(&random, "random", false, "scatter segments randomly instead of a regular grid")
	f.BoolVar(&shuffle, "shuffle", false, "append segments in random order")
	f.BoolVar(&merge, "coalesce", false, "coalesce the generated list")

	return cmd
}
