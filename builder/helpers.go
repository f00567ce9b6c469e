// SPDX-License-Identifier: MIT

package builder

import (
	"github.com/katalvlaran/lvseg/segments"
)

// appendAll assigns IDs from cfg.idFn by final list position, optionally
// shuffles the append order, and appends every segment to l.
func appendAll(method string, l *segments.List, cfg builderConfig, segs []segments.Segment) error {
	if cfg.shuffle {
		if cfg.rng == nil {
			return wrapf(method, ErrNeedRandSource, "WithShuffle needs WithSeed or WithRand")
		}
		cfg.rng.Shuffle(len(segs), func(i, j int) { segs[i], segs[j] = segs[j], segs[i] })
	}

	base := l.Len()
	for i := range segs {
		segs[i].ID = cfg.idFn(base + i)
		if err := l.Append(&segs[i]); err != nil {
			return wrapf(method, ErrConstructFailed, "append #%d: %v", i, err)
		}
	}

	return nil
}
