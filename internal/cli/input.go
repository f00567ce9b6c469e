// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvseg/gps"
	"github.com/katalvlaran/lvseg/segments"
)

// addSegmentFlag registers the repeatable --seg flag.
func addSegmentFlag(cmd *cobra.Command) {
	cmd.Flags().StringArrayP("seg", "s", nil, "segment as start:end[:id], repeatable; times are decimal seconds")
}

// parseSegment reads "start:end[:id]". Without an id the segment gets
// fallbackID.
func parseSegment(text string, fallbackID int) (segments.Segment, error) {
	parts := strings.Split(text, ":")
	if len(parts) < 2 || len(parts) > 3 {
		return segments.Segment{}, fmt.Errorf("segment %q: want start:end[:id]", text)
	}
	start, err := gps.Parse(parts[0])
	if err != nil {
		return segments.Segment{}, fmt.Errorf("segment %q: start: %w", text, err)
	}
	end, err := gps.Parse(parts[1])
	if err != nil {
		return segments.Segment{}, fmt.Errorf("segment %q: end: %w", text, err)
	}
	id := fallbackID
	if len(parts) == 3 {
		if id, err = strconv.Atoi(parts[2]); err != nil {
			return segments.Segment{}, fmt.Errorf("segment %q: id: %w", text, err)
		}
	}

	seg, err := segments.NewSegment(&start, &end, id)
	if err != nil {
		return segments.Segment{}, fmt.Errorf("segment %q: %w", text, err)
	}

	return seg, nil
}

// listFromFlags builds a list from every --seg value in order. Segments
// without an explicit id are numbered from 1 by position.
func listFromFlags(cmd *cobra.Command, log hclog.Logger) (*segments.List, error) {
	raw, err := cmd.Flags().GetStringArray("seg")
	if err != nil {
		return nil, err
	}
	if len(raw) == 0 {
		return nil, fmt.Errorf("at least one --seg is required")
	}

	l := segments.NewList()
	for i, text := range raw {
		seg, err := parseSegment(text, i+1)
		if err != nil {
			return nil, err
		}
		if err := l.Append(&seg); err != nil {
			return nil, fmt.Errorf("append %q: %w", text, err)
		}
		log.Trace("appended segment", "segment", seg.String(), "sorted", l.Sorted(), "disjoint", l.Disjoint())
	}
	log.Debug("built list", "segments", l.Len(), "sorted", l.Sorted(), "disjoint", l.Disjoint())

	return l, nil
}
