// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"io"

	"github.com/dustin/go-humanize"
	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/katalvlaran/lvseg/segments"
)

// renderList writes the list in the configured output format.
func (a *app) renderList(w io.Writer, l *segments.List) {
	if a.v.GetString(keyOutput) == outputPlain {
		fmt.Fprint(w, l.String())
		return
	}

	places := l.DecimalPlaces()
	tbl := table.NewWriter()
	tbl.SetOutputMirror(w)
	tbl.SetStyle(table.StyleLight)
	tbl.AppendHeader(table.Row{"#", "id", "start", "end", "duration"})
	for i, s := range l.Segments() {
		tbl.AppendRow(table.Row{i, s.ID, s.Start.Format(places), s.End.Format(places), s.Duration().String()})
	}
	tbl.AppendFooter(table.Row{"", "", "", "total", summary(l)})
	tbl.Render()
}

// summary renders "N segments" with thousands separators.
func summary(l *segments.List) string {
	n := l.Len()
	noun := "segments"
	if n == 1 {
		noun = "segment"
	}

	return fmt.Sprintf("%s %s", humanize.Comma(int64(n)), noun)
}
