// SPDX-License-Identifier: MIT

package segments

import (
	"strconv"
	"strings"
)

// String renders one line per segment, "id start end", printing bounds with
// DecimalPlaces fractional digits so that every value is exact and columns
// line up. An uninitialized list renders as "<uninitialized>".
func (l *List) String() string {
	if !l.IsInitialized() {
		return "<uninitialized>"
	}
	var sb strings.Builder
	for _, s := range l.segs {
		sb.WriteString(strconv.Itoa(s.ID))
		sb.WriteByte(' ')
		sb.WriteString(s.Start.Format(l.dplaces))
		sb.WriteByte(' ')
		sb.WriteString(s.End.Format(l.dplaces))
		sb.WriteByte('\n')
	}

	return sb.String()
}
