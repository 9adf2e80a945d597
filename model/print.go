package model

import (
	"bytes"
	"fmt"
	"strings"
)

// Print renders the model's name, parameters and info page as aligned
// columns. This is the default "print" vtable entry; a caller registers a
// specialized renderer via a VTable for model families that want a richer
// report. Grounded in carbocation-statmodel's SummaryTable column-padding
// approach, adapted to print a parameter vector plus an info page instead
// of a regression coefficient table.
func (m *Model) Print() string {
	var b bytes.Buffer
	fmt.Fprintf(&b, "%s\n", m.Name)
	b.WriteString(strings.Repeat("-", len(m.Name)))
	b.WriteString("\n")

	if m.Parameters != nil && len(m.Parameters.Vector) > 0 {
		b.WriteString(printRow("parameters", m.Parameters.Vector))
	}
	if m.Info != nil && len(m.Info.Vector) > 0 {
		b.WriteString(printRow("info", m.Info.Vector))
	}
	return b.String()
}

func printRow(label string, values []float64) string {
	var b bytes.Buffer
	fmt.Fprintf(&b, "%s:\n", label)
	for i, v := range values {
		fmt.Fprintf(&b, "  [%2d] %12.6g\n", i, v)
	}
	return b.String()
}
