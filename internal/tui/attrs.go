package tui

import (
	"fmt"
	"sort"

	table "github.com/charmbracelet/bubbles/table"

	"voxview/internal/h5io"
)

// refreshAttrs rebuilds the fingerprint table from the loaded dataset's
// attributes.
func (m *Model) refreshAttrs() {
	if m.selPath == "" || m.selDataset == "" {
		m.showAttrs = false
		m.status = "no dataset loaded"
		return
	}
	fp, err := h5io.ReadFingerprint(m.selPath, m.selDataset)
	if err != nil {
		m.showAttrs = false
		m.status = "fingerprint error: " + err.Error()
		return
	}
	if len(fp) == 0 {
		m.showAttrs = false
		m.status = "no attributes on " + m.selDataset
		return
	}

	names := make([]string, 0, len(fp))
	maxName := len("attribute")
	for name := range fp {
		names = append(names, name)
		if len(name) > maxName {
			maxName = len(name)
		}
	}
	sort.Strings(names)

	rows := make([]table.Row, 0, len(names))
	for _, name := range names {
		rows = append(rows, table.Row{name, formatAttr(fp[name])})
	}
	cols := []table.Column{
		{Title: "attribute", Width: min(maxName+2, 24)},
		{Title: "value", Width: 32},
	}
	// Avoid transient mismatch: clear rows, set columns, then set rows
	m.tbl.SetRows(nil)
	m.tbl.SetColumns(cols)
	m.tbl.SetRows(rows)
}

// formatAttr flattens an attribute value for display. Attribute reads
// come back as scalars, slices, or maps for compound types.
func formatAttr(v interface{}) string {
	switch t := v.(type) {
	case string:
		return t
	case float64:
		return fmt.Sprintf("%g", t)
	case float32:
		return fmt.Sprintf("%g", t)
	case []string:
		if len(t) == 1 {
			return t[0]
		}
		return fmt.Sprintf("%v", t)
	case []float64:
		if len(t) == 1 {
			return fmt.Sprintf("%g", t[0])
		}
		return fmt.Sprintf("%v", t)
	default:
		return fmt.Sprintf("%v", t)
	}
}
