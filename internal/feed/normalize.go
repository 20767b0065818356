package feed

import (
	"sort"
	"strconv"
	"strings"
	"time"
)

// Column names expected in the spreadsheet header. Matching is
// case-insensitive against trimmed header cells.
const (
	colKey          = "Clave"
	colType         = "Tipo de Incidencia"
	colSummary      = "Resumen"
	colState        = "Estado"
	colAssignee     = "Persona asignada"
	colStart        = "Start date"
	colStartDeduced = "Fecha de inicio deducida"
	colDue          = "Fecha de vencimiento"
	colDueDeduced   = "Fecha de vencimiento deducida"
	colColor        = "Issue color"
	colGas          = "Gas"
)

// dateLayouts are tried in order when parsing feed dates. Date-only layouts
// are interpreted in the display location.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
	"01/02/2006 15:04",
	"01/02/2006",
	"Jan 2, 2006",
	"2 Jan 2006",
}

// columnIndex resolves a named column to its position in the header row.
// Returns -1 when absent; a missing column is a data condition, not an error.
func columnIndex(header []string, name string) int {
	for i, h := range header {
		if strings.EqualFold(strings.TrimSpace(h), name) {
			return i
		}
	}
	return -1
}

// cell returns the trimmed field at idx, or "" when the column was not found
// or the row is short.
func cell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

// parseDate parses feed date text leniently. Returns nil when the text is
// empty or matches no known layout.
func parseDate(s string, loc *time.Location) *time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	for _, layout := range dateLayouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return &t
		}
	}
	return nil
}

// Normalize converts parsed rows into Task records. The first row is the
// header. For each data row the deduced start/due column is preferred over
// the plain one when non-empty, dates that fail to parse become nil, Gas
// defaults to 0 when unparsable, and the color name is resolved through the
// color table. Rows with both key and summary empty are dropped. The result
// is sorted ascending by due date with undated tasks last, preserving input
// order among equal or undated entries.
func Normalize(rows [][]string, loc *time.Location) []Task {
	if len(rows) == 0 {
		return nil
	}
	if loc == nil {
		loc = time.Local
	}

	header := rows[0]
	iKey := columnIndex(header, colKey)
	iType := columnIndex(header, colType)
	iSum := columnIndex(header, colSummary)
	iState := columnIndex(header, colState)
	iAssg := columnIndex(header, colAssignee)
	iStart := columnIndex(header, colStart)
	iStartD := columnIndex(header, colStartDeduced)
	iDue := columnIndex(header, colDue)
	iDueD := columnIndex(header, colDueDeduced)
	iColor := columnIndex(header, colColor)
	iGas := columnIndex(header, colGas)

	var out []Task
	for _, row := range rows[1:] {
		if len(row) == 0 {
			continue
		}

		key := cell(row, iKey)
		sum := cell(row, iSum)
		if key == "" && sum == "" {
			continue
		}

		startTxt := cell(row, iStartD)
		if startTxt == "" {
			startTxt = cell(row, iStart)
		}
		dueTxt := cell(row, iDueD)
		if dueTxt == "" {
			dueTxt = cell(row, iDue)
		}

		gas, err := strconv.ParseFloat(cell(row, iGas), 64)
		if err != nil {
			gas = 0
		}

		out = append(out, Task{
			Key:      key,
			Type:     cell(row, iType),
			Summary:  sum,
			State:    cell(row, iState),
			Assignee: cell(row, iAssg),
			Start:    parseDate(startTxt, loc),
			Due:      parseDate(dueTxt, loc),
			Color:    ResolveColor(cell(row, iColor)),
			Gas:      gas,
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		di, dj := out[i].Due, out[j].Due
		switch {
		case di == nil:
			return false
		case dj == nil:
			return true
		default:
			return di.Before(*dj)
		}
	})
	return out
}
