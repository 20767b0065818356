// Package feed implements the task feed ingestion pipeline: delimited-text
// parsing, record normalization, and retrieval with fallback.
package feed

import "strings"

// Parse splits raw delimited text into rows of string fields. Commas and tabs
// both act as field separators, even mixed within one input. Double-quoted
// fields may contain separators and newlines, with an embedded quote escaped
// by doubling. Carriage returns are dropped wherever they appear, quoted or
// not, to cope with mixed line endings. A trailing row with no closing
// newline is still emitted. Malformed quoting never fails: an unterminated
// quote consumes the rest of the input into the current field.
func Parse(text string) [][]string {
	var rows [][]string
	var row []string
	var cur strings.Builder
	inQuote := false

	for i := 0; i < len(text); i++ {
		c := text[i]
		if inQuote {
			switch {
			case c == '"' && i+1 < len(text) && text[i+1] == '"':
				cur.WriteByte('"')
				i++
			case c == '"':
				inQuote = false
			case c == '\r':
				// dropped
			default:
				cur.WriteByte(c)
			}
			continue
		}
		switch c {
		case '"':
			inQuote = true
		case ',', '\t':
			row = append(row, cur.String())
			cur.Reset()
		case '\n':
			row = append(row, cur.String())
			rows = append(rows, row)
			row = nil
			cur.Reset()
		case '\r':
			// dropped
		default:
			cur.WriteByte(c)
		}
	}

	if cur.Len() > 0 || len(row) > 0 {
		row = append(row, cur.String())
		rows = append(rows, row)
	}
	return rows
}
