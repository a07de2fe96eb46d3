package importer

import "strings"

// ParseCSV parses comma-separated contact rows. An optional header row is
// detected by the presence of "name", "phone" or "email" in the first row
// (case-insensitive); without one, columns are positional
// name,phone,email,company,notes. Quoted fields may contain commas,
// newlines and doubled quotes. Ragged and blank rows are tolerated.
func ParseCSV(text string) []RawContact {
	rows := splitCSVRows(text)
	if len(rows) == 0 {
		return nil
	}

	first := make([]string, len(rows[0]))
	for i, cell := range rows[0] {
		first[i] = strings.ToLower(cell)
	}
	hasHeader := contains(first, "name") || contains(first, "phone") || contains(first, "email")

	start := 0
	var header []string
	if hasHeader {
		header = first
		start = 1
	}

	var out []RawContact
	for _, row := range rows[start:] {
		var rec RawContact
		if hasHeader {
			rec = RawContact{
				Name:    cellByKey(header, row, "name"),
				Phone:   cellByKey(header, row, "phone"),
				Email:   cellByKey(header, row, "email"),
				Company: cellByKey(header, row, "company"),
				Notes:   cellByKey(header, row, "notes"),
			}
		} else {
			rec = RawContact{
				Name:    cellAt(row, 0),
				Phone:   cellAt(row, 1),
				Email:   cellAt(row, 2),
				Company: cellAt(row, 3),
				Notes:   cellAt(row, 4),
			}
		}
		out = append(out, rec)
	}
	return out
}

// splitCSVRows walks the text character by character: doubled quotes
// inside a quoted field escape a literal quote, commas and newlines are
// literal while quoted, CR is dropped. Rows whose cells are all blank
// are filtered out. encoding/csv is too strict for this input (it
// rejects ragged rows and stray quotes this format tolerates).
func splitCSVRows(text string) [][]string {
	var rows [][]string
	var row []string
	var cur strings.Builder
	inQuote := false

	flushCell := func() {
		row = append(row, strings.TrimSpace(cur.String()))
		cur.Reset()
	}
	flushRow := func() {
		flushCell()
		rows = append(rows, row)
		row = nil
	}

	runes := []rune(text)
	for i := 0; i < len(runes); i++ {
		ch := runes[i]
		switch {
		case ch == '"':
			if inQuote && i+1 < len(runes) && runes[i+1] == '"' {
				cur.WriteRune('"')
				i++
			} else {
				inQuote = !inQuote
			}
		case !inQuote && ch == ',':
			flushCell()
		case !inQuote && ch == '\n':
			flushRow()
		case ch == '\r':
			// dropped even inside quotes
		default:
			cur.WriteRune(ch)
		}
	}
	if cur.Len() > 0 || len(row) > 0 {
		flushRow()
	}

	var filtered [][]string
	for _, r := range rows {
		for _, cell := range r {
			if strings.TrimSpace(cell) != "" {
				filtered = append(filtered, r)
				break
			}
		}
	}
	return filtered
}

func contains(cells []string, key string) bool {
	for _, c := range cells {
		if c == key {
			return true
		}
	}
	return false
}

func cellByKey(header, row []string, key string) string {
	for i, h := range header {
		if h == key && i < len(row) {
			return row[i]
		}
	}
	return ""
}

func cellAt(row []string, i int) string {
	if i < len(row) {
		return row[i]
	}
	return ""
}
