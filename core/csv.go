package core

import (
	"strings"

	"CeibaCheckIn/models"
)

// Status labels written by Encode. Decode recognizes them (and nothing broader).
const (
	StatusAttended    = "Asistió"
	StatusNotAttended = "No Asistió"
)

// Header is the fixed header row written by Encode.
var Header = []string{"Nombre", "Día 1", "Día 2", "Estado"}

// columns holds the resolved index of every semantic column; -1 means absent.
type columns struct {
	name, day1, day2, status int
}

// Decode parses delimited text into guests. It never fails: blank lines are dropped,
// missing columns read as "", rows without a name are skipped.
func Decode(text string) []models.Guest {
	lines := splitLines(text)
	rows := make([][]string, 0, len(lines))
	for _, line := range lines {
		rows = append(rows, SplitLine(line))
	}
	return DecodeRows(rows)
}

// DecodeRows applies the header and row rules of Decode to rows that are already
// split into cells (spreadsheet imports). rows[0] is the header.
func DecodeRows(rows [][]string) []models.Guest {
	if len(rows) == 0 {
		return []models.Guest{}
	}
	cols := detectColumns(rows[0])

	guests := make([]models.Guest, 0, len(rows)-1)
	for _, row := range rows[1:] {
		if len(row) == 0 {
			continue
		}
		name := blankCell(cell(row, cols.name))
		if name == "" {
			continue
		}
		status := lowerKey(strings.TrimSpace(cell(row, cols.status)))
		guests = append(guests, models.Guest{
			Name:     TitleCase(name),
			Day1:     CleanField(cell(row, cols.day1)),
			Day2:     CleanField(cell(row, cols.day2)),
			Attended: attendedFromStatus(status),
		})
	}
	return guests
}

// attendedFromStatus keeps the narrow source rule: "asist" present and "no " absent.
func attendedFromStatus(status string) bool {
	if status == "" {
		return false
	}
	return strings.Contains(status, "asist") && !strings.Contains(status, "no ")
}

// detectColumns matches each header cell (trimmed, lower-cased) by substring.
// The first matching cell wins for every key.
func detectColumns(header []string) columns {
	cols := columns{name: -1, day1: -1, day2: -1, status: -1}
	for i, raw := range header {
		h := lowerKey(strings.TrimSpace(raw))
		if cols.name < 0 && containsAny(h, "nombre", "name") {
			cols.name = i
		}
		if cols.day1 < 0 && containsAny(h, "día 1", "dia 1") {
			cols.day1 = i
		}
		if cols.day2 < 0 && containsAny(h, "día 2", "dia 2") {
			cols.day2 = i
		}
		if cols.status < 0 && containsAny(h, "estado", "asist") {
			cols.status = i
		}
	}
	return cols
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

// cell returns row[idx] or "" when idx is absent or out of range.
func cell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return row[idx]
}

// splitLines splits on LF or CRLF and drops blank lines.
func splitLines(text string) []string {
	raw := strings.Split(text, "\n")
	lines := make([]string, 0, len(raw))
	for _, line := range raw {
		line = strings.TrimSuffix(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, line)
	}
	return lines
}

// SplitLine splits one line on commas, honoring double-quoted fields where "" is a
// literal quote. The last field is always emitted, so "a," yields ["a", ""].
func SplitLine(line string) []string {
	var (
		fields   []string
		current  strings.Builder
		inQuotes bool
	)
	// Byte scan is safe: '"' and ',' never appear inside a multi-byte UTF-8 sequence.
	for i := 0; i < len(line); i++ {
		ch := line[i]
		if inQuotes {
			switch {
			case ch == '"' && i+1 < len(line) && line[i+1] == '"':
				current.WriteByte('"')
				i++
			case ch == '"':
				inQuotes = false
			default:
				current.WriteByte(ch)
			}
			continue
		}
		switch ch {
		case ',':
			fields = append(fields, current.String())
			current.Reset()
		case '"':
			inQuotes = true
		default:
			current.WriteByte(ch)
		}
	}
	return append(fields, current.String())
}

// Encode writes guests as canonical CSV: fixed header, one line per guest,
// "\n" between lines and no trailing newline.
func Encode(guests []models.Guest) string {
	rows := Rows(guests)
	lines := make([]string, len(rows))
	for i, row := range rows {
		lines[i] = joinCells(row)
	}
	return strings.Join(lines, "\n")
}

// Rows lays guests out as unescaped cells, header first. Workbook exports use it too.
func Rows(guests []models.Guest) [][]string {
	rows := make([][]string, 0, len(guests)+1)
	rows = append(rows, append([]string(nil), Header...))
	for _, g := range guests {
		rows = append(rows, []string{g.Name, g.Day1, g.Day2, StatusLabel(g.Attended)})
	}
	return rows
}

// StatusLabel is the Estado cell for an attendance flag.
func StatusLabel(attended bool) string {
	if attended {
		return StatusAttended
	}
	return StatusNotAttended
}

func joinCells(cells []string) string {
	escaped := make([]string, len(cells))
	for i, c := range cells {
		escaped[i] = EscapeCell(c)
	}
	return strings.Join(escaped, ",")
}

// EscapeCell quotes c (doubling inner quotes) only if it holds a comma, newline or quote.
func EscapeCell(c string) string {
	if strings.ContainsAny(c, ",\n\"") {
		return `"` + strings.ReplaceAll(c, `"`, `""`) + `"`
	}
	return c
}
