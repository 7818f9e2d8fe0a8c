package network

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"
)

// Column labels recognized in the export header, after lowercasing and
// trimming. Anything else in the header is carried along but ignored.
const (
	colFirstName   = "first name"
	colLastName    = "last name"
	colEmail       = "email address"
	colCompany     = "company"
	colPosition    = "position"
	colURL         = "url"
	colConnectedOn = "connected on"
)

// Parse extracts connection records from a raw LinkedIn Connections.csv
// export. The export ships with a free-text "Notes" preamble of arbitrary
// length; the first line mentioning both name column labels is taken as the
// header and everything above it is discarded. Rows where both name fields
// are blank are dropped silently. Returns a missing-input error when nothing
// survives.
func Parse(raw string) ([]Record, error) {
	raw = strings.TrimPrefix(raw, "\uFEFF")

	lines := strings.Split(raw, "\n")
	headerIdx := 0
	for i, line := range lines {
		lower := strings.ToLower(line)
		if strings.Contains(lower, colFirstName) && strings.Contains(lower, colLastName) {
			headerIdx = i
			break
		}
	}

	r := csv.NewReader(strings.NewReader(strings.Join(lines[headerIdx:], "\n")))
	r.FieldsPerRecord = -1 // rows narrower than the header yield empty fields, not errors
	r.LazyQuotes = true

	header, err := r.Read()
	if err != nil {
		return nil, MissingInput("no connections found in CSV")
	}
	cols := make(map[string]int, len(header))
	for i, name := range header {
		name = strings.ToLower(strings.TrimSpace(name))
		if _, seen := cols[name]; !seen {
			cols[name] = i
		}
	}

	var records []Record
	for ordinal := 0; ; ordinal++ {
		row, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			// mangled row, skip it
			continue
		}

		field := func(name string) string {
			idx, ok := cols[name]
			if !ok || idx >= len(row) {
				return ""
			}
			return row[idx]
		}

		rec := Record{
			ID:          fmt.Sprintf("conn_%d_%d", ordinal, time.Now().UnixMilli()),
			FirstName:   field(colFirstName),
			LastName:    field(colLastName),
			Email:       field(colEmail),
			Company:     field(colCompany),
			Position:    field(colPosition),
			URL:         field(colURL),
			ConnectedOn: field(colConnectedOn),
		}
		if strings.TrimSpace(rec.FirstName) == "" && strings.TrimSpace(rec.LastName) == "" {
			continue
		}
		rec.Category = Categorize(rec.Position)
		records = append(records, rec)
	}

	if len(records) == 0 {
		return nil, MissingInput("no connections found in CSV")
	}
	return records, nil
}
