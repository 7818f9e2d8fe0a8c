package network

import "strings"

// SearchQuery builds the web search query for a record: full name, position,
// and company, space-joined, skipping whatever is empty.
func SearchQuery(r *Record) string {
	parts := make([]string, 0, 3)
	for _, p := range []string{r.FullName(), r.Position, r.Company} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, " ")
}
