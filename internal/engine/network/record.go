// Package network holds the connection-graph core: the LinkedIn export
// parser, the title classifier, the enrichment engine, the whole-network
// query engine, and the sqlite-backed record store.
package network

import "strings"

// Record is one imported LinkedIn connection.
type Record struct {
	ID          string   `json:"id"`
	FirstName   string   `json:"firstName"`
	LastName    string   `json:"lastName"`
	Email       string   `json:"email,omitempty"`
	Company     string   `json:"company,omitempty"`
	Position    string   `json:"position,omitempty"`
	URL         string   `json:"url,omitempty"`
	ConnectedOn string   `json:"connectedOn,omitempty"`
	Category    Category `json:"category"`
	Blurb       string   `json:"blurb,omitempty"`
	EnrichedAt  string   `json:"enrichedAt,omitempty"`
}

// FullName joins first and last name, trimming the gap when one is empty.
func (r *Record) FullName() string {
	return strings.TrimSpace(r.FirstName + " " + r.LastName)
}

// Enriched reports whether the record already carries a blurb.
func (r *Record) Enriched() bool {
	return r.Blurb != ""
}

// Credentials is the API key pair stored alongside the record set.
type Credentials struct {
	TavilyKey string `json:"tavily"`
	GeminiKey string `json:"gemini"`
}

// Complete reports whether both keys are present.
func (c Credentials) Complete() bool {
	return c.TavilyKey != "" && c.GeminiKey != ""
}

// RecordSet is the single unit of persisted state: all connections in
// import order plus the credential pair. Revision increments on every save
// and reset, so cached answers derived from one snapshot never serve
// another.
type RecordSet struct {
	Records     []Record    `json:"connections"`
	Credentials Credentials `json:"credentials"`
	Revision    int64       `json:"revision"`
}

// Find returns the record with the given ID, or nil.
func (s *RecordSet) Find(id string) *Record {
	for i := range s.Records {
		if s.Records[i].ID == id {
			return &s.Records[i]
		}
	}
	return nil
}

// Unenriched returns records without a blurb, in set order, capped at limit.
// limit <= 0 means no cap.
func (s *RecordSet) Unenriched(limit int) []*Record {
	var out []*Record
	for i := range s.Records {
		if s.Records[i].Enriched() {
			continue
		}
		out = append(out, &s.Records[i])
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out
}

// CountUnenriched returns how many records still lack a blurb.
func (s *RecordSet) CountUnenriched() int {
	n := 0
	for i := range s.Records {
		if !s.Records[i].Enriched() {
			n++
		}
	}
	return n
}

// CategoryCounts returns the number of records per category tag.
func (s *RecordSet) CategoryCounts() map[Category]int {
	counts := make(map[Category]int)
	for i := range s.Records {
		counts[s.Records[i].Category]++
	}
	return counts
}
