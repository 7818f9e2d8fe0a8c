package network

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memStore is an in-memory Store for tests. Load hands out copies, the way
// the sqlite store does, so mutations only land through Save.
type memStore struct {
	set   RecordSet
	saves int
}

func (m *memStore) Load(_ context.Context) (*RecordSet, error) {
	cp := m.set
	cp.Records = append([]Record(nil), m.set.Records...)
	return &cp, nil
}

func (m *memStore) Save(_ context.Context, set *RecordSet) error {
	set.Revision++
	m.set = *set
	m.set.Records = append([]Record(nil), set.Records...)
	m.saves++
	return nil
}

func (m *memStore) Reset(_ context.Context) error {
	m.set = RecordSet{Revision: m.set.Revision + 1}
	return nil
}

type fakeSearcher struct {
	fn    func(query string) ([]SearchResult, error)
	calls int
}

func (f *fakeSearcher) Search(_ context.Context, query, _ string) ([]SearchResult, error) {
	f.calls++
	if f.fn != nil {
		return f.fn(query)
	}
	return []SearchResult{{Title: "Profile", Content: "A person."}}, nil
}

type fakeGen struct {
	summarize func(prompt string) (string, error)
	answer    func(prompt string) (string, error)
	calls     int
}

func (f *fakeGen) Summarize(_ context.Context, prompt, _ string) (string, error) {
	f.calls++
	if f.summarize != nil {
		return f.summarize(prompt)
	}
	return "A blurb.", nil
}

func (f *fakeGen) Answer(_ context.Context, prompt, _ string) (string, error) {
	f.calls++
	if f.answer != nil {
		return f.answer(prompt)
	}
	return "An answer.", nil
}

var fastEnrich = EnrichConfig{
	BatchSize:       10,
	ContextLimit:    3000,
	StepPause:       time.Microsecond,
	SummaryInterval: time.Microsecond,
}

func storeWith(keys bool, records ...Record) *memStore {
	st := &memStore{set: RecordSet{Records: records}}
	if keys {
		st.set.Credentials = Credentials{TavilyKey: "tvly-x", GeminiKey: "AIza-x"}
	}
	return st
}

func TestEnrichOne(t *testing.T) {
	st := storeWith(true, Record{ID: "conn_0_1", FirstName: "Jane", LastName: "Doe", Position: "Founder", Company: "Acme"})
	search := &fakeSearcher{fn: func(query string) ([]SearchResult, error) {
		assert.Equal(t, "Jane Doe Founder Acme", query)
		return []SearchResult{{Title: "Jane Doe", Content: "Founder of Acme."}}, nil
	}}
	gen := &fakeGen{summarize: func(prompt string) (string, error) {
		assert.Contains(t, prompt, `about "Jane Doe"`)
		assert.Contains(t, prompt, "- Jane Doe: Founder of Acme.")
		return "Jane Doe founded Acme.", nil
	}}

	e := NewEnricher(search, gen, st, fastEnrich)
	rec, err := e.EnrichOne(context.Background(), "conn_0_1")
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe founded Acme.", rec.Blurb)
	assert.NotEmpty(t, rec.EnrichedAt)

	// Persisted, with blurb and timestamp set together.
	saved := st.set.Records[0]
	assert.Equal(t, rec.Blurb, saved.Blurb)
	assert.Equal(t, rec.EnrichedAt, saved.EnrichedAt)
	assert.Equal(t, 1, st.saves)

	_, err = time.Parse("2006-01-02T15:04:05Z", rec.EnrichedAt)
	assert.NoError(t, err)
}

func TestEnrichOneMissingKeys(t *testing.T) {
	st := storeWith(false, Record{ID: "conn_0_1", FirstName: "Jane"})
	search := &fakeSearcher{}
	gen := &fakeGen{}

	e := NewEnricher(search, gen, st, fastEnrich)
	_, err := e.EnrichOne(context.Background(), "conn_0_1")
	require.Error(t, err)
	assert.Equal(t, KindMissingConfig, ErrKind(err))

	// Precondition failure: no network call attempted.
	assert.Zero(t, search.calls)
	assert.Zero(t, gen.calls)
}

func TestEnrichOneNotFound(t *testing.T) {
	st := storeWith(true, Record{ID: "conn_0_1", FirstName: "Jane"})
	e := NewEnricher(&fakeSearcher{}, &fakeGen{}, st, fastEnrich)
	_, err := e.EnrichOne(context.Background(), "conn_9_9")
	require.Error(t, err)
	assert.Equal(t, KindNotFound, ErrKind(err))
}

func TestEnrichOneUpstreamFailure(t *testing.T) {
	st := storeWith(true, Record{ID: "conn_0_1", FirstName: "Jane"})
	search := &fakeSearcher{fn: func(string) ([]SearchResult, error) {
		return nil, errors.New("status 502")
	}}
	e := NewEnricher(search, &fakeGen{}, st, fastEnrich)
	_, err := e.EnrichOne(context.Background(), "conn_0_1")
	require.Error(t, err)
	assert.Equal(t, KindUpstream, ErrKind(err))

	// Failure leaves the record untouched: no blurb, no timestamp.
	assert.Empty(t, st.set.Records[0].Blurb)
	assert.Empty(t, st.set.Records[0].EnrichedAt)
	assert.Zero(t, st.saves)
}

func TestEnrichNoResultsUsesPlaceholder(t *testing.T) {
	st := storeWith(true, Record{ID: "conn_0_1", FirstName: "Jane", LastName: "Doe"})
	search := &fakeSearcher{fn: func(string) ([]SearchResult, error) {
		return nil, nil
	}}
	gen := &fakeGen{summarize: func(prompt string) (string, error) {
		assert.Contains(t, prompt, "No search results found.")
		return "Professional on LinkedIn.", nil
	}}
	e := NewEnricher(search, gen, st, fastEnrich)
	_, err := e.EnrichOne(context.Background(), "conn_0_1")
	require.NoError(t, err)
}

func TestEnrichEmptyGenerationFallsBack(t *testing.T) {
	st := storeWith(true, Record{ID: "conn_0_1", FirstName: "Jane", LastName: "Doe"})
	gen := &fakeGen{summarize: func(string) (string, error) {
		return "   ", nil
	}}
	e := NewEnricher(&fakeSearcher{}, gen, st, fastEnrich)
	rec, err := e.EnrichOne(context.Background(), "conn_0_1")
	require.NoError(t, err)
	assert.Equal(t, "Professional on LinkedIn.", rec.Blurb)
	assert.NotEmpty(t, rec.EnrichedAt)
}

func TestEnrichContextTruncated(t *testing.T) {
	st := storeWith(true, Record{ID: "conn_0_1", FirstName: "Jane", LastName: "Doe"})
	search := &fakeSearcher{fn: func(string) ([]SearchResult, error) {
		return []SearchResult{{Title: "Long", Content: strings.Repeat("x", 10000)}}, nil
	}}
	gen := &fakeGen{summarize: func(prompt string) (string, error) {
		assert.Less(t, len(prompt), 4000)
		return "ok", nil
	}}
	e := NewEnricher(search, gen, st, fastEnrich)
	_, err := e.EnrichOne(context.Background(), "conn_0_1")
	require.NoError(t, err)
}

func batchRecords(n int) []Record {
	records := make([]Record, n)
	for i := range records {
		records[i] = Record{
			ID:        fmt.Sprintf("conn_%d_1", i),
			FirstName: fmt.Sprintf("Person%d", i),
			LastName:  "Test",
		}
	}
	return records
}

func TestEnrichBatchAdvancesFrontierInOrder(t *testing.T) {
	st := storeWith(true, batchRecords(25)...)
	e := NewEnricher(&fakeSearcher{}, &fakeGen{}, st, fastEnrich)

	result, err := e.EnrichBatch(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 10, result.Enriched)
	assert.Equal(t, 15, result.Remaining)
	assert.Empty(t, result.Errors)

	// First batch touches the first ten, in set order, and nothing past.
	for i := 0; i < 10; i++ {
		assert.True(t, st.set.Records[i].Enriched(), "record %d", i)
	}
	for i := 10; i < 25; i++ {
		assert.False(t, st.set.Records[i].Enriched(), "record %d", i)
	}
}

func TestEnrichBatchPartialFailureIsolation(t *testing.T) {
	st := storeWith(true, batchRecords(5)...)
	search := &fakeSearcher{fn: func(query string) ([]SearchResult, error) {
		if strings.Contains(query, "Person2") {
			return nil, errors.New("status 500")
		}
		return nil, nil
	}}
	e := NewEnricher(search, &fakeGen{}, st, fastEnrich)

	result, err := e.EnrichBatch(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 4, result.Enriched)
	assert.Equal(t, 1, result.Remaining)
	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0], "Person2 Test")

	// The failed record stays un-enriched and is re-selected next call.
	assert.False(t, st.set.Records[2].Enriched())
	assert.Empty(t, st.set.Records[2].EnrichedAt)

	result, err = e.EnrichBatch(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, result.Enriched)
	require.Len(t, result.Errors, 1)
	assert.Equal(t, 1, result.Remaining)
}

func TestEnrichBatchIdempotentWhenDone(t *testing.T) {
	st := storeWith(true, batchRecords(3)...)
	gen := &fakeGen{}
	e := NewEnricher(&fakeSearcher{}, gen, st, fastEnrich)

	result, err := e.EnrichBatch(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, result.Enriched)
	assert.Equal(t, 0, result.Remaining)

	calls := gen.calls
	result, err = e.EnrichBatch(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, result.Enriched)
	assert.Equal(t, 0, result.Remaining)
	assert.Empty(t, result.Errors)
	// Already-enriched records are never re-enriched.
	assert.Equal(t, calls, gen.calls)
}

func TestEnrichBatchMissingKeys(t *testing.T) {
	st := storeWith(false, batchRecords(3)...)
	search := &fakeSearcher{}
	e := NewEnricher(search, &fakeGen{}, st, fastEnrich)
	_, err := e.EnrichBatch(context.Background())
	require.Error(t, err)
	assert.Equal(t, KindMissingConfig, ErrKind(err))
	assert.Zero(t, search.calls)
}

func TestEstimateMinutes(t *testing.T) {
	tests := []struct {
		remaining int
		want      int
	}{
		{0, 0},
		{1, 1},
		{15, 1},
		{16, 2},
		{100, 7},
	}
	for _, tt := range tests {
		if got := estimateMinutes(tt.remaining, 4*time.Second); got != tt.want {
			t.Errorf("estimateMinutes(%d) = %d, want %d", tt.remaining, got, tt.want)
		}
	}
}
