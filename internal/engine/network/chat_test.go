package network

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAsk(t *testing.T) {
	st := storeWith(true,
		Record{ID: "conn_0_1", FirstName: "Jane", LastName: "Doe", Position: "Founder", Company: "Acme", Blurb: "Jane founded Acme."},
		Record{ID: "conn_1_1", FirstName: "Bob", LastName: "Ray", Position: "Engineer", Company: "Initech"},
	)
	gen := &fakeGen{answer: func(prompt string) (string, error) {
		assert.Contains(t, prompt, "network of 2 connections")
		assert.Contains(t, prompt, "• Jane Doe: Founder at Acme - Jane founded Acme.")
		assert.Contains(t, prompt, "• Bob Ray: Engineer at Initech")
		assert.Contains(t, prompt, "USER QUERY: who do I know in fintech?")
		return "You know Jane.", nil
	}}

	q := NewQueryEngine(gen, st)
	answer, err := q.Ask(context.Background(), "who do I know in fintech?")
	require.NoError(t, err)
	assert.Equal(t, "You know Jane.", answer)
}

func TestAskEmptyQuestion(t *testing.T) {
	gen := &fakeGen{}
	q := NewQueryEngine(gen, storeWith(true))
	_, err := q.Ask(context.Background(), "   ")
	require.Error(t, err)
	assert.Equal(t, KindMissingInput, ErrKind(err))
	assert.Zero(t, gen.calls)
}

func TestAskMissingKey(t *testing.T) {
	gen := &fakeGen{}
	q := NewQueryEngine(gen, storeWith(false, Record{ID: "conn_0_1", FirstName: "Jane"}))
	_, err := q.Ask(context.Background(), "anyone at Acme?")
	require.Error(t, err)
	assert.Equal(t, KindMissingConfig, ErrKind(err))
	assert.Zero(t, gen.calls)
}

func TestAskUpstreamFailure(t *testing.T) {
	gen := &fakeGen{answer: func(string) (string, error) {
		return "", errors.New("status 429")
	}}
	q := NewQueryEngine(gen, storeWith(true))
	_, err := q.Ask(context.Background(), "anything?")
	require.Error(t, err)
	assert.Equal(t, KindUpstream, ErrKind(err))
}

func TestAskEmptyAnswerFallsBack(t *testing.T) {
	gen := &fakeGen{answer: func(string) (string, error) {
		return "\n\n", nil
	}}
	q := NewQueryEngine(gen, storeWith(true))
	answer, err := q.Ask(context.Background(), "anything?")
	require.NoError(t, err)
	assert.Equal(t, "Unable to generate response.", answer)
}
