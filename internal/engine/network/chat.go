package network

import (
	"context"
	"fmt"
	"strings"
)

// fallbackAnswer replaces unparseable generation output on network queries.
const fallbackAnswer = "Unable to generate response."

const networkPrompt = `You are an assistant helping analyze a professional LinkedIn network. Below is the user's network of %d connections.

NETWORK:
%s

USER QUERY: %s

Analyze the network and provide a helpful, specific response. Reference specific people by name when relevant. Be concise but thorough.`

// QueryEngine answers free-form questions against the whole record set.
type QueryEngine struct {
	gen   Generator
	store Store
}

// NewQueryEngine wires the network query engine to its collaborators.
func NewQueryEngine(gen Generator, store Store) *QueryEngine {
	return &QueryEngine{gen: gen, store: store}
}

// Ask serializes every record into one uncapped context block and issues a
// single long-budget generation call. Empty questions and a missing
// generation key fail before any network traffic.
func (q *QueryEngine) Ask(ctx context.Context, question string) (string, error) {
	question = strings.TrimSpace(question)
	if question == "" {
		return "", MissingInput("no query provided")
	}

	set, err := q.store.Load(ctx)
	if err != nil {
		return "", err
	}
	if set.Credentials.GeminiKey == "" {
		return "", missingConfig("Gemini API key not configured")
	}

	prompt := fmt.Sprintf(networkPrompt, len(set.Records), serializeNetwork(set), question)
	answer, err := q.gen.Answer(ctx, prompt, set.Credentials.GeminiKey)
	if err != nil {
		return "", upstream("network query failed", err)
	}
	answer = strings.TrimSpace(answer)
	if answer == "" {
		answer = fallbackAnswer
	}
	return answer, nil
}

// serializeNetwork renders one line per record, blurb appended when present.
func serializeNetwork(set *RecordSet) string {
	lines := make([]string, 0, len(set.Records))
	for i := range set.Records {
		r := &set.Records[i]
		line := fmt.Sprintf("• %s: %s at %s", r.FullName(), r.Position, r.Company)
		if r.Blurb != "" {
			line += " - " + r.Blurb
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}
