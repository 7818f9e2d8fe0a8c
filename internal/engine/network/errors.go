package network

import (
	"errors"
	"fmt"
)

// Kind classifies a failure for the operation surface.
type Kind string

const (
	// KindMissingInput: empty input where content is required.
	KindMissingInput Kind = "missing-input"
	// KindMissingConfig: API credentials absent; never retried.
	KindMissingConfig Kind = "missing-config"
	// KindNotFound: referenced record ID absent from the set.
	KindNotFound Kind = "not-found"
	// KindUpstream: search or generation call failed.
	KindUpstream Kind = "upstream-failure"
)

// Error is a classified failure crossing the core boundary.
type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Msg, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
}

func (e *Error) Unwrap() error { return e.Err }

// ErrKind returns the classification of err, or "" if err carries none.
func ErrKind(err error) Kind {
	var ce *Error
	if errors.As(err, &ce) {
		return ce.Kind
	}
	return ""
}

// MissingInput classifies an empty required input. Exported because the
// operation surface validates inputs before reaching the core.
func MissingInput(msg string) error {
	return &Error{Kind: KindMissingInput, Msg: msg}
}

func missingConfig(msg string) error {
	return &Error{Kind: KindMissingConfig, Msg: msg}
}

func notFound(msg string) error {
	return &Error{Kind: KindNotFound, Msg: msg}
}

func upstream(msg string, err error) error {
	return &Error{Kind: KindUpstream, Msg: msg, Err: err}
}
