package types

import "errors"

type ErrorKind string

const (
	ErrorKindUnknown           ErrorKind = ""
	ErrorKindNotFound          ErrorKind = "not_found"
	ErrorKindEmpty             ErrorKind = "empty"
	ErrorKindMalformed         ErrorKind = "malformed"
	ErrorKindPathDecomposition ErrorKind = "path_decomposition"
	ErrorKindMatch             ErrorKind = "match"
	ErrorKindIO                ErrorKind = "io"
	ErrorKindUpstreamCall      ErrorKind = "upstream_call"
)

// KindError tags an error with its place in the sync error taxonomy.
type KindError struct {
	Kind ErrorKind
	Err  error
}

func (e *KindError) Error() string {
	return e.Err.Error()
}

func (e *KindError) Unwrap() error {
	return e.Err
}

func WithKind(kind ErrorKind, err error) error {
	if err == nil {
		return nil
	}
	return &KindError{Kind: kind, Err: err}
}

// KindOf returns the outermost kind attached to err.
func KindOf(err error) ErrorKind {
	var kinded *KindError
	if errors.As(err, &kinded) {
		return kinded.Kind
	}
	return ErrorKindUnknown
}
