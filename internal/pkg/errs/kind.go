package errs

import cr "github.com/cockroachdb/errors"

// Kind classifies failures surfaced to API callers.
type Kind string

const (
	KindNotFound         Kind = "NotFound"
	KindUnavailable      Kind = "Unavailable"
	KindValidationFailed Kind = "ValidationFailed"
	KindConflict         Kind = "Conflict"
	KindUnauthenticated  Kind = "Unauthenticated"
	KindUpstreamFailure  Kind = "UpstreamFailure"
	KindInternal         Kind = "Internal"
)

// Kind markers. Sentinels are marked with exactly one of these.
var (
	ErrNotFound         = cr.New("not found")
	ErrUnavailable      = cr.New("unavailable")
	ErrValidationFailed = cr.New("validation failed")
	ErrConflict         = cr.New("conflict")
	ErrUnauthenticated  = cr.New("unauthenticated")
	ErrUpstreamFailure  = cr.New("upstream failure")
)

var kindMarkers = []struct {
	marker error
	kind   Kind
}{
	{ErrNotFound, KindNotFound},
	{ErrUnavailable, KindUnavailable},
	{ErrValidationFailed, KindValidationFailed},
	{ErrConflict, KindConflict},
	{ErrUnauthenticated, KindUnauthenticated},
	{ErrUpstreamFailure, KindUpstreamFailure},
}

// NewKind creates a sentinel error carrying the given kind marker.
func NewKind(kind Kind, msg string) error {
	err := cr.New(msg)
	for _, m := range kindMarkers {
		if m.kind == kind {
			return cr.Mark(err, m.marker)
		}
	}
	return err
}

// KindOf reports the kind of err, or KindInternal when unclassified.
func KindOf(err error) Kind {
	if err == nil {
		return ""
	}
	for _, m := range kindMarkers {
		if cr.Is(err, m.marker) {
			return m.kind
		}
	}
	return KindInternal
}
