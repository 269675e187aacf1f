package catalog

import (
	"strings"

	"legal-storefront/internal/pkg/errs"
)

var ErrInvalidScope = errs.NewKind(errs.KindValidationFailed, "invalid search type")

// Scope restricts a search to one content type. The zero value searches everything.
type Scope string

const (
	ScopeAll       Scope = ""
	ScopeDocuments Scope = "documents"
	ScopeMagazines Scope = "magazines"
	ScopeBooks     Scope = "books"
)

func ParseScope(s string) (Scope, error) {
	switch scope := Scope(strings.ToLower(strings.TrimSpace(s))); scope {
	case ScopeAll, ScopeDocuments, ScopeMagazines, ScopeBooks:
		return scope, nil
	default:
		return "", ErrInvalidScope
	}
}

func (s Scope) includes(other Scope) bool {
	return s == ScopeAll || s == other
}
