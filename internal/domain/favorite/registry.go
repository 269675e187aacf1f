package favorite

import (
	"slices"
	"strings"

	"legal-storefront/internal/pkg/errs"
)

var ErrInvalidContentType = errs.NewKind(errs.KindValidationFailed, "Tipo di contenuto non valido")

type ContentType string

const (
	TypeBook     ContentType = "book"
	TypeDocument ContentType = "document"
	TypeMagazine ContentType = "magazine"
)

var ContentTypes = []ContentType{TypeBook, TypeDocument, TypeMagazine}

// ParseContentType accepts the singular or plural form, case-insensitively.
func ParseContentType(s string) (ContentType, error) {
	v := strings.ToLower(strings.TrimSpace(s))
	v = strings.TrimSuffix(v, "s")
	for _, t := range ContentTypes {
		if string(t) == v {
			return t, nil
		}
	}
	return "", ErrInvalidContentType
}

// Registry keeps one ordered id set per content type.
type Registry struct {
	sets map[ContentType][]int64
}

func NewRegistry() *Registry {
	return &Registry{sets: make(map[ContentType][]int64, len(ContentTypes))}
}

func ReconstructRegistry(sets map[ContentType][]int64) *Registry {
	r := NewRegistry()
	for t, ids := range sets {
		r.sets[t] = slices.Clone(ids)
	}
	return r
}

// Add reports whether id was newly added. Adding a present id is a no-op.
func (r *Registry) Add(t ContentType, id int64) bool {
	if r.Contains(t, id) {
		return false
	}
	r.sets[t] = append(r.sets[t], id)
	return true
}

// Remove reports whether id was present. Removing an absent id is a no-op.
func (r *Registry) Remove(t ContentType, id int64) bool {
	ids := r.sets[t]
	idx := slices.Index(ids, id)
	if idx < 0 {
		return false
	}
	r.sets[t] = slices.Delete(ids, idx, idx+1)
	return true
}

func (r *Registry) Contains(t ContentType, id int64) bool {
	return slices.Contains(r.sets[t], id)
}

// IDs returns the members of t in insertion order.
func (r *Registry) IDs(t ContentType) []int64 {
	return slices.Clone(r.sets[t])
}

func (r *Registry) Sets() map[ContentType][]int64 {
	out := make(map[ContentType][]int64, len(r.sets))
	for t, ids := range r.sets {
		out[t] = slices.Clone(ids)
	}
	return out
}
