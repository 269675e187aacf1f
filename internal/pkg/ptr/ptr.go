package ptr

// To returns a pointer to a copy of v.
func To[T any](v T) *T {
	return &v
}

// Clone returns a pointer to a copy of *p, or nil.
func Clone[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
