package typecast

// ToPtr converts an input value of any type to a pointer.
func ToPtr[T any](v T) *T {
	return &v
}

// FromPtr returns the value p points to, or the zero value of T when p is nil.
func FromPtr[T any](p *T) T {
	if p == nil {
		var zero T
		return zero
	}

	return *p
}
