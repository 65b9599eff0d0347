package collutils

// Optional holds a value that may be absent.
// The zero value is absent.
type Optional[V any] struct {
	value   V
	present bool
}

// Some returns a present Optional holding value.
func Some[V any](value V) Optional[V] {
	return Optional[V]{
		value:   value,
		present: true,
	}
}

// None returns an absent Optional.
func None[V any]() Optional[V] {
	return Optional[V]{}
}

// Get returns the value and true if o is present, or the zero value and false otherwise.
func (o Optional[V]) Get() (V, bool) {
	return o.value, o.present
}

// IsPresent returns true if o holds a value.
func (o Optional[V]) IsPresent() bool {
	return o.present
}

// OrElse returns the value if o is present, or other otherwise.
func (o Optional[V]) OrElse(other V) V {
	if !o.present {
		return other
	}

	return o.value
}

// OrError returns the value if o is present, or ErrNoElements otherwise.
func (o Optional[V]) OrError() (V, error) {
	if !o.present {
		var zero V
		return zero, ErrNoElements
	}

	return o.value, nil
}
