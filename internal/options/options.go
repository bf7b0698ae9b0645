// Package options implements the generic functional-option machinery
// behind container.Option: a configurable type declares
// Option[*T] aliases and builds them with New or NoError, and its
// constructor runs Apply.
//
// Options are fallible so that construction-time validation (an unknown
// compression type, say) surfaces as an error from the constructor
// instead of a panic or a half-configured value.
package options

// Option configures a value of type T and may reject it.
type Option[T any] interface {
	apply(T) error
}

// Func adapts a plain function into an Option.
type Func[T any] struct {
	applyFunc func(T) error
}

func (f *Func[T]) apply(target T) error {
	return f.applyFunc(target)
}

// New wraps a fallible configuration function.
func New[T any](fn func(T) error) *Func[T] {
	return &Func[T]{applyFunc: fn}
}

// Apply runs opts against target in order, stopping at the first error.
// Later options see the effects of earlier ones.
func Apply[T any](target T, opts ...Option[T]) error {
	for _, opt := range opts {
		if err := opt.apply(target); err != nil {
			return err
		}
	}

	return nil
}

// NoError wraps a configuration function that cannot fail.
func NoError[T any](fn func(T)) *Func[T] {
	return &Func[T]{
		applyFunc: func(target T) error {
			fn(target)
			return nil
		},
	}
}
