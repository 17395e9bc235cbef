package options

import "github.com/cockroachdb/errors"

// Option configures a target of type T while it is being constructed.
type Option[T any] interface {
	apply(T) error
}

type optionFunc[T any] func(T) error

func (f optionFunc[T]) apply(target T) error {
	return f(target)
}

// New wraps fn as an option that may reject its argument.
func New[T any](fn func(T) error) Option[T] {
	return optionFunc[T](fn)
}

// Apply applies opts to target in order and stops at the first failure,
// leaving the options already applied in place. The returned error keeps the
// option's own error as its cause.
func Apply[T any](target T, opts ...Option[T]) error {
	for i, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt.apply(target); err != nil {
			return errors.Wrapf(err, "option %d", i)
		}
	}

	return nil
}
