package rlmap

import (
	"github.com/cockroachdb/errors"

	"github.com/arloliu/tempo/errs"
	"github.com/arloliu/tempo/format"
	"github.com/arloliu/tempo/internal/options"
)

// DefaultDegree is the B-tree degree used when WithDegree is not given.
const DefaultDegree = 16

type config struct {
	degree    int
	unit      format.Unit
	valueHash any
}

// Option configures a Map at construction time.
type Option = options.Option[*config]

// WithDegree sets the degree of the B-tree holding the entries. Larger
// degrees favor scans over point updates.
func WithDegree(degree int) Option {
	return options.New(func(c *config) error {
		if degree < 2 {
			return errors.Wrapf(errs.ErrInvalidOption, "btree degree %d, want at least 2", degree)
		}
		c.degree = degree

		return nil
	})
}

// WithUnit binds the map to unit up front. Without it, an empty map adopts
// the unit of the first interval written to it.
func WithUnit(unit format.Unit) Option {
	return options.New(func(c *config) error {
		if !unit.IsValid() {
			return errors.Wrapf(errs.ErrInvalidOption, "unit %s", unit)
		}
		c.unit = unit

		return nil
	})
}

// WithValueHash sets the function Hash uses to fingerprint values. It must
// agree with the map's equality: values that compare equal must hash equal.
// Without it, values are hashed through their default fmt formatting, which
// only agrees with == style equality. The type parameter must match the
// value type of the map being built.
func WithValueHash[V any](fn func(V) uint64) Option {
	return options.New(func(c *config) error {
		if fn == nil {
			return errors.Wrap(errs.ErrInvalidOption, "nil value hash function")
		}
		c.valueHash = fn

		return nil
	})
}
