package algebra

import "github.com/pkg/errors"

// ErrIsZero is returned when a Zp element is constructed from the residue 0,
// which has no place in the multiplicative group.
var ErrIsZero = errors.New("algebra: zero has no multiplicative inverse")
