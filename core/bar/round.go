package bar

import (
	"math/big"

	"github.com/pkg/errors"
)

// ErrInvalidRange is the cause of the panic raised for a range whose Max is
// below its Min.
var ErrInvalidRange = errors.New("bar: max is smaller than min")

// CheckRange reports whether rng can be rendered.
func CheckRange[T Number](rng Range[T]) error {
	if rng.Max < rng.Min {
		return errors.Wrapf(ErrInvalidRange, "range (%v, %v)", rng.Min, rng.Max)
	}
	return nil
}

// Round maps n onto w discrete units of rng. filled is floor(w*p) where p is
// the position of n inside rng; more reports that the dropped remainder is at
// least half a unit. Values outside rng are clamped, and n == Max always
// gives a full bar.
//
// The computation scales by two before dividing and is done on exact
// rationals, so it never overflows and never suffers float rounding.
//
// Round panics with an error wrapping ErrInvalidRange when rng.Max < rng.Min.
func Round[T Number](w int, rng Range[T], n T) (filled int, more bool) {
	if err := CheckRange(rng); err != nil {
		panic(err)
	}
	if w < 0 {
		w = 0
	}
	switch {
	case n != n: // NaN
		return 0, false
	case n <= rng.Min:
		return 0, false
	case n >= rng.Max:
		return w, false
	}

	lo, hi, v := toRat(rng.Min), toRat(rng.Max), toRat(n)
	if lo == nil || hi == nil || v == nil {
		// infinite bounds leave no finite position to measure
		return 0, false
	}

	num := new(big.Rat).Sub(v, lo)
	num.Mul(num, new(big.Rat).SetInt64(2*int64(w)))
	den := new(big.Rat).Sub(hi, lo)
	q := num.Quo(num, den)

	// q is positive, so truncating division is floor.
	r := new(big.Int).Quo(q.Num(), q.Denom()).Int64()
	return int(r / 2), r%2 == 1
}

// toRat converts v exactly. It returns nil for infinities.
func toRat[T Number](v T) *big.Rat {
	var one, zero T = 1, 0
	switch {
	case one/2 != 0:
		return new(big.Rat).SetFloat64(float64(v))
	case zero-one < zero:
		return new(big.Rat).SetInt64(int64(v))
	default:
		return new(big.Rat).SetInt(new(big.Int).SetUint64(uint64(v)))
	}
}
