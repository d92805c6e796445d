package memutils

import (
	"math/bits"

	"github.com/cockroachdb/errors"
)

type Number interface {
	~int | ~uint | ~uint32 | ~uint64
}

// CheckPow2 returns PowerOfTwoError, annotated with name, if number is not a power of two
func CheckPow2[T Number](number T, name string) error {
	if number&(number-1) != 0 {
		return errors.Wrapf(PowerOfTwoError, "%s is %d", name, number)
	}
	return nil
}

// AlignUp rounds value up to the next multiple of alignment, which must be a power of two
func AlignUp[T Number](value T, alignment T) T {
	return (value + alignment - 1) & ^(alignment - 1)
}

// IsAligned reports whether value is a multiple of alignment, which must be a power of two
func IsAligned[T Number](value T, alignment T) bool {
	return value&(alignment-1) == 0
}

// DivRoundUp divides numerator by denominator, rounding up. Denominator does not need
// to be a power of two.
func DivRoundUp[T Number](numerator T, denominator T) T {
	return (numerator + denominator - 1) / denominator
}

// NextPow2 returns the smallest power of two that is greater than or equal to value.
// Zero and one both return one.
func NextPow2(value uint32) uint32 {
	if value <= 1 {
		return 1
	}
	return 1 << (32 - bits.LeadingZeros32(value-1))
}
