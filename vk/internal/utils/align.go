package utils

import (
	"github.com/cockroachdb/errors"
)

// ErrNotPowerOfTwo is returned from CheckPow2 when the tested value has more than one bit set
var ErrNotPowerOfTwo = errors.New("number must be a power of two")

type Number interface {
	~int | ~uint | ~uint32 | ~uint64
}

func CheckPow2[T Number](number T, name string) error {
	if number == 0 || number&(number-1) != 0 {
		return errors.Wrapf(ErrNotPowerOfTwo, "%s is %d", name, number)
	}
	return nil
}

func AlignUp(value uint64, alignment uint64) uint64 {
	return (value + alignment - 1) &^ (alignment - 1)
}

func AlignDown(value uint64, alignment uint64) uint64 {
	return value &^ (alignment - 1)
}
