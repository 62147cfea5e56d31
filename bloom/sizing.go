package bloom

import (
	"fmt"
	"math"

	bitsbloom "github.com/bits-and-blooms/bloom/v3"
)

// DeriveParameters sizes a filter for n elements at false positive
// probability p.
//
//	mRaw  = ceil(-n * ln(p) / ln(2)^2)
//	k     = ceil(mRaw / n * ln(2))
//	MBits = (ceil(mRaw / 32) + 1) * 32
//
// The extra word absorbs rounding in the bit index computation.
func DeriveParameters(n uint64, p float64) (Parameters, error) {
	if err := CheckN(n); err != nil {
		return Parameters{}, err
	}
	if err := CheckP(p); err != nil {
		return Parameters{}, err
	}

	mRaw, k := bitsbloom.EstimateParameters(uint(n), p)
	if k == 0 {
		k = 1
	}
	if uint64(k) > math.MaxUint32 {
		return Parameters{}, fmt.Errorf("%w: k=%d overflows the trailer", ErrInvalidParameters, k)
	}

	return Parameters{
		MBits: MBitsForRaw(uint64(mRaw)),
		K:     uint32(k),
		N:     uint32(n),
		P:     p,
	}, nil
}

// CheckN validates an element count. It must be positive and fit the 32 bit
// trailer field.
func CheckN(n uint64) error {
	if n == 0 {
		return fmt.Errorf("%w: element count must be positive", ErrInvalidParameters)
	}
	if n > math.MaxUint32 {
		return fmt.Errorf("%w: element count %d overflows the trailer", ErrInvalidParameters, n)
	}
	return nil
}

// CheckP validates a target false positive probability, which must lie in
// the open interval (0, 1).
func CheckP(p float64) error {
	if math.IsNaN(p) || p <= 0 || p >= 1 {
		return fmt.Errorf("%w: probability %v not in (0, 1)", ErrInvalidParameters, p)
	}
	return nil
}

// MBitsForRaw rounds mRaw up to whole words and adds one word of slack.
func MBitsForRaw(mRaw uint64) uint64 {
	words := (mRaw+WordBits-1)/WordBits + 1
	return words * WordBits
}

// EstimateProbability returns the false positive estimate recovered from an
// encoding:
//
//	p = exp(-mBits / n * ln(2)^2)
//
// This is not the inverse of the sizing in DeriveParameters. It is kept as
// is so estimates agree with other readers of the format.
func EstimateProbability(mBits uint64, n uint32) float64 {
	ln2 := math.Log(2)
	return math.Exp(-1.0 * float64(mBits) / float64(n) * (ln2 * ln2))
}
