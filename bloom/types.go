package bloom

import "errors"

const (
	// WordBits is the width of a storage word. Bit lengths are always a
	// multiple of WordBits.
	WordBits = 32

	// WordHexDigits is the number of hex digits used to encode one word, and
	// each of the k and n trailer fields.
	WordHexDigits = 8

	// TrailerChunks is the number of trailing chunks (k, n) in an encoding.
	TrailerChunks = 2

	// DefaultProbability is the target false positive probability used when
	// none is supplied.
	DefaultProbability = 0.001

	// msb0Mask selects bit 0 of a word. Bit 0 is the most-significant bit.
	msb0Mask uint32 = 0x80000000
)

var (
	ErrInvalidParameters = errors.New("bloom: invalid parameters")
	ErrMalformedEncoding = errors.New("bloom: malformed encoding")
	ErrUnknownHash       = errors.New("bloom: unknown hash")
)

// Parameters is the sizing derived for a filter.
type Parameters struct {
	// MBits is the bit array length, a multiple of WordBits.
	MBits uint64
	// K is the number of hash rounds per element.
	K uint32
	// N is the element count the filter is sized for.
	N uint32
	// P is the target false positive probability.
	P float64
}

// Words returns the number of storage words for MBits.
func (p Parameters) Words() int {
	return int(p.MBits / WordBits)
}
