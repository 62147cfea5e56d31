package bloom

import "fmt"

// TrailerBytes is the binary width of the k and n fields.
const TrailerBytes = TrailerChunks * WordBits / 8

// Trailer holds the fields encoded after the bit array words.
type Trailer struct {
	K uint32
	N uint32
}

// DecodeTrailer decodes the k and n fields from the final TrailerBytes of src.
func DecodeTrailer(src []byte) (Trailer, error) {
	if len(src) < TrailerBytes {
		return Trailer{}, fmt.Errorf("%w: trailer needs %d bytes, have %d", ErrMalformedEncoding, TrailerBytes, len(src))
	}
	src = src[len(src)-TrailerBytes:]

	t := Trailer{
		K: readU32BE(src[0:4]),
		N: readU32BE(src[4:8]),
	}
	if t.K == 0 {
		return Trailer{}, fmt.Errorf("%w: hash rounds must be positive", ErrMalformedEncoding)
	}
	if t.N == 0 {
		return Trailer{}, fmt.Errorf("%w: element count must be positive", ErrMalformedEncoding)
	}
	return t, nil
}

// EncodeTrailer writes t into the first TrailerBytes of dst.
func EncodeTrailer(dst []byte, t Trailer) error {
	if len(dst) < TrailerBytes {
		return fmt.Errorf("%w: trailer needs %d bytes, have %d", ErrInvalidParameters, TrailerBytes, len(dst))
	}
	if t.K == 0 || t.N == 0 {
		return fmt.Errorf("%w: k=%d n=%d", ErrInvalidParameters, t.K, t.N)
	}
	writeU32BE(dst[0:4], t.K)
	writeU32BE(dst[4:8], t.N)
	return nil
}
