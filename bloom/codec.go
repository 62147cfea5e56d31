package bloom

import (
	"encoding/hex"
	"fmt"
	"strings"
)

// Encode renders words followed by the trailer as lowercase hex, 8 digits
// per 32 bit field:
//
//	word[0] || ... || word[len-1] || k || n
//
// The result is always (len(words)+2)*8 characters.
func Encode(words []uint32, t Trailer) (string, error) {
	buf := make([]byte, len(words)*4+TrailerBytes)
	for i, w := range words {
		writeU32BE(buf[i*4:], w)
	}
	if err := EncodeTrailer(buf[len(words)*4:], t); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}

// Decode parses an encoding produced by Encode.
//
// The input is split into 8 character chunks. A final chunk shorter than 8
// characters is accepted and read as a plain hex number. The last two chunks
// are the trailer; every chunk before them is a word.
func Decode(encoded string) ([]uint32, Trailer, error) {
	if encoded == "" {
		return nil, Trailer{}, fmt.Errorf("%w: empty input", ErrMalformedEncoding)
	}

	nChunks := (len(encoded) + WordHexDigits - 1) / WordHexDigits
	if nChunks < TrailerChunks {
		return nil, Trailer{}, fmt.Errorf("%w: %d chunks, need at least %d", ErrMalformedEncoding, nChunks, TrailerChunks)
	}
	if nChunks == TrailerChunks {
		return nil, Trailer{}, fmt.Errorf("%w: no bit array words", ErrMalformedEncoding)
	}

	values := make([]uint32, nChunks)
	for i := range values {
		start := i * WordHexDigits
		end := min(start+WordHexDigits, len(encoded))
		v, err := parseChunk(encoded[start:end])
		if err != nil {
			return nil, Trailer{}, fmt.Errorf("%w: chunk %d: %v", ErrMalformedEncoding, i, err)
		}
		values[i] = v
	}

	var raw [TrailerBytes]byte
	writeU32BE(raw[0:4], values[nChunks-2])
	writeU32BE(raw[4:8], values[nChunks-1])
	t, err := DecodeTrailer(raw[:])
	if err != nil {
		return nil, Trailer{}, err
	}
	nWords := nChunks - TrailerChunks
	return values[:nWords:nWords], t, nil
}

// parseChunk reads up to 8 hex digits as a big-endian uint32.
func parseChunk(chunk string) (uint32, error) {
	if len(chunk) < WordHexDigits {
		chunk = strings.Repeat("0", WordHexDigits-len(chunk)) + chunk
	}
	b, err := hex.DecodeString(chunk)
	if err != nil {
		return 0, err
	}
	return readU32BE(b), nil
}
