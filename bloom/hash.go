package bloom

import (
	"encoding"
	"fmt"

	"github.com/cespare/xxhash"
	"github.com/spaolacci/murmur3"
)

// SeededHash returns the hash of value for seed as an unsigned big-endian
// integer of at least 4 bytes. It must be deterministic and free of side
// effects. Filters call it with seeds 1..k.
type SeededHash func(value any, seed uint32) []byte

// Hash names accepted by HashByName.
const (
	HashNameMurmur3     = "murmur3"
	HashNameMurmur3x128 = "murmur3-128"
	HashNameXXHash64    = "xxhash64"
)

// Murmur3 is the default hash: 32 bit murmur3 over the textual form of the
// value.
func Murmur3(value any, seed uint32) []byte {
	var out [4]byte
	writeU32BE(out[:], murmur3.Sum32WithSeed(TextBytes(value), seed))
	return out[:]
}

// Murmur3x128 is 128 bit murmur3 over the textual form of the value.
func Murmur3x128(value any, seed uint32) []byte {
	h1, h2 := murmur3.Sum128WithSeed(TextBytes(value), seed)
	var out [16]byte
	writeU32BE(out[0:4], uint32(h1>>32))
	writeU32BE(out[4:8], uint32(h1))
	writeU32BE(out[8:12], uint32(h2>>32))
	writeU32BE(out[12:16], uint32(h2))
	return out[:]
}

// XXHash64 is xxhash64 over seed_be4 || text(value).
func XXHash64(value any, seed uint32) []byte {
	var prefix [4]byte
	writeU32BE(prefix[:], seed)
	d := xxhash.New()
	_, _ = d.Write(prefix[:])
	_, _ = d.Write(TextBytes(value))
	return d.Sum(nil)
}

// HashByName resolves one of the HashName constants.
func HashByName(name string) (SeededHash, error) {
	switch name {
	case HashNameMurmur3, "":
		return Murmur3, nil
	case HashNameMurmur3x128:
		return Murmur3x128, nil
	case HashNameXXHash64:
		return XXHash64, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownHash, name)
}

// TextBytes returns the bytes the text hashes consume for value. Strings and
// byte slices are used as is. Anything else is rendered as text first, so
// the integer 42 hashes the same as "42".
func TextBytes(value any) []byte {
	switch v := value.(type) {
	case string:
		return []byte(v)
	case []byte:
		return v
	case encoding.TextMarshaler:
		if b, err := v.MarshalText(); err == nil {
			return b
		}
	}
	return []byte(fmt.Sprint(value))
}
