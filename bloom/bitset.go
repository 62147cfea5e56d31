package bloom

import "math/big"

// slotFor reduces a big-endian hash digest modulo mBits. Digests may be
// wider than a machine word.
func slotFor(digest []byte, mBits uint64) uint64 {
	h := new(big.Int).SetBytes(digest)
	return h.Mod(h, new(big.Int).SetUint64(mBits)).Uint64()
}

// setBitMSB0 sets bit slot, where bit 0 is the most-significant bit of word 0.
func setBitMSB0(words []uint32, slot uint64) {
	words[slot/WordBits] |= msb0Mask >> (slot % WordBits)
}

func testBitMSB0(words []uint32, slot uint64) bool {
	return words[slot/WordBits]&(msb0Mask>>(slot%WordBits)) != 0
}

// setBitsMSB0 sets the k bits for value. Rounds are seeded 1..k.
func setBitsMSB0(words []uint32, mBits uint64, k uint32, hash SeededHash, value any) {
	for i := uint32(1); i <= k; i++ {
		setBitMSB0(words, slotFor(hash(value, i), mBits))
	}
}

// testBitsMSB0 reports whether all k bits for value are set, stopping at the
// first miss.
func testBitsMSB0(words []uint32, mBits uint64, k uint32, hash SeededHash, value any) bool {
	for i := uint32(1); i <= k; i++ {
		if !testBitMSB0(words, slotFor(hash(value, i), mBits)) {
			return false
		}
	}
	return true
}
