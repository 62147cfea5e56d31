package bloom

/*

# Hex-serializable Bloom filters

This package provides a fixed-size Bloom filter that is built once from a
known element set and then only queried. The filter state round-trips through
a compact hex string, so it can be stored or shipped by the caller and
reconstructed later.

- If the filter says "definitely not present", then the element is not present.
- If the filter says "maybe present", then the element may or may not be present
  (false positives are possible).

## Sizing

For n elements and a target false positive probability p:

	mRaw  = ceil(-n * ln(p) / ln(2)^2)
	k     = ceil(mRaw / n * ln(2))
	mBits = (ceil(mRaw / 32) + 1) * 32

See DeriveParameters.

## Indexing and bit numbering

Element x is hashed in rounds i = 1..k:

	slot   = hash(x, i) mod mBits
	word   = slot / 32
	offset = slot % 32

The hash output is an unsigned big-endian integer of arbitrary width, so the
modulo is computed with math/big. Bit 0 of a word is its most-significant
bit: the mask for offset is 0x80000000 >> offset.

## Encoding

	+----------------------+  8 hex digits per word, big-endian
	| word[0] .. word[w-1] |
	+----------------------+  8 hex digits
	| k                    |
	+----------------------+  8 hex digits
	| n                    |
	+----------------------+

Decoding reads k and n verbatim. The probability is not stored; it is
estimated as exp(-mBits / n * ln(2)^2), which does not invert the sizing
above. Treat it as approximate.

The encoding does not identify the hash. The same SeededHash must be supplied
on both sides for queries against a decoded filter to be meaningful.

*/
