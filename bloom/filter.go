package bloom

import "slices"

// Filter is an immutable Bloom filter over 32 bit MSB-first words.
//
// A Filter never reports a false negative for an element it was built from.
// It has no mutating methods once returned, so it may be queried from
// multiple goroutines.
type Filter struct {
	words []uint32
	mBits uint64
	k     uint32
	n     uint32
	p     float64
	hash  SeededHash
}

// FromElements builds a filter sized for len(elements) at the configured
// probability and inserts every element.
func FromElements[T any](elements []T, opts ...Option) (*Filter, error) {
	o, err := newOptions(opts...)
	if err != nil {
		return nil, err
	}
	params, err := DeriveParameters(uint64(len(elements)), o.Probability)
	if err != nil {
		return nil, err
	}

	f := &Filter{
		words: make([]uint32, params.Words()),
		mBits: params.MBits,
		k:     params.K,
		n:     params.N,
		p:     params.P,
		hash:  o.Hash,
	}
	for _, e := range elements {
		f.add(e)
	}
	return f, nil
}

// FromEncoding reconstructs a filter from the output of Filter.String. The
// probability is estimated from the bit length and element count, see
// EstimateProbability. WithProbability has no effect here.
func FromEncoding(encoded string, opts ...Option) (*Filter, error) {
	o, err := newOptions(opts...)
	if err != nil {
		return nil, err
	}
	words, t, err := Decode(encoded)
	if err != nil {
		return nil, err
	}

	mBits := uint64(len(words)) * WordBits
	return &Filter{
		words: words,
		mBits: mBits,
		k:     t.K,
		n:     t.N,
		p:     EstimateProbability(mBits, t.N),
		hash:  o.Hash,
	}, nil
}

// add is only used while FromElements owns the filter.
func (f *Filter) add(value any) {
	setBitsMSB0(f.words, f.mBits, f.k, f.hash, value)
}

// Has reports whether value may be in the set. false is definite.
func (f *Filter) Has(value any) bool {
	return testBitsMSB0(f.words, f.mBits, f.k, f.hash, value)
}

// String returns the canonical hex encoding of the filter.
func (f *Filter) String() string {
	s, err := Encode(f.words, Trailer{K: f.k, N: f.n})
	if err != nil {
		// k and n are validated by both constructors.
		panic(err)
	}
	return s
}

// Encode is an alias for String.
func (f *Filter) Encode() string { return f.String() }

// MarshalText implements encoding.TextMarshaler.
func (f *Filter) MarshalText() ([]byte, error) {
	return []byte(f.String()), nil
}

// BitLength returns m, the number of bits in the filter.
func (f *Filter) BitLength() uint64 { return f.mBits }

// HashRounds returns k.
func (f *Filter) HashRounds() uint32 { return f.k }

// ExpectedElementCount returns n.
func (f *Filter) ExpectedElementCount() uint32 { return f.n }

// FalsePositiveProbability returns the target probability for filters built
// from elements, and an estimate for decoded filters.
func (f *Filter) FalsePositiveProbability() float64 { return f.p }

// Words returns a copy of the bit array.
func (f *Filter) Words() []uint32 { return slices.Clone(f.words) }
