package bloom

import "fmt"

// Options configure filter construction.
type Options struct {
	// Probability is the target false positive probability. It is only used
	// by FromElements.
	Probability float64
	// Hash is the seeded hash used to index bits. Encoders and decoders must
	// agree on it, the encoding does not identify it.
	Hash SeededHash

	err error
}

// Option sets a construction option.
type Option func(*Options)

// WithProbability sets the target false positive probability, 0 < p < 1.
func WithProbability(p float64) Option {
	return func(o *Options) {
		if err := CheckP(p); err != nil {
			o.err = err
			return
		}
		o.Probability = p
	}
}

// WithHash sets the seeded hash. The default is Murmur3.
func WithHash(hash SeededHash) Option {
	return func(o *Options) {
		if hash == nil {
			o.err = fmt.Errorf("%w: nil hash", ErrInvalidParameters)
			return
		}
		o.Hash = hash
	}
}

func newOptions(opts ...Option) (Options, error) {
	o := Options{
		Probability: DefaultProbability,
		Hash:        Murmur3,
	}
	for _, opt := range opts {
		opt(&o)
		if o.err != nil {
			return Options{}, o.err
		}
	}
	return o, nil
}
