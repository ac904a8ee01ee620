package dataset

import "math/rand/v2"

// DefaultSeed seeds the generator built when no WithRand or WithSeed is given.
const DefaultSeed uint64 = 0

// Option configures a single call.
type Option func(*options)

type options struct {
	rng         *rand.Rand
	shuffle     bool
	labelNumber int
}

// WithRand makes the call draw permutations from r. The caller owns r and its
// state advances across calls; r must not be shared between goroutines.
func WithRand(r *rand.Rand) Option {
	return func(o *options) { o.rng = r }
}

// WithSeed makes the call draw permutations from a fresh generator seeded with seed.
func WithSeed(seed uint64) Option {
	return func(o *options) { o.rng = NewRand(seed) }
}

// WithShuffle toggles shuffling. Shuffling is on by default.
func WithShuffle(shuffle bool) Option {
	return func(o *options) { o.shuffle = shuffle }
}

// WithLabelNumber keeps only the n most frequent labels when balancing.
// Zero keeps every label.
func WithLabelNumber(n int) Option {
	return func(o *options) { o.labelNumber = n }
}

// NewRand returns the PCG generator used for a given seed.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed))
}

func gather(opts []Option) options {
	o := options{shuffle: true}
	for _, opt := range opts {
		opt(&o)
	}
	if o.rng == nil {
		o.rng = NewRand(DefaultSeed)
	}
	return o
}
