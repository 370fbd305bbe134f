package scramble

import (
	"math/rand"
	"time"
)

// Defaults for the reveal timing and noise alphabet.
const (
	// DefaultAlphabet is the pool noise glyphs are drawn from. The run of
	// underscores makes "_" the most frequent glyph.
	DefaultAlphabet = `!<>-_\/[]{}—=+*^?#________`

	// DefaultRerollChance is the per-frame probability that a scrambling
	// cell replaces its current noise glyph.
	DefaultRerollChance = 0.28

	// DefaultMaxStart bounds the frame at which a cell starts scrambling.
	DefaultMaxStart = 40

	// DefaultMaxDwell bounds how many frames a cell scrambles for.
	DefaultMaxDwell = 40
)

// Rand is the source of randomness used for reveal windows and noise glyphs.
// *math/rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
	Float64() float64
}

// Options configures reveal timing and noise generation.
type Options struct {
	// Alphabet holds the candidate noise glyphs. Empty means DefaultAlphabet.
	Alphabet []rune

	// RerollChance is the probability in [0, 1] of replacing an existing
	// noise glyph on a frame.
	RerollChance float64

	// MaxStart is the exclusive upper bound of a cell's start frame.
	MaxStart int

	// MaxDwell is the exclusive upper bound of a cell's scramble duration.
	MaxDwell int

	// Rand draws all random values. Nil means a time-seeded source.
	Rand Rand
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns the stock timing with a freshly seeded source.
func DefaultOptions() Options {
	return Options{
		Alphabet:     []rune(DefaultAlphabet),
		RerollChance: DefaultRerollChance,
		MaxStart:     DefaultMaxStart,
		MaxDwell:     DefaultMaxDwell,
		Rand:         rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// WithAlphabet sets the noise alphabet. An empty string keeps the default.
func WithAlphabet(alphabet string) Option {
	return func(o *Options) {
		if alphabet != "" {
			o.Alphabet = []rune(alphabet)
		}
	}
}

// WithRerollChance sets the per-frame noise reroll probability, clamped to [0, 1].
func WithRerollChance(p float64) Option {
	return func(o *Options) {
		o.RerollChance = min(max(p, 0), 1)
	}
}

// WithMaxStart sets the exclusive bound for start frames. Values below 1 mean
// every cell starts on frame 0.
func WithMaxStart(n int) Option {
	return func(o *Options) { o.MaxStart = n }
}

// WithMaxDwell sets the exclusive bound for scramble durations. Values below
// 1 make every cell settle the moment it starts.
func WithMaxDwell(n int) Option {
	return func(o *Options) { o.MaxDwell = n }
}

// WithRand sets the random source, typically a seeded *rand.Rand in tests.
func WithRand(r Rand) Option {
	return func(o *Options) {
		if r != nil {
			o.Rand = r
		}
	}
}

// WithSeed seeds a private math/rand source for reproducible animations.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.Rand = rand.New(rand.NewSource(seed)) }
}

func buildOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o.normalized()
}

// normalized fills zero values so a hand-built Options is usable.
func (o Options) normalized() Options {
	if len(o.Alphabet) == 0 {
		o.Alphabet = []rune(DefaultAlphabet)
	}
	if o.Rand == nil {
		o.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return o
}

// MaxFrames is the worst-case frame index at which a task built with these
// options has settled every cell.
func (o Options) MaxFrames() int {
	return max(o.MaxStart-1, 0) + max(o.MaxDwell-1, 0)
}

// intn is Rand.Intn that tolerates non-positive bounds.
func (o Options) intn(n int) int {
	if n <= 1 {
		return 0
	}
	return o.Rand.Intn(n)
}

func (o Options) noise() string {
	return string(o.Alphabet[o.intn(len(o.Alphabet))])
}
