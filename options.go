package rubik

import (
	"log/slog"
	"math/rand/v2"
	"time"
)

// Option configures a Cube.
type Option func(*config)

type config struct {
	rng    *rand.Rand
	now    func() time.Time
	logger *slog.Logger
}

func defaultConfig() *config {
	return &config{
		rng:    rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
		now:    time.Now,
		logger: slog.New(slog.DiscardHandler),
	}
}

// WithSeed makes scrambles reproducible.
// Two cubes created with the same seed generate the same scrambles.
func WithSeed(seed uint64) Option {
	return func(c *config) {
		c.rng = rand.New(rand.NewPCG(seed, seed))
	}
}

// WithRand sets the random source used by Scramble.
func WithRand(r *rand.Rand) Option {
	return func(c *config) {
		if r != nil {
			c.rng = r
		}
	}
}

// WithClock sets the function that timestamps history entries.
func WithClock(now func() time.Time) Option {
	return func(c *config) {
		if now != nil {
			c.now = now
		}
	}
}

// WithLogger sets the logger for debug output. By default nothing is logged.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}
