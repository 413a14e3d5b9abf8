// Package generator defines the algorithm selector, functional options and
// sentinel errors for maze generation.
package generator

import (
	"errors"
	"math/rand"

	"github.com/katalvlaran/hexmaze/hexgrid"
)

// Sentinel errors for generation.
var (
	// ErrNilMaze is returned when a nil *maze.Maze is passed to Generate.
	ErrNilMaze = errors.New("generator: maze is nil")

	// ErrUnknownAlgorithm is returned when Options.Algorithm does not name
	// a supported carving algorithm.
	ErrUnknownAlgorithm = errors.New("generator: unknown algorithm")
)

// Algorithm selects the carving algorithm.
type Algorithm int

const (
	// RecursiveBacktrack is randomized depth-first carving, the default and
	// currently sole variant.
	RecursiveBacktrack Algorithm = iota
)

// String returns the algorithm's display name.
func (a Algorithm) String() string {
	if a == RecursiveBacktrack {
		return "RecursiveBacktrack"
	}

	return "Unknown"
}

// Options configures a single generation run.
//
// Start     – tile the carving starts from (origin if not set).
// Rng       – RNG stream driving the direction shuffles. nil ⇒ time-seeded.
// Algorithm – carving algorithm (RecursiveBacktrack).
type Options struct {
	Start     hexgrid.Hex
	Rng       *rand.Rand
	Algorithm Algorithm
}

// Option is a functional option for configuring Generate.
type Option func(*Options)

// DefaultOptions returns the defaults: start at the origin, time-seeded
// RNG (resolved inside Generate), RecursiveBacktrack.
func DefaultOptions() Options {
	return Options{}
}

// WithStart sets the tile the carving starts from. The caller is
// responsible for the start existing in the maze; builder.Build validates
// this before invoking Generate.
func WithStart(start hexgrid.Hex) Option {
	return func(o *Options) {
		o.Start = start
	}
}

// WithSeed derives a deterministic RNG from seed. Same shape, start and
// seed ⇒ bit-identical mazes.
func WithSeed(seed uint64) Option {
	return func(o *Options) {
		o.Rng = rand.New(rand.NewSource(int64(seed)))
	}
}

// WithRand provides an explicit RNG stream, e.g. to share one stream
// across several runs. Panics on nil to surface programmer error early.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("generator: WithRand(nil)")
	}

	return func(o *Options) {
		o.Rng = r
	}
}

// WithAlgorithm selects the carving algorithm.
func WithAlgorithm(a Algorithm) Option {
	return func(o *Options) {
		o.Algorithm = a
	}
}
