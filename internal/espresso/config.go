// Copyright (c) 2025 Marcos Sartori
//
// MIT License

package espresso

// Config carries the tuning knobs of the minimizer. An instance is created
// with one Config and keeps it for its whole lifetime; a later request with
// a different Config fails with a ConfigError.
type Config struct {
	// RemoveEssential extracts essential primes before the reduction loop.
	RemoveEssential bool
	// ForceIrredundant runs the irredundant pass after expansion.
	ForceIrredundant bool
	// UnwrapOnset is accepted for compatibility with the classic option
	// set; this kernel always returns the on-set unwrapped.
	UnwrapOnset bool
	// SingleExpand stops after one expand/irredundant round instead of two.
	SingleExpand bool
	// UseSuperGasp keeps iterating extra rounds while they shrink the
	// cover.
	UseSuperGasp bool
	// UseRandomOrder keeps cubes in insertion order instead of expanding
	// the widest ones first.
	UseRandomOrder bool

	// Trace logs each phase with cube counts.
	Trace bool
	// Summary logs totals once per minimization.
	Summary bool
	// Debug logs instance lifecycle events.
	Debug bool
}

// DefaultConfig returns the configuration used when none is supplied.
func DefaultConfig() Config {
	return Config{
		RemoveEssential:  true,
		ForceIrredundant: true,
		UnwrapOnset:      true,
	}
}
