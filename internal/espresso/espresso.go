// Copyright (c) 2025 Marcos Sartori
//
// MIT License

// Package espresso is the two-level logic minimization primitive behind the
// cover API. It minimizes a multi-output function given as F (on-set), D
// (don't-care set) and R (off-set) cube lists over the ternary input
// alphabet {0, 1, 2}.
//
// The package keeps at most one live instance per process, fixed to one set
// of dimensions and one Config. Handles and covers hold references on the
// instance; it is torn down when the last reference is released, after which
// an instance with different dimensions can be created. Requests that
// conflict with the live instance fail with DimensionError or ConfigError.
package espresso

import (
	"sync"

	log "github.com/sirupsen/logrus"
)

// instance is the shared state behind every handle with the same
// dimensions. All access goes through the package mutex.
type instance struct {
	numInputs  int
	numOutputs int
	config     Config
	refs       int
}

var active struct {
	sync.Mutex
	inst *instance
}

// acquire returns the live instance after taking a reference, creating it
// when there is none. cfg nil means "no preference": an existing instance is
// joined as-is and a fresh one gets DefaultConfig.
func acquire(numInputs, numOutputs int, cfg *Config) (*instance, error) {
	active.Lock()
	defer active.Unlock()
	if in := active.inst; in != nil {
		if in.numInputs != numInputs || in.numOutputs != numOutputs {
			return nil, &DimensionError{
				RequestedInputs:  numInputs,
				RequestedOutputs: numOutputs,
				ExistingInputs:   in.numInputs,
				ExistingOutputs:  in.numOutputs,
			}
		}
		if cfg != nil && *cfg != in.config {
			return nil, &ConfigError{NumInputs: in.numInputs, NumOutputs: in.numOutputs}
		}
		in.refs++
		return in, nil
	}
	config := DefaultConfig()
	if cfg != nil {
		config = *cfg
	}
	in := &instance{numInputs: numInputs, numOutputs: numOutputs, config: config, refs: 1}
	active.inst = in
	if config.Debug {
		log.WithFields(log.Fields{"inputs": numInputs, "outputs": numOutputs}).
			Debug("espresso: instance created")
	}
	return in, nil
}

// release drops one reference; the last one tears the instance down.
func release(in *instance) {
	active.Lock()
	defer active.Unlock()
	in.refs--
	if in.refs == 0 && active.inst == in {
		active.inst = nil
		if in.config.Debug {
			log.WithFields(log.Fields{"inputs": in.numInputs, "outputs": in.numOutputs}).
				Debug("espresso: instance destroyed")
		}
	}
}

// Espresso is a reference-counted handle on the live minimizer instance.
type Espresso struct {
	inst   *instance
	mu     sync.Mutex
	closed bool
}

// New returns a handle on the instance with the given dimensions, creating
// it when no instance is live. A nil cfg joins whatever configuration is in
// effect, or DefaultConfig for a fresh instance. It fails with a
// DimensionError or ConfigError when a live instance conflicts.
func New(numInputs, numOutputs int, cfg *Config) (*Espresso, error) {
	in, err := acquire(numInputs, numOutputs, cfg)
	if err != nil {
		return nil, err
	}
	return &Espresso{inst: in}, nil
}

// Current returns a handle on the live instance, or false when none exists.
func Current() (*Espresso, bool) {
	active.Lock()
	in := active.inst
	if in != nil {
		in.refs++
	}
	active.Unlock()
	if in == nil {
		return nil, false
	}
	return &Espresso{inst: in}, true
}

// Close releases the handle's reference. Closing twice is a no-op.
func (e *Espresso) Close() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed {
		return
	}
	e.closed = true
	release(e.inst)
}

// NumInputs returns the instance's input width.
func (e *Espresso) NumInputs() int { return e.inst.numInputs }

// NumOutputs returns the instance's output count.
func (e *Espresso) NumOutputs() int { return e.inst.numOutputs }

// Config returns the configuration the instance was created with.
func (e *Espresso) Config() Config { return e.inst.config }
