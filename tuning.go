package springz

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/go-playground/validator/v10"
	"github.com/zoobzio/capitan"
	"gopkg.in/yaml.v3"
)

// DefaultErrorHistory is the number of rejected tunings a Tuner retains.
const DefaultErrorHistory = 8

// validate is the shared validator instance.
var validate = validator.New()

// Tuning is live spring configuration: the user-facing parameters that
// derive the physical coefficients.
//
// The core Spring accepts degenerate parameters without complaint; the
// Tuner is the opt-in layer that rejects them, so a bad tuning never
// reaches a running animation.
type Tuning struct {
	Duration     float64 `yaml:"duration" json:"duration" validate:"gt=0"`
	DampingRatio float64 `yaml:"damping_ratio" json:"damping_ratio" validate:"gte=0"`
}

// Tuner watches a source for tuning changes, unmarshals and validates the
// data, and applies it to one or more springs. A rejected tuning leaves
// the springs on their previous parameters.
type Tuner struct {
	watcher  Watcher
	springs  []*Spring
	syncMode bool

	current   atomic.Pointer[Tuning]
	lastError atomic.Pointer[error]
	recent    *errorRing

	mu      sync.Mutex
	started bool

	// For sync mode: channel to receive changes.
	changes <-chan []byte
}

// tunerConfig holds configuration options for a Tuner.
type tunerConfig struct {
	syncMode     bool
	errorHistory int
}

// TunerOption configures a Tuner.
type TunerOption func(*tunerConfig)

// WithSyncMode enables synchronous processing for testing. In sync mode,
// Start only processes the initial value; use Process to pull subsequent
// values deterministically.
func WithSyncMode() TunerOption {
	return func(c *tunerConfig) {
		c.syncMode = true
	}
}

// WithErrorHistory sets how many rejected tunings are retained for
// RecentErrors. Zero disables retention.
func WithErrorHistory(n int) TunerOption {
	return func(c *tunerConfig) {
		c.errorHistory = n
	}
}

// NewTuner creates a Tuner that applies tunings from watcher to springs.
//
// Tunings may be JSON or YAML; the format is auto-detected from the
// leading byte. Validation uses the struct tags on Tuning: duration must
// be positive and the damping ratio non-negative.
func NewTuner(watcher Watcher, springs []*Spring, opts ...TunerOption) *Tuner {
	cfg := &tunerConfig{
		errorHistory: DefaultErrorHistory,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	return &Tuner{
		watcher:  watcher,
		springs:  springs,
		syncMode: cfg.syncMode,
		recent:   newErrorRing(cfg.errorHistory),
	}
}

// Current returns the most recently applied tuning and true, or the zero
// value and false if no tuning has been applied yet.
func (t *Tuner) Current() (Tuning, bool) {
	ptr := t.current.Load()
	if ptr == nil {
		return Tuning{}, false
	}
	return *ptr, true
}

// LastError returns the last rejection error, or nil.
func (t *Tuner) LastError() error {
	ptr := t.lastError.Load()
	if ptr == nil {
		return nil
	}
	return *ptr
}

// RecentErrors returns the retained rejection errors, oldest first.
func (t *Tuner) RecentErrors() []error {
	return t.recent.all()
}

// Start begins watching for tunings. It blocks until the first tuning is
// processed (applied or rejected), then continues watching asynchronously.
//
// If the initial tuning is rejected, Start returns the error but keeps
// watching for valid updates. In sync mode, Start only processes the
// initial value; use Process for the rest.
//
// Start can only be called once. Subsequent calls return an error.
func (t *Tuner) Start(ctx context.Context) error {
	t.mu.Lock()
	if t.started {
		t.mu.Unlock()
		return fmt.Errorf("tuner already started")
	}
	t.started = true
	t.mu.Unlock()

	capitan.Emit(ctx, TunerStarted,
		KeySprings.Field(len(t.springs)),
	)

	changes, err := t.watcher.Watch(ctx)
	if err != nil {
		return fmt.Errorf("failed to start watcher: %w", err)
	}

	var initialErr error
	select {
	case <-ctx.Done():
		return ctx.Err()
	case raw, ok := <-changes:
		if !ok {
			return fmt.Errorf("watcher closed before emitting initial tuning")
		}
		initialErr = t.apply(ctx, raw)
	}

	if t.syncMode {
		t.changes = changes
		return initialErr
	}

	go t.watch(ctx, changes)

	return initialErr
}

// Process reads and applies the next tuning from the watcher. This is
// only available in sync mode and is used for deterministic testing.
// Returns false if no value is available or the channel is closed.
func (t *Tuner) Process(ctx context.Context) bool {
	if !t.syncMode {
		return false
	}

	select {
	case raw, ok := <-t.changes:
		if !ok {
			return false
		}
		_ = t.apply(ctx, raw) //nolint:errcheck // Errors retained via setError
		return true
	default:
		return false
	}
}

// apply unmarshals, validates, and applies a single tuning.
func (t *Tuner) apply(ctx context.Context, raw []byte) error {
	var tuning Tuning
	if err := unmarshalTuning(raw, &tuning); err != nil {
		err = fmt.Errorf("unmarshal failed: %w", err)
		t.reject(ctx, err)
		return err
	}

	if err := validate.Struct(tuning); err != nil {
		err = fmt.Errorf("validation failed: %w", err)
		t.reject(ctx, err)
		return err
	}

	for _, s := range t.springs {
		s.SetDuration(tuning.Duration)
		s.SetDampingRatio(tuning.DampingRatio)
	}

	t.current.Store(&tuning)
	t.lastError.Store(nil)
	capitan.Emit(ctx, TuningApplied,
		KeyDuration.Field(formatFloat(tuning.Duration)),
		KeyDampingRatio.Field(formatFloat(tuning.DampingRatio)),
		KeySprings.Field(len(t.springs)),
	)

	return nil
}

// reject records a rejection without touching the springs.
func (t *Tuner) reject(ctx context.Context, err error) {
	e := err
	t.lastError.Store(&e)
	t.recent.push(err)
	capitan.Emit(ctx, TuningRejected,
		KeyError.Field(err.Error()),
	)
}

// unmarshalTuning parses bytes as JSON or YAML, detected by the leading
// character.
func unmarshalTuning(data []byte, v *Tuning) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '{' {
		return json.Unmarshal(data, v)
	}
	// YAML also handles plain JSON scalars and flow mappings.
	return yaml.Unmarshal(data, v)
}

// watch applies tunings from the watcher channel until it closes or the
// context is canceled.
func (t *Tuner) watch(ctx context.Context, changes <-chan []byte) {
	defer func() {
		capitan.Emit(ctx, TunerStopped)
	}()

	for {
		select {
		case <-ctx.Done():
			return
		case raw, ok := <-changes:
			if !ok {
				return
			}
			_ = t.apply(ctx, raw) //nolint:errcheck // Errors retained via setError
		}
	}
}
