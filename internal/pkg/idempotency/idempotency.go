// Package idempotency guards side-effecting operations with a
// redis-backed state machine so that retried message deliveries do the
// work at most once.
package idempotency

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

var (
	// ErrInProgress is returned when another worker holds the key.
	ErrInProgress = errors.New("operation already in progress")
	// ErrCompleted is returned when the operation already succeeded.
	ErrCompleted = errors.New("operation already completed")
	// ErrFailed is returned when a previous attempt failed and its
	// failure state has not expired yet.
	ErrFailed = errors.New("operation previously failed")

	errUnknownState = errors.New("unknown idempotency state")
)

// State describes what is known about an operation key.
type State string

const (
	StateNone       State = "none"
	StateInProgress State = "in_progress"
	StateCompleted  State = "completed"
	StateFailed     State = "failed"
)

func (s State) String() string { return string(s) }

// Idempotency executes a function at most once per key.
type Idempotency interface {
	Exec(ctx context.Context, key string, fn func(context.Context) error, opts ...Option) error
}

// Option tunes a single Exec call.
type Option func(*execOptions)

type execOptions struct {
	lockDuration time.Duration
	stateTTL     time.Duration
}

// WithLockDuration sets how long the in-progress lock is held before
// it expires on its own.
func WithLockDuration(d time.Duration) Option {
	return func(o *execOptions) { o.lockDuration = d }
}

// WithStateTTL sets how long the completed or failed state is kept.
func WithStateTTL(d time.Duration) Option {
	return func(o *execOptions) { o.stateTTL = d }
}

const (
	defaultLockDuration = time.Minute
	defaultStateTTL     = 10 * time.Minute
)

// StateTracker is the redis-backed Idempotency implementation.
type StateTracker struct {
	client *redis.Client
	prefix string
}

// New creates a StateTracker on top of client.
func New(client *redis.Client) *StateTracker {
	return &StateTracker{client: client, prefix: "idempotency:"}
}

func (s *StateTracker) acquire(ctx context.Context, key string, lockDuration time.Duration) (State, error) {
	fk := s.prefix + key

	acquired, err := s.client.SetNX(ctx, fk, StateInProgress.String(), lockDuration).Result()
	if err != nil {
		return StateNone, err
	}
	if acquired {
		return StateNone, nil
	}

	result, err := s.client.Get(ctx, fk).Result()
	if errors.Is(err, redis.Nil) {
		// The key expired between SetNX and Get. Try once more.
		acquired, err = s.client.SetNX(ctx, fk, StateInProgress.String(), lockDuration).Result()
		if err != nil {
			return StateNone, err
		}
		if acquired {
			return StateNone, nil
		}
		return StateNone, errUnknownState
	}
	if err != nil {
		return StateNone, err
	}

	switch State(result) {
	case StateInProgress, StateCompleted, StateFailed:
		return State(result), nil
	default:
		return StateNone, errUnknownState
	}
}

// Exec runs fn under the idempotency key, recording completion or
// failure so repeated calls short-circuit.
func (s *StateTracker) Exec(ctx context.Context, key string, fn func(context.Context) error, opts ...Option) error {
	eo := &execOptions{lockDuration: defaultLockDuration, stateTTL: defaultStateTTL}
	for _, opt := range opts {
		opt(eo)
	}
	if eo.lockDuration <= 0 {
		eo.lockDuration = defaultLockDuration
	}
	if eo.stateTTL <= 0 {
		eo.stateTTL = defaultStateTTL
	}

	state, err := s.acquire(ctx, key, eo.lockDuration)
	if err != nil {
		return err
	}

	switch state {
	case StateInProgress:
		return ErrInProgress
	case StateCompleted:
		return ErrCompleted
	case StateFailed:
		return ErrFailed
	}

	if err := fn(ctx); err != nil {
		if markErr := s.client.Set(ctx, s.prefix+key, StateFailed.String(), eo.stateTTL).Err(); markErr != nil {
			return markErr
		}
		return err
	}

	return s.client.Set(ctx, s.prefix+key, StateCompleted.String(), eo.stateTTL).Err()
}
