package gateway

import (
	"sync"
	"time"
)

// Breaker gates outbound requests after provider failures. Implementations
// must be safe for concurrent use.
type Breaker interface {
	// Allow reports whether a gated request may proceed.
	Allow() bool

	// Trip records a failure and, when cooldown is positive, suspends
	// gated requests until it elapses.
	Trip(code string, cooldown time.Duration)

	// Note records a failure code without affecting the suspension
	// window. Used by requests that bypass gating.
	Note(code string)

	// Clear resets the last failure code after a success. The suspension
	// window, if any, is left to expire on its own.
	Clear()

	// LastCode returns the most recent failure code, or "" after a
	// success.
	LastCode() string

	// Suspended reports the current suspension deadline, if active.
	Suspended() (until time.Time, active bool)
}

// CooldownBreaker suspends requests for an error-dependent cooldown after
// each failure. The zero suspension state allows everything.
type CooldownBreaker struct {
	mu           sync.Mutex
	now          func() time.Time
	suspendUntil time.Time
	lastCode     string
}

// NewCooldownBreaker creates a breaker. A nil clock uses time.Now.
func NewCooldownBreaker(clock func() time.Time) *CooldownBreaker {
	if clock == nil {
		clock = time.Now
	}
	return &CooldownBreaker{now: clock}
}

func (b *CooldownBreaker) Allow() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return !b.now().Before(b.suspendUntil)
}

func (b *CooldownBreaker) Trip(code string, cooldown time.Duration) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.lastCode = code
	if cooldown > 0 {
		b.suspendUntil = b.now().Add(cooldown)
	}
}

func (b *CooldownBreaker) Note(code string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.lastCode = code
}

func (b *CooldownBreaker) Clear() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.lastCode = ""
}

func (b *CooldownBreaker) LastCode() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.lastCode
}

func (b *CooldownBreaker) Suspended() (time.Time, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.suspendUntil.IsZero() || !b.now().Before(b.suspendUntil) {
		return time.Time{}, false
	}
	return b.suspendUntil, true
}
