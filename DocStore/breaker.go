package DocStore

import (
	"sync"
	"time"
)

// Breaker gates calls to the cloud document store. A failure disables the
// store for one cooldown window; after the window elapses calls are allowed
// again so the system retries periodically instead of hammering a down
// dependency. The clock is injectable so the re-enable timing is testable
// without real delays.
type Breaker struct {
	mu            sync.Mutex
	cooldown      time.Duration
	disabledUntil time.Time
	now           func() time.Time
}

const DefaultCooldown = 5 * time.Minute

func NewBreaker(cooldown time.Duration) *Breaker {
	if cooldown <= 0 {
		cooldown = DefaultCooldown
	}
	return &Breaker{cooldown: cooldown, now: time.Now}
}

// WithClock replaces the time source. Test hook.
func (b *Breaker) WithClock(now func() time.Time) *Breaker {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.now = now
	return b
}

// Allow reports whether the store may be called right now.
func (b *Breaker) Allow() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return !b.now().Before(b.disabledUntil)
}

// MarkFailure disables the store until the cooldown elapses.
func (b *Breaker) MarkFailure() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.disabledUntil = b.now().Add(b.cooldown)
}

// Reset re-enables the store immediately, e.g. after a successful probe.
func (b *Breaker) Reset() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.disabledUntil = time.Time{}
}

// Degraded reports whether the breaker is currently holding calls back.
func (b *Breaker) Degraded() bool {
	return !b.Allow()
}
