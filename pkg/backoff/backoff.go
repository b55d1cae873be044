package backoff

import (
	"math"
	"math/rand"
	"sync"
	"time"
)

// Policy spaces out retries of one request: exponential growth from Base
// capped at Max, plus up to MaxJitter of random spread.
type Policy struct {
	Base      time.Duration
	Max       time.Duration
	MaxJitter time.Duration
	Source    *Source
}

// Delay is the wait before retry number attempt (1-based).
func (p Policy) Delay(attempt int) time.Duration {
	return Exponential(attempt, p.Base, p.Max) + p.Source.Jitter(p.MaxJitter)
}

// Exponential returns base * 2^(attempts-1), capped at maxBackoff.
func Exponential(attempts int, base, maxBackoff time.Duration) time.Duration {
	if attempts <= 0 || base <= 0 {
		return 0
	}
	factor := math.Pow(2, float64(attempts-1))
	d := time.Duration(factor * float64(base))
	if d > maxBackoff || d <= 0 {
		return maxBackoff
	}
	return d
}

// Source is a seeded random source shared by concurrent retry loops.
type Source struct {
	mu sync.Mutex
	r  *rand.Rand
}

func NewSource(seed int64) *Source {
	return &Source{r: rand.New(rand.NewSource(seed))} //nolint:gosec
}

// Jitter returns a random duration in [0, maxJitter]. A nil Source yields 0.
func (s *Source) Jitter(maxJitter time.Duration) time.Duration {
	if s == nil || maxJitter <= 0 {
		return 0
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return time.Duration(s.r.Int63n(int64(maxJitter) + 1))
}
