package ratelimit

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// StatsEvent records one allow/deny decision.
type StatsEvent struct {
	Key     string
	Allowed bool
	Method  string
	Path    string
	At      time.Time
}

// StatsStore persists rate limit decisions.
type StatsStore interface {
	Record(ctx context.Context, ev StatsEvent) error
}

// Counters holds allow/deny tallies.
type Counters struct {
	Allowed int64
	Denied  int64
}

// MemoryStats counts decisions in memory. It never expires entries, so it
// is meant for development and tests.
type MemoryStats struct {
	mu      sync.Mutex
	total   Counters
	byRoute map[string]Counters
}

// NewMemoryStats creates an empty in-memory stats store.
func NewMemoryStats() *MemoryStats {
	return &MemoryStats{byRoute: make(map[string]Counters)}
}

// Record implements StatsStore.
func (s *MemoryStats) Record(_ context.Context, ev StatsEvent) error {
	route := ev.Method + " " + ev.Path

	s.mu.Lock()
	defer s.mu.Unlock()

	c := s.byRoute[route]
	if ev.Allowed {
		s.total.Allowed++
		c.Allowed++
	} else {
		s.total.Denied++
		c.Denied++
	}
	s.byRoute[route] = c
	return nil
}

// Total returns the cumulative counters.
func (s *MemoryStats) Total() Counters {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.total
}

// ByRoute returns a copy of the per-route counters.
func (s *MemoryStats) ByRoute() map[string]Counters {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make(map[string]Counters, len(s.byRoute))
	for k, v := range s.byRoute {
		out[k] = v
	}
	return out
}

// RedisStats counts decisions in Redis hashes: a cumulative total plus a
// per-minute series that expires after the TTL.
type RedisStats struct {
	rdb    *redis.Client
	prefix string
	ttl    time.Duration
}

// NewRedisStats creates a Redis-backed stats store.
func NewRedisStats(rdb *redis.Client) *RedisStats {
	return &RedisStats{rdb: rdb, prefix: "cartflow:ratelimit", ttl: 24 * time.Hour}
}

// Record implements StatsStore.
func (s *RedisStats) Record(ctx context.Context, ev StatsEvent) error {
	at := ev.At
	if at.IsZero() {
		at = time.Now()
	}

	field := "denied"
	if ev.Allowed {
		field = "allowed"
	}

	pipe := s.rdb.Pipeline()
	pipe.HIncrBy(ctx, s.prefix+":total", field, 1)

	bucket := fmt.Sprintf("%s:minute:%s", s.prefix, at.UTC().Format("200601021504"))
	pipe.HIncrBy(ctx, bucket, field, 1)
	pipe.Expire(ctx, bucket, s.ttl)

	_, err := pipe.Exec(ctx)
	return err
}
