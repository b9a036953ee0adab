// Package serial generates monotonically increasing, per-key sequence
// numbers.
package serial

import (
	"sync"
	"sync/atomic"
)

// Serial implements a thread-safe, per-key sequence generator.
//
// Each distinct key maintains its own independent counter, stored exactly
// (not approximated via a shared bucket), so that two different keys can
// never observe each other's increments. This matters for callers that
// stamp a revision number onto a single document identified by one key:
// any cross-key interference would mean two unrelated documents could
// appear to share a revision history.
//
// Serial is fully thread-safe. Multiple goroutines can safely call Next()
// and Current() concurrently, including for the same key, without
// external synchronization.
type Serial struct {
	counters sync.Map // string -> *atomic.Uint64
}

func (s *Serial) counter(key string) *atomic.Uint64 {
	if v, ok := s.counters.Load(key); ok {
		return v.(*atomic.Uint64)
	}
	v, _ := s.counters.LoadOrStore(key, new(atomic.Uint64))
	return v.(*atomic.Uint64)
}

// Next generates and returns the next sequential ID for the given key.
// Each key maintains its own independent sequence, starting from 1.
//
// Example:
//
//	serial := &Serial{}
//	id1 := serial.Next("doc-a") // 1
//	id2 := serial.Next("doc-a") // 2
//	id3 := serial.Next("doc-b") // 1, independent of "doc-a"
func (s *Serial) Next(key string) uint64 {
	return s.counter(key).Add(1)
}

// Current returns the current ID value for the given key without
// incrementing it. Returns 0 if the key has never been passed to Next.
func (s *Serial) Current(key string) uint64 {
	return s.counter(key).Load()
}

var (
	// ids is the singleton instance of the Serial generator, initialized
	// once via sync.Once for thread-safe lazy construction.
	ids *Serial

	once sync.Once
)

// Seq returns the singleton instance of the Serial ID generator shared
// across the process.
func Seq() *Serial {
	once.Do(func() {
		ids = &Serial{}
	})
	return ids
}
