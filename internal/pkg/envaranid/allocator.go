package envaranid

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2/log"
)

// Counter reports how many registration records exist. The registration
// repository satisfies it.
type Counter interface {
	Count() (int64, error)
}

// Allocator mints the next human-readable Envaran identifier from the current
// registration count.
//
// This is a read-count-then-use scheme, not an atomic counter: two concurrent
// allocations can read the same count and mint the same identifier. The
// scheme is kept as-is; hardening it would need an atomic increment in the
// backing store.
type Allocator struct {
	counter Counter
	now     func() time.Time
}

// New creates an allocator over the given counter.
func New(counter Counter) *Allocator {
	return &Allocator{counter: counter, now: time.Now}
}

// Next returns the next identifier, formatted envaran###, zero-padded to
// three digits. If the count cannot be read it falls back to the last three
// digits of the current timestamp; that degraded mode is unique by luck only,
// and is reported through the second return value.
func (a *Allocator) Next() (string, bool) {
	count, err := a.counter.Count()
	if err != nil {
		id := fmt.Sprintf("envaran%03d", a.now().UnixMilli()%1000)
		log.Warnf("[EnvaranID] count unavailable, using timestamp fallback %s: %v", id, err)
		return id, true
	}

	return fmt.Sprintf("envaran%03d", count+1), false
}
