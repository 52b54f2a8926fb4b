package gamma

import (
	"sync"
	"sync/atomic"

	"github.com/saaga0h/nightshift/internal/shift"
)

// RestoreGuard resets the display to neutral exactly once when released.
// Release is meant to be deferred so that it also runs while a panic unwinds.
//
//	guard := gamma.NewRestoreGuard(sink)
//	defer guard.Release()
type RestoreGuard struct {
	sink     Sink
	once     sync.Once
	disarmed atomic.Bool
}

// NewRestoreGuard arms a guard for sink
func NewRestoreGuard(sink Sink) *RestoreGuard {
	return &RestoreGuard{sink: sink}
}

// Sink returns the guarded sink for regular use
func (g *RestoreGuard) Sink() Sink {
	return g.sink
}

// Disarm keeps the current display state on release
func (g *RestoreGuard) Disarm() {
	g.disarmed.Store(true)
}

// Release applies the neutral setting unless disarmed. Later calls do
// nothing and errors are discarded.
func (g *RestoreGuard) Release() {
	if g.disarmed.Load() {
		return
	}
	g.once.Do(func() {
		_ = g.sink.Set(shift.Neutral(), false)
	})
}
