// Package gamma applies color settings to a display through a Sink and
// guarantees the display is returned to neutral when the program ends.
package gamma

import (
	"context"
	"fmt"

	"github.com/saaga0h/nightshift/internal/shift"
)

// Sink applies a color setting to a display
type Sink interface {
	// Init checks the sink's configuration before anything is applied
	Init() error

	// Start connects to the display and saves its current state
	Start(ctx context.Context) error

	// Set applies the setting. With preserve the setting is applied on top of
	// the state saved by Start instead of the identity ramp.
	Set(setting shift.ColorSetting, preserve bool) error

	// Restore puts back the state saved by Start
	Restore()

	// Name identifies the sink in logs and errors
	Name() string
}

// SinkError reports a failure to initialise or apply a setting through a sink
type SinkError struct {
	Sink string
	Op   string
	Err  error
}

func (e *SinkError) Error() string {
	return fmt.Sprintf("%s sink: %s failed: %v", e.Sink, e.Op, e.Err)
}

func (e *SinkError) Unwrap() error {
	return e.Err
}
