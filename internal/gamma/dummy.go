package gamma

import (
	"context"
	"log/slog"

	"github.com/saaga0h/nightshift/internal/shift"
)

// DummySink does not touch any display, it only logs what would be applied
type DummySink struct {
	logger *slog.Logger
}

// NewDummySink creates a dummy sink logging through logger (nil for slog.Default())
func NewDummySink(logger *slog.Logger) *DummySink {
	if logger == nil {
		logger = slog.Default()
	}
	return &DummySink{logger: logger}
}

func (d *DummySink) Init() error { return nil }

func (d *DummySink) Start(ctx context.Context) error {
	d.logger.Warn("Using dummy sink, the display will not be changed")
	return nil
}

func (d *DummySink) Set(setting shift.ColorSetting, preserve bool) error {
	d.logger.Info("Temperature", "temperature", setting.Temperature,
		"brightness", setting.Brightness, "preserve", preserve)
	return nil
}

func (d *DummySink) Restore() {}

func (d *DummySink) Name() string { return "dummy" }
