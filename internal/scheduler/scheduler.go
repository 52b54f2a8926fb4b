// Package scheduler runs the continual adjustment loop: it evaluates the
// target setting from the sun (or the clock), fades towards it and reacts
// to toggle and exit requests.
package scheduler

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/saaga0h/nightshift/internal/fade"
	"github.com/saaga0h/nightshift/internal/gamma"
	"github.com/saaga0h/nightshift/internal/shift"
	"github.com/saaga0h/nightshift/internal/solar"
)

// Tick lengths
const (
	FadeInterval = 100 * time.Millisecond
	IdleInterval = 5 * time.Second
)

// Options configures a Scheduler
type Options struct {
	Scheme   shift.TransitionScheme
	Location shift.Location
	Sink     gamma.Sink
	Control  *Control

	// Fade smooths major changes over fade.Steps ticks
	Fade bool
	// ContinueOnSinkError logs failed applies instead of ending the run
	ContinueOnSinkError bool

	Status StatusReporter
	Logger *slog.Logger
}

// Scheduler owns the sink and the fade state for the duration of Run
type Scheduler struct {
	opts   Options
	logger *slog.Logger
	engine *fade.Engine

	enabled    bool
	done       bool
	lastPeriod shift.Period
	lastTemp   int

	now       func() time.Time
	elevation func(t time.Time, lat, lon float64) float64
	sleep     func(ctx context.Context, d time.Duration)
}

// New creates a scheduler. A nil Control is replaced with a fresh one.
func New(opts Options) *Scheduler {
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if opts.Control == nil {
		opts.Control = NewControl()
	}

	s := &Scheduler{
		opts:      opts,
		logger:    opts.Logger,
		engine:    fade.NewEngine(),
		enabled:   true,
		now:       time.Now,
		elevation: solar.Elevation,
	}
	s.sleep = s.wait
	return s
}

// Control returns the control the scheduler listens to
func (s *Scheduler) Control() *Control {
	return s.opts.Control
}

// Run ticks until shutdown completes, a sink error ends it, or ctx is cancelled.
// After a first exit request the display fades to neutral before Run returns;
// a second exit request returns immediately.
func (s *Scheduler) Run(ctx context.Context) error {
	ctrl := s.opts.Control

	s.logger.Info("Starting continual adjustment",
		"sink", s.opts.Sink.Name(),
		"fade", s.opts.Fade,
		"time_based", s.opts.Scheme.UseTime)

	for {
		if ctx.Err() != nil {
			s.logger.Info("Continual adjustment cancelled")
			return ctx.Err()
		}

		if ctrl.TakeToggle() && !s.done {
			s.enabled = !s.enabled
			s.logger.Info("Status changed", "enabled", s.enabled)
		}

		if ctrl.Exiting() {
			if s.done {
				s.logger.Info("Second exit request, stopping immediately")
				return nil
			}
			s.done = true
			s.enabled = false
			ctrl.ClearExit()
			s.logger.Info("Exit requested, restoring neutral setting")
		}

		status := s.evaluate()
		target := status.Setting
		if !s.enabled {
			target = shift.Neutral()
		}

		var current shift.ColorSetting
		if s.opts.Fade {
			current = s.engine.Advance(target)
		} else {
			current = target
		}
		fading := s.opts.Fade && s.engine.Fading()

		if err := s.opts.Sink.Set(current, false); err != nil {
			var sinkErr *gamma.SinkError
			if !errors.As(err, &sinkErr) {
				err = &gamma.SinkError{Sink: s.opts.Sink.Name(), Op: "set", Err: err}
			}
			if !s.opts.ContinueOnSinkError {
				return err
			}
			s.logger.Warn("Failed to apply setting", "error", err)
		}

		if current.Temperature != s.lastTemp {
			s.logger.Debug("Color temperature", "temperature", current.Temperature, "fading", fading)
			s.lastTemp = current.Temperature
		}

		status.Setting = current
		status.Enabled = s.enabled
		status.Fading = fading
		s.report(ctx, status)

		if s.done && !fading {
			s.logger.Info("Continual adjustment stopped")
			return nil
		}

		if fading {
			s.sleep(ctx, FadeInterval)
		} else {
			s.sleep(ctx, IdleInterval)
		}
	}
}

// evaluate computes the period, progress and target for the current time
func (s *Scheduler) evaluate() Status {
	now := s.now()
	status := Status{Timestamp: now}

	if s.opts.Scheme.UseTime {
		status.Period, status.Progress, status.Setting = shift.EvaluateTime(s.opts.Scheme, secondsSinceMidnight(now))
	} else {
		status.Elevation = s.elevation(now, s.opts.Location.Lat, s.opts.Location.Lon)
		status.HasElevation = true
		status.Period, status.Progress, status.Setting = shift.Evaluate(s.opts.Scheme, status.Elevation)
	}

	if status.Period != s.lastPeriod {
		s.logger.Info("Period changed",
			"from", s.lastPeriod.String(),
			"to", status.Period.String(),
			"progress", status.Progress)
		s.lastPeriod = status.Period
	}
	return status
}

func (s *Scheduler) report(ctx context.Context, status Status) {
	if s.opts.Status == nil {
		return
	}
	if err := s.opts.Status.Report(ctx, status); err != nil {
		s.logger.Warn("Failed to report status", "error", err)
	}
}

// wait sleeps for d, returning early on a control request or cancellation
func (s *Scheduler) wait(ctx context.Context, d time.Duration) {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
	case <-s.opts.Control.Wake():
	case <-ctx.Done():
	}
}

func secondsSinceMidnight(t time.Time) int {
	h, m, sec := t.Clock()
	return h*3600 + m*60 + sec
}
