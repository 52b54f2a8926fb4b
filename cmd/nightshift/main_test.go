package main

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saaga0h/nightshift/internal/gamma"
	"github.com/saaga0h/nightshift/internal/scheduler"
	"github.com/saaga0h/nightshift/internal/shift"
	"github.com/saaga0h/nightshift/pkg/config"
	"github.com/saaga0h/nightshift/pkg/redis/redistest"
)

var helsinki = shift.Location{Lat: 60.17, Lon: 24.94}

func TestRun_ExitCodes(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want int
	}{
		{"help", []string{"--help"}, 0},
		{"invalid temperature", []string{"--temp-day", "90000", "-l", "60.17:24.94"}, 1},
		{"unknown flag", []string{"--no-such-flag"}, 1},
		{"reset", []string{"--mode", "reset", "--sink", "dummy"}, 0},
		{"manual", []string{"--mode", "manual", "-O", "4000", "--sink", "dummy"}, 0},
		{"oneshot", []string{"--mode", "oneshot", "-l", "60.17:24.94", "--sink", "dummy"}, 0},
		{"print", []string{"--mode", "print", "-l", "60.17:24.94"}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("NIGHTSHIFT_CONFIG", "")
			assert.Equal(t, tt.want, run(append(tt.args, "--log-level", "error")))
		})
	}
}

func TestEvaluateNow(t *testing.T) {
	noon := time.Date(2024, 6, 20, 10, 0, 0, 0, time.UTC)
	period, progress, setting := evaluateNow(shift.DefaultScheme(), helsinki, noon)
	assert.Equal(t, shift.PeriodDaytime, period)
	assert.Equal(t, 1.0, progress)
	assert.True(t, setting.IsNeutral())

	midnight := time.Date(2024, 12, 20, 22, 0, 0, 0, time.UTC)
	period, _, setting = evaluateNow(shift.DefaultScheme(), helsinki, midnight)
	assert.Equal(t, shift.PeriodNight, period)
	assert.Equal(t, 3500, setting.Temperature)
}

func TestPrintStatus_SolarScheme(t *testing.T) {
	var buf bytes.Buffer
	now := time.Date(2024, 6, 20, 12, 0, 0, 0, time.UTC)

	printStatus(context.Background(), &buf, config.NewConfig(), shift.DefaultScheme(), helsinki, nil, now)

	out := buf.String()
	assert.Contains(t, out, "Location: 60.1700, 24.9400")
	assert.Contains(t, out, "Period: Daytime")
	assert.Contains(t, out, "Color temperature: 6500K")
	assert.Contains(t, out, "sunrise:")
	assert.Regexp(t, `astronomical dawn:\s+-\n`, out)
}

func TestPrintStatus_TimeSchemeWithHistory(t *testing.T) {
	dawn, err := shift.ParseTimeRange("06:00-07:00")
	require.NoError(t, err)
	dusk, err := shift.ParseTimeRange("20:00-21:30")
	require.NoError(t, err)

	scheme := shift.DefaultScheme()
	scheme.UseTime = true
	scheme.Dawn = dawn
	scheme.Dusk = dusk

	cfg := config.NewConfig()
	cfg.EnableStatus = true
	client := redistest.NewMockClient()

	now := time.Date(2024, 3, 1, 20, 30, 0, 0, time.UTC)
	reporter := scheduler.NewRedisStatus(client, cfg.ServiceName, 0, nil)
	require.NoError(t, reporter.Report(context.Background(), scheduler.Status{
		Period:    shift.PeriodTransition,
		Setting:   shift.Neutral(),
		Timestamp: now,
	}))

	var buf bytes.Buffer
	printStatus(context.Background(), &buf, cfg, scheme, shift.Location{}, client, now)

	out := buf.String()
	assert.Contains(t, out, "Dawn: 06:00-07:00, dusk: 20:00-21:30")
	assert.Contains(t, out, "Period: Transition")
	assert.NotContains(t, out, "Solar events")
	assert.Contains(t, out, "None -> Transition")
}

type recordingSink struct {
	calls    []shift.ColorSetting
	restored int
	err      error
}

func (r *recordingSink) Init() error                     { return nil }
func (r *recordingSink) Start(ctx context.Context) error { return nil }
func (r *recordingSink) Restore()                        { r.restored++ }
func (r *recordingSink) Name() string                    { return "recording" }

func (r *recordingSink) Set(setting shift.ColorSetting, preserve bool) error {
	r.calls = append(r.calls, setting)
	return r.err
}

func TestApply_KeepsSettingOnSuccess(t *testing.T) {
	sink := &recordingSink{}
	setting := shift.Neutral()
	setting.Temperature = 4200

	assert.Equal(t, 0, apply(sink, setting, true, slog.Default()))

	require.Len(t, sink.calls, 1)
	assert.Equal(t, 4200, sink.calls[0].Temperature)
}

func TestApply_ResetsToNeutralOnFailure(t *testing.T) {
	sink := &recordingSink{err: errors.New("display gone")}
	setting := shift.Neutral()
	setting.Temperature = 4200

	assert.Equal(t, 1, apply(sink, setting, false, slog.Default()))

	require.Len(t, sink.calls, 2)
	assert.True(t, sink.calls[1].IsNeutral())
}

func TestFinishContinual(t *testing.T) {
	sink := &recordingSink{}
	guard := gamma.NewRestoreGuard(sink)
	finishContinual(guard, true, slog.Default())
	guard.Release()

	assert.Equal(t, 1, sink.restored)
	assert.Empty(t, sink.calls, "saved state replaces the neutral reset")

	sink = &recordingSink{}
	guard = gamma.NewRestoreGuard(sink)
	finishContinual(guard, false, slog.Default())
	guard.Release()

	assert.Zero(t, sink.restored)
	require.Len(t, sink.calls, 1)
	assert.True(t, sink.calls[0].IsNeutral())
}
