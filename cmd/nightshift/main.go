package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/saaga0h/nightshift/internal/gamma"
	"github.com/saaga0h/nightshift/internal/location"
	"github.com/saaga0h/nightshift/internal/scheduler"
	"github.com/saaga0h/nightshift/internal/shift"
	"github.com/saaga0h/nightshift/internal/solar"
	"github.com/saaga0h/nightshift/pkg/config"
	"github.com/saaga0h/nightshift/pkg/health"
	"github.com/saaga0h/nightshift/pkg/mqtt"
	"github.com/saaga0h/nightshift/pkg/redis"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	// Load configuration with hierarchy: defaults → file → env → flags
	cfg, err := config.Load(args)
	if err != nil {
		if config.IsHelp(err) {
			return 0
		}
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		return 1
	}

	// Set up structured logging
	logLevel := parseLogLevel(cfg.LogLevel)
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	logger.Info("Starting nightshift",
		"service_name", cfg.ServiceName,
		"mode", cfg.Mode,
		"sink", cfg.Sink,
		"log_level", cfg.LogLevel)

	scheme, err := cfg.Scheme()
	if err != nil {
		logger.Error("Invalid transition scheme", "error", err)
		return 1
	}

	// Set up context with cancellation for shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var mqttClient mqtt.Client
	if cfg.UsesMQTT() {
		mqttClient = mqtt.NewClient(cfg, logger)
		connectCtx, connectCancel := context.WithTimeout(ctx, 15*time.Second)
		err := mqttClient.Connect(connectCtx)
		connectCancel()
		if err != nil {
			logger.Error("Failed to connect to MQTT", "error", err)
			return 1
		}
		defer mqttClient.Disconnect()
	}

	var redisClient redis.Client
	if cfg.UsesRedis() {
		redisClient = redis.NewClient(cfg, logger)
		if err := redisClient.Ping(ctx); err != nil {
			logger.Error("Failed to connect to Redis", "error", err)
			return 1
		}
		defer redisClient.Close()
	}

	report := health.NewChecker(mqttClient, redisClient, logger).Check(ctx)
	logger.Info("Dependency status", "status", report.Status, "mqtt", report.MQTT, "redis", report.Redis)

	var loc shift.Location
	if cfg.NeedsLocation() {
		loc, err = resolveLocation(ctx, cfg, mqttClient, redisClient, logger)
		if err != nil {
			logger.Error("Unable to get location", "error", err)
			return 1
		}
	}

	if cfg.Mode == config.ModePrint {
		printStatus(ctx, os.Stdout, cfg, scheme, loc, redisClient, time.Now())
		return 0
	}

	sink, err := newSink(ctx, cfg, mqttClient, logger)
	if err != nil {
		logger.Error("Unable to start gamma sink", "error", err)
		return 1
	}

	switch cfg.Mode {
	case config.ModeReset:
		return apply(sink, shift.Neutral(), false, logger)

	case config.ModeManual:
		setting := scheme.Day
		setting.Temperature = cfg.ManualTemperature
		return apply(sink, setting, cfg.Preserve, logger)

	case config.ModeOneShot:
		period, progress, setting := evaluateNow(scheme, loc, time.Now())
		logger.Info("Applying one-shot setting",
			"period", period.String(),
			"progress", progress,
			"setting", setting.String())
		return apply(sink, setting, cfg.Preserve, logger)
	}

	return runContinual(ctx, cfg, scheme, loc, sink, mqttClient, redisClient, logger)
}

func runContinual(ctx context.Context, cfg *config.Config, scheme shift.TransitionScheme, loc shift.Location,
	sink gamma.Sink, mqttClient mqtt.Client, redisClient redis.Client, logger *slog.Logger) int {

	guard := gamma.NewRestoreGuard(sink)
	defer guard.Release()

	ctrl := scheduler.NewControl()
	scheduler.NotifySignals(ctx, ctrl, logger)

	if mqttClient != nil {
		if err := scheduler.SubscribeControl(mqttClient, cfg.ServiceName, ctrl, logger); err != nil {
			logger.Warn("Remote control unavailable", "error", err)
		}
	}

	var status scheduler.StatusReporter
	if cfg.EnableStatus && redisClient != nil {
		status = scheduler.NewRedisStatus(redisClient, cfg.ServiceName,
			time.Duration(cfg.StatusTTLSec)*time.Second, logger)
	}

	sched := scheduler.New(scheduler.Options{
		Scheme:              scheme,
		Location:            loc,
		Sink:                guard.Sink(),
		Control:             ctrl,
		Fade:                cfg.Fade,
		ContinueOnSinkError: cfg.ContinueOnSinkError,
		Status:              status,
		Logger:              logger,
	})

	if err := sched.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("Continual adjustment failed", "error", err)
		return 1
	}
	finishContinual(guard, cfg.RestoreSaved, logger)

	logger.Info("Nightshift shutdown complete")
	return 0
}

// apply sets a single setting and leaves it on the display. If applying
// fails the display is reset to neutral.
func apply(sink gamma.Sink, setting shift.ColorSetting, preserve bool, logger *slog.Logger) int {
	guard := gamma.NewRestoreGuard(sink)
	defer guard.Release()

	if err := guard.Sink().Set(setting, preserve); err != nil {
		logger.Error("Failed to apply setting", "error", err)
		return 1
	}
	guard.Disarm()

	logger.Info("Applied setting", "setting", setting.String(), "preserve", preserve)
	return 0
}

// finishContinual puts back the ramp saved at startup instead of neutral when restoreSaved is set
func finishContinual(guard *gamma.RestoreGuard, restoreSaved bool, logger *slog.Logger) {
	if !restoreSaved {
		return
	}
	guard.Disarm()
	guard.Sink().Restore()
	logger.Info("Restored display state saved at startup", "sink", guard.Sink().Name())
}

func newSink(ctx context.Context, cfg *config.Config, mqttClient mqtt.Client, logger *slog.Logger) (gamma.Sink, error) {
	var sink gamma.Sink
	switch cfg.Sink {
	case config.SinkDummy:
		sink = gamma.NewDummySink(logger)
	case config.SinkMQTT:
		sink = gamma.NewMQTTSink(mqttClient, gamma.MQTTSinkOptions{
			Display:  cfg.Display,
			RampSize: cfg.RampSize,
		}, logger)
	default:
		return nil, fmt.Errorf("unknown sink %q", cfg.Sink)
	}

	if err := sink.Init(); err != nil {
		return nil, err
	}
	if err := sink.Start(ctx); err != nil {
		return nil, err
	}

	logger.Info("Using gamma sink", "sink", sink.Name())
	return sink, nil
}

// resolveLocation tries the configured providers in order and caches the
// result in Redis when a Redis connection is available
func resolveLocation(ctx context.Context, cfg *config.Config, mqttClient mqtt.Client, redisClient redis.Client,
	logger *slog.Logger) (shift.Location, error) {

	var sources []location.Source
	for _, name := range cfg.LocationProviders {
		switch name {
		case config.ProviderManual:
			loc, err := cfg.ManualLocation()
			if err != nil {
				return shift.Location{}, err
			}
			sources = append(sources, location.NewManualSourceAt(loc))
		case config.ProviderMQTT:
			sources = append(sources, location.NewMQTTSource(mqttClient, "+", logger))
		case config.ProviderRedis:
			sources = append(sources, location.NewRedisSource(redisClient, cfg.ServiceName, logger))
		}
	}
	defer func() {
		for _, src := range sources {
			if err := src.Close(); err != nil {
				logger.Warn("Failed to close location source", "source", src.Name(), "error", err)
			}
		}
	}()

	wait := time.Duration(cfg.LocationWaitSec) * time.Second
	loc, from, err := location.Resolve(ctx, wait, sources...)
	if err != nil {
		return shift.Location{}, err
	}

	logger.Info("Location resolved", "source", from, "location", loc.String())

	if redisClient != nil && from != "redis" {
		cache := location.NewRedisSource(redisClient, cfg.ServiceName, logger)
		if err := cache.Save(ctx, loc, from); err != nil {
			logger.Warn("Failed to cache location", "error", err)
		}
	}
	return loc, nil
}

func evaluateNow(scheme shift.TransitionScheme, loc shift.Location, now time.Time) (shift.Period, float64, shift.ColorSetting) {
	if scheme.UseTime {
		h, m, s := now.Clock()
		return shift.EvaluateTime(scheme, h*3600+m*60+s)
	}
	return shift.Evaluate(scheme, solar.Elevation(now, loc.Lat, loc.Lon))
}

func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
