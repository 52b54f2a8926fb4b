package health

import (
	"context"
	"log/slog"
	"time"

	"github.com/saaga0h/nightshift/pkg/mqtt"
	"github.com/saaga0h/nightshift/pkg/redis"
)

// Dependency states
const (
	StatusOK           = "ok"
	StatusDegraded     = "degraded"
	StatusConnected    = "connected"
	StatusDisconnected = "disconnected"
	StatusUnused       = "unused"
)

// Checker reports the state of the MQTT and Redis connections. Either client may be nil.
type Checker struct {
	mqtt   mqtt.Client
	redis  redis.Client
	logger *slog.Logger
}

// NewChecker creates a new health checker with the given dependencies
func NewChecker(mqttClient mqtt.Client, redisClient redis.Client, logger *slog.Logger) *Checker {
	if logger == nil {
		logger = slog.Default()
	}
	return &Checker{
		mqtt:   mqttClient,
		redis:  redisClient,
		logger: logger,
	}
}

// Report is the result of a health check
type Report struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	MQTT      string    `json:"mqtt"`
	Redis     string    `json:"redis"`
}

// Check inspects both connections. Redis is pinged with a short timeout.
func (h *Checker) Check(ctx context.Context) Report {
	report := Report{
		Status:    StatusOK,
		Timestamp: time.Now().UTC(),
		MQTT:      StatusUnused,
		Redis:     StatusUnused,
	}

	if h.mqtt != nil {
		if h.mqtt.IsConnected() {
			report.MQTT = StatusConnected
		} else {
			report.MQTT = StatusDisconnected
			report.Status = StatusDegraded
		}
	}

	if h.redis != nil {
		pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
		defer cancel()

		if err := h.redis.Ping(pingCtx); err != nil {
			h.logger.Warn("Redis health check failed", "error", err)
			report.Redis = StatusDisconnected
			report.Status = StatusDegraded
		} else {
			report.Redis = StatusConnected
		}
	}

	return report
}
