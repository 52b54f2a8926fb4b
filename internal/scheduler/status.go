package scheduler

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/saaga0h/nightshift/internal/shift"
	"github.com/saaga0h/nightshift/pkg/redis"
)

const (
	historyLength  = 100
	sampleInterval = time.Minute
	sampleWindow   = 24 * time.Hour
)

// Status is the state reported after each tick
type Status struct {
	Period    shift.Period
	Progress  float64
	Elevation float64
	// Elevation is not computed for time based schemes
	HasElevation bool
	Setting      shift.ColorSetting
	Enabled      bool
	Fading       bool
	Timestamp    time.Time
}

// StatusReporter publishes run status. Report errors are logged by the caller, never fatal.
type StatusReporter interface {
	Report(ctx context.Context, status Status) error
}

// PeriodChange is an entry of the period history list
type PeriodChange struct {
	From        string    `json:"from"`
	To          string    `json:"to"`
	Temperature int       `json:"temperature"`
	Timestamp   time.Time `json:"timestamp"`
}

// Sample is an applied temperature recorded in the samples sorted set
type Sample struct {
	Temperature int       `json:"temperature"`
	Brightness  float64   `json:"brightness"`
	Timestamp   time.Time `json:"timestamp"`
}

// RedisStatus keeps the live status hash, the period history and a day of
// temperature samples for one service instance
type RedisStatus struct {
	client  redis.Client
	service string
	ttl     time.Duration
	logger  *slog.Logger

	lastPeriod shift.Period
	lastSample time.Time
}

// NewRedisStatus creates a reporter whose status hash expires after ttl without updates
func NewRedisStatus(client redis.Client, service string, ttl time.Duration, logger *slog.Logger) *RedisStatus {
	if logger == nil {
		logger = slog.Default()
	}
	return &RedisStatus{
		client:  client,
		service: service,
		ttl:     ttl,
		logger:  logger,
	}
}

// Report writes the status hash and records period changes and samples
func (r *RedisStatus) Report(ctx context.Context, status Status) error {
	key := redis.StatusKey(r.service)
	fields := map[string]interface{}{
		"period":      status.Period.String(),
		"progress":    strconv.FormatFloat(status.Progress, 'f', 4, 64),
		"temperature": status.Setting.Temperature,
		"brightness":  strconv.FormatFloat(status.Setting.Brightness, 'f', 2, 64),
		"gamma": fmt.Sprintf("%.2f:%.2f:%.2f",
			status.Setting.Gamma[0], status.Setting.Gamma[1], status.Setting.Gamma[2]),
		"enabled":    strconv.FormatBool(status.Enabled),
		"fading":     strconv.FormatBool(status.Fading),
		"updated_at": status.Timestamp.UTC().Format(time.RFC3339),
	}
	if status.HasElevation {
		fields["elevation"] = strconv.FormatFloat(status.Elevation, 'f', 2, 64)
	}

	if err := r.client.HSetAll(ctx, key, fields); err != nil {
		return fmt.Errorf("failed to write status: %w", err)
	}
	if r.ttl > 0 {
		if err := r.client.Expire(ctx, key, r.ttl); err != nil {
			return fmt.Errorf("failed to set status TTL: %w", err)
		}
	}

	if status.Period != r.lastPeriod {
		if err := r.recordPeriodChange(ctx, status); err != nil {
			return err
		}
		r.lastPeriod = status.Period
	}

	if status.Timestamp.Sub(r.lastSample) >= sampleInterval {
		if err := r.recordSample(ctx, status); err != nil {
			return err
		}
		r.lastSample = status.Timestamp
	}

	return nil
}

func (r *RedisStatus) recordPeriodChange(ctx context.Context, status Status) error {
	change := PeriodChange{
		From:        r.lastPeriod.String(),
		To:          status.Period.String(),
		Temperature: status.Setting.Temperature,
		Timestamp:   status.Timestamp.UTC(),
	}
	data, err := json.Marshal(change)
	if err != nil {
		return fmt.Errorf("failed to marshal period change: %w", err)
	}

	key := redis.HistoryKey(r.service)
	if err := r.client.LPush(ctx, key, string(data)); err != nil {
		return fmt.Errorf("failed to record period change: %w", err)
	}
	if err := r.client.LTrim(ctx, key, 0, historyLength-1); err != nil {
		return fmt.Errorf("failed to trim period history: %w", err)
	}

	r.logger.Debug("Recorded period change", "from", change.From, "to", change.To)
	return nil
}

func (r *RedisStatus) recordSample(ctx context.Context, status Status) error {
	data, err := json.Marshal(Sample{
		Temperature: status.Setting.Temperature,
		Brightness:  status.Setting.Brightness,
		Timestamp:   status.Timestamp.UTC(),
	})
	if err != nil {
		return fmt.Errorf("failed to marshal sample: %w", err)
	}

	key := redis.SamplesKey(r.service)
	score := float64(status.Timestamp.UnixMilli())
	if err := r.client.ZAdd(ctx, key, score, string(data)); err != nil {
		return fmt.Errorf("failed to record sample: %w", err)
	}

	cutoff := status.Timestamp.Add(-sampleWindow).UnixMilli()
	if err := r.client.ZRemRangeByScore(ctx, key, "-inf", strconv.FormatInt(cutoff, 10)); err != nil {
		return fmt.Errorf("failed to expire old samples: %w", err)
	}
	return nil
}

// History returns up to limit period changes, newest first
func (r *RedisStatus) History(ctx context.Context, limit int) ([]PeriodChange, error) {
	values, err := r.client.LRange(ctx, redis.HistoryKey(r.service), 0, int64(limit-1))
	if err != nil {
		return nil, fmt.Errorf("failed to read period history: %w", err)
	}

	changes := make([]PeriodChange, 0, len(values))
	for _, v := range values {
		var change PeriodChange
		if err := json.Unmarshal([]byte(v), &change); err != nil {
			r.logger.Warn("Skipping malformed history entry", "error", err)
			continue
		}
		changes = append(changes, change)
	}
	return changes, nil
}

// Samples returns the samples recorded since the given time, oldest first
func (r *RedisStatus) Samples(ctx context.Context, since time.Time) ([]Sample, error) {
	values, err := r.client.ZRangeByScoreWithScores(ctx, redis.SamplesKey(r.service),
		float64(since.UnixMilli()), float64(time.Now().UnixMilli()))
	if err != nil {
		return nil, fmt.Errorf("failed to read samples: %w", err)
	}

	samples := make([]Sample, 0, len(values))
	for _, item := range values {
		var s Sample
		if err := json.Unmarshal([]byte(item.Member), &s); err != nil {
			r.logger.Warn("Skipping malformed sample", "error", err)
			continue
		}
		samples = append(samples, s)
	}
	return samples, nil
}
