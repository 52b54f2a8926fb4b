package location

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/saaga0h/nightshift/internal/shift"
	"github.com/saaga0h/nightshift/pkg/redis"
)

// RedisSource reads the location cached in the hash nightshift:location:{name}.
// Save stores a resolved location so later runs can start without waiting
// for another provider.
type RedisSource struct {
	client redis.Client
	name   string
	maxAge time.Duration
	logger *slog.Logger
}

// NewRedisSource creates a source for the cache entry name
func NewRedisSource(client redis.Client, name string, logger *slog.Logger) *RedisSource {
	if logger == nil {
		logger = slog.Default()
	}
	return &RedisSource{
		client: client,
		name:   name,
		logger: logger,
	}
}

func (s *RedisSource) Init() error {
	if s.client == nil {
		return errors.New("Redis client is required")
	}
	if s.name == "" {
		return errors.New("cache name is required")
	}
	return nil
}

func (s *RedisSource) Start(ctx context.Context) error {
	return s.client.Ping(ctx)
}

// Location returns the cached location. Entries older than the max-age
// option are treated as missing.
func (s *RedisSource) Location(ctx context.Context) (shift.Location, error) {
	fields, err := s.client.HGetAll(ctx, redis.LocationKey(s.name))
	if err != nil {
		return shift.Location{}, err
	}
	if len(fields) == 0 {
		return shift.Location{}, ErrNoLocation
	}

	lat, err := strconv.ParseFloat(fields["lat"], 64)
	if err != nil {
		return shift.Location{}, fmt.Errorf("cached latitude %q: %w", fields["lat"], err)
	}
	lon, err := strconv.ParseFloat(fields["lon"], 64)
	if err != nil {
		return shift.Location{}, fmt.Errorf("cached longitude %q: %w", fields["lon"], err)
	}

	if s.maxAge > 0 {
		updated, err := time.Parse(time.RFC3339, fields["updated_at"])
		if err != nil || time.Since(updated) > s.maxAge {
			s.logger.Debug("Cached location is stale", "key", redis.LocationKey(s.name), "updated_at", fields["updated_at"])
			return shift.Location{}, ErrNoLocation
		}
	}

	return shift.Location{Lat: lat, Lon: lon}, nil
}

// Save caches loc along with the name of the source that produced it
func (s *RedisSource) Save(ctx context.Context, loc shift.Location, source string) error {
	return s.client.HSetAll(ctx, redis.LocationKey(s.name), map[string]interface{}{
		"lat":        strconv.FormatFloat(loc.Lat, 'f', -1, 64),
		"lon":        strconv.FormatFloat(loc.Lon, 'f', -1, 64),
		"source":     source,
		"updated_at": time.Now().UTC().Format(time.RFC3339),
	})
}

// SetOption accepts "name" and "max-age" (a Go duration)
func (s *RedisSource) SetOption(key, value string) error {
	switch strings.ToLower(key) {
	case "name":
		s.name = value
	case "max-age":
		d, err := time.ParseDuration(value)
		if err != nil {
			return &shift.ValidationError{Field: "max-age", Value: value, Reason: "not a duration"}
		}
		s.maxAge = d
	default:
		return fmt.Errorf("unknown redis location option: %s", key)
	}
	return nil
}

func (s *RedisSource) Name() string { return "redis" }

// Close leaves the shared client open
func (s *RedisSource) Close() error { return nil }
