package location

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/saaga0h/nightshift/internal/shift"
	"github.com/saaga0h/nightshift/pkg/mqtt"
)

// Update is the payload published on a location topic
type Update struct {
	Lat       float64   `json:"lat"`
	Lon       float64   `json:"lon"`
	Accuracy  float64   `json:"accuracy,omitempty"`
	Timestamp time.Time `json:"timestamp,omitempty"`
}

// MQTTSource follows location updates published on nightshift/location/{name}.
// The newest valid update replaces the previous one. Location never blocks.
type MQTTSource struct {
	client mqtt.Client
	name   string
	logger *slog.Logger

	mu      sync.Mutex
	current *shift.Location
	ready   chan struct{}
	once    sync.Once
	topic   string
}

// NewMQTTSource creates a source for the given provider name ("+" follows any provider)
func NewMQTTSource(client mqtt.Client, name string, logger *slog.Logger) *MQTTSource {
	if logger == nil {
		logger = slog.Default()
	}
	return &MQTTSource{
		client: client,
		name:   name,
		logger: logger,
		ready:  make(chan struct{}),
	}
}

func (s *MQTTSource) Init() error {
	if s.client == nil {
		return errors.New("MQTT client is required")
	}
	if s.name == "" || strings.Contains(s.name, "/") {
		return fmt.Errorf("invalid location provider name %q", s.name)
	}
	return nil
}

// Start subscribes to the location topic
func (s *MQTTSource) Start(ctx context.Context) error {
	if !s.client.IsConnected() {
		return errors.New("MQTT client is not connected")
	}

	s.topic = mqtt.LocationTopic(s.name)
	if err := s.client.Subscribe(s.topic, 1, s.handleMessage); err != nil {
		return err
	}
	s.logger.Info("Waiting for location updates", "topic", s.topic)
	return nil
}

func (s *MQTTSource) handleMessage(msg mqtt.Message) {
	var update Update
	if err := json.Unmarshal(msg.Payload(), &update); err != nil {
		s.logger.Warn("Ignoring malformed location update", "topic", msg.Topic(), "error", err)
		return
	}

	loc := shift.Location{Lat: update.Lat, Lon: update.Lon}
	if err := loc.Validate(); err != nil {
		s.logger.Warn("Ignoring out of range location update", "topic", msg.Topic(), "error", err)
		return
	}

	s.mu.Lock()
	s.current = &loc
	s.mu.Unlock()
	s.once.Do(func() { close(s.ready) })

	s.logger.Debug("Location updated", "topic", msg.Topic(), "location", loc.String())
}

// Location returns the newest location or ErrNoLocation
func (s *MQTTSource) Location(ctx context.Context) (shift.Location, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return shift.Location{}, ErrNoLocation
	}
	return *s.current, nil
}

// Wait blocks until the first update arrives or ctx ends
func (s *MQTTSource) Wait(ctx context.Context) (shift.Location, error) {
	select {
	case <-s.ready:
		return s.Location(ctx)
	case <-ctx.Done():
		return shift.Location{}, fmt.Errorf("%w: %v", ErrNoLocation, ctx.Err())
	}
}

// SetOption accepts "name" to select the provider topic
func (s *MQTTSource) SetOption(key, value string) error {
	switch strings.ToLower(key) {
	case "name":
		s.name = value
		return nil
	default:
		return fmt.Errorf("unknown mqtt location option: %s", key)
	}
}

func (s *MQTTSource) Name() string { return "mqtt" }

// Close stops following updates
func (s *MQTTSource) Close() error {
	if s.topic == "" {
		return nil
	}
	return s.client.Unsubscribe(s.topic)
}
