package gamma

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/saaga0h/nightshift/internal/colorramp"
	"github.com/saaga0h/nightshift/internal/shift"
	"github.com/saaga0h/nightshift/pkg/mqtt"
)

// RampMessage is the retained payload published for a display. A relay on
// the display host writes Red, Green and Blue into the hardware gamma table.
type RampMessage struct {
	Temperature int        `json:"temperature"`
	Brightness  float64    `json:"brightness"`
	Gamma       [3]float64 `json:"gamma"`
	RampSize    int        `json:"ramp_size"`
	Red         []uint16   `json:"red"`
	Green       []uint16   `json:"green"`
	Blue        []uint16   `json:"blue"`
	Timestamp   time.Time  `json:"timestamp"`
}

// MQTTSinkOptions configures an MQTTSink
type MQTTSinkOptions struct {
	Display  string
	RampSize int
	// How long Start waits for the retained ramp of the display
	SaveTimeout time.Duration
}

// MQTTSink publishes gamma ramps for one display over MQTT
type MQTTSink struct {
	client mqtt.Client
	opts   MQTTSinkOptions
	logger *slog.Logger

	mu    sync.Mutex
	saved *RampMessage
}

// NewMQTTSink creates a sink publishing on the display's ramp topic
func NewMQTTSink(client mqtt.Client, opts MQTTSinkOptions, logger *slog.Logger) *MQTTSink {
	if logger == nil {
		logger = slog.Default()
	}
	if opts.SaveTimeout == 0 {
		opts.SaveTimeout = 2 * time.Second
	}
	return &MQTTSink{
		client: client,
		opts:   opts,
		logger: logger,
	}
}

func (s *MQTTSink) Name() string { return "mqtt" }

// Init checks the display and ramp size
func (s *MQTTSink) Init() error {
	if s.opts.Display == "" {
		return &SinkError{Sink: s.Name(), Op: "init", Err: errors.New("display name is required")}
	}
	if s.opts.RampSize < 2 {
		return &SinkError{Sink: s.Name(), Op: "init", Err: fmt.Errorf("ramp size %d is too small", s.opts.RampSize)}
	}
	return nil
}

// Start saves the ramp currently retained for the display, if any
func (s *MQTTSink) Start(ctx context.Context) error {
	if !s.client.IsConnected() {
		return &SinkError{Sink: s.Name(), Op: "start", Err: errors.New("MQTT client is not connected")}
	}

	topic := mqtt.DisplayRampTopic(s.opts.Display)
	received := make(chan *RampMessage, 1)

	handler := func(msg mqtt.Message) {
		if !msg.Retained() {
			return
		}
		var ramp RampMessage
		if err := json.Unmarshal(msg.Payload(), &ramp); err != nil {
			s.logger.Warn("Ignoring malformed retained ramp", "topic", msg.Topic(), "error", err)
			return
		}
		select {
		case received <- &ramp:
		default:
		}
	}

	if err := s.client.Subscribe(topic, 1, handler); err != nil {
		return &SinkError{Sink: s.Name(), Op: "start", Err: err}
	}
	defer func() {
		if err := s.client.Unsubscribe(topic); err != nil {
			s.logger.Warn("Failed to unsubscribe from ramp topic", "topic", topic, "error", err)
		}
	}()

	timer := time.NewTimer(s.opts.SaveTimeout)
	defer timer.Stop()

	select {
	case ramp := <-received:
		s.mu.Lock()
		s.saved = ramp
		s.mu.Unlock()
		s.logger.Info("Saved current display ramp", "display", s.opts.Display, "temperature", ramp.Temperature)
	case <-timer.C:
		s.logger.Debug("No retained ramp for display, assuming identity", "display", s.opts.Display)
	case <-ctx.Done():
		return &SinkError{Sink: s.Name(), Op: "start", Err: ctx.Err()}
	}

	return nil
}

// Set computes the ramp for setting and publishes it retained
func (s *MQTTSink) Set(setting shift.ColorSetting, preserve bool) error {
	r, g, b := s.baseRamps(preserve)
	colorramp.Fill(r, g, b, setting)

	msg := RampMessage{
		Temperature: setting.Temperature,
		Brightness:  setting.Brightness,
		Gamma:       setting.Gamma,
		RampSize:    len(r),
		Red:         r,
		Green:       g,
		Blue:        b,
		Timestamp:   time.Now().UTC(),
	}

	if err := s.publish(msg); err != nil {
		return &SinkError{Sink: s.Name(), Op: "set", Err: err}
	}

	s.logger.Debug("Published ramp", "display", s.opts.Display, "temperature", setting.Temperature)
	return nil
}

// Restore republishes the ramp saved by Start, or the identity ramp
func (s *MQTTSink) Restore() {
	s.mu.Lock()
	saved := s.saved
	s.mu.Unlock()

	if saved == nil {
		if err := s.Set(shift.Neutral(), false); err != nil {
			s.logger.Warn("Failed to restore identity ramp", "error", err)
		}
		return
	}

	restored := *saved
	restored.Timestamp = time.Now().UTC()
	if err := s.publish(restored); err != nil {
		s.logger.Warn("Failed to restore saved ramp", "display", s.opts.Display, "error", err)
	}
}

// Saved returns the ramp captured by Start
func (s *MQTTSink) Saved() (RampMessage, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.saved == nil {
		return RampMessage{}, false
	}
	return *s.saved, true
}

func (s *MQTTSink) baseRamps(preserve bool) (r, g, b []uint16) {
	if preserve {
		s.mu.Lock()
		saved := s.saved
		s.mu.Unlock()

		if saved != nil && len(saved.Red) == s.opts.RampSize &&
			len(saved.Green) == s.opts.RampSize && len(saved.Blue) == s.opts.RampSize {
			r = append([]uint16(nil), saved.Red...)
			g = append([]uint16(nil), saved.Green...)
			b = append([]uint16(nil), saved.Blue...)
			return r, g, b
		}
	}
	return colorramp.LinearRamps(s.opts.RampSize)
}

func (s *MQTTSink) publish(msg RampMessage) error {
	payload, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to marshal ramp: %w", err)
	}
	return s.client.Publish(mqtt.DisplayRampTopic(s.opts.Display), 1, true, payload)
}
