// Package mqtttest provides an in-process broker implementing mqtt.Client for tests
package mqtttest

import (
	"context"
	"sync"

	"github.com/saaga0h/nightshift/pkg/mqtt"
)

// PublishedMessage records a call to MockClient.Publish
type PublishedMessage struct {
	Topic    string
	QoS      byte
	Retained bool
	Payload  []byte
}

// MockClient is an in-process broker for tests. Retained messages are
// replayed on Subscribe and every publish is delivered synchronously to
// matching subscribers.
type MockClient struct {
	mu        sync.Mutex
	connected bool
	retained  map[string][]byte
	handlers  map[string]mqtt.MessageHandler
	published []PublishedMessage

	ConnectErr   error
	PublishErr   error
	SubscribeErr error
}

var _ mqtt.Client = (*MockClient)(nil)

// NewMockClient creates a disconnected mock client
func NewMockClient() *MockClient {
	return &MockClient{
		retained: make(map[string][]byte),
		handlers: make(map[string]mqtt.MessageHandler),
	}
}

func (m *MockClient) Connect(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.ConnectErr != nil {
		return m.ConnectErr
	}
	m.connected = true
	return nil
}

func (m *MockClient) Disconnect() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.connected = false
}

func (m *MockClient) Subscribe(topic string, qos byte, handler mqtt.MessageHandler) error {
	m.mu.Lock()
	if m.SubscribeErr != nil {
		m.mu.Unlock()
		return m.SubscribeErr
	}
	m.handlers[topic] = handler

	var replay []*mockMessage
	for t, payload := range m.retained {
		if mqtt.MatchTopic(topic, t) {
			replay = append(replay, &mockMessage{topic: t, payload: payload, retained: true})
		}
	}
	m.mu.Unlock()

	for _, msg := range replay {
		handler(msg)
	}
	return nil
}

func (m *MockClient) Unsubscribe(topic string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.handlers, topic)
	return nil
}

func (m *MockClient) Publish(topic string, qos byte, retained bool, payload []byte) error {
	m.mu.Lock()
	if m.PublishErr != nil {
		m.mu.Unlock()
		return m.PublishErr
	}
	m.published = append(m.published, PublishedMessage{Topic: topic, QoS: qos, Retained: retained, Payload: payload})
	m.mu.Unlock()

	m.Inject(topic, payload, retained)
	return nil
}

func (m *MockClient) IsConnected() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.connected
}

// Inject delivers a message as if another client had published it
func (m *MockClient) Inject(topic string, payload []byte, retained bool) {
	m.mu.Lock()
	if retained {
		if len(payload) == 0 {
			delete(m.retained, topic)
		} else {
			m.retained[topic] = payload
		}
	}

	var targets []mqtt.MessageHandler
	for filter, h := range m.handlers {
		if mqtt.MatchTopic(filter, topic) {
			targets = append(targets, h)
		}
	}
	m.mu.Unlock()

	for _, h := range targets {
		h(&mockMessage{topic: topic, payload: payload})
	}
}

// Published returns a copy of every message published through the client
func (m *MockClient) Published() []PublishedMessage {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]PublishedMessage(nil), m.published...)
}

// LastPublished returns the most recent message published to topic
func (m *MockClient) LastPublished(topic string) (PublishedMessage, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := len(m.published) - 1; i >= 0; i-- {
		if m.published[i].Topic == topic {
			return m.published[i], true
		}
	}
	return PublishedMessage{}, false
}

// Subscribed reports whether a handler is registered for the topic filter
func (m *MockClient) Subscribed(topic string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.handlers[topic]
	return ok
}

type mockMessage struct {
	topic    string
	payload  []byte
	retained bool
}

func (m *mockMessage) Topic() string   { return m.topic }
func (m *mockMessage) Payload() []byte { return m.payload }
func (m *mockMessage) Retained() bool  { return m.retained }
func (m *mockMessage) Ack()            {}
