package health

import (
	"context"
	"errors"
	"testing"

	"github.com/saaga0h/nightshift/pkg/mqtt"
	"github.com/saaga0h/nightshift/pkg/mqtt/mqtttest"
	"github.com/saaga0h/nightshift/pkg/redis"
	"github.com/saaga0h/nightshift/pkg/redis/redistest"
)

func TestCheck(t *testing.T) {
	ctx := context.Background()

	connected := mqtttest.NewMockClient()
	if err := connected.Connect(ctx); err != nil {
		t.Fatal(err)
	}
	failing := redistest.NewMockClient()
	failing.Err = errors.New("connection refused")

	tests := []struct {
		name       string
		mqtt       mqtt.Client
		redis      redis.Client
		wantStatus string
		wantMQTT   string
		wantRedis  string
	}{
		{"no dependencies", nil, nil, StatusOK, StatusUnused, StatusUnused},
		{"all connected", connected, redistest.NewMockClient(), StatusOK, StatusConnected, StatusConnected},
		{"mqtt down", mqtttest.NewMockClient(), nil, StatusDegraded, StatusDisconnected, StatusUnused},
		{"redis down", connected, failing, StatusDegraded, StatusConnected, StatusDisconnected},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			report := NewChecker(tt.mqtt, tt.redis, nil).Check(ctx)
			if report.Status != tt.wantStatus {
				t.Errorf("Status = %s, want %s", report.Status, tt.wantStatus)
			}
			if report.MQTT != tt.wantMQTT {
				t.Errorf("MQTT = %s, want %s", report.MQTT, tt.wantMQTT)
			}
			if report.Redis != tt.wantRedis {
				t.Errorf("Redis = %s, want %s", report.Redis, tt.wantRedis)
			}
		})
	}
}
