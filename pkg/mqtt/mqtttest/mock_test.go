package mqtttest

import (
	"testing"

	"github.com/saaga0h/nightshift/pkg/mqtt"
)

func TestMockClientRetainedReplay(t *testing.T) {
	client := NewMockClient()

	if err := client.Publish(mqtt.LocationTopic("phone"), 1, true, []byte(`{"lat":1,"lon":2}`)); err != nil {
		t.Fatalf("Publish() returned error: %v", err)
	}

	var got []mqtt.Message
	if err := client.Subscribe(mqtt.TopicLocationAll, 1, func(msg mqtt.Message) { got = append(got, msg) }); err != nil {
		t.Fatalf("Subscribe() returned error: %v", err)
	}

	if len(got) != 1 {
		t.Fatalf("expected retained message to be replayed, got %d messages", len(got))
	}
	if !got[0].Retained() || got[0].Topic() != "nightshift/location/phone" {
		t.Errorf("unexpected replayed message: %s retained=%v", got[0].Topic(), got[0].Retained())
	}

	client.Inject(mqtt.LocationTopic("car"), []byte(`{}`), false)
	if len(got) != 2 || got[1].Retained() {
		t.Errorf("expected live message delivery, got %d messages", len(got))
	}
}
