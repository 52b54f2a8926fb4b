package mqtt

import (
	"fmt"
	"strings"
)

// Topic layout
const (
	TopicBase          = "nightshift"
	TopicLocationAll   = "nightshift/location/+"
	TopicDisplayRamps  = "nightshift/display/+/ramp"
	TopicControlPrefix = "nightshift/control"
)

// DisplayRampTopic is where the ramp for a display is published (retained)
// Pattern: nightshift/display/{display}/ramp
func DisplayRampTopic(display string) string {
	return fmt.Sprintf("nightshift/display/%s/ramp", display)
}

// LocationTopic carries {lat, lon} updates from a location provider
// Pattern: nightshift/location/{name}
func LocationTopic(name string) string {
	return fmt.Sprintf("nightshift/location/%s", name)
}

// ControlTopic receives "toggle" and "exit" commands for a service instance
// Pattern: nightshift/control/{service}
func ControlTopic(service string) string {
	return fmt.Sprintf("%s/%s", TopicControlPrefix, service)
}

// DisplayFromTopic extracts the display name from a ramp topic
// nightshift/display/{display}/ramp -> {display}
func DisplayFromTopic(topic string) (string, bool) {
	parts := strings.Split(topic, "/")
	if len(parts) != 4 || parts[0] != TopicBase || parts[1] != "display" || parts[3] != "ramp" {
		return "", false
	}
	return parts[2], true
}

// WillTopic reports whether a service instance is online
// Pattern: nightshift/status/{service}
func WillTopic(service string) string {
	return fmt.Sprintf("nightshift/status/%s", service)
}

// MatchTopic reports whether topic matches filter, honouring the + and # wildcards
func MatchTopic(filter, topic string) bool {
	f := strings.Split(filter, "/")
	t := strings.Split(topic, "/")

	for i, part := range f {
		if part == "#" {
			return true
		}
		if i >= len(t) {
			return false
		}
		if part != "+" && part != t[i] {
			return false
		}
	}
	return len(f) == len(t)
}
