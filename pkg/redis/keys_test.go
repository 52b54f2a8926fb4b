package redis

import "testing"

func TestKeys(t *testing.T) {
	if got := StatusKey("desk"); got != "nightshift:status:desk" {
		t.Errorf("StatusKey() = %s", got)
	}
	if got := LocationKey("phone"); got != "nightshift:location:phone" {
		t.Errorf("LocationKey() = %s", got)
	}
}
