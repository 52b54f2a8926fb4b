package redis

import "fmt"

// Key construction helpers

// StatusKey returns the key for the live run status of an instance (hash)
// Pattern: nightshift:status:{service}
func StatusKey(service string) string {
	return fmt.Sprintf("nightshift:status:%s", service)
}

// HistoryKey returns the key for the period change history of an instance (list, newest first)
// Pattern: nightshift:history:{service}
func HistoryKey(service string) string {
	return fmt.Sprintf("nightshift:history:%s", service)
}

// SamplesKey returns the key for applied temperature samples (sorted set scored by unix time)
// Pattern: nightshift:samples:{service}
func SamplesKey(service string) string {
	return fmt.Sprintf("nightshift:samples:%s", service)
}

// LocationKey returns the key for a cached location (hash with lat, lon, source, updated_at)
// Pattern: nightshift:location:{name}
func LocationKey(name string) string {
	return fmt.Sprintf("nightshift:location:%s", name)
}
