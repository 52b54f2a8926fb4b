// Package redistest provides an in-memory redis.Client for tests
package redistest

import (
	"context"
	"fmt"
	"math"
	"sort"
	"strconv"
	"sync"
	"time"

	"github.com/saaga0h/nightshift/pkg/redis"
)

// MockClient is an in-memory Client for tests. Expiry is recorded, not enforced.
type MockClient struct {
	mu     sync.Mutex
	hashes map[string]map[string]string
	zsets  map[string][]redis.ZMember
	lists  map[string][]string
	ttls   map[string]time.Duration

	// Err, when set, is returned by every call
	Err    error
	Closed bool
}

var _ redis.Client = (*MockClient)(nil)

// NewMockClient creates an empty mock client
func NewMockClient() *MockClient {
	return &MockClient{
		hashes: make(map[string]map[string]string),
		zsets:  make(map[string][]redis.ZMember),
		lists:  make(map[string][]string),
		ttls:   make(map[string]time.Duration),
	}
}

func (m *MockClient) HSetAll(ctx context.Context, key string, values map[string]interface{}) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return m.Err
	}
	h, ok := m.hashes[key]
	if !ok {
		h = make(map[string]string)
		m.hashes[key] = h
	}
	for f, v := range values {
		h[f] = fmt.Sprint(v)
	}
	return nil
}

func (m *MockClient) HGetAll(ctx context.Context, key string) (map[string]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return nil, m.Err
	}
	out := make(map[string]string, len(m.hashes[key]))
	for f, v := range m.hashes[key] {
		out[f] = v
	}
	return out, nil
}

func (m *MockClient) ZAdd(ctx context.Context, key string, score float64, member interface{}) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return m.Err
	}
	name := fmt.Sprint(member)
	set := m.zsets[key]
	for i := range set {
		if set[i].Member == name {
			set = append(set[:i], set[i+1:]...)
			break
		}
	}
	set = append(set, redis.ZMember{Score: score, Member: name})
	sort.SliceStable(set, func(i, j int) bool { return set[i].Score < set[j].Score })
	m.zsets[key] = set
	return nil
}

func (m *MockClient) ZRemRangeByScore(ctx context.Context, key string, min, max string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return m.Err
	}
	lo, err := parseScore(min)
	if err != nil {
		return err
	}
	hi, err := parseScore(max)
	if err != nil {
		return err
	}
	kept := m.zsets[key][:0]
	for _, z := range m.zsets[key] {
		if z.Score < lo || z.Score > hi {
			kept = append(kept, z)
		}
	}
	m.zsets[key] = kept
	return nil
}

func (m *MockClient) ZRangeByScoreWithScores(ctx context.Context, key string, min, max float64) ([]redis.ZMember, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return nil, m.Err
	}
	var out []redis.ZMember
	for _, z := range m.zsets[key] {
		if z.Score >= min && z.Score <= max {
			out = append(out, z)
		}
	}
	return out, nil
}

func (m *MockClient) LPush(ctx context.Context, key string, values ...interface{}) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return m.Err
	}
	for _, v := range values {
		m.lists[key] = append([]string{fmt.Sprint(v)}, m.lists[key]...)
	}
	return nil
}

func (m *MockClient) LTrim(ctx context.Context, key string, start, stop int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return m.Err
	}
	m.lists[key] = listRange(m.lists[key], start, stop)
	return nil
}

func (m *MockClient) LRange(ctx context.Context, key string, start, stop int64) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return nil, m.Err
	}
	return append([]string(nil), listRange(m.lists[key], start, stop)...), nil
}

func (m *MockClient) Expire(ctx context.Context, key string, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return m.Err
	}
	m.ttls[key] = ttl
	return nil
}

func (m *MockClient) Ping(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.Err
}

func (m *MockClient) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Closed = true
	return nil
}

// TTL returns the recorded expiry of a key
func (m *MockClient) TTL(key string) time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.ttls[key]
}

// listRange applies Redis start/stop semantics, negative indexes count from the end
func listRange(list []string, start, stop int64) []string {
	n := int64(len(list))
	if start < 0 {
		start += n
	}
	if stop < 0 {
		stop += n
	}
	if start < 0 {
		start = 0
	}
	if stop >= n {
		stop = n - 1
	}
	if start > stop || start >= n {
		return nil
	}
	return list[start : stop+1]
}

func parseScore(s string) (float64, error) {
	switch s {
	case "-inf":
		return math.Inf(-1), nil
	case "+inf", "inf":
		return math.Inf(1), nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid score %q: %w", s, err)
	}
	return v, nil
}
