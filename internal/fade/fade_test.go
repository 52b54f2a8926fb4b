package fade

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saaga0h/nightshift/internal/shift"
)

func night() shift.ColorSetting {
	s := shift.Neutral()
	s.Temperature = 3500
	return s
}

func TestEase(t *testing.T) {
	assert.Equal(t, 0.0, Ease(0))
	assert.Equal(t, 0.5, Ease(0.5))
	assert.Equal(t, 1.0, Ease(1))

	prev := 0.0
	for i := 1; i <= 100; i++ {
		v := Ease(float64(i) / 100)
		assert.Greater(t, v, prev)
		prev = v
	}
}

func TestEase_Symmetric(t *testing.T) {
	for i := 0; i <= 200; i++ {
		x := float64(i) / 200
		assert.InDelta(t, 1, Ease(x)+Ease(1-x), 1e-12, "t=%v", x)
	}
}

func TestIsMajor(t *testing.T) {
	base := shift.Neutral()

	testCases := []struct {
		name   string
		modify func(*shift.ColorSetting)
		major  bool
	}{
		{"identical", func(s *shift.ColorSetting) {}, false},
		{"temperature 25K", func(s *shift.ColorSetting) { s.Temperature -= 25 }, false},
		{"temperature 26K", func(s *shift.ColorSetting) { s.Temperature -= 26 }, true},
		{"brightness small", func(s *shift.ColorSetting) { s.Brightness = 0.95 }, false},
		{"brightness large", func(s *shift.ColorSetting) { s.Brightness = 0.8 }, true},
		{"green gamma", func(s *shift.ColorSetting) { s.Gamma[1] = 1.2 }, true},
		{"blue gamma small", func(s *shift.ColorSetting) { s.Gamma[2] = 1.05 }, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			other := base
			tc.modify(&other)
			assert.Equal(t, tc.major, IsMajor(base, other))
			assert.Equal(t, tc.major, IsMajor(other, base))
		})
	}
}

func TestInterpolate(t *testing.T) {
	a := shift.Neutral()
	b := night()
	b.Brightness = 0.5

	assert.Equal(t, a, Interpolate(a, b, 0))
	assert.Equal(t, b, Interpolate(a, b, 1))
	assert.Equal(t, b, Interpolate(a, b, 2), "alpha is clamped")

	mid := Interpolate(a, b, 0.5)
	assert.Equal(t, 5000, mid.Temperature)
	assert.InDelta(t, 0.75, mid.Brightness, 1e-9)
}

func TestEngine_StartsNeutral(t *testing.T) {
	e := NewEngine()
	assert.True(t, e.Current().IsNeutral())
	assert.False(t, e.Fading())
}

func TestEngine_MinorChangeAppliedImmediately(t *testing.T) {
	e := NewEngine()
	target := shift.Neutral()
	target.Temperature = 6480

	got := e.Advance(target)

	assert.Equal(t, target, got)
	assert.False(t, e.Fading())
}

func TestEngine_FadeLength(t *testing.T) {
	e := NewEngine()
	target := night()

	var got shift.ColorSetting
	for i := 1; i <= Steps; i++ {
		got = e.Advance(target)
		if i < Steps {
			require.True(t, e.Fading(), "still fading at step %d", i)
			assert.NotEqual(t, target, got, "target reached early at step %d", i)
		}
	}
	assert.Equal(t, target, got, "target reached at step %d", Steps)
	assert.True(t, e.Fading())

	got = e.Advance(target)
	assert.Equal(t, target, got)
	assert.False(t, e.Fading(), "idle after step %d", Steps+1)
}

func TestEngine_FadeIsMonotonic(t *testing.T) {
	e := NewEngine()
	target := night()

	prev := e.Current().Temperature
	for i := 0; i <= Steps; i++ {
		cur := e.Advance(target).Temperature
		assert.LessOrEqual(t, cur, prev)
		prev = cur
	}
}

func TestEngine_RestartsFromCurrentWhenTargetMoves(t *testing.T) {
	e := NewEngine()

	for i := 0; i < 10; i++ {
		e.Advance(night())
	}
	require.True(t, e.Fading())
	midway := e.Current()

	back := shift.Neutral()
	got := e.Advance(back)

	assert.True(t, e.Fading())
	assert.Equal(t, 1, e.Step(), "fade restarted")
	assert.Greater(t, got.Temperature, midway.Temperature)
	assert.Less(t, got.Temperature, back.Temperature)
}

func TestEngine_SmallTargetDriftKeepsFading(t *testing.T) {
	e := NewEngine()
	target := night()

	e.Advance(target)
	e.Advance(target)
	target.Temperature += 10
	e.Advance(target)

	assert.Equal(t, 3, e.Step(), "minor target drift does not restart the fade")
}
