package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/saaga0h/nightshift/internal/shift"
)

func TestNewConfigDefaults(t *testing.T) {
	c := NewConfig()

	if c.Mode != ModeContinual {
		t.Errorf("Mode = %s, want %s", c.Mode, ModeContinual)
	}
	if c.TempDay != 6500 || c.TempNight != 3500 {
		t.Errorf("temperatures = %d/%d, want 6500/3500", c.TempDay, c.TempNight)
	}

	scheme, err := c.Scheme()
	if err != nil {
		t.Fatalf("Scheme() returned error: %v", err)
	}
	if scheme != shift.DefaultScheme() {
		t.Errorf("Scheme() = %+v, want default scheme", scheme)
	}
}

func TestLoadFromFlags(t *testing.T) {
	c := NewConfig()
	args := []string{
		"--mode", "oneshot",
		"-l", "60.17:24.94",
		"--temp-night", "3000",
		"-b", "1.0:0.7",
		"-g", "0.9:1.0:1.1",
		"--location-providers", "mqtt,manual",
		"--sink", "dummy",
	}

	if err := c.LoadFromFlags(args); err != nil {
		t.Fatalf("LoadFromFlags() returned error: %v", err)
	}

	if c.Mode != ModeOneShot {
		t.Errorf("Mode = %s, want %s", c.Mode, ModeOneShot)
	}
	if c.TempNight != 3000 {
		t.Errorf("TempNight = %d, want 3000", c.TempNight)
	}
	if len(c.LocationProviders) != 2 || c.LocationProviders[0] != ProviderMQTT {
		t.Errorf("LocationProviders = %v, want [mqtt manual]", c.LocationProviders)
	}

	scheme, err := c.Scheme()
	if err != nil {
		t.Fatalf("Scheme() returned error: %v", err)
	}
	if scheme.Night.Brightness != 0.7 || scheme.Day.Brightness != 1.0 {
		t.Errorf("brightness = %.2f/%.2f, want 1.00/0.70", scheme.Day.Brightness, scheme.Night.Brightness)
	}
	if scheme.Night.Gamma != [3]float64{0.9, 1.0, 1.1} {
		t.Errorf("gamma = %v, want [0.9 1 1.1]", scheme.Night.Gamma)
	}

	if err := c.Validate(); err != nil {
		t.Errorf("Validate() returned error: %v", err)
	}
}

func TestLoadFromFlagsHelp(t *testing.T) {
	c := NewConfig()
	err := c.LoadFromFlags([]string{"--help"})
	if !IsHelp(err) {
		t.Errorf("LoadFromFlags(--help) = %v, want help error", err)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("NIGHTSHIFT_TEMP_DAY", "5500")
	t.Setenv("NIGHTSHIFT_LOCATION_PROVIDERS", "redis, manual")
	t.Setenv("NIGHTSHIFT_ELEVATION_LOW", "-4.5")
	t.Setenv("NIGHTSHIFT_FADE", "false")
	t.Setenv("NIGHTSHIFT_RESTORE_SAVED", "true")

	c := NewConfig()
	if err := c.LoadFromEnv(); err != nil {
		t.Fatalf("LoadFromEnv() returned error: %v", err)
	}

	if c.TempDay != 5500 {
		t.Errorf("TempDay = %d, want 5500", c.TempDay)
	}
	if len(c.LocationProviders) != 2 || c.LocationProviders[0] != ProviderRedis || c.LocationProviders[1] != ProviderManual {
		t.Errorf("LocationProviders = %v, want [redis manual]", c.LocationProviders)
	}
	if c.ElevationLow != -4.5 {
		t.Errorf("ElevationLow = %.1f, want -4.5", c.ElevationLow)
	}
	if c.Fade {
		t.Error("Fade should be disabled")
	}
	if !c.RestoreSaved {
		t.Error("RestoreSaved should be enabled")
	}
}

func TestLoadFromEnvMalformed(t *testing.T) {
	tests := []struct {
		name  string
		value string
	}{
		{"NIGHTSHIFT_TEMP_NIGHT", "35OO"},
		{"NIGHTSHIFT_ELEVATION_LOW", "minus six"},
		{"NIGHTSHIFT_ELEVATION_HIGH", "NaN"},
		{"NIGHTSHIFT_MQTT_PORT", "not-a-number"},
		{"NIGHTSHIFT_FADE", "sometimes"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.name, tt.value)

			c := NewConfig()
			err := c.LoadFromEnv()
			var verr *shift.ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("LoadFromEnv() = %v, want *shift.ValidationError", err)
			}
			if verr.Field != tt.name {
				t.Errorf("Field = %s, want %s", verr.Field, tt.name)
			}

			if _, err := Load([]string{"--mode", "reset"}); err == nil {
				t.Error("Load() should fail on a malformed environment value")
			}
		})
	}
}

func TestLoadRejectsNaN(t *testing.T) {
	tests := [][]string{
		{"--brightness", "NaN"},
		{"--brightness", "1.0:nan"},
		{"--gamma", "NaN"},
		{"--elevation-high", "NaN"},
		{"--location", "NaN:NaN"},
	}

	for _, args := range tests {
		args = append([]string{"--sink", "dummy", "--location", "60:24"}, args...)
		if _, err := Load(args); err == nil {
			t.Errorf("Load(%v) should fail", args)
		}
	}
}

func TestLoadPrecedence(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nightshift.yaml")
	content := []byte("temp_night: 3200\ntemp_day: 6000\nlocation: \"48.85:2.35\"\nsink: dummy\n")
	if err := os.WriteFile(path, content, 0o600); err != nil {
		t.Fatal(err)
	}

	t.Setenv("NIGHTSHIFT_TEMP_DAY", "5800")

	c, err := Load([]string{"--config", path, "--temp-night", "2900"})
	if err != nil {
		t.Fatalf("Load() returned error: %v", err)
	}

	if c.TempNight != 2900 {
		t.Errorf("TempNight = %d, flag should win over file", c.TempNight)
	}
	if c.TempDay != 5800 {
		t.Errorf("TempDay = %d, env should win over file", c.TempDay)
	}
	if c.Location != "48.85:2.35" {
		t.Errorf("Location = %s, want value from file", c.Location)
	}
	if c.ConfigFile != path {
		t.Errorf("ConfigFile = %s, want %s", c.ConfigFile, path)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load([]string{"--config=/nonexistent/nightshift.yaml"})
	if err == nil {
		t.Error("Load() with missing config file should fail")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name      string
		modify    func(*Config)
		expectErr bool
	}{
		{
			name:      "valid manual location",
			modify:    func(c *Config) { c.Location = "60.17:24.94" },
			expectErr: false,
		},
		{
			name:      "manual provider without location",
			modify:    func(c *Config) {},
			expectErr: true,
		},
		{
			name: "mqtt provider needs no manual location",
			modify: func(c *Config) {
				c.LocationProviders = []string{ProviderMQTT}
			},
			expectErr: false,
		},
		{
			name: "unknown provider",
			modify: func(c *Config) {
				c.LocationProviders = []string{"gps"}
			},
			expectErr: true,
		},
		{
			name: "reset needs no location",
			modify: func(c *Config) {
				c.Mode = ModeReset
			},
			expectErr: false,
		},
		{
			name: "time based scheme needs no location",
			modify: func(c *Config) {
				c.DawnTime = "06:00-07:00"
				c.DuskTime = "20:00-21:00"
			},
			expectErr: false,
		},
		{
			name: "dawn without dusk",
			modify: func(c *Config) {
				c.DawnTime = "06:00-07:00"
			},
			expectErr: true,
		},
		{
			name: "manual mode without temperature",
			modify: func(c *Config) {
				c.Mode = ModeManual
			},
			expectErr: true,
		},
		{
			name: "manual mode with temperature",
			modify: func(c *Config) {
				c.Mode = ModeManual
				c.ManualTemperature = 4200
			},
			expectErr: false,
		},
		{
			name: "night temperature out of range",
			modify: func(c *Config) {
				c.Location = "60.17:24.94"
				c.TempNight = 800
			},
			expectErr: true,
		},
		{
			name: "elevation high below low",
			modify: func(c *Config) {
				c.Location = "60.17:24.94"
				c.ElevationHigh = -10
			},
			expectErr: true,
		},
		{
			name: "invalid mode",
			modify: func(c *Config) {
				c.Mode = "daemon"
			},
			expectErr: true,
		},
		{
			name: "invalid log level",
			modify: func(c *Config) {
				c.Mode = ModeReset
				c.LogLevel = "verbose"
			},
			expectErr: true,
		},
		{
			name: "invalid sink",
			modify: func(c *Config) {
				c.Mode = ModeReset
				c.Sink = "randr"
			},
			expectErr: true,
		},
		{
			name: "invalid mqtt port",
			modify: func(c *Config) {
				c.Mode = ModeReset
				c.MQTTPort = 70000
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewConfig()
			tt.modify(c)
			err := c.Validate()
			if tt.expectErr && err == nil {
				t.Error("Validate() expected error, got nil")
			}
			if !tt.expectErr && err != nil {
				t.Errorf("Validate() unexpected error: %v", err)
			}
		})
	}
}

func TestValidateReturnsValidationError(t *testing.T) {
	c := NewConfig()
	c.Location = "60.17:24.94"
	c.TempDay = 30000

	err := c.Validate()
	var verr *shift.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("Validate() = %v, want *shift.ValidationError", err)
	}
	if verr.Field != "day temperature" {
		t.Errorf("Field = %s, want day temperature", verr.Field)
	}
}

func TestUsesConnections(t *testing.T) {
	c := NewConfig()
	c.Location = "60.17:24.94"

	if !c.UsesMQTT() {
		t.Error("mqtt sink should need MQTT")
	}
	if c.UsesRedis() {
		t.Error("manual location without status should not need Redis")
	}

	c.Sink = SinkDummy
	c.LocationProviders = []string{ProviderRedis, ProviderManual}
	if c.UsesMQTT() {
		t.Error("dummy sink with redis location should not need MQTT")
	}
	if !c.UsesRedis() {
		t.Error("redis provider should need Redis")
	}

	c.Mode = ModePrint
	c.Sink = SinkMQTT
	c.LocationProviders = []string{ProviderManual}
	if c.UsesMQTT() {
		t.Error("print mode never applies settings")
	}
}

func TestAddresses(t *testing.T) {
	c := NewConfig()
	if got := c.MQTTAddress(); got != "tcp://localhost:1883" {
		t.Errorf("MQTTAddress() = %s", got)
	}
	if got := c.RedisAddress(); got != "localhost:6379" {
		t.Errorf("RedisAddress() = %s", got)
	}
}
