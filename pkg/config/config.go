package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"github.com/saaga0h/nightshift/internal/shift"
)

// Run modes
const (
	ModeContinual = "continual"
	ModeOneShot   = "oneshot"
	ModePrint     = "print"
	ModeReset     = "reset"
	ModeManual    = "manual"
)

// Gamma sink names
const (
	SinkDummy = "dummy"
	SinkMQTT  = "mqtt"
)

// Location provider names
const (
	ProviderManual = "manual"
	ProviderMQTT   = "mqtt"
	ProviderRedis  = "redis"
)

// Config holds the configuration for nightshift
type Config struct {
	ConfigFile string `yaml:"-"`

	// Service configuration
	ServiceName string `yaml:"service_name"`
	LogLevel    string `yaml:"log_level"`
	Mode        string `yaml:"mode"`

	// Color settings
	TempDay       int     `yaml:"temp_day"`
	TempNight     int     `yaml:"temp_night"`
	Brightness    string  `yaml:"brightness"`
	Gamma         string  `yaml:"gamma"`
	ElevationHigh float64 `yaml:"elevation_high"`
	ElevationLow  float64 `yaml:"elevation_low"`
	DawnTime      string  `yaml:"dawn_time"`
	DuskTime      string  `yaml:"dusk_time"`
	Fade          bool    `yaml:"fade"`

	// Manual mode
	ManualTemperature int  `yaml:"manual_temperature"`
	Preserve          bool `yaml:"preserve"`

	// Location
	Location          string   `yaml:"location"`
	LocationProviders []string `yaml:"location_providers"`
	LocationWaitSec   int      `yaml:"location_wait_sec"`

	// Gamma sink
	Sink                string `yaml:"sink"`
	Display             string `yaml:"display"`
	RampSize            int    `yaml:"ramp_size"`
	ContinueOnSinkError bool   `yaml:"continue_on_sink_error"`
	RestoreSaved        bool   `yaml:"restore_saved"`

	// MQTT configuration
	MQTTBroker   string `yaml:"mqtt_broker"`
	MQTTPort     int    `yaml:"mqtt_port"`
	MQTTUser     string `yaml:"mqtt_user"`
	MQTTPassword string `yaml:"mqtt_password"`
	MQTTClientID string `yaml:"mqtt_client_id"`

	// Redis configuration
	RedisHost     string `yaml:"redis_host"`
	RedisPort     int    `yaml:"redis_port"`
	RedisPassword string `yaml:"redis_password"`
	RedisDB       int    `yaml:"redis_db"`
	EnableStatus  bool   `yaml:"enable_status"`
	StatusTTLSec  int    `yaml:"status_ttl_sec"`
}

// NewConfig creates a new Config with default values
func NewConfig() *Config {
	return &Config{
		ServiceName:       "nightshift",
		LogLevel:          "info",
		Mode:              ModeContinual,
		TempDay:           shift.NeutralTemperature,
		TempNight:         3500,
		Brightness:        "1.0",
		Gamma:             "1.0",
		ElevationHigh:     3.0,
		ElevationLow:      -6.0,
		Fade:              true,
		LocationProviders: []string{ProviderManual},
		LocationWaitSec:   10,
		Sink:              SinkMQTT,
		Display:           "default",
		RampSize:          256,
		MQTTBroker:        "localhost",
		MQTTPort:          1883,
		RedisHost:         "localhost",
		RedisPort:         6379,
		StatusTTLSec:      300,
	}
}

// Load builds the configuration from defaults, an optional YAML file,
// NIGHTSHIFT_* environment variables and command-line arguments, in that
// order, and validates the result.
func Load(args []string) (*Config, error) {
	c := NewConfig()

	path := os.Getenv("NIGHTSHIFT_CONFIG")
	if p := configFlag(args); p != "" {
		path = p
	}
	if path != "" {
		if err := c.LoadFromFile(path); err != nil {
			return nil, err
		}
	}

	if err := c.LoadFromEnv(); err != nil {
		return nil, err
	}

	if err := c.LoadFromFlags(args); err != nil {
		return nil, err
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// LoadFromFile overlays values from a YAML file
func (c *Config) LoadFromFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	c.ConfigFile = path
	return nil
}

// LoadFromEnv loads configuration from environment variables with NIGHTSHIFT_ prefix.
// Malformed numeric or boolean values are reported as *shift.ValidationError.
func (c *Config) LoadFromEnv() error {
	var errs []error

	// Service configuration
	if v := os.Getenv("NIGHTSHIFT_SERVICE_NAME"); v != "" {
		c.ServiceName = v
	}
	if v := os.Getenv("NIGHTSHIFT_LOG_LEVEL"); v != "" {
		c.LogLevel = v
	}
	if v := os.Getenv("NIGHTSHIFT_MODE"); v != "" {
		c.Mode = v
	}

	// Color settings
	errs = append(errs, envInt("NIGHTSHIFT_TEMP_DAY", &c.TempDay))
	errs = append(errs, envInt("NIGHTSHIFT_TEMP_NIGHT", &c.TempNight))
	if v := os.Getenv("NIGHTSHIFT_BRIGHTNESS"); v != "" {
		c.Brightness = v
	}
	if v := os.Getenv("NIGHTSHIFT_GAMMA"); v != "" {
		c.Gamma = v
	}
	errs = append(errs, envFloat("NIGHTSHIFT_ELEVATION_HIGH", &c.ElevationHigh))
	errs = append(errs, envFloat("NIGHTSHIFT_ELEVATION_LOW", &c.ElevationLow))
	if v := os.Getenv("NIGHTSHIFT_DAWN_TIME"); v != "" {
		c.DawnTime = v
	}
	if v := os.Getenv("NIGHTSHIFT_DUSK_TIME"); v != "" {
		c.DuskTime = v
	}
	errs = append(errs, envBool("NIGHTSHIFT_FADE", &c.Fade))

	// Location
	if v := os.Getenv("NIGHTSHIFT_LOCATION"); v != "" {
		c.Location = v
	}
	if v := os.Getenv("NIGHTSHIFT_LOCATION_PROVIDERS"); v != "" {
		c.LocationProviders = splitList(v)
	}
	errs = append(errs, envInt("NIGHTSHIFT_LOCATION_WAIT_SEC", &c.LocationWaitSec))

	// Gamma sink
	if v := os.Getenv("NIGHTSHIFT_SINK"); v != "" {
		c.Sink = v
	}
	if v := os.Getenv("NIGHTSHIFT_DISPLAY"); v != "" {
		c.Display = v
	}
	errs = append(errs, envInt("NIGHTSHIFT_RAMP_SIZE", &c.RampSize))
	errs = append(errs, envBool("NIGHTSHIFT_RESTORE_SAVED", &c.RestoreSaved))

	// MQTT configuration
	if v := os.Getenv("NIGHTSHIFT_MQTT_BROKER"); v != "" {
		c.MQTTBroker = v
	}
	errs = append(errs, envInt("NIGHTSHIFT_MQTT_PORT", &c.MQTTPort))
	if v := os.Getenv("NIGHTSHIFT_MQTT_USER"); v != "" {
		c.MQTTUser = v
	}
	if v := os.Getenv("NIGHTSHIFT_MQTT_PASSWORD"); v != "" {
		c.MQTTPassword = v
	}
	if v := os.Getenv("NIGHTSHIFT_MQTT_CLIENT_ID"); v != "" {
		c.MQTTClientID = v
	}

	// Redis configuration
	if v := os.Getenv("NIGHTSHIFT_REDIS_HOST"); v != "" {
		c.RedisHost = v
	}
	errs = append(errs, envInt("NIGHTSHIFT_REDIS_PORT", &c.RedisPort))
	if v := os.Getenv("NIGHTSHIFT_REDIS_PASSWORD"); v != "" {
		c.RedisPassword = v
	}
	errs = append(errs, envInt("NIGHTSHIFT_REDIS_DB", &c.RedisDB))
	errs = append(errs, envBool("NIGHTSHIFT_ENABLE_STATUS", &c.EnableStatus))
	errs = append(errs, envInt("NIGHTSHIFT_STATUS_TTL_SEC", &c.StatusTTLSec))

	return errors.Join(errs...)
}

func envInt(name string, dst *int) error {
	v := os.Getenv(name)
	if v == "" {
		return nil
	}
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return &shift.ValidationError{Field: name, Value: v, Reason: "not an integer"}
	}
	*dst = n
	return nil
}

func envFloat(name string, dst *float64) error {
	v := os.Getenv(name)
	if v == "" {
		return nil
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return &shift.ValidationError{Field: name, Value: v, Reason: "not a finite number"}
	}
	*dst = f
	return nil
}

func envBool(name string, dst *bool) error {
	v := os.Getenv(name)
	if v == "" {
		return nil
	}
	b, err := strconv.ParseBool(strings.TrimSpace(v))
	if err != nil {
		return &shift.ValidationError{Field: name, Value: v, Reason: "not a boolean"}
	}
	*dst = b
	return nil
}

// LoadFromFlags parses command-line arguments (without the program name)
// and overrides config values. pflag.ErrHelp is returned when help was requested.
func (c *Config) LoadFromFlags(args []string) error {
	fs := pflag.NewFlagSet("nightshift", pflag.ContinueOnError)

	fs.StringVarP(&c.ConfigFile, "config", "c", c.ConfigFile, "Path to YAML configuration file")

	// Service flags
	fs.StringVar(&c.ServiceName, "service-name", c.ServiceName, "Service name used for client IDs and status keys")
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "Log level (debug, info, warn, error)")
	fs.StringVarP(&c.Mode, "mode", "m", c.Mode, "Run mode (continual, oneshot, print, reset, manual)")

	// Color flags
	fs.IntVar(&c.TempDay, "temp-day", c.TempDay, "Day color temperature in Kelvin")
	fs.IntVar(&c.TempNight, "temp-night", c.TempNight, "Night color temperature in Kelvin")
	fs.StringVarP(&c.Brightness, "brightness", "b", c.Brightness, "Screen brightness, V or DAY:NIGHT")
	fs.StringVarP(&c.Gamma, "gamma", "g", c.Gamma, "Gamma correction, V or R:G:B")
	fs.Float64Var(&c.ElevationHigh, "elevation-high", c.ElevationHigh, "Solar elevation at and above which it is day")
	fs.Float64Var(&c.ElevationLow, "elevation-low", c.ElevationLow, "Solar elevation at and below which it is night")
	fs.StringVar(&c.DawnTime, "dawn-time", c.DawnTime, "Fixed dawn window HH:MM-HH:MM, replaces solar elevation")
	fs.StringVar(&c.DuskTime, "dusk-time", c.DuskTime, "Fixed dusk window HH:MM-HH:MM, replaces solar elevation")
	fs.BoolVar(&c.Fade, "fade", c.Fade, "Fade between color settings in continual mode")

	// Manual mode flags
	fs.IntVarP(&c.ManualTemperature, "temperature", "O", c.ManualTemperature, "Color temperature for manual mode")
	fs.BoolVarP(&c.Preserve, "preserve", "P", c.Preserve, "Apply on top of the existing ramp in one-shot modes")

	// Location flags
	fs.StringVarP(&c.Location, "location", "l", c.Location, "Manual location LAT:LON")
	fs.StringSliceVar(&c.LocationProviders, "location-providers", c.LocationProviders, "Location providers tried in order (manual, mqtt, redis)")
	fs.IntVar(&c.LocationWaitSec, "location-wait", c.LocationWaitSec, "Seconds to wait for a location from a provider")

	// Sink flags
	fs.StringVar(&c.Sink, "sink", c.Sink, "Gamma sink (mqtt, dummy)")
	fs.StringVar(&c.Display, "display", c.Display, "Display name used in MQTT topics")
	fs.IntVar(&c.RampSize, "ramp-size", c.RampSize, "Gamma ramp size")
	fs.BoolVar(&c.ContinueOnSinkError, "continue-on-sink-error", c.ContinueOnSinkError, "Keep running when applying a setting fails")
	fs.BoolVar(&c.RestoreSaved, "restore-saved", c.RestoreSaved, "On exit from continual mode put back the ramp found at startup instead of neutral")

	// MQTT flags
	fs.StringVar(&c.MQTTBroker, "mqtt-broker", c.MQTTBroker, "MQTT broker hostname")
	fs.IntVar(&c.MQTTPort, "mqtt-port", c.MQTTPort, "MQTT broker port")
	fs.StringVar(&c.MQTTUser, "mqtt-user", c.MQTTUser, "MQTT username")
	fs.StringVar(&c.MQTTPassword, "mqtt-password", c.MQTTPassword, "MQTT password")
	fs.StringVar(&c.MQTTClientID, "mqtt-client-id", c.MQTTClientID, "MQTT client ID")

	// Redis flags
	fs.StringVar(&c.RedisHost, "redis-host", c.RedisHost, "Redis hostname")
	fs.IntVar(&c.RedisPort, "redis-port", c.RedisPort, "Redis port")
	fs.StringVar(&c.RedisPassword, "redis-password", c.RedisPassword, "Redis password")
	fs.IntVar(&c.RedisDB, "redis-db", c.RedisDB, "Redis database number")
	fs.BoolVar(&c.EnableStatus, "enable-status", c.EnableStatus, "Publish run status to Redis")
	fs.IntVar(&c.StatusTTLSec, "status-ttl", c.StatusTTLSec, "Status key TTL in seconds")

	return fs.Parse(args)
}

// Validate checks that configuration values are usable
func (c *Config) Validate() error {
	validModes := map[string]bool{
		ModeContinual: true,
		ModeOneShot:   true,
		ModePrint:     true,
		ModeReset:     true,
		ModeManual:    true,
	}
	if !validModes[c.Mode] {
		return fmt.Errorf("invalid mode: %s (must be continual, oneshot, print, reset, or manual)", c.Mode)
	}

	// Validate log level
	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLogLevels[c.LogLevel] {
		return fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", c.LogLevel)
	}

	if c.ServiceName == "" {
		return fmt.Errorf("service name is required")
	}

	if _, err := c.Scheme(); err != nil {
		return err
	}

	if c.Mode == ModeManual {
		if c.ManualTemperature < shift.MinTemp || c.ManualTemperature > shift.MaxTemp {
			return &shift.ValidationError{Field: "temperature", Value: c.ManualTemperature,
				Reason: fmt.Sprintf("must be between %d and %d", shift.MinTemp, shift.MaxTemp)}
		}
	}

	if c.Sink != SinkDummy && c.Sink != SinkMQTT {
		return fmt.Errorf("invalid sink: %s (must be mqtt or dummy)", c.Sink)
	}
	if c.RampSize < 2 || c.RampSize > 65536 {
		return fmt.Errorf("ramp size must be between 2 and 65536")
	}

	if c.NeedsLocation() {
		if len(c.LocationProviders) == 0 {
			return fmt.Errorf("at least one location provider is required")
		}
		for _, p := range c.LocationProviders {
			switch p {
			case ProviderManual:
				if _, err := c.ManualLocation(); err != nil {
					return err
				}
			case ProviderMQTT, ProviderRedis:
			default:
				return fmt.Errorf("unknown location provider: %s", p)
			}
		}
	}

	if c.UsesMQTT() {
		if c.MQTTBroker == "" {
			return fmt.Errorf("MQTT broker is required")
		}
		if c.MQTTPort <= 0 || c.MQTTPort > 65535 {
			return fmt.Errorf("MQTT port must be between 1 and 65535")
		}
	}
	if c.UsesRedis() {
		if c.RedisHost == "" {
			return fmt.Errorf("Redis host is required")
		}
		if c.RedisPort <= 0 || c.RedisPort > 65535 {
			return fmt.Errorf("Redis port must be between 1 and 65535")
		}
	}

	return nil
}

// Scheme builds the transition scheme from the color settings
func (c *Config) Scheme() (shift.TransitionScheme, error) {
	scheme := shift.DefaultScheme()
	scheme.High = c.ElevationHigh
	scheme.Low = c.ElevationLow
	scheme.Day.Temperature = c.TempDay
	scheme.Night.Temperature = c.TempNight

	day, night, err := shift.ParseBrightness(c.Brightness)
	if err != nil {
		return scheme, err
	}
	scheme.Day.Brightness = day
	scheme.Night.Brightness = night

	gamma, err := shift.ParseGamma(c.Gamma)
	if err != nil {
		return scheme, err
	}
	scheme.Day.Gamma = gamma
	scheme.Night.Gamma = gamma

	if c.DawnTime != "" || c.DuskTime != "" {
		if c.DawnTime == "" || c.DuskTime == "" {
			return scheme, &shift.ValidationError{Field: "dawn/dusk time", Value: c.DawnTime + "," + c.DuskTime,
				Reason: "both dawn and dusk must be set"}
		}
		if scheme.Dawn, err = shift.ParseTimeRange(c.DawnTime); err != nil {
			return scheme, err
		}
		if scheme.Dusk, err = shift.ParseTimeRange(c.DuskTime); err != nil {
			return scheme, err
		}
		scheme.UseTime = true
	}

	if err := scheme.Validate(); err != nil {
		return scheme, err
	}
	return scheme, nil
}

// ManualLocation parses the manual LAT:LON location
func (c *Config) ManualLocation() (shift.Location, error) {
	if c.Location == "" {
		return shift.Location{}, &shift.ValidationError{Field: "location", Value: "",
			Reason: "manual provider needs a location (LAT:LON)"}
	}
	return shift.ParseLocation(c.Location)
}

// UsesRedis reports whether any component needs a Redis connection
func (c *Config) UsesRedis() bool {
	if c.EnableStatus {
		return true
	}
	return c.NeedsLocation() && c.hasProvider(ProviderRedis)
}

// UsesMQTT reports whether any component needs an MQTT connection
func (c *Config) UsesMQTT() bool {
	if c.Sink == SinkMQTT && c.Mode != ModePrint {
		return true
	}
	return c.NeedsLocation() && c.hasProvider(ProviderMQTT)
}

// NeedsLocation reports whether the run mode resolves a location. Modes that
// evaluate the scheme need one unless the scheme is time based.
func (c *Config) NeedsLocation() bool {
	switch c.Mode {
	case ModeReset, ModeManual:
		return false
	}
	return c.DawnTime == "" && c.DuskTime == ""
}

func (c *Config) hasProvider(name string) bool {
	for _, p := range c.LocationProviders {
		if p == name {
			return true
		}
	}
	return false
}

// MQTTAddress returns the full MQTT broker address
func (c *Config) MQTTAddress() string {
	return fmt.Sprintf("tcp://%s:%d", c.MQTTBroker, c.MQTTPort)
}

// RedisAddress returns the full Redis address
func (c *Config) RedisAddress() string {
	return fmt.Sprintf("%s:%d", c.RedisHost, c.RedisPort)
}

// IsHelp reports whether err asks for usage output rather than signalling a failure
func IsHelp(err error) bool {
	return errors.Is(err, pflag.ErrHelp)
}

// configFlag finds --config/-c before the full flag set is parsed
func configFlag(args []string) string {
	for i, arg := range args {
		switch {
		case arg == "--config" || arg == "-c":
			if i+1 < len(args) {
				return args[i+1]
			}
		case strings.HasPrefix(arg, "--config="):
			return strings.TrimPrefix(arg, "--config=")
		case strings.HasPrefix(arg, "-c="):
			return strings.TrimPrefix(arg, "-c=")
		}
	}
	return ""
}

func splitList(v string) []string {
	var out []string
	for _, p := range strings.Split(v, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
