package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	NumFloors         = 10
	DoorHoldTicks     = 2
	MoveTicksPerFloor = 3
	TickInterval      = 500 * time.Millisecond
	LogLevel          = "debug"
)

// Environment keys read by ApplyEnv.
const (
	EnvNumFloors         = "CABIN_NUM_FLOORS"
	EnvDoorHoldTicks     = "CABIN_DOOR_HOLD_TICKS"
	EnvMoveTicksPerFloor = "CABIN_MOVE_TICKS_PER_FLOOR"
	EnvTickInterval      = "CABIN_TICK_INTERVAL"
	EnvLogLevel          = "CABIN_LOG_LEVEL"
	EnvLogFile           = "CABIN_LOG_FILE"
)

var ErrInvalidConfig = errors.New("invalid config")

// Config is fixed once a cabin is constructed from it.
type Config struct {
	NumFloors         int           `yaml:"numFloors"`
	DoorHoldTicks     int           `yaml:"doorHoldTicks"`
	MoveTicksPerFloor int           `yaml:"moveTicksPerFloor"`
	TickInterval      time.Duration `yaml:"tickInterval"`
	LogLevel          string        `yaml:"logLevel"`
	LogFile           string        `yaml:"logFile"`
}

func Default() Config {
	return Config{
		NumFloors:         NumFloors,
		DoorHoldTicks:     DoorHoldTicks,
		MoveTicksPerFloor: MoveTicksPerFloor,
		TickInterval:      TickInterval,
		LogLevel:          LogLevel,
	}
}

// Load reads defaults, then the YAML file at path (if non-empty), then the
// dotenv file at envPath (if non-empty) and the process environment.
func Load(path, envPath string) (Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("read config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	env := map[string]string{}
	if envPath != "" {
		fileEnv, err := godotenv.Read(envPath)
		if err != nil {
			return cfg, fmt.Errorf("read env file %s: %w", envPath, err)
		}
		env = fileEnv
	}
	// Process environment wins over the dotenv file.
	for _, key := range []string{EnvNumFloors, EnvDoorHoldTicks, EnvMoveTicksPerFloor, EnvTickInterval, EnvLogLevel, EnvLogFile} {
		if v, ok := os.LookupEnv(key); ok {
			env[key] = v
		}
	}
	if err := cfg.ApplyEnv(env); err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

// ApplyEnv overrides fields from env. Unknown keys are ignored.
func (cfg *Config) ApplyEnv(env map[string]string) error {
	ints := []struct {
		key   string
		field *int
	}{
		{EnvNumFloors, &cfg.NumFloors},
		{EnvDoorHoldTicks, &cfg.DoorHoldTicks},
		{EnvMoveTicksPerFloor, &cfg.MoveTicksPerFloor},
	}
	for _, in := range ints {
		v, ok := env[in.key]
		if !ok || v == "" {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: %s=%q: %w", ErrInvalidConfig, in.key, v, err)
		}
		*in.field = n
	}

	if v := env[EnvTickInterval]; v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("%w: %s=%q: %w", ErrInvalidConfig, EnvTickInterval, v, err)
		}
		cfg.TickInterval = d
	}
	if v := env[EnvLogLevel]; v != "" {
		cfg.LogLevel = v
	}
	if v := env[EnvLogFile]; v != "" {
		cfg.LogFile = v
	}
	return nil
}

func (cfg Config) Validate() error {
	switch {
	case cfg.NumFloors < 1:
		return fmt.Errorf("%w: numFloors must be at least 1, got %d", ErrInvalidConfig, cfg.NumFloors)
	case cfg.DoorHoldTicks < 1:
		return fmt.Errorf("%w: doorHoldTicks must be at least 1, got %d", ErrInvalidConfig, cfg.DoorHoldTicks)
	case cfg.MoveTicksPerFloor < 1:
		return fmt.Errorf("%w: moveTicksPerFloor must be at least 1, got %d", ErrInvalidConfig, cfg.MoveTicksPerFloor)
	case cfg.TickInterval <= 0:
		return fmt.Errorf("%w: tickInterval must be positive, got %s", ErrInvalidConfig, cfg.TickInterval)
	}
	switch cfg.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: unknown logLevel %q", ErrInvalidConfig, cfg.LogLevel)
	}
	return nil
}
