package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cast"
	"github.com/spf13/viper"

	"github.com/stigoleg/keep-busy/internal/util"
)

const (
	// DefaultConfigFile is looked up in the working directory.
	DefaultConfigFile = "activity.config.json"
	// DefaultLogFile is created in the working directory.
	DefaultLogFile = "activity.log"
	// DefaultEnvFile is loaded into the environment when present.
	DefaultEnvFile = ".env"
)

// Config is the fully resolved command configuration.
type Config struct {
	Run        RunConfig
	Background bool
	NoTUI      bool
	// Deadline is zero when the run lasts until interrupted.
	Deadline time.Time
	LogFile  string
	LogLevel string
	// Seed is zero when the generator should be seeded from the clock.
	Seed int64
	// ConfigFile is the file that was read, or empty.
	ConfigFile string
}

// LoadDotEnv loads path into the process environment without overriding
// variables that are already set. A missing file is not an error.
func LoadDotEnv(path string) error {
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("%w: load %s: %w", ErrInvalid, path, err)
	}
	return nil
}

// ReadConfigFile reads path into v. An empty path falls back to
// DefaultConfigFile and silently skips it when absent; an explicit path must exist.
func ReadConfigFile(v *viper.Viper, path string) (string, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultConfigFile
		if _, err := os.Stat(path); err != nil {
			return "", nil
		}
	}
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return "", fmt.Errorf("%w: read %s: %w", ErrInvalid, path, err)
	}
	return path, nil
}

// Load resolves a Config from v. Precedence is flags, then environment,
// then config file, then defaults. The profile may still be empty; callers
// that cannot prompt for one must call Run.Validate.
func Load(v *viper.Viper, now time.Time) (*Config, error) {
	urls, err := parseURLs(v.Get(KeyURLs))
	if err != nil {
		return nil, err
	}

	run := RunConfig{
		Profile:       Profile(strings.ToLower(strings.TrimSpace(v.GetString(KeyProfile)))),
		MinInterval:   v.GetInt(KeyMinInterval),
		MaxInterval:   v.GetInt(KeyMaxInterval),
		Clicks:        v.GetBool(KeyClicks),
		ClickChance:   v.GetFloat64(KeyClickChance),
		IdleThreshold: v.GetFloat64(KeyIdleThreshold),
		URLs:          urls,
		FocusApp:      strings.TrimSpace(v.GetString(KeyFocusApp)),
		DryRun:        v.GetBool(KeyDryRun),
	}
	if run.Profile != "" {
		run = run.WithProfile(run.Profile)
	}

	cfg := &Config{
		Run:        run,
		Background: v.GetBool(KeyBackground),
		NoTUI:      v.GetBool(KeyNoTUI),
		LogFile:    v.GetString(KeyLogFile),
		LogLevel:   v.GetString(KeyLogLevel),
		Seed:       v.GetInt64(KeySeed),
	}

	deadline, err := resolveDeadline(v.GetString(KeyDuration), v.GetString(KeyUntil), now)
	if err != nil {
		return nil, err
	}
	cfg.Deadline = deadline
	return cfg, nil
}

// WithProfile selects p and fills unset think intervals with p's defaults.
func (c RunConfig) WithProfile(p Profile) RunConfig {
	c.Profile = p
	defMin, defMax := DefaultIntervals(p)
	if c.MinInterval == 0 {
		c.MinInterval = defMin
	}
	if c.MaxInterval == 0 {
		c.MaxInterval = defMax
	}
	return c
}

func parseURLs(raw any) ([]string, error) {
	var items []string
	switch val := raw.(type) {
	case nil:
		return nil, nil
	case string:
		items = strings.Split(val, ",")
	default:
		s, err := cast.ToStringSliceE(val)
		if err != nil {
			return nil, fmt.Errorf("%w: urls: %w", ErrInvalid, err)
		}
		items = s
	}

	var urls []string
	for _, u := range items {
		if u = strings.TrimSpace(u); u != "" {
			urls = append(urls, u)
		}
	}
	return urls, nil
}

func resolveDeadline(duration, until string, now time.Time) (time.Time, error) {
	duration = strings.TrimSpace(duration)
	until = strings.TrimSpace(until)

	switch {
	case duration != "" && until != "":
		return time.Time{}, fmt.Errorf("%w: --duration and --until are mutually exclusive", ErrInvalid)
	case duration != "":
		d, err := util.ParseDuration(duration)
		if err != nil {
			return time.Time{}, fmt.Errorf("%w: %w", ErrInvalid, err)
		}
		if d <= 0 {
			return time.Time{}, fmt.Errorf("%w: duration must be positive, got %s", ErrInvalid, duration)
		}
		return now.Add(d), nil
	case until != "":
		t, err := util.NextOccurrence(until, now)
		if err != nil {
			return time.Time{}, fmt.Errorf("%w: %w", ErrInvalid, err)
		}
		return t, nil
	default:
		return time.Time{}, nil
	}
}
