package config

import (
	"fmt"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Keys used in viper, activity.config.json and (upper snake case) the
// KEEPBUSY_* environment.
const (
	KeyProfile       = "profile"
	KeyBackground    = "background"
	KeyClicks        = "clicks"
	KeyClickChance   = "clickChance"
	KeyURLs          = "urls"
	KeyMinInterval   = "minInterval"
	KeyMaxInterval   = "maxInterval"
	KeyIdleThreshold = "idleThreshold"
	KeyFocusApp      = "focusApp"
	KeyDryRun        = "dryRun"
	KeyNoTUI         = "noTui"
	KeyDuration      = "duration"
	KeyUntil         = "until"
	KeyLogFile       = "logFile"
	KeyLogLevel      = "logLevel"
	KeySeed          = "seed"
)

// EnvPrefix prefixes every environment variable the app reads.
const EnvPrefix = "KEEPBUSY"

// FlagConfig is the flag naming the config file.
const FlagConfig = "config"

type flagSpec struct {
	key   string
	name  string
	short string
	env   string
	usage string
	def   any
}

var flagSpecs = []flagSpec{
	{KeyProfile, "profile", "p", "PROFILE", "Activity profile to run: 'reading' or 'coding'", ""},
	{KeyBackground, "background", "b", "BACKGROUND", "Run detached in the background", false},
	{KeyClicks, "clicks", "c", "CLICKS", "Simulate mouse clicks as well as movements", false},
	{KeyClickChance, "click-chance", "", "CLICK_CHANCE", "Probability of clicking after a reading mouse move", DefaultClickChance},
	{KeyURLs, "urls", "u", "URLS", "Comma-separated list of custom URLs to read (reading profile)", ""},
	{KeyMinInterval, "min-interval", "", "MIN_INTERVAL", "Minimum think time between cycles in seconds", 0},
	{KeyMaxInterval, "max-interval", "", "MAX_INTERVAL", "Maximum think time between cycles in seconds", 0},
	{KeyIdleThreshold, "idle-threshold", "", "IDLE_THRESHOLD", "Pause while real input happened within this many seconds", float64(DefaultIdleThreshold)},
	{KeyFocusApp, "focus-app", "", "FOCUS_APP", "Bring this application to the foreground before each cycle", ""},
	{KeyDryRun, "dry-run", "", "DRY_RUN", "Log actions instead of sending input", false},
	{KeyNoTUI, "no-tui", "", "NO_TUI", "Log to the console instead of showing the interactive UI", false},
	{KeyDuration, "duration", "d", "DURATION", "Stop after this long (e.g. \"90\" minutes or \"2h30m\")", ""},
	{KeyUntil, "until", "", "UNTIL", "Stop at this wall-clock time (e.g. \"17:30\" or \"5:30PM\")", ""},
	{KeyLogFile, "log-file", "", "LOG_FILE", "Activity log file", DefaultLogFile},
	{KeyLogLevel, "log-level", "", "LOG_LEVEL", "Log level (debug, info, warn, error)", "info"},
	{KeySeed, "seed", "", "SEED", "Random seed; 0 seeds from the clock", int64(0)},
}

// BindFlags registers every run flag on fs and binds it, its environment
// variable and its default into v.
func BindFlags(fs *pflag.FlagSet, v *viper.Viper) error {
	for _, f := range flagSpecs {
		switch def := f.def.(type) {
		case string:
			fs.StringP(f.name, f.short, def, f.usage)
		case bool:
			fs.BoolP(f.name, f.short, def, f.usage)
		case int:
			fs.IntP(f.name, f.short, def, f.usage)
		case int64:
			fs.Int64P(f.name, f.short, def, f.usage)
		case float64:
			fs.Float64P(f.name, f.short, def, f.usage)
		default:
			return fmt.Errorf("flag %s: unsupported default type %T", f.name, f.def)
		}
		if err := v.BindPFlag(f.key, fs.Lookup(f.name)); err != nil {
			return fmt.Errorf("bind flag %s: %w", f.name, err)
		}
		if err := v.BindEnv(f.key, EnvPrefix+"_"+f.env); err != nil {
			return fmt.Errorf("bind env %s: %w", f.env, err)
		}
	}
	fs.String(FlagConfig, "", "Config file (default ./"+DefaultConfigFile+" when present)")
	return nil
}
