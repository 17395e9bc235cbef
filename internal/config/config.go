// Package config loads tempoctl settings through viper. Values come from, in
// rising precedence: defaults, an optional config file, TEMPO_* environment
// variables and bound command flags.
package config

import (
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/arloliu/tempo/errs"
	"github.com/arloliu/tempo/format"
	"github.com/arloliu/tempo/instant"
)

// EnvPrefix is the prefix of every environment variable, as in TEMPO_LOG_LEVEL.
const EnvPrefix = "TEMPO"

// Keys of the settings.
const (
	KeyUnit     = "unit"
	KeyRateNum  = "rate.frames"
	KeyRateDen  = "rate.seconds"
	KeyLogLevel = "log.level"
	KeyLogJSON  = "log.json"
)

// Config holds the resolved settings.
type Config struct {
	Unit string     `mapstructure:"unit"`
	Rate RateConfig `mapstructure:"rate"`
	Log  LogConfig  `mapstructure:"log"`
}

// RateConfig is a rational frame rate: Frames frames per Seconds seconds.
type RateConfig struct {
	Frames  int64 `mapstructure:"frames"`
	Seconds int64 `mapstructure:"seconds"`
}

// LogConfig selects the logger.
type LogConfig struct {
	Level string `mapstructure:"level"`
	JSON  bool   `mapstructure:"json"`
}

// SetDefaults registers the default of every key on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyUnit, "frame")
	v.SetDefault(KeyRateNum, 30)
	v.SetDefault(KeyRateDen, 1)
	v.SetDefault(KeyLogLevel, "warn")
	v.SetDefault(KeyLogJSON, false)
}

// New returns a viper instance with defaults and environment binding in
// place. A non-empty file is read as the config file; its type follows the
// extension (toml, yaml or json).
func New(file string) (*viper.Viper, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	SetDefaults(v)

	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "read config %s", file)
		}
	}

	return v, nil
}

// BindFlags binds the flags named like keys, with dots replaced by dashes,
// so that rate.frames is set by --rate-frames. Missing flags are skipped.
func BindFlags(v *viper.Viper, flags *pflag.FlagSet) error {
	for _, key := range []string{KeyUnit, KeyRateNum, KeyRateDen, KeyLogLevel, KeyLogJSON} {
		f := flags.Lookup(strings.ReplaceAll(key, ".", "-"))
		if f == nil {
			continue
		}
		if err := v.BindPFlag(key, f); err != nil {
			return errors.Wrapf(err, "bind flag %s", f.Name)
		}
	}

	return nil
}

// Load decodes v into a Config and validates it.
func Load(v *viper.Viper) (*Config, error) {
	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, errors.Wrap(err, "decode config")
	}
	if _, err := c.AxisUnit(); err != nil {
		return nil, err
	}
	if _, err := c.FrameRate(); err != nil {
		return nil, err
	}

	return &c, nil
}

// AxisUnit returns the configured default unit.
func (c *Config) AxisUnit() (format.Unit, error) {
	switch strings.ToLower(strings.TrimSpace(c.Unit)) {
	case "frame", "frames", "f":
		return format.UnitFrame, nil
	case "time", "us", "micros", "t":
		return format.UnitTime, nil
	default:
		return format.UnitNone, errors.Wrapf(errs.ErrInvalidOption, "unit %q", c.Unit)
	}
}

// FrameRate returns the configured rate.
func (c *Config) FrameRate() (instant.FrameRate, error) {
	return instant.NewRationalFrameRate(c.Rate.Frames, c.Rate.Seconds)
}
