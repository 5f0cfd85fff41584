// Package config resolves runtime settings for the branchtale commands.
//
// Precedence, highest first: command-line flags, BRANCHTALE_* environment
// variables, an optional branchtale.yaml, built-in defaults.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/aretw0/branchtale/pkg/domain"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	// EnvPrefix is prepended to every key when reading the environment.
	EnvPrefix = "BRANCHTALE"

	configFileName = "branchtale"
	configFileType = "yaml"
)

// Config keys.
const (
	KeyConfig        = "config"
	KeySource        = "source"
	KeyDir           = "dir"
	KeyBaseURL       = "base_url"
	KeyRedisAddr     = "redis_addr"
	KeyRedisPassword = "redis_password"
	KeyRedisDB       = "redis_db"
	KeyRedisPrefix   = "redis_prefix"
	KeyStart         = "start"
	KeyPort          = "port"
	KeyDebug         = "debug"
	KeyLogFormat     = "log_format"
	KeyPlain         = "plain"
)

// Source kinds.
const (
	SourceDir   = "dir"
	SourceHTTP  = "http"
	SourceRedis = "redis"
)

// Config holds the resolved settings.
type Config struct {
	Source        string `mapstructure:"source"`
	Dir           string `mapstructure:"dir"`
	BaseURL       string `mapstructure:"base_url"`
	RedisAddr     string `mapstructure:"redis_addr"`
	RedisPassword string `mapstructure:"redis_password"`
	RedisDB       int    `mapstructure:"redis_db"`
	RedisPrefix   string `mapstructure:"redis_prefix"`
	Start         string `mapstructure:"start"`
	Port          int    `mapstructure:"port"`
	Debug         bool   `mapstructure:"debug"`
	LogFormat     string `mapstructure:"log_format"`
	Plain         bool   `mapstructure:"plain"`

	// File is the config file that was read, if any.
	File string `mapstructure:"-"`
}

// RegisterFlags adds the persistent flags shared by all commands.
// Flag names use dashes; they map to the underscore keys above.
func RegisterFlags(fs *pflag.FlagSet) {
	fs.String(flagName(KeyConfig), "", "Path to a branchtale.yaml config file")
	fs.String(flagName(KeySource), SourceDir, "Table source: dir, http or redis")
	fs.String(flagName(KeyDir), ".", "Directory containing NODES and CHOICES tables")
	fs.String(flagName(KeyBaseURL), "", "Base URL serving NODES.json and CHOICES.json")
	fs.String(flagName(KeyRedisAddr), "localhost:6379", "Redis address holding the tables")
	fs.String(flagName(KeyRedisPassword), "", "Redis password")
	fs.Int(flagName(KeyRedisDB), 0, "Redis database number")
	fs.String(flagName(KeyRedisPrefix), "branchtale:table:", "Redis key prefix for the tables")
	fs.String(flagName(KeyStart), domain.DefaultStartNodeID, "Start node ID")
	fs.Bool(flagName(KeyDebug), false, "Enable debug logging")
	fs.String(flagName(KeyLogFormat), "text", "Log format: text or json")
	fs.Bool(flagName(KeyPlain), false, "Disable colours and markdown rendering")
}

// Load resolves the configuration using the flags in fs (may be nil).
func Load(fs *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if fs != nil {
		var bindErr error
		fs.VisitAll(func(f *pflag.Flag) {
			if err := v.BindPFlag(strings.ReplaceAll(f.Name, "-", "_"), f); err != nil {
				bindErr = errors.Join(bindErr, err)
			}
		})
		if bindErr != nil {
			return nil, fmt.Errorf("bind flags: %w", bindErr)
		}
	}

	if path := v.GetString(KeyConfig); path != "" {
		// An explicit file must exist.
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(configFileName)
		v.SetConfigType(configFileType)
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
		// A missing branchtale.yaml is not an error.
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	cfg.File = v.ConfigFileUsed()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	// Every key needs a default so Unmarshal sees environment overrides.
	v.SetDefault(KeyConfig, "")
	v.SetDefault(KeySource, SourceDir)
	v.SetDefault(KeyDir, ".")
	v.SetDefault(KeyBaseURL, "")
	v.SetDefault(KeyRedisAddr, "localhost:6379")
	v.SetDefault(KeyRedisPassword, "")
	v.SetDefault(KeyRedisDB, 0)
	v.SetDefault(KeyRedisPrefix, "branchtale:table:")
	v.SetDefault(KeyStart, domain.DefaultStartNodeID)
	v.SetDefault(KeyPort, 8080)
	v.SetDefault(KeyDebug, false)
	v.SetDefault(KeyLogFormat, "text")
	v.SetDefault(KeyPlain, false)
}

// Validate reports settings that cannot work together.
func (c *Config) Validate() error {
	switch c.Source {
	case SourceDir:
	case SourceHTTP:
		if c.BaseURL == "" {
			return errors.New("config: base_url is required when source is http")
		}
	case SourceRedis:
		if c.RedisAddr == "" {
			return errors.New("config: redis_addr is required when source is redis")
		}
	default:
		return fmt.Errorf("config: unknown source %q (want dir, http or redis)", c.Source)
	}

	switch c.LogFormat {
	case "text", "json":
	default:
		return fmt.Errorf("config: unknown log_format %q", c.LogFormat)
	}

	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("config: port %d out of range", c.Port)
	}
	return nil
}

func flagName(key string) string {
	return strings.ReplaceAll(key, "_", "-")
}
