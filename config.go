package dynstring

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/spf13/viper"
)

const (
	LogLevelDebug = "debug"
	LogLevelInfo  = "info"
	LogLevelWarn  = "warn"
	LogLevelError = "error"
)

const (
	LogFormatJSON = "json"
	LogFormatText = "text"
)

// EnvPrefix is prepended to every environment variable read by LoadConfig,
// e.g. DYNSTRING_LOG_LEVEL.
const EnvPrefix = "DYNSTRING"

type Config struct {
	LogLevel  string `mapstructure:"log_level"`
	LogFormat string `mapstructure:"log_format"`
	// Region overrides the region resolved by the AWS default config chain.
	Region string `mapstructure:"region"`
}

// LoadConfig reads the process configuration from the environment and
// validates it.
func LoadConfig() (Config, error) {
	v := viper.New()
	v.SetDefault("log_level", LogLevelInfo)
	v.SetDefault("log_format", LogFormatJSON)
	v.SetDefault("region", "")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, err
	}
	cfg.LogLevel = strings.ToLower(cfg.LogLevel)
	cfg.LogFormat = strings.ToLower(cfg.LogFormat)
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.LogLevel,
			validation.Required,
			validation.In(LogLevelDebug, LogLevelInfo, LogLevelWarn, LogLevelError),
		),
		validation.Field(&c.LogFormat,
			validation.Required,
			validation.In(LogFormatJSON, LogFormatText),
		),
	)
}
