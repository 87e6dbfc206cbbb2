package conf

import (
	"strings"

	"github.com/ansel1/merry"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

const (
	defaultLogLevel  = "info"
	defaultLogFormat = "text"
	defaultOutput    = "-"

	envPrefix = "BSTMAP"
)

// Config holds the settings of the bstmap command line tool.
type Config struct {
	LogLevel  string `mapstructure:"log_level"`  // trace, debug, info, warn, error
	LogFormat string `mapstructure:"log_format"` // text or json
	Output    string `mapstructure:"output"`     // file path, "-" is stdout
}

// Default returns a Config holding the default settings.
func Default() *Config {
	return &Config{
		LogLevel:  defaultLogLevel,
		LogFormat: defaultLogFormat,
		Output:    defaultOutput,
	}
}

func (conf *Config) String() string {
	var sb strings.Builder
	sb.WriteString("LogLevel: ")
	sb.WriteString(conf.LogLevel)
	sb.WriteString("\n")
	sb.WriteString("LogFormat: ")
	sb.WriteString(conf.LogFormat)
	sb.WriteString("\n")
	sb.WriteString("Output: ")
	sb.WriteString(conf.Output)
	return sb.String()
}

// Load reads the configuration from the optional YAML file at path
// and from BSTMAP_* environment variables, which take precedence.
// Missing or invalid settings fall back to their defaults.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetDefault("log_level", defaultLogLevel)
	v.SetDefault("log_format", defaultLogFormat)
	v.SetDefault("output", defaultOutput)
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, merry.Prepend(err, "conf: reading "+path)
		}
	}
	conf := new(Config)
	if err := v.Unmarshal(conf); err != nil {
		return nil, merry.Prepend(err, "conf: decoding")
	}
	return checkConfig(conf), nil
}

// checkConfig is a helper to make sure the configuration
// options are correct and handles any missing options
func checkConfig(conf *Config) *Config {
	if conf == nil {
		return Default()
	}
	conf.LogLevel = strings.ToLower(strings.TrimSpace(conf.LogLevel))
	if _, err := logrus.ParseLevel(conf.LogLevel); err != nil {
		conf.LogLevel = defaultLogLevel
	}
	conf.LogFormat = strings.ToLower(strings.TrimSpace(conf.LogFormat))
	if conf.LogFormat != "text" && conf.LogFormat != "json" {
		conf.LogFormat = defaultLogFormat
	}
	if strings.TrimSpace(conf.Output) == "" {
		conf.Output = defaultOutput
	}
	return conf
}
