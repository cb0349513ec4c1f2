package main

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds the daemon configuration, loaded from environment
// variables with the SCHEMIFY_ prefix and optionally a schemifyd.yaml
// file in the working directory.
type Config struct {
	ServerPort   int           `mapstructure:"server_port"`
	StaticDir    string        `mapstructure:"static_dir"`
	FetchTimeout time.Duration `mapstructure:"fetch_timeout"`
	NavTimeout   time.Duration `mapstructure:"nav_timeout"`
	UserAgent    string        `mapstructure:"user_agent"`
	LogPretty    bool          `mapstructure:"log_pretty"`
}

// LoadConfig reads configuration from the environment and, when
// present, a schemifyd.yaml config file. A missing config file is not
// an error; missing keys fall back to defaults.
func LoadConfig() (*Config, error) {
	v := viper.New()

	v.SetDefault("server_port", 8080)
	v.SetDefault("static_dir", "static")
	v.SetDefault("fetch_timeout", 30*time.Second)
	v.SetDefault("nav_timeout", 60*time.Second)
	v.SetDefault("user_agent", "")
	v.SetDefault("log_pretty", false)

	v.SetConfigName("schemifyd")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	v.SetEnvPrefix("schemify")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
