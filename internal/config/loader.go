package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

const envPrefix = "GO_SAVINGS_ENGINE"

// Load reads config.yaml from the usual search paths and overlays
// GO_SAVINGS_ENGINE_* environment variables.
func Load() (Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("/config")
	v.AddConfigPath("./config")
	v.AddConfigPath(".")

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if ok := isConfigFileNotFound(err, &notFound); !ok {
			return Config{}, fmt.Errorf("failed to read config file: %w", err)
		}
		// env-only configuration is fine when no file is present
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return cfg, nil
}

func isConfigFileNotFound(err error, target *viper.ConfigFileNotFoundError) bool {
	if e, ok := err.(viper.ConfigFileNotFoundError); ok {
		*target = e
		return true
	}
	return false
}
