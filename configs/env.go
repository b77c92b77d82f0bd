package configs

import (
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type EnvConfig struct {
	ApplicationName string
	ContextPath     string
	Environment     string
}

var Env *EnvConfig

func init() {
	// a missing .env is fine, the process environment still applies
	_ = godotenv.Load()

	viper.AutomaticEnv()

	Env = &EnvConfig{
		ApplicationName: getStringOrDefault("APPLICATION_NAME", "ecoscope"),
		ContextPath:     getStringOrDefault("CONTEXT_PATH", ""),
		Environment:     getStringOrDefault("APP_ENV", "local"),
	}
}

func getStringOrDefault(key, defaultValue string) string {
	value := viper.GetString(key)
	if value == "" {
		return defaultValue
	}
	return value
}
