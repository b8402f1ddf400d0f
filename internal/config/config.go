package config

import (
	"log"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	Port           string
	AllowedOrigins []string
	GeminiAPIKey   string
	GeminiModel    string
	SeedDemoData   bool
}

// Load reads .env (if present) with environment variables taking precedence.
func Load() *Config {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	viper.BindEnv("server.port", "PORT")
	viper.BindEnv("server.allowed_origins", "ALLOWED_ORIGINS")
	viper.BindEnv("gemini.api_key", "GEMINI_API_KEY")
	viper.BindEnv("gemini.model", "GEMINI_MODEL")
	viper.BindEnv("seed_demo_data", "SEED_DEMO_DATA")

	viper.SetDefault("server.port", "8080")
	viper.SetDefault("server.allowed_origins", "https://*,http://*")
	viper.SetDefault("gemini.model", "gemini-2.0-flash")
	viper.SetDefault("seed_demo_data", false)

	if err := viper.ReadInConfig(); err != nil {
		log.Printf("Config file not found, using defaults: %v", err)
	}

	return &Config{
		Port:           viper.GetString("server.port"),
		AllowedOrigins: splitOrigins(viper.GetString("server.allowed_origins")),
		GeminiAPIKey:   viper.GetString("gemini.api_key"),
		GeminiModel:    viper.GetString("gemini.model"),
		SeedDemoData:   viper.GetBool("seed_demo_data"),
	}
}

func splitOrigins(s string) []string {
	parts := strings.Split(s, ",")
	origins := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	return origins
}
