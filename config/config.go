package config

import (
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	ServerPort           int
	DatabaseDbPath       string
	DatabaseCacheAddress string
	DatabaseCachePort    int
	AIModelURL           string
	WeatherAPIURL        string
	WeatherAPIKey        string
	InhalerAPIURL        string
	BackendBaseURL       string
	SessionFilePath      string
}

func InitConfig() (Config, error) {
	v := viper.New()

	v.SetDefault("SERVER_PORT", 5000)
	v.SetDefault("DATABASE_DB_PATH", "data/hridayavayu.db")
	v.SetDefault("DATABASE_CACHE_ADDRESS", "localhost")
	v.SetDefault("DATABASE_CACHE_PORT", 6379)
	v.SetDefault("AI_MODEL_URL", "http://127.0.0.1:7860/predict")
	v.SetDefault("WEATHER_API_URL", "")
	v.SetDefault("WEATHER_API_KEY", "")
	v.SetDefault("INHALER_API_URL", "")
	v.SetDefault("BACKEND_BASE_URL", "http://127.0.0.1:5000")
	v.SetDefault("SESSION_FILE_PATH", "data/session.json")

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		// A missing config file is fine, env and defaults cover it.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return Config{}, err
		}
	}

	return Config{
		ServerPort:           v.GetInt("SERVER_PORT"),
		DatabaseDbPath:       v.GetString("DATABASE_DB_PATH"),
		DatabaseCacheAddress: v.GetString("DATABASE_CACHE_ADDRESS"),
		DatabaseCachePort:    v.GetInt("DATABASE_CACHE_PORT"),
		AIModelURL:           v.GetString("AI_MODEL_URL"),
		WeatherAPIURL:        v.GetString("WEATHER_API_URL"),
		WeatherAPIKey:        v.GetString("WEATHER_API_KEY"),
		InhalerAPIURL:        v.GetString("INHALER_API_URL"),
		BackendBaseURL:       v.GetString("BACKEND_BASE_URL"),
		SessionFilePath:      v.GetString("SESSION_FILE_PATH"),
	}, nil
}
