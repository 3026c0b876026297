package config

import (
	"fmt"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Settings struct {
	BackendBaseURL  string
	HTTPTimeout     time.Duration
	SQLitePath      string
	CacheDir        string
	CacheMaxBytes   int64
	PollInterval    time.Duration
	ServerPort      int
}

func Load() (*Settings, error) {
	if err := godotenv.Load(".env"); err != nil {
		log.Println("No .env file found; proceeding with OS environment variables")
	}

	viper.AutomaticEnv()

	viper.SetConfigFile(".env")
	viper.SetConfigType("env")

	if err := viper.ReadInConfig(); err != nil {
		log.Printf("Warning: could not read .env file: %v", err)
	}

	if !viper.IsSet("BACKEND_BASE_URL") {
		return nil, fmt.Errorf("BACKEND_BASE_URL is required")
	}
	if !viper.IsSet("SQLITE_PATH") {
		return nil, fmt.Errorf("SQLITE_PATH is required")
	}
	if !viper.IsSet("CACHE_DIR") {
		return nil, fmt.Errorf("CACHE_DIR is required")
	}
	if !viper.IsSet("SERVER_PORT") {
		return nil, fmt.Errorf("SERVER_PORT is required")
	}

	viper.SetDefault("HTTP_TIMEOUT", 30)
	viper.SetDefault("CACHE_MAX_BYTES", 0)
	viper.SetDefault("POSITION_POLL_MS", 200)

	return &Settings{
		BackendBaseURL: viper.GetString("BACKEND_BASE_URL"),
		HTTPTimeout:    time.Duration(viper.GetInt("HTTP_TIMEOUT")) * time.Second,
		SQLitePath:     viper.GetString("SQLITE_PATH"),
		CacheDir:       viper.GetString("CACHE_DIR"),
		CacheMaxBytes:  viper.GetInt64("CACHE_MAX_BYTES"),
		PollInterval:   time.Duration(viper.GetInt("POSITION_POLL_MS")) * time.Millisecond,
		ServerPort:     viper.GetInt("SERVER_PORT"),
	}, nil
}
