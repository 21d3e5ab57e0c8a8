package config

import (
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Env            string
	HTTPAddr       string
	APIBaseURL     string
	AuthMode       string
	FirebaseAPIKey string
	DevToken       string
}

func Load() Config {
	// .env is optional; real env vars always win.
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("HTTP_ADDR", ":8090")
	v.SetDefault("API_BASE_URL", "https://jnv-web.onrender.com")
	v.SetDefault("AUTH_MODE", "dev")
	v.SetDefault("FIREBASE_WEB_API_KEY", "")
	v.SetDefault("DEV_TOKEN", "")
	v.AutomaticEnv()

	return Config{
		Env:            v.GetString("APP_ENV"),
		HTTPAddr:       v.GetString("HTTP_ADDR"),
		APIBaseURL:     strings.TrimRight(strings.TrimSpace(v.GetString("API_BASE_URL")), "/"),
		AuthMode:       v.GetString("AUTH_MODE"),
		FirebaseAPIKey: v.GetString("FIREBASE_WEB_API_KEY"),
		DevToken:       v.GetString("DEV_TOKEN"),
	}
}
