package config

import (
	"time"
)

const defaultJWTSecret = "your-secret-key-change-this-in-production"

type AuthConfig struct {
	JWTSecret     []byte
	JWTExpiration time.Duration
}

func loadAuthConfig() AuthConfig {
	return AuthConfig{
		JWTSecret:     []byte(getEnv("JWT_SECRET", defaultJWTSecret)),
		JWTExpiration: getDurationEnv("JWT_EXPIRATION", 24*time.Hour),
	}
}
