package config

import "os"

type Config struct {
	MongoURI      string
	RedisAddr     string
	RedisPassword string
	JWTSecret     string
	HTTPAddr      string
	LogLevel      string
	Env           string // dev|prod
	SentryDSN     string
	// DailyReportLimit caps waste report submissions per citizen per day.
	DailyReportLimit int
}

func Load() *Config {
	return &Config{
		MongoURI:         os.Getenv("MONGODB_URI"),
		RedisAddr:        os.Getenv("REDIS_ADDRESS"),
		RedisPassword:    os.Getenv("REDIS_PASSWORD"),
		JWTSecret:        os.Getenv("JWT_SECRET"),
		HTTPAddr:         getenv("HTTP_ADDR", ":8080"),
		LogLevel:         getenv("LOG_LEVEL", "info"),
		Env:              getenv("GO_ENV", "dev"),
		SentryDSN:        os.Getenv("SENTRY_DSN"),
		DailyReportLimit: 10,
	}
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
