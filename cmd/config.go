package cmd

import "time"

type Config struct {
	HTTPPort      string
	DBHost        string
	DBPort        string
	DBUser        string
	DBPassword    string
	DBName        string
	DBSslMode     string
	RedisAddr     string
	AmqpURL       string
	CartTTL       time.Duration
	StaleDraftAge time.Duration
}
