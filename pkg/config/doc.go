// Package config loads configuration structs from environment variables.
//
// Structs declare their settings with `env` tags understood by
// github.com/caarlos0/env; a .env file in the working directory is picked up
// automatically on first use via godotenv.
//
// Usage:
//
//	var cfg mailer.Config
//	config.MustLoad(&cfg)
package config
