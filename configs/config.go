// Package config exposes runtime settings for the skill share API. Values
// come from the process environment; a .env file in the working directory is
// loaded once, on first lookup, so local runs and deployed containers read
// settings the same way.
package config

import (
	"log"
	"os"
	"sync"

	"github.com/joho/godotenv"
)

var loadEnvOnce sync.Once

// Config returns the value of key from the environment, or "" when unset.
func Config(key string) string {
	loadEnvOnce.Do(func() {
		if err := godotenv.Load(".env"); err != nil {
			log.Println("Warning: .env file not found, reading from system environment variables")
		}
	})

	return os.Getenv(key)
}
