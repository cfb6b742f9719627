package config

import (
	"fmt"
	"os"
)

const (
	DefaultPort     = "5000"
	DefaultMongoURI = "mongodb://localhost:27017/travel_db"
	DatabaseName    = "travel_db"
)

func GetSecret(key string) (string, error) {
	val, exist := os.LookupEnv(key)
	if exist {
		return val, nil
	}
	return "", fmt.Errorf("no env variable with key %v", key)
}

// Get returns the environment value for key or the given fallback.
func Get(key, fallback string) string {
	if val, exist := os.LookupEnv(key); exist && val != "" {
		return val
	}
	return fallback
}
