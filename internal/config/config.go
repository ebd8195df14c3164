package config

import (
	"fmt"
	"os"
	"strconv"
)

type Config struct {
	Port                string
	DatabaseURL         string
	PrimaryCheckpointID uint
	SeedDev             bool
}

func Load() (Config, error) {
	port := os.Getenv("APP_PORT")
	if port == "" {
		port = "8080"
	}

	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		return Config{}, fmt.Errorf("DATABASE_URL required")
	}

	primaryCheckpointID := uint(1)
	if raw := os.Getenv("PRIMARY_CHECKPOINT_ID"); raw != "" {
		parsed, err := strconv.ParseUint(raw, 10, 32)
		if err != nil || parsed == 0 {
			return Config{}, fmt.Errorf("PRIMARY_CHECKPOINT_ID must be a positive integer")
		}
		primaryCheckpointID = uint(parsed)
	}

	return Config{
		Port:                port,
		DatabaseURL:         databaseURL,
		PrimaryCheckpointID: primaryCheckpointID,
		SeedDev:             os.Getenv("SEED_DEV") == "1",
	}, nil
}
