package config

import (
	"fmt"
	"os"
)

type PostgresConfig struct {
	Dsn string
}

func GetPostgresConfig() (*PostgresConfig, error) {
	dsn := os.Getenv("POSTGRES_DSN")
	if dsn == "" {
		return nil, fmt.Errorf("POSTGRES_DSN must be set")
	}

	return &PostgresConfig{
		Dsn: dsn,
	}, nil
}
