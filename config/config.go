package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	toml "github.com/pelletier/go-toml/v2"
)

const (
	DefaultConfigFileName = "config.toml"
	DefaultDBName         = "frilance.db"
)

type Config struct {
	Addr        string   `toml:"addr"`
	DBPath      string   `toml:"db_path"`
	CORSOrigins []string `toml:"cors_origins"`
}

// LoadOrCreate reads the TOML config, writing a default file on first
// launch. A .env file, if present, is loaded for the JWT secrets and any
// FRILANCE_* overrides.
func LoadOrCreate(path string) (Config, error) {
	if err := godotenv.Load(); err != nil {
		fmt.Println("Warning: no .env file found, using process environment")
	}

	cfg := defaultConfig()
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		if err := write(path, cfg); err != nil {
			return cfg, err
		}
		return applyEnv(cfg), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	if cfg.DBPath == "" {
		cfg.DBPath = DefaultDBName
	}
	return applyEnv(cfg), nil
}

func applyEnv(cfg Config) Config {
	if v := os.Getenv("FRILANCE_ADDR"); v != "" {
		cfg.Addr = v
	}
	if v := os.Getenv("FRILANCE_DB_PATH"); v != "" {
		cfg.DBPath = v
	}
	return cfg
}

func write(path string, cfg Config) error {
	data, err := toml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func defaultConfig() Config {
	return Config{
		Addr:        ":8080",
		DBPath:      DefaultDBName,
		CORSOrigins: []string{"http://localhost:3000"},
	}
}
