package config

import (
	"fmt"
	"os"

	"github.com/joeshaw/envdecode"
	"github.com/joho/godotenv"
)

// Config concentra todo lo que el proceso lee del entorno.
// Un .env en el working dir se carga si existe (dev/seed); en prod
// las vars vienen del entorno directamente.
type Config struct {
	AppName     string `env:"APP_NAME,default=ruff-service"`
	Env         string `env:"ENV,default=production"`
	Port        int    `env:"PORT,default=3000"`
	DatabaseURL string `env:"DATABASE_URL"`
	JWTSecret   string `env:"JWT_SECRET,default=dummy-secret-key"`
	LogLevel    string `env:"LOG_LEVEL,default=info"`
	LogFormat   string `env:"LOG_FORMAT,default=text"`
}

func Load() (Config, error) {
	// godotenv no pisa vars ya seteadas; ignorar si no hay archivo.
	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(); err != nil {
			return Config{}, fmt.Errorf("config: load .env: %w", err)
		}
	}

	var cfg Config
	if err := envdecode.Decode(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: decode env: %w", err)
	}
	return cfg, nil
}

func (c Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}
