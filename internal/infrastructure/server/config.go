package server

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config contém as configurações do servidor HTTP
type Config struct {
	Host            string
	Port            int
	Mode            string
	Seed            *uint64 // nil usa uma semente baseada no relógio
	SwaggerEnabled  bool
	ShutdownTimeout time.Duration
}

// NewConfigFromEnv cria uma nova configuração a partir de variáveis de ambiente
func NewConfigFromEnv() *Config {
	port, err := strconv.Atoi(getEnv("SERVER_PORT", "8000"))
	if err != nil || port <= 0 {
		port = 8000
	}

	shutdown, err := strconv.Atoi(getEnv("SHUTDOWN_TIMEOUT", "10"))
	if err != nil || shutdown <= 0 {
		shutdown = 10
	}

	swaggerEnabled, err := strconv.ParseBool(getEnv("SWAGGER_ENABLED", "true"))
	if err != nil {
		swaggerEnabled = true
	}

	cfg := &Config{
		Host:            getEnv("SERVER_HOST", "0.0.0.0"),
		Port:            port,
		Mode:            getEnv("GIN_MODE", "release"),
		SwaggerEnabled:  swaggerEnabled,
		ShutdownTimeout: time.Duration(shutdown) * time.Second,
	}

	if raw := os.Getenv("RANDOM_SEED"); raw != "" {
		if seed, err := strconv.ParseUint(raw, 10, 64); err == nil {
			cfg.Seed = &seed
		}
	}

	return cfg
}

// Address retorna o endereço no formato host:porta
func (c *Config) Address() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// getEnv obtém o valor de uma variável de ambiente ou retorna o valor padrão
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
