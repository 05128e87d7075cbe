package config

import (
	"fmt"
	"net"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel       string        `yaml:"log-level" env:"LOG_LEVEL" env-default:"info" validate:"oneof=debug info warn error"`
	APIURL         string        `yaml:"api-url" env:"API_URL" env-default:"http://localhost:5000" validate:"required,url"`
	SocketURL      string        `yaml:"socket-url" env:"SOCKET_URL" env-default:"ws://localhost:5000/ws" validate:"required,url"`
	RequestTimeout time.Duration `yaml:"request-timeout" env:"REQUEST_TIMEOUT" env-default:"10s" validate:"gt=0"`
	ClientID       string        `yaml:"client-id" env:"CLIENT_ID"`
	Reconnect      Reconnect     `yaml:"reconnect"`
	Redis          Redis         `yaml:"redis"`
}

type Reconnect struct {
	Attempts uint          `yaml:"attempts" env:"RECONNECT_ATTEMPTS" env-default:"10" validate:"gte=1"`
	Delay    time.Duration `yaml:"delay" env:"RECONNECT_DELAY" env-default:"500ms" validate:"gt=0"`
	MaxDelay time.Duration `yaml:"max-delay" env:"RECONNECT_MAX_DELAY" env-default:"10s" validate:"gtefield=Delay"`
}

type Redis struct {
	Enabled bool          `yaml:"enabled" env:"REDIS_ENABLED" env-default:"false"`
	Host    string        `yaml:"host" env:"REDIS_HOST" env-default:"localhost"`
	Port    string        `yaml:"port" env:"REDIS_PORT" env-default:"6379"`
	TTL     time.Duration `yaml:"ttl" env:"REDIS_TTL" env-default:"24h"`
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(err)
	}

	return config
}

// Load - reads the config file, applies env overrides and validates the result.
func Load(path string) (*Config, error) {
	config := &Config{}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("unable to load config file: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

func (that *Config) Validate() error {
	if err := validator.New(validator.WithRequiredStructEnabled()).Struct(that); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	return nil
}

// GetAPIBase - returns the REST base path the remote session client talks to.
func (that *Config) GetAPIBase() string {
	return strings.TrimRight(that.APIURL, "/") + "/api"
}

func (that *Redis) GetRedisAddr() string {
	return net.JoinHostPort(that.Host, that.Port)
}
