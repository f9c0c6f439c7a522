package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

const (
	StoreMemory = "memory"
	StoreRedis  = "redis"
)

type Config struct {
	LogLevel       string `yaml:"log-level" env:"LOG_LEVEL" env-default:"warn"`
	HumanMark      string `yaml:"human-mark" env:"HUMAN_MARK" env-default:"X"`
	FirstMover     string `yaml:"first-mover" env:"FIRST_MOVER" env-default:"X"`
	Color          bool   `yaml:"color" env:"COLOR" env-default:"true"`
	ParallelSearch bool   `yaml:"parallel-search" env:"PARALLEL_SEARCH" env-default:"false"`
	SessionStore   string `yaml:"session-store" env:"SESSION_STORE" env-default:"memory"`
	Redis          Redis  `yaml:"redis"`
}

type Redis struct {
	Host       string        `yaml:"host" env:"REDIS_HOST" env-default:"localhost"`
	Port       string        `yaml:"port" env:"REDIS_PORT" env-default:"6379"`
	SessionTTL time.Duration `yaml:"session-ttl" env:"REDIS_SESSION_TTL" env-default:"24h"`
}

// MustLoad - load all configurations in the config file, or from the
// environment alone when the file does not exist.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}

	return config
}

func Load(path string) (*Config, error) {
	config := &Config{}

	_, err := os.Stat(path)
	switch {
	case err == nil:
		err = cleanenv.ReadConfig(path, config)
	case errors.Is(err, os.ErrNotExist):
		err = cleanenv.ReadEnv(config)
	}

	if err != nil {
		return nil, err
	}

	return config, nil
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}
