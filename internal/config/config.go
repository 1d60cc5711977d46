package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel    string      `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	Seed        uint64      `yaml:"seed" env:"SEED" env-default:"0"`
	OpeningBook OpeningBook `yaml:"opening-book" env-prefix:"OPENING_BOOK_"`
	Redis       Redis       `yaml:"redis" env-prefix:"REDIS_"`
}

// OpeningBook - Redis cache of moves chosen by the hard player.
type OpeningBook struct {
	Enabled bool          `yaml:"enabled" env:"ENABLED" env-default:"false"`
	TTL     time.Duration `yaml:"ttl" env:"TTL" env-default:"24h"`
}

type Redis struct {
	Host string `yaml:"host" env:"HOST" env-default:"localhost"`
	Port string `yaml:"port" env:"PORT" env-default:"6379"`
}

// MustLoad - loads the yaml file when it exists, otherwise the environment only.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(err)
	}

	return config
}

func Load(path string) (*Config, error) {
	config := &Config{}

	_, err := os.Stat(path)
	switch {
	case err == nil:
		if err = cleanenv.ReadConfig(path, config); err != nil {
			return nil, fmt.Errorf("unable to load config file: %w", err)
		}
	case errors.Is(err, fs.ErrNotExist):
		if err = cleanenv.ReadEnv(config); err != nil {
			return nil, fmt.Errorf("unable to load config from environment: %w", err)
		}
	default:
		return nil, fmt.Errorf("unable to stat config file: %w", err)
	}

	return config, nil
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}
