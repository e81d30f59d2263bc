package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel       string `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	HTTPPort       string `yaml:"http-port" env:"HTTP_PORT" env-default:"9090"`
	Console        bool   `yaml:"console" env:"CONSOLE" env-default:"false"`
	ArchiveEnabled bool   `yaml:"archive-enabled" env:"ARCHIVE_ENABLED" env-default:"false"`
	Redis          Redis  `yaml:"redis"`
}

type Redis struct {
	Host string `yaml:"host" env:"REDIS_HOST" env-default:"localhost"`
	Port string `yaml:"port" env:"REDIS_PORT" env-default:"6379"`
}

// MustLoad - load all configurations in config.yml file. A missing file is
// not an error: the console mode should run with zero setup, so environment
// variables and defaults are used instead.
func MustLoad(path string) *Config {
	config := &Config{}

	err := cleanenv.ReadConfig(path, config)
	if errors.Is(err, fs.ErrNotExist) {
		if err = cleanenv.ReadEnv(config); err != nil {
			panic(fmt.Errorf("unable to read environment: %w", err))
		}
		return config
	}

	if err != nil {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}

	return config
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}
