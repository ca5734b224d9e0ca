package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

const (
	StorageMemory = "memory"
	StorageRedis  = "redis"
)

type Config struct {
	LogLevel   string     `yaml:"log-level" env-default:"info"`
	HTTPPort   string     `yaml:"http-port" env-default:"9090"`
	SocketPort string     `yaml:"socket-port" env-default:"8080"`
	Storage    string     `yaml:"storage" env-default:"memory"`
	Redis      Redis      `yaml:"redis"`
	Bot        Bot        `yaml:"bot"`
	Commentary Commentary `yaml:"commentary"`
}

type Redis struct {
	Host string `yaml:"host" env-default:"localhost"`
	Port string `yaml:"port" env-default:"6379"`
}

type Bot struct {
	ThinkDelayMinMS int `yaml:"think-delay-min-ms" env-default:"400"`
	ThinkDelayMaxMS int `yaml:"think-delay-max-ms" env-default:"1200"`
}

type Commentary struct {
	URL       string `yaml:"url" env-default:""`
	TimeoutMS int    `yaml:"timeout-ms" env-default:"3000"`
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config := &Config{}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}

	return config
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}

func (that *Bot) ThinkDelayMin() time.Duration {
	return time.Duration(that.ThinkDelayMinMS) * time.Millisecond
}

func (that *Bot) ThinkDelayMax() time.Duration {
	return time.Duration(that.ThinkDelayMaxMS) * time.Millisecond
}

func (that *Commentary) Timeout() time.Duration {
	return time.Duration(that.TimeoutMS) * time.Millisecond
}
