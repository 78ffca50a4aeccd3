package config

import (
	"errors"
	"log/slog"

	"github.com/spf13/viper"
)

type Config struct {
	Server     Server
	Bun        BunConfig
	JWT        JWT
	Gateway    Gateway
	LoggerMode LoggerMode
}

type Server struct {
	Port        string
	Environment string
}

type BunConfig struct {
	DSN string
}

type LoggerMode struct {
	Development bool
	Prod        bool
	Level       string
}

type JWT struct {
	Secret    string
	ExpiredIn int
}

type Gateway struct {
	// Seconds an unauthenticated socket may linger before force-disconnect.
	AuthGraceSeconds int
	// Number of recent messages returned on channel join.
	HistoryLimit int
	// Per-connection outbound queue size.
	SendBuffer int
	// Allowed websocket origins, e.g. "localhost:3000".
	OriginPatterns []string
}

func LoadConfig(filename string) (*viper.Viper, error) {
	v := viper.New()

	v.SetConfigName(filename)
	v.SetConfigType("yaml")
	v.AddConfigPath("config")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return nil, errors.New("config file not found")
		}
		return nil, err
	}
	return v, nil
}

func ParseConfig(v *viper.Viper) (*Config, error) {
	var c Config
	err := v.Unmarshal(&c)
	if err != nil {
		slog.Error("Unable to unmarshal config", "err", err)
		return nil, err
	}

	if c.Gateway.AuthGraceSeconds == 0 {
		c.Gateway.AuthGraceSeconds = 10
	}
	if c.Gateway.HistoryLimit == 0 {
		c.Gateway.HistoryLimit = 50
	}
	if c.Gateway.SendBuffer == 0 {
		c.Gateway.SendBuffer = 64
	}
	return &c, nil
}
