// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/ugcprompt

package main

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/woozymasta/ugcprompt/snapshot"
)

// envPrefix namespaces every configuration variable.
const envPrefix = "UGCPROMPT_"

// config is the environment configuration of the CLI.
type config struct {
	Store         string        `env:"STORE" envDefault:"file"`
	StoreDir      string        `env:"STORE_DIR" envDefault:".ugcprompt"`
	RedisAddr     string        `env:"REDIS_ADDR"`
	RedisPassword string        `env:"REDIS_PASSWORD"`
	RedisDB       int           `env:"REDIS_DB" envDefault:"0"`
	RedisTTL      time.Duration `env:"REDIS_TTL" envDefault:"0s"`
	SnapshotKey   string        `env:"SNAPSHOT_KEY" envDefault:"ugc-sora-builder-state"`
	StrictRestore bool          `env:"STRICT_RESTORE" envDefault:"false"`
	LogLevel      string        `env:"LOG_LEVEL" envDefault:"warn"`
	LogFormat     string        `env:"LOG_FORMAT" envDefault:"text"`
}

// loadConfig parses configuration from the process environment merged with
// an optional dotenv file. Process variables win over file values.
func loadConfig(environ []string, envFile string) (config, error) {
	vars := make(map[string]string, len(environ))
	for _, entry := range environ {
		key, value, ok := strings.Cut(entry, "=")
		if ok {
			vars[key] = value
		}
	}

	if envFile = strings.TrimSpace(envFile); envFile != "" {
		fileVars, err := godotenv.Read(envFile)
		if err != nil {
			return config{}, fmt.Errorf("read env file %q: %w", envFile, err)
		}

		for key, value := range fileVars {
			if _, exists := vars[key]; !exists {
				vars[key] = value
			}
		}
	}

	var cfg config
	if err := env.ParseWithOptions(&cfg, env.Options{
		Prefix:      envPrefix,
		Environment: vars,
	}); err != nil {
		return config{}, fmt.Errorf("parse configuration: %w", err)
	}

	return cfg, nil
}

// storeConfig maps configuration onto snapshot store settings.
func (cfg config) storeConfig() snapshot.Config {
	return snapshot.Config{
		Backend: cfg.Store,
		Dir:     cfg.StoreDir,
		Redis: snapshot.RedisOptions{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
			TTL:      cfg.RedisTTL,
		},
	}
}

// newLogger builds the CLI logger writing to output.
func newLogger(cfg config, output io.Writer) (*logrus.Logger, error) {
	level, err := logrus.ParseLevel(strings.TrimSpace(cfg.LogLevel))
	if err != nil {
		return nil, fmt.Errorf("parse log level: %w", err)
	}

	log := logrus.New()
	log.SetOutput(output)
	log.SetLevel(level)

	switch strings.ToLower(strings.TrimSpace(cfg.LogFormat)) {
	case "", "text":
		log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	case "json":
		log.SetFormatter(&logrus.JSONFormatter{})
	default:
		return nil, fmt.Errorf("unknown log format %q", cfg.LogFormat)
	}

	return log, nil
}
