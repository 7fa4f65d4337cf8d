// Package config defines the data structures related to configuration and
// includes functions for loading and validating the config.
package config

import (
	"fmt"

	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/fincalc/calcsuite/pkg/constants"
)

// Configuration holds all configuration for the calculator service.
type Configuration struct {
	Server   Server
	Storage  Storage
	Database Database
	Admin    Admin
	Logging  Logging
}

// Server holds the HTTP listener parameters.
type Server struct {
	Address string
}

// Storage holds the embedded profile-store parameters.
type Storage struct {
	DataDir  string
	InMemory bool
}

// Database holds the optional analytics database parameters. An empty URL
// disables usage tracking.
type Database struct {
	URL string
}

// Admin guards the stats and ad-config admin endpoints.
type Admin struct {
	Password string
}

// Logging controls log level, format, and destination.
type Logging struct {
	Level      string
	Format     string
	OutputFile string
}

// LoadConfiguration takes a file path as input and loads the YAML-formatted
// configuration there. Environment variables override file values.
func LoadConfiguration(configPath string) (*Configuration, error) {
	viper.SetConfigFile(configPath)
	viper.AutomaticEnv()

	viper.SetConfigType("yml")

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("Error reading config file, %s", err)
	}

	var configuration Configuration
	err := viper.Unmarshal(&configuration)
	if err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %s", err)
	}

	configuration.applyDefaults()
	return &configuration, nil
}

func (conf *Configuration) applyDefaults() {
	if conf.Server.Address == "" {
		conf.Server.Address = constants.DefaultServerAddress
	}
	if conf.Storage.DataDir == "" {
		conf.Storage.DataDir = constants.DefaultDataDir
	}
	if conf.Logging.Level == "" {
		conf.Logging.Level = "info"
	}
	if conf.Logging.Format == "" {
		conf.Logging.Format = "json"
	}
}

// ValidateConfiguration checks for questionable settings and logs warnings
// for them. It never fails the startup.
func (conf *Configuration) ValidateConfiguration(logger *zap.Logger) {
	if conf.Database.URL == "" {
		logger.Warn("no database URL configured, usage tracking and ad config will be disabled")
	}
	if conf.Admin.Password == "" {
		logger.Warn("no admin password configured, admin endpoints will reject all requests")
	}
	if conf.Storage.InMemory {
		logger.Warn("in-memory storage enabled, profile data will not survive restarts")
	}
}
