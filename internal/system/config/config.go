/*
 * Copyright (c) 2026, eVote NG (https://evote.ng).
 *
 * eVote NG licenses this file to you under the Apache License,
 * Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing,
 * software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
 * KIND, either express or implied.  See the License for the
 * specific language governing permissions and limitations
 * under the License.
 */

// Package config provides configuration loading for the voter card service.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Server   ServerConfig    `mapstructure:"server"`
	Database DatabasesConfig `mapstructure:"database"`
	Storage  StorageConfig   `mapstructure:"storage"`
	Card     CardConfig      `mapstructure:"card"`
	Logging  LoggingConfig   `mapstructure:"logging"`
	CORS     CORSConfig      `mapstructure:"cors"`
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Hostname     string        `mapstructure:"hostname"`
	Port         int           `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	IdleTimeout  time.Duration `mapstructure:"idle_timeout"`
}

// DatabasesConfig holds all database configurations
type DatabasesConfig struct {
	Registry DatabaseConfig `mapstructure:"registry"`
}

// DatabaseConfig holds individual database configuration
type DatabaseConfig struct {
	Type            string        `mapstructure:"type"`
	Hostname        string        `mapstructure:"hostname"`
	Port            int           `mapstructure:"port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	Database        string        `mapstructure:"database"`
	MaxOpenConns    int           `mapstructure:"max_open_conns"`
	MaxIdleConns    int           `mapstructure:"max_idle_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
}

// StorageConfig selects and configures the artifact store backend.
type StorageConfig struct {
	Type  string             `mapstructure:"type"`
	Minio MinioConfig        `mapstructure:"minio"`
	Local LocalStorageConfig `mapstructure:"local"`
}

// MinioConfig holds S3-compatible object storage configuration.
type MinioConfig struct {
	Endpoint      string `mapstructure:"endpoint"`
	AccessKey     string `mapstructure:"access_key"`
	SecretKey     string `mapstructure:"secret_key"`
	Bucket        string `mapstructure:"bucket"`
	UseSSL        bool   `mapstructure:"use_ssl"`
	PublicBaseURL string `mapstructure:"public_base_url"`
}

// LocalStorageConfig holds filesystem artifact store configuration (development).
type LocalStorageConfig struct {
	Directory     string `mapstructure:"directory"`
	PublicBaseURL string `mapstructure:"public_base_url"`
}

// CardConfig holds voter card issuance configuration.
type CardConfig struct {
	// VerificationOrigin is the public origin embedded in verification URLs.
	VerificationOrigin string `mapstructure:"verification_origin"`
	// AlwaysRegenerate forces every download to run the full pipeline instead
	// of trusting a previously stored URL.
	AlwaysRegenerate  bool          `mapstructure:"always_regenerate"`
	QRSize            int           `mapstructure:"qr_size"`
	PhotoFetchTimeout time.Duration `mapstructure:"photo_fetch_timeout"`
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// CORSConfig holds CORS configuration
type CORSConfig struct {
	Enabled          bool     `mapstructure:"enabled"`
	AllowedOrigins   []string `mapstructure:"allowed_origins"`
	AllowedMethods   []string `mapstructure:"allowed_methods"`
	AllowedHeaders   []string `mapstructure:"allowed_headers"`
	AllowCredentials bool     `mapstructure:"allow_credentials"`
}

var globalConfig *Config

// Load reads configuration from file and environment variables
func Load(configPath string) (*Config, error) {
	v := viper.New()

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		// Default lookup order:
		// 1. ./repository/conf/deployment.yaml (production - relative to binary)
		// 2. ./cmd/server/repository/conf/deployment.yaml (development)
		v.SetConfigName("deployment")
		v.SetConfigType("yaml")
		v.AddConfigPath("./repository/conf")
		v.AddConfigPath("./cmd/server/repository/conf")
		v.AddConfigPath("../repository/conf")
		v.AddConfigPath(".")
	}

	v.AutomaticEnv()
	v.SetEnvPrefix("VOTER_CARD")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	globalConfig = &config
	return &config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.hostname", "0.0.0.0")
	v.SetDefault("server.port", 8090)
	v.SetDefault("card.always_regenerate", true)
	v.SetDefault("card.qr_size", 256)
	v.SetDefault("card.photo_fetch_timeout", 5*time.Second)
	v.SetDefault("storage.type", "minio")
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "json")
}

// validateConfig validates the configuration
func validateConfig(config *Config) error {
	if config.Server.Port <= 0 || config.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", config.Server.Port)
	}

	if config.Database.Registry.Hostname == "" {
		return fmt.Errorf("database hostname is required")
	}
	if config.Database.Registry.Database == "" {
		return fmt.Errorf("database name is required")
	}

	if config.Card.VerificationOrigin == "" {
		return fmt.Errorf("card verification origin is required")
	}
	if config.Card.QRSize < 64 {
		return fmt.Errorf("card qr_size must be at least 64, got %d", config.Card.QRSize)
	}

	switch config.Storage.Type {
	case "minio":
		if config.Storage.Minio.Endpoint == "" {
			return fmt.Errorf("minio endpoint is required")
		}
		if config.Storage.Minio.Bucket == "" {
			return fmt.Errorf("minio bucket is required")
		}
		if config.Storage.Minio.PublicBaseURL == "" {
			return fmt.Errorf("minio public base URL is required")
		}
	case "local":
		if config.Storage.Local.Directory == "" {
			return fmt.Errorf("local storage directory is required")
		}
		if config.Storage.Local.PublicBaseURL == "" {
			return fmt.Errorf("local storage public base URL is required")
		}
	default:
		return fmt.Errorf("unknown storage type: %s", config.Storage.Type)
	}

	return nil
}

// Get returns the global configuration
func Get() *Config {
	return globalConfig
}

// SetGlobal sets the global configuration (for testing purposes)
func SetGlobal(cfg *Config) {
	globalConfig = cfg
}

// GetDSN returns the database connection string
func (d *DatabaseConfig) GetDSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?parseTime=true&multiStatements=true",
		d.User,
		d.Password,
		d.Hostname,
		d.Port,
		d.Database,
	)
}

// GetServerAddress returns the server address in host:port format
func (s *ServerConfig) GetServerAddress() string {
	return fmt.Sprintf("%s:%d", s.Hostname, s.Port)
}
