/*
 * Copyright (c) 2025, WSO2 LLC. (https://www.wso2.com).
 *
 * WSO2 LLC. licenses this file to you under the Apache License,
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

// Package config provides structures and functions for loading and managing server configurations.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/venuely/onboarding/internal/system/log"

	yaml "gopkg.in/yaml.v3"
)

const (
	// CatalogSourceFile loads the step catalog from a YAML definition file.
	CatalogSourceFile = "file"
	// CatalogSourceDatabase loads the step catalog from the onboarding database.
	CatalogSourceDatabase = "database"

	defaultCatalogFile = "repository/resources/onboarding/steps.yaml"
	defaultCatalogID   = "default"
)

// ServerConfig holds the server configuration details.
type ServerConfig struct {
	Hostname string `yaml:"hostname"`
	Port     int    `yaml:"port"`
	HTTPOnly bool   `yaml:"http_only"`
}

// SecurityConfig holds the TLS certificate and key used when the server runs over HTTPS.
type SecurityConfig struct {
	CertFile string `yaml:"cert_file"`
	KeyFile  string `yaml:"key_file"`
}

// DataSource holds the individual database connection details.
type DataSource struct {
	Type            string `yaml:"type"`
	Hostname        string `yaml:"hostname"`
	Port            int    `yaml:"port"`
	Name            string `yaml:"name"`
	Username        string `yaml:"username"`
	Password        string `yaml:"password"`
	SSLMode         string `yaml:"sslmode"`
	Path            string `yaml:"path"`
	Options         string `yaml:"options"`
	MaxOpenConns    int    `yaml:"max_open_conns"`
	MaxIdleConns    int    `yaml:"max_idle_conns"`
	ConnMaxLifetime int    `yaml:"conn_max_lifetime"`
}

// DatabaseConfig holds the database configuration details.
type DatabaseConfig struct {
	Onboarding DataSource `yaml:"onboarding"`
}

// CORSConfig holds the configuration details for cross-origin requests.
type CORSConfig struct {
	AllowedOrigins []string `yaml:"allowed_origins"`
}

// OnboardingConfig holds the configuration details for the onboarding step catalog.
type OnboardingConfig struct {
	CatalogSource string `yaml:"catalog_source"`
	CatalogFile   string `yaml:"catalog_file"`
	CatalogID     string `yaml:"catalog_id"`
	SeedDatabase  bool   `yaml:"seed_database"`
}

// Config holds the complete configuration details of the server.
type Config struct {
	Server     ServerConfig     `yaml:"server"`
	Security   SecurityConfig   `yaml:"security"`
	Database   DatabaseConfig   `yaml:"database"`
	CORS       CORSConfig       `yaml:"cors"`
	Onboarding OnboardingConfig `yaml:"onboarding"`
}

// LoadConfig loads the configurations from the specified YAML file.
func LoadConfig(path string) (*Config, error) {
	var cfg Config
	path = filepath.Clean(path)

	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		if ferr := file.Close(); ferr != nil {
			log.GetLogger().Error("Failed to close config file", log.Error(ferr))
		}
	}()

	decoder := yaml.NewDecoder(file)
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil {
		return nil, err
	}

	applyDefaults(&cfg)
	if err := validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// applyDefaults fills in the onboarding settings that were left empty.
func applyDefaults(cfg *Config) {
	if cfg.Onboarding.CatalogSource == "" {
		cfg.Onboarding.CatalogSource = CatalogSourceFile
	}
	if cfg.Onboarding.CatalogFile == "" {
		cfg.Onboarding.CatalogFile = defaultCatalogFile
	}
	if cfg.Onboarding.CatalogID == "" {
		cfg.Onboarding.CatalogID = defaultCatalogID
	}
}

func validate(cfg *Config) error {
	switch cfg.Onboarding.CatalogSource {
	case CatalogSourceFile, CatalogSourceDatabase:
	default:
		return fmt.Errorf("unsupported onboarding catalog source: %s", cfg.Onboarding.CatalogSource)
	}
	if cfg.Onboarding.CatalogSource == CatalogSourceDatabase && cfg.Database.Onboarding.Type == "" {
		return fmt.Errorf("onboarding catalog source %q requires database.onboarding to be configured",
			CatalogSourceDatabase)
	}
	return nil
}
