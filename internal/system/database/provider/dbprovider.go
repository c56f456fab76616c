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

// Package provider provides functionality for managing database connections and clients.
package provider

import (
	"database/sql"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/venuely/onboarding/internal/system/config"
	"github.com/venuely/onboarding/internal/system/database/client"
	"github.com/venuely/onboarding/internal/system/database/model"
	"github.com/venuely/onboarding/internal/system/log"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"
)

// dbConfig represents the resolved driver name and DSN of a data source.
type dbConfig struct {
	dsn        string
	driverName string
}

// DBProviderInterface defines the interface for getting database clients.
type DBProviderInterface interface {
	GetOnboardingDBClient() (client.DBClientInterface, error)
	Close() error
}

// DBProvider is the implementation of DBProviderInterface.
type DBProvider struct {
	onboardingClient client.DBClientInterface
	mu               sync.Mutex
}

var (
	instance *DBProvider
	once     sync.Once
)

// GetDBProvider returns the instance of DBProvider.
func GetDBProvider() DBProviderInterface {
	once.Do(func() {
		instance = &DBProvider{}
	})
	return instance
}

// GetOnboardingDBClient returns the client of the onboarding database, connecting on first use.
// The returned client manages its own connection pool and is closed through Close.
func (d *DBProvider) GetOnboardingDBClient() (client.DBClientInterface, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.onboardingClient != nil {
		return d.onboardingClient, nil
	}

	runtime := config.GetServerRuntime()
	dbClient, err := openClient(runtime.Config.Database.Onboarding, runtime.ServerHome)
	if err != nil {
		return nil, err
	}
	d.onboardingClient = dbClient
	return dbClient, nil
}

// Close closes the onboarding database client if it was opened.
func (d *DBProvider) Close() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.onboardingClient == nil {
		return nil
	}
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, "DBProvider"))
	logger.Debug("Closing onboarding database client")

	err := d.onboardingClient.Close()
	d.onboardingClient = nil
	return err
}

// openClient opens and verifies a connection for the given data source.
func openClient(dataSource config.DataSource, serverHome string) (client.DBClientInterface, error) {
	dbConfig, err := getDBConfig(dataSource, serverHome)
	if err != nil {
		return nil, err
	}
	dbName := dataSource.Name

	db, err := sql.Open(dbConfig.driverName, dbConfig.dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database %s: %w", dbName, err)
	}

	if dataSource.MaxOpenConns > 0 {
		db.SetMaxOpenConns(dataSource.MaxOpenConns)
	}
	if dataSource.MaxIdleConns > 0 {
		db.SetMaxIdleConns(dataSource.MaxIdleConns)
	}
	if dataSource.ConnMaxLifetime > 0 {
		db.SetConnMaxLifetime(time.Duration(dataSource.ConnMaxLifetime) * time.Second)
	}

	if err := db.Ping(); err != nil {
		if closeErr := db.Close(); closeErr != nil {
			return nil, fmt.Errorf("failed to ping database %s: %w (close error: %w)", dbName, err, closeErr)
		}
		return nil, fmt.Errorf("failed to ping database %s: %w", dbName, err)
	}

	if dbConfig.driverName == model.DBTypeSQLite {
		if _, err := db.Exec("PRAGMA foreign_keys = ON;"); err != nil {
			if closeErr := db.Close(); closeErr != nil {
				return nil, fmt.Errorf("failed to enable foreign key constraints for %s: %w (close error: %w)",
					dbName, err, closeErr)
			}
			return nil, fmt.Errorf("failed to enable foreign key constraints for %s: %w", dbName, err)
		}
	}

	return client.NewDBClient(model.NewDB(db), dbConfig.driverName), nil
}

// getDBConfig returns the driver name and DSN for the provided data source.
func getDBConfig(dataSource config.DataSource, serverHome string) (dbConfig, error) {
	switch dataSource.Type {
	case model.DBTypePostgres:
		return dbConfig{
			driverName: model.DBTypePostgres,
			dsn: fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
				dataSource.Hostname, dataSource.Port, dataSource.Username, dataSource.Password,
				dataSource.Name, dataSource.SSLMode),
		}, nil
	case model.DBTypeSQLite:
		options := dataSource.Options
		if options != "" && options[0] != '?' {
			options = "?" + options
		}
		dbPath := dataSource.Path
		if !filepath.IsAbs(dbPath) {
			dbPath = filepath.Join(serverHome, dbPath)
		}
		return dbConfig{
			driverName: model.DBTypeSQLite,
			dsn:        filepath.Clean(dbPath) + options,
		}, nil
	default:
		return dbConfig{}, fmt.Errorf("unsupported database type: %q", dataSource.Type)
	}
}
