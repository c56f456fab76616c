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

package catalog

import (
	"fmt"
	"path/filepath"

	"github.com/venuely/onboarding/internal/onboarding/model"
	"github.com/venuely/onboarding/internal/system/config"
	"github.com/venuely/onboarding/internal/system/database/provider"
	"github.com/venuely/onboarding/internal/system/log"
)

// Load reads the step catalog from the source selected in the onboarding configuration.
func Load(cfg config.OnboardingConfig, serverHome string, dbProvider provider.DBProviderInterface) (
	model.Catalog, error) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, "CatalogLoader"),
		log.String(log.LoggerKeyCatalogID, cfg.CatalogID))

	switch cfg.CatalogSource {
	case config.CatalogSourceFile:
		catalogFile := resolvePath(serverHome, cfg.CatalogFile)
		logger.Debug("Loading catalog from definition file", log.String("file", catalogFile))
		return LoadCatalogFile(catalogFile)
	case config.CatalogSourceDatabase:
		return loadFromDatabase(cfg, serverHome, dbProvider, logger)
	default:
		return model.Catalog{}, fmt.Errorf("unsupported onboarding catalog source: %s", cfg.CatalogSource)
	}
}

// loadFromDatabase reads the catalog from the onboarding database, seeding it first when configured.
func loadFromDatabase(cfg config.OnboardingConfig, serverHome string, dbProvider provider.DBProviderInterface,
	logger *log.Logger) (model.Catalog, error) {
	dbClient, err := dbProvider.GetOnboardingDBClient()
	if err != nil {
		return model.Catalog{}, fmt.Errorf("failed to get database client: %w", err)
	}

	if cfg.SeedDatabase {
		definition, err := LoadCatalogFile(resolvePath(serverHome, cfg.CatalogFile))
		if err != nil {
			return model.Catalog{}, err
		}
		if definition.ID() != cfg.CatalogID {
			return model.Catalog{}, fmt.Errorf("catalog definition id %q does not match configured catalog id %q",
				definition.ID(), cfg.CatalogID)
		}
		if _, err := NewSeeder(dbClient).Seed(definition); err != nil {
			return model.Catalog{}, err
		}
	}

	logger.Debug("Loading catalog from the database")
	return NewStore(dbClient).GetCatalog(cfg.CatalogID)
}

// resolvePath joins relative paths to the server home.
func resolvePath(serverHome, path string) string {
	if filepath.IsAbs(path) {
		return filepath.Clean(path)
	}
	return filepath.Join(serverHome, path)
}
