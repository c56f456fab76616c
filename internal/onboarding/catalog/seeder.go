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

	"github.com/venuely/onboarding/internal/onboarding/model"
	"github.com/venuely/onboarding/internal/system/database/client"
	"github.com/venuely/onboarding/internal/system/log"
)

// Seeder writes a catalog definition into an empty database.
type Seeder struct {
	dbClient client.DBClientInterface
	store    StoreInterface
}

// NewSeeder creates a new Seeder for the given database client.
func NewSeeder(dbClient client.DBClientInterface) *Seeder {
	return &Seeder{
		dbClient: dbClient,
		store:    NewStore(dbClient),
	}
}

// Seed inserts the catalog steps when the database holds no steps for the catalog.
// It returns true when rows were written.
func (s *Seeder) Seed(catalog model.Catalog) (bool, error) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, "CatalogSeeder"),
		log.String(log.LoggerKeyCatalogID, catalog.ID()))

	if err := catalog.Validate(); err != nil {
		return false, err
	}

	existing, err := s.store.GetStepCount(catalog.ID())
	if err != nil {
		return false, fmt.Errorf("failed to check existing catalog steps: %w", err)
	}
	if existing > 0 {
		logger.Info("Catalog already present in the database, skipping seeding", log.Int("stepCount", existing))
		return false, nil
	}

	logger.Info("Seeding catalog into the database", log.Int("stepCount", catalog.Len()))
	tx, err := s.dbClient.BeginTx()
	if err != nil {
		return false, fmt.Errorf("failed to begin seeding transaction: %w", err)
	}
	for position, step := range catalog.Steps() {
		if _, err := tx.Exec(querySeedCatalogStep, stepArgs(catalog.ID(), position, step)...); err != nil {
			logger.Error("Failed to insert catalog step", log.String("stepKey", step.Key), log.Error(err))
			return false, rollback(tx, logger, fmt.Errorf("failed to seed step %s: %w", step.Key, err))
		}
		logger.Debug("Seeded catalog step", log.Int("position", position), log.String("stepKey", step.Key))
	}
	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("failed to commit seeded catalog: %w", err)
	}
	return true, nil
}
