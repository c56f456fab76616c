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
	"errors"
	"fmt"

	"github.com/venuely/onboarding/internal/onboarding/constants"
	"github.com/venuely/onboarding/internal/onboarding/model"
	"github.com/venuely/onboarding/internal/system/database/client"
	"github.com/venuely/onboarding/internal/system/log"
)

// ErrCatalogNotFound is returned when the database holds no steps for a catalog.
var ErrCatalogNotFound = errors.New("catalog not found")

// StoreInterface defines the persistence operations of the step catalog.
type StoreInterface interface {
	GetCatalog(catalogID string) (model.Catalog, error)
	GetStepCount(catalogID string) (int, error)
	ReplaceCatalog(catalog model.Catalog) error
}

// store is the database backed implementation of StoreInterface.
type store struct {
	dbClient client.DBClientInterface
}

// NewStore creates a catalog store on top of the given database client.
func NewStore(dbClient client.DBClientInterface) StoreInterface {
	return &store{dbClient: dbClient}
}

// GetCatalog reads the steps of a catalog ordered by position.
func (s *store) GetCatalog(catalogID string) (model.Catalog, error) {
	results, err := s.dbClient.Query(queryGetCatalogSteps, catalogID)
	if err != nil {
		return model.Catalog{}, fmt.Errorf("failed to execute query: %w", err)
	}
	if len(results) == 0 {
		return model.Catalog{}, ErrCatalogNotFound
	}

	steps := make([]model.StepDescriptor, 0, len(results))
	for _, row := range results {
		step, err := parseStepFromRow(row)
		if err != nil {
			return model.Catalog{}, fmt.Errorf("catalog %s: %w", catalogID, err)
		}
		steps = append(steps, step)
	}

	catalog := model.NewCatalog(catalogID, steps)
	if err := catalog.Validate(); err != nil {
		return model.Catalog{}, err
	}
	return catalog, nil
}

// GetStepCount returns the number of stored steps of a catalog.
func (s *store) GetStepCount(catalogID string) (int, error) {
	results, err := s.dbClient.Query(queryGetCatalogStepCount, catalogID)
	if err != nil {
		return 0, fmt.Errorf("failed to execute count query: %w", err)
	}
	if len(results) == 0 {
		return 0, nil
	}
	count, ok := results[0]["total"].(int64)
	if !ok {
		return 0, fmt.Errorf("failed to parse count result")
	}
	return int(count), nil
}

// ReplaceCatalog rewrites every step of the catalog in a single transaction.
func (s *store) ReplaceCatalog(catalog model.Catalog) error {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, "CatalogStore"),
		log.String(log.LoggerKeyCatalogID, catalog.ID()))

	if err := catalog.Validate(); err != nil {
		return err
	}

	tx, err := s.dbClient.BeginTx()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	if _, err := tx.Exec(queryDeleteCatalogSteps, catalog.ID()); err != nil {
		return rollback(tx, logger, fmt.Errorf("failed to delete catalog steps: %w", err))
	}
	for position, step := range catalog.Steps() {
		if _, err := tx.Exec(queryInsertCatalogStep, stepArgs(catalog.ID(), position, step)...); err != nil {
			return rollback(tx, logger, fmt.Errorf("failed to insert step %s: %w", step.Key, err))
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	logger.Debug("Replaced catalog steps", log.Int("stepCount", catalog.Len()))
	return nil
}

// rollback rolls the transaction back and returns the original error.
func rollback(tx interface{ Rollback() error }, logger *log.Logger, cause error) error {
	if err := tx.Rollback(); err != nil {
		logger.Error("Failed to roll back transaction", log.Error(err))
		return fmt.Errorf("%w (rollback error: %w)", cause, err)
	}
	return cause
}

// stepArgs returns the column values of a step row.
func stepArgs(catalogID string, position int, step model.StepDescriptor) []interface{} {
	optional := 0
	if step.Optional {
		optional = 1
	}
	var pathValue, answer, equals string
	if path, ok := step.Condition.Path(); ok {
		pathValue = string(path)
	}
	if a, e, ok := step.Condition.Answer(); ok {
		answer, equals = a, e
	}
	return []interface{}{catalogID, position, step.Key, step.Title, optional,
		string(step.Condition.Kind()), pathValue, answer, equals}
}

// parseStepFromRow parses a step descriptor from a database row.
func parseStepFromRow(row map[string]interface{}) (model.StepDescriptor, error) {
	key, err := stringColumn(row, "step_key")
	if err != nil {
		return model.StepDescriptor{}, err
	}
	title, err := stringColumn(row, "title")
	if err != nil {
		return model.StepDescriptor{}, err
	}
	kind, err := stringColumn(row, "condition_kind")
	if err != nil {
		return model.StepDescriptor{}, err
	}

	step := model.StepDescriptor{Key: key, Title: title, Optional: truthyColumn(row, "optional")}

	switch model.ConditionKind(kind) {
	case model.ConditionAlways, "":
		step.Condition = model.Always()
	case model.ConditionPath:
		pathValue, err := stringColumn(row, "condition_path")
		if err != nil {
			return model.StepDescriptor{}, err
		}
		path, err := constants.ParsePath(pathValue)
		if err != nil {
			return model.StepDescriptor{}, fmt.Errorf("step %s: %w", key, err)
		}
		step.Condition = model.OnlyFor(path)
	case model.ConditionAnswer:
		answer, err := stringColumn(row, "condition_answer")
		if err != nil {
			return model.StepDescriptor{}, err
		}
		equals, err := stringColumn(row, "condition_equals")
		if err != nil {
			return model.StepDescriptor{}, err
		}
		step.Condition = model.WhenAnswer(answer, equals)
	default:
		return model.StepDescriptor{}, fmt.Errorf("step %s: unknown condition kind %q", key, kind)
	}
	return step, nil
}

// stringColumn reads a text column; NULL reads as the empty string.
func stringColumn(row map[string]interface{}, column string) (string, error) {
	switch value := row[column].(type) {
	case nil:
		return "", nil
	case string:
		return value, nil
	case []byte:
		return string(value), nil
	default:
		return "", fmt.Errorf("failed to parse %s as string", column)
	}
}

// truthyColumn reads a flag stored as an integer or boolean column.
func truthyColumn(row map[string]interface{}, column string) bool {
	switch value := row[column].(type) {
	case bool:
		return value
	case int64:
		return value != 0
	default:
		return false
	}
}
