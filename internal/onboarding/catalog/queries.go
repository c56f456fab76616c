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

import dbmodel "github.com/venuely/onboarding/internal/system/database/model"

var (
	// queryGetCatalogSteps retrieves the steps of a catalog in display order.
	queryGetCatalogSteps = dbmodel.DBQuery{
		ID: "OBQ-CATALOG-001",
		Query: `SELECT POSITION, STEP_KEY, TITLE, OPTIONAL, CONDITION_KIND, CONDITION_PATH, ` +
			`CONDITION_ANSWER, CONDITION_EQUALS FROM ONBOARDING_STEP WHERE CATALOG_ID = $1 ORDER BY POSITION`,
	}

	// queryGetCatalogStepCount retrieves the number of steps stored for a catalog.
	queryGetCatalogStepCount = dbmodel.DBQuery{
		ID:    "OBQ-CATALOG-002",
		Query: `SELECT COUNT(*) AS total FROM ONBOARDING_STEP WHERE CATALOG_ID = $1`,
	}

	// queryDeleteCatalogSteps removes every step of a catalog.
	queryDeleteCatalogSteps = dbmodel.DBQuery{
		ID:    "OBQ-CATALOG-003",
		Query: `DELETE FROM ONBOARDING_STEP WHERE CATALOG_ID = $1`,
	}

	// queryInsertCatalogStep inserts a single step of a catalog.
	queryInsertCatalogStep = dbmodel.DBQuery{
		ID: "OBQ-CATALOG-004",
		Query: `INSERT INTO ONBOARDING_STEP (CATALOG_ID, POSITION, STEP_KEY, TITLE, OPTIONAL, CONDITION_KIND, ` +
			`CONDITION_PATH, CONDITION_ANSWER, CONDITION_EQUALS) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
	}

	// querySeedCatalogStep inserts a step unless the catalog already holds one at that position.
	querySeedCatalogStep = dbmodel.DBQuery{
		ID: "OBQ-CATALOG-005",
		SQLiteQuery: `INSERT OR IGNORE INTO ONBOARDING_STEP (CATALOG_ID, POSITION, STEP_KEY, TITLE, OPTIONAL, ` +
			`CONDITION_KIND, CONDITION_PATH, CONDITION_ANSWER, CONDITION_EQUALS) ` +
			`VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		PostgresQuery: `INSERT INTO ONBOARDING_STEP (CATALOG_ID, POSITION, STEP_KEY, TITLE, OPTIONAL, ` +
			`CONDITION_KIND, CONDITION_PATH, CONDITION_ANSWER, CONDITION_EQUALS) ` +
			`VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9) ON CONFLICT (CATALOG_ID, POSITION) DO NOTHING`,
	}
)
