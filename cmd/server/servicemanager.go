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

package main

import (
	"fmt"
	"net/http"

	"github.com/venuely/onboarding/internal/onboarding"
	"github.com/venuely/onboarding/internal/onboarding/catalog"
	"github.com/venuely/onboarding/internal/onboarding/resolver"
	"github.com/venuely/onboarding/internal/system/config"
	"github.com/venuely/onboarding/internal/system/database/provider"
	"github.com/venuely/onboarding/internal/system/healthcheck/handler"
	"github.com/venuely/onboarding/internal/system/healthcheck/service"
	"github.com/venuely/onboarding/internal/system/log"
)

// registerServices loads the step catalog, derives the path totals and registers every service.
func registerServices(mux *http.ServeMux, cfg *config.Config, serverHome string,
	dbProvider provider.DBProviderInterface) error {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, "ServiceManager"))

	stepCatalog, err := catalog.Load(cfg.Onboarding, serverHome, dbProvider)
	if err != nil {
		return fmt.Errorf("failed to load the onboarding step catalog: %w", err)
	}

	// Derived once here; request handlers only read them.
	onboardingService := onboarding.Initialize(mux, stepCatalog, resolver.NewPathTotals(stepCatalog))
	served, svcErr := onboardingService.GetPathTotals()
	if svcErr != nil {
		return fmt.Errorf("onboarding service is not ready: %s", svcErr.ErrorDescription)
	}
	logger.Info("Onboarding path totals derived",
		log.String(log.LoggerKeyCatalogID, stepCatalog.ID()),
		log.Int("businessPathSteps", served.BusinessPathSteps),
		log.Int("personalPathSteps", served.PersonalPathSteps),
		log.Int("maxPathSteps", served.MaxPathSteps))

	var readinessProvider provider.DBProviderInterface
	if cfg.Onboarding.CatalogSource == config.CatalogSourceDatabase {
		readinessProvider = dbProvider
	}
	handler.NewHealthCheckHandler(service.NewHealthCheckService(readinessProvider)).RegisterRoutes(mux)

	return nil
}
