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

// Package service provides health check related business logic.
package service

import (
	"github.com/venuely/onboarding/internal/system/database/provider"
	"github.com/venuely/onboarding/internal/system/healthcheck/model"
	"github.com/venuely/onboarding/internal/system/log"
)

// HealthCheckServiceInterface defines the interface for the health check service.
type HealthCheckServiceInterface interface {
	CheckReadiness() model.ServerStatus
}

// healthCheckService is the default implementation of HealthCheckServiceInterface.
type healthCheckService struct {
	dbProvider provider.DBProviderInterface
}

// NewHealthCheckService creates a health check service. A nil provider means the server
// does not depend on a database and is ready once it serves requests.
func NewHealthCheckService(dbProvider provider.DBProviderInterface) HealthCheckServiceInterface {
	return &healthCheckService{dbProvider: dbProvider}
}

// CheckReadiness checks the readiness of the server and its dependencies.
func (hcs *healthCheckService) CheckReadiness() model.ServerStatus {
	if hcs.dbProvider == nil {
		return model.ServerStatus{Status: model.StatusUp, ServiceStatus: []model.ServiceStatus{}}
	}

	onboardingDBStatus := model.ServiceStatus{
		ServiceName: "OnboardingDB",
		Status:      hcs.checkDatabaseStatus(),
	}

	return model.ServerStatus{
		Status:        onboardingDBStatus.Status,
		ServiceStatus: []model.ServiceStatus{onboardingDBStatus},
	}
}

// checkDatabaseStatus checks the onboarding database with a lightweight query.
func (hcs *healthCheckService) checkDatabaseStatus() model.Status {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, "HealthCheckService"))

	dbClient, err := hcs.dbProvider.GetOnboardingDBClient()
	if err != nil {
		logger.Error("Failed to get database client", log.Error(err))
		return model.StatusDown
	}

	if _, err := dbClient.Query(queryOnboardingDBTable); err != nil {
		logger.Error("Failed to execute query", log.Error(err))
		return model.StatusDown
	}
	return model.StatusUp
}
