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

// Package handler provides HTTP handlers for the health check API.
package handler

import (
	"net/http"

	"github.com/venuely/onboarding/internal/system/healthcheck/model"
	"github.com/venuely/onboarding/internal/system/healthcheck/service"
	"github.com/venuely/onboarding/internal/system/log"
	sysutils "github.com/venuely/onboarding/internal/system/utils"
)

// HealthCheckHandler defines the handler for health check API requests.
type HealthCheckHandler struct {
	service service.HealthCheckServiceInterface
}

// NewHealthCheckHandler creates a new instance of HealthCheckHandler.
func NewHealthCheckHandler(healthCheckService service.HealthCheckServiceInterface) *HealthCheckHandler {
	return &HealthCheckHandler{
		service: healthCheckService,
	}
}

// RegisterRoutes registers the health check routes with the multiplexer.
func (hch *HealthCheckHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /health/liveness", hch.HandleLivenessRequest)
	mux.HandleFunc("GET /health/readiness", hch.HandleReadinessRequest)
}

// HandleLivenessRequest handles the health check liveness request.
func (hch *HealthCheckHandler) HandleLivenessRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, "HealthCheckHandler"))
	w.WriteHeader(http.StatusOK)
	logger.Debug("Health Check Liveness response sent")
}

// HandleReadinessRequest handles the health check readiness request.
func (hch *HealthCheckHandler) HandleReadinessRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, "HealthCheckHandler"))

	serverStatus := hch.service.CheckReadiness()
	statusCode := http.StatusOK
	if serverStatus.Status != model.StatusUp {
		logger.Error("Readiness check failed", log.String("serverStatus", string(serverStatus.Status)))
		statusCode = http.StatusServiceUnavailable
	}

	sysutils.WriteJSONResponse(w, statusCode, serverStatus)
	logger.Debug("Health Check Readiness response sent")
}
