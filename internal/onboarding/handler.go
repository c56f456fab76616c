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

package onboarding

import (
	"encoding/json"
	"net/http"

	"github.com/venuely/onboarding/internal/onboarding/constants"
	serverconst "github.com/venuely/onboarding/internal/system/constants"
	"github.com/venuely/onboarding/internal/system/error/apierror"
	"github.com/venuely/onboarding/internal/system/error/serviceerror"
	"github.com/venuely/onboarding/internal/system/log"
	sysutils "github.com/venuely/onboarding/internal/system/utils"
)

// onboardingHandler handles the onboarding path API requests.
type onboardingHandler struct {
	service OnboardingServiceInterface
}

func newOnboardingHandler(service OnboardingServiceInterface) *onboardingHandler {
	return &onboardingHandler{
		service: service,
	}
}

// HandlePathTotalsRequest handles the request for the step totals of every path.
func (h *onboardingHandler) HandlePathTotalsRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, "OnboardingHandler"))

	totals, svcErr := h.service.GetPathTotals()
	if svcErr != nil {
		handleError(w, logger, svcErr)
		return
	}

	sysutils.WriteJSONResponse(w, http.StatusOK, totals)
	logger.Debug("Path totals response sent")
}

// HandlePathStepsRequest handles the request for the steps of a path.
func (h *onboardingHandler) HandlePathStepsRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, "OnboardingHandler"))

	path := sysutils.SanitizeString(r.PathValue("path"))
	steps, svcErr := h.service.GetPathSteps(path)
	if svcErr != nil {
		handleError(w, logger, svcErr)
		return
	}

	sysutils.WriteJSONResponse(w, http.StatusOK, steps)
	logger.Debug("Path steps response sent", log.String(log.LoggerKeyPath, steps.Path))
}

// HandleProgressRequest handles the request for the progress value of a step.
func (h *onboardingHandler) HandleProgressRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, "OnboardingHandler"))

	path := sysutils.SanitizeString(r.PathValue("path"))
	stepKey := sysutils.SanitizeString(r.URL.Query().Get("step"))
	progress, svcErr := h.service.GetProgress(path, stepKey)
	if svcErr != nil {
		handleError(w, logger, svcErr)
		return
	}

	sysutils.WriteJSONResponse(w, http.StatusOK, progress)
	logger.Debug("Progress response sent", log.String(log.LoggerKeyPath, progress.Path),
		log.String("step", progress.Step))
}

// handleError writes a service error as an API error response.
func handleError(w http.ResponseWriter, logger *log.Logger, svcErr *serviceerror.ServiceError) {
	errResp := apierror.ErrorResponse{
		Code:        svcErr.Code,
		Message:     svcErr.Error,
		Description: svcErr.ErrorDescription,
	}

	statusCode := http.StatusInternalServerError
	if svcErr.Type == serviceerror.ClientErrorType {
		switch svcErr.Code {
		case constants.ErrorInvalidPath.Code, constants.ErrorStepNotInPath.Code:
			statusCode = http.StatusNotFound
		default:
			statusCode = http.StatusBadRequest
		}
	}

	w.Header().Set(serverconst.ContentTypeHeaderName, serverconst.ContentTypeJSON)
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(errResp); err != nil {
		logger.Error("Error encoding error response", log.Error(err))
		http.Error(w, "Failed to encode error response", http.StatusInternalServerError)
	}
}
