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
	"net/http"

	"github.com/venuely/onboarding/internal/onboarding/model"
	"github.com/venuely/onboarding/internal/onboarding/resolver"
	"github.com/venuely/onboarding/internal/system/middleware"
)

// Initialize creates the onboarding service for the catalog and registers its routes.
// The totals must be derived from the same catalog before the server starts listening.
func Initialize(mux *http.ServeMux, catalog model.Catalog, totals *resolver.PathTotals) OnboardingServiceInterface {
	service := newOnboardingService(catalog, totals)
	handler := newOnboardingHandler(service)
	registerRoutes(mux, handler)
	return service
}

func registerRoutes(mux *http.ServeMux, handler *onboardingHandler) {
	opts := middleware.CORSOptions{
		AllowedMethods:   "GET, OPTIONS",
		AllowedHeaders:   "Content-Type, Authorization",
		AllowCredentials: true,
	}
	preflight := func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}

	mux.HandleFunc(middleware.WithCORS("GET /onboarding/paths", handler.HandlePathTotalsRequest, opts))
	mux.HandleFunc(middleware.WithCORS("OPTIONS /onboarding/paths", preflight, opts))

	mux.HandleFunc(middleware.WithCORS("GET /onboarding/paths/{path}", handler.HandlePathStepsRequest, opts))
	mux.HandleFunc(middleware.WithCORS("OPTIONS /onboarding/paths/{path}", preflight, opts))

	mux.HandleFunc(middleware.WithCORS("GET /onboarding/paths/{path}/progress",
		handler.HandleProgressRequest, opts))
	mux.HandleFunc(middleware.WithCORS("OPTIONS /onboarding/paths/{path}/progress", preflight, opts))
}
