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

// Package onboarding provides the onboarding path service and its HTTP API.
package onboarding

import (
	"github.com/venuely/onboarding/internal/onboarding/constants"
	"github.com/venuely/onboarding/internal/onboarding/model"
	"github.com/venuely/onboarding/internal/onboarding/resolver"
	"github.com/venuely/onboarding/internal/system/error/serviceerror"
	"github.com/venuely/onboarding/internal/system/log"
)

// OnboardingServiceInterface defines the operations of the onboarding path service.
type OnboardingServiceInterface interface {
	GetPathTotals() (*PathTotalsResponse, *serviceerror.ServiceError)
	GetPathSteps(path string) (*PathStepsResponse, *serviceerror.ServiceError)
	GetProgress(path, stepKey string) (*ProgressResponse, *serviceerror.ServiceError)
}

// onboardingService serves a catalog and the totals derived from it at startup.
type onboardingService struct {
	catalog model.Catalog
	totals  *resolver.PathTotals
}

func newOnboardingService(catalog model.Catalog, totals *resolver.PathTotals) OnboardingServiceInterface {
	return &onboardingService{
		catalog: catalog,
		totals:  totals,
	}
}

// GetPathTotals returns the business, personal and maximum step totals.
func (s *onboardingService) GetPathTotals() (*PathTotalsResponse, *serviceerror.ServiceError) {
	if s.totals == nil {
		return nil, &constants.ErrorTotalsNotInitialized
	}

	return &PathTotalsResponse{
		BusinessPathSteps: s.totals.Business,
		PersonalPathSteps: s.totals.Personal,
		MaxPathSteps:      s.totals.Max,
	}, nil
}

// GetPathSteps returns the steps that apply to the given path in display order.
func (s *onboardingService) GetPathSteps(path string) (*PathStepsResponse, *serviceerror.ServiceError) {
	onboardingPath, svcErr := parsePath(path)
	if svcErr != nil {
		return nil, svcErr
	}

	steps := resolver.ResolveSteps(s.catalog, onboardingPath)
	stepResponses := make([]StepResponse, 0, len(steps))
	for _, step := range steps {
		stepResponses = append(stepResponses, StepResponse{
			Key:      step.Key,
			Title:    step.Title,
			Optional: step.Optional,
		})
	}

	return &PathStepsResponse{
		Path:       onboardingPath.String(),
		TotalSteps: len(stepResponses),
		Steps:      stepResponses,
	}, nil
}

// GetProgress returns the progress indicator value of a step within the given path.
func (s *onboardingService) GetProgress(path, stepKey string) (*ProgressResponse, *serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, "OnboardingService"))

	onboardingPath, svcErr := parsePath(path)
	if svcErr != nil {
		return nil, svcErr
	}
	if stepKey == "" {
		return nil, &constants.ErrorStepKeyRequired
	}
	if s.totals == nil {
		logger.Error("Path totals requested before they were derived")
		return nil, &constants.ErrorTotalsNotInitialized
	}

	position, ok := resolver.StepPosition(s.catalog, onboardingPath, stepKey)
	if !ok {
		if logger.IsDebugEnabled() {
			logger.Debug("Step is not part of the path", log.String(log.LoggerKeyPath, path),
				log.String("step", stepKey))
		}
		return nil, &constants.ErrorStepNotInPath
	}

	stepIndex := position + 1
	progress := 0.0
	if s.totals.Max > 0 {
		progress = float64(stepIndex) / float64(s.totals.Max)
	}

	return &ProgressResponse{
		Path:         onboardingPath.String(),
		Step:         stepKey,
		StepIndex:    stepIndex,
		MaxPathSteps: s.totals.Max,
		Progress:     progress,
	}, nil
}

// parsePath converts a path string into an onboarding path.
func parsePath(path string) (constants.Path, *serviceerror.ServiceError) {
	onboardingPath, err := constants.ParsePath(path)
	if err != nil {
		return "", &constants.ErrorInvalidPath
	}
	return onboardingPath, nil
}
