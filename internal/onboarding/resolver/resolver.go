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

// Package resolver computes which onboarding steps apply to each path and derives the path totals.
package resolver

import (
	"github.com/venuely/onboarding/internal/onboarding/constants"
	"github.com/venuely/onboarding/internal/onboarding/model"
)

// CountSteps returns the number of catalog steps that apply to the given path.
// A step is excluded only when it carries a path gate for the other path. Calling it with a path
// outside constants.AllPaths counts only the steps without a path gate.
func CountSteps(catalog model.Catalog, path constants.Path) int {
	count := 0
	catalog.Each(func(_ int, step model.StepDescriptor) bool {
		if step.Condition.AppliesTo(path) {
			count++
		}
		return true
	})
	return count
}

// ResolveSteps returns the steps that apply to the given path in catalog order.
func ResolveSteps(catalog model.Catalog, path constants.Path) []model.StepDescriptor {
	steps := make([]model.StepDescriptor, 0, catalog.Len())
	catalog.Each(func(_ int, step model.StepDescriptor) bool {
		if step.Condition.AppliesTo(path) {
			steps = append(steps, step)
		}
		return true
	})
	return steps
}

// StepPosition returns the zero based position of the first step with the given key among the
// steps that apply to the path.
func StepPosition(catalog model.Catalog, path constants.Path, key string) (int, bool) {
	position, found := 0, false
	catalog.Each(func(_ int, step model.StepDescriptor) bool {
		if !step.Condition.AppliesTo(path) {
			return true
		}
		if step.Key == key {
			found = true
			return false
		}
		position++
		return true
	})
	if !found {
		return -1, false
	}
	return position, true
}
