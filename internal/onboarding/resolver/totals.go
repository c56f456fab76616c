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

package resolver

import (
	"github.com/venuely/onboarding/internal/onboarding/constants"
	"github.com/venuely/onboarding/internal/onboarding/model"
)

// PathTotals holds the step totals derived once from a catalog.
type PathTotals struct {
	Business int
	Personal int
	Max      int
}

// NewPathTotals counts the steps of each path and the larger of the two.
func NewPathTotals(catalog model.Catalog) *PathTotals {
	business := CountSteps(catalog, constants.PathBusiness)
	personal := CountSteps(catalog, constants.PathPersonal)
	return &PathTotals{
		Business: business,
		Personal: personal,
		Max:      max(business, personal),
	}
}

// For returns the total of the given path. Unknown paths return zero.
func (t *PathTotals) For(path constants.Path) int {
	switch path {
	case constants.PathBusiness:
		return t.Business
	case constants.PathPersonal:
		return t.Personal
	default:
		return 0
	}
}
