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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	"github.com/venuely/onboarding/internal/onboarding/constants"
	"github.com/venuely/onboarding/internal/onboarding/model"
)

type ResolverTestSuite struct {
	suite.Suite
}

func TestResolverSuite(t *testing.T) {
	suite.Run(t, new(ResolverTestSuite))
}

func mixedCatalog() model.Catalog {
	return model.NewCatalog("mixed", []model.StepDescriptor{
		{Key: "welcome"},
		{Key: "biz-name", Condition: model.OnlyFor(constants.PathBusiness)},
		{Key: "interests", Condition: model.OnlyFor(constants.PathPersonal)},
		{Key: "done"},
	})
}

func keys(steps []model.StepDescriptor) []string {
	result := make([]string, 0, len(steps))
	for _, step := range steps {
		result = append(result, step.Key)
	}
	return result
}

func (suite *ResolverTestSuite) TestCountStepsMixedCatalog() {
	catalog := mixedCatalog()

	assert.Equal(suite.T(), 3, CountSteps(catalog, constants.PathBusiness))
	assert.Equal(suite.T(), 3, CountSteps(catalog, constants.PathPersonal))
	assert.Equal(suite.T(), []string{"welcome", "biz-name", "done"},
		keys(ResolveSteps(catalog, constants.PathBusiness)))
	assert.Equal(suite.T(), []string{"welcome", "interests", "done"},
		keys(ResolveSteps(catalog, constants.PathPersonal)))

	totals := NewPathTotals(catalog)
	assert.Equal(suite.T(), &PathTotals{Business: 3, Personal: 3, Max: 3}, totals)
}

func (suite *ResolverTestSuite) TestCountStepsWithoutConditions() {
	catalog := model.NewCatalog("plain", []model.StepDescriptor{
		{Key: "a"}, {Key: "b"}, {Key: "c"}, {Key: "d"}, {Key: "e"},
	})

	totals := NewPathTotals(catalog)
	assert.Equal(suite.T(), 5, totals.Business)
	assert.Equal(suite.T(), 5, totals.Personal)
	assert.Equal(suite.T(), 5, totals.Max)
}

func (suite *ResolverTestSuite) TestCountStepsEmptyCatalog() {
	catalog := model.NewCatalog("empty", nil)

	totals := NewPathTotals(catalog)
	assert.Equal(suite.T(), PathTotals{}, *totals)
	assert.Empty(suite.T(), ResolveSteps(catalog, constants.PathBusiness))
}

func (suite *ResolverTestSuite) TestAnswerGatedStepsCountForBothPaths() {
	catalog := model.NewCatalog("answers", []model.StepDescriptor{
		{Key: "welcome"},
		{Key: "notifications", Condition: model.WhenAnswer("locationPermission", "granted")},
		{Key: "biz-hours", Condition: model.OnlyFor(constants.PathBusiness)},
		{Key: "biz-address", Condition: model.OnlyFor(constants.PathBusiness)},
		{Key: "likes", Condition: model.OnlyFor(constants.PathPersonal)},
	})

	// business: no condition (1) + other-answer gate (1) + business gate (2).
	assert.Equal(suite.T(), 4, CountSteps(catalog, constants.PathBusiness))
	// personal: no condition (1) + other-answer gate (1) + personal gate (1).
	assert.Equal(suite.T(), 3, CountSteps(catalog, constants.PathPersonal))

	totals := NewPathTotals(catalog)
	assert.Equal(suite.T(), 4, totals.Max)
	assert.Equal(suite.T(), totals.Business, totals.For(constants.PathBusiness))
	assert.Equal(suite.T(), totals.Personal, totals.For(constants.PathPersonal))
	assert.Equal(suite.T(), 0, totals.For(constants.Path("unknown")))
}

func (suite *ResolverTestSuite) TestMaxPicksLargerPersonalTotal() {
	catalog := model.NewCatalog("personal-heavy", []model.StepDescriptor{
		{Key: "likes", Condition: model.OnlyFor(constants.PathPersonal)},
		{Key: "dislikes", Condition: model.OnlyFor(constants.PathPersonal)},
		{Key: "biz-name", Condition: model.OnlyFor(constants.PathBusiness)},
	})

	totals := NewPathTotals(catalog)
	assert.Equal(suite.T(), 1, totals.Business)
	assert.Equal(suite.T(), 2, totals.Personal)
	assert.Equal(suite.T(), 2, totals.Max)
}

func (suite *ResolverTestSuite) TestCountStepsIsIdempotent() {
	catalog := mixedCatalog()

	first := CountSteps(catalog, constants.PathPersonal)
	second := CountSteps(catalog, constants.PathPersonal)
	assert.Equal(suite.T(), first, second)
	assert.Equal(suite.T(), 4, catalog.Len())
}

func (suite *ResolverTestSuite) TestCountStepsUnknownPathCountsUngatedSteps() {
	assert.Equal(suite.T(), 2, CountSteps(mixedCatalog(), constants.Path("enterprise")))
}

func (suite *ResolverTestSuite) TestStepPosition() {
	catalog := mixedCatalog()

	position, ok := StepPosition(catalog, constants.PathPersonal, "interests")
	assert.True(suite.T(), ok)
	assert.Equal(suite.T(), 1, position)

	position, ok = StepPosition(catalog, constants.PathPersonal, "done")
	assert.True(suite.T(), ok)
	assert.Equal(suite.T(), 2, position)

	position, ok = StepPosition(catalog, constants.PathPersonal, "biz-name")
	assert.False(suite.T(), ok)
	assert.Equal(suite.T(), -1, position)
}

func (suite *ResolverTestSuite) TestStepPositionUsesFirstOccurrence() {
	catalog := model.NewCatalog("dupes", []model.StepDescriptor{
		{Key: "welcome"},
		{Key: "review"},
		{Key: "review"},
	})

	position, ok := StepPosition(catalog, constants.PathBusiness, "review")
	assert.True(suite.T(), ok)
	assert.Equal(suite.T(), 1, position)
}
