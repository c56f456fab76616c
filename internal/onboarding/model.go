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

// PathTotalsResponse represents the step totals of the onboarding paths.
type PathTotalsResponse struct {
	BusinessPathSteps int `json:"businessPathSteps"`
	PersonalPathSteps int `json:"personalPathSteps"`
	MaxPathSteps      int `json:"maxPathSteps"`
}

// StepResponse represents a single step of a resolved onboarding path.
type StepResponse struct {
	Key      string `json:"key"`
	Title    string `json:"title,omitempty"`
	Optional bool   `json:"optional"`
}

// PathStepsResponse represents the steps that apply to an onboarding path.
type PathStepsResponse struct {
	Path       string         `json:"path"`
	TotalSteps int            `json:"totalSteps"`
	Steps      []StepResponse `json:"steps"`
}

// ProgressResponse represents the progress indicator value for a step of an onboarding path.
// StepIndex is one based and Progress is StepIndex divided by MaxPathSteps.
type ProgressResponse struct {
	Path         string  `json:"path"`
	Step         string  `json:"step"`
	StepIndex    int     `json:"stepIndex"`
	MaxPathSteps int     `json:"maxPathSteps"`
	Progress     float64 `json:"progress"`
}
