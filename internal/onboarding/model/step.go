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

// Package model defines the onboarding step descriptors and the step catalog.
package model

import (
	"fmt"
	"strings"

	"github.com/venuely/onboarding/internal/onboarding/constants"
)

// ConditionKind tags the variant held by a StepCondition.
type ConditionKind string

const (
	// ConditionAlways marks a step that is shown on every path.
	ConditionAlways ConditionKind = "ALWAYS"
	// ConditionPath marks a step that is shown only on one onboarding path.
	ConditionPath ConditionKind = "PATH"
	// ConditionAnswer marks a step gated on a prior answer other than the user type.
	ConditionAnswer ConditionKind = "ANSWER"
)

// StepCondition gates the inclusion of a step. The zero value is ConditionAlways.
type StepCondition struct {
	kind   ConditionKind
	path   constants.Path
	answer string
	equals string
}

// Always returns a condition that includes the step on every path.
func Always() StepCondition {
	return StepCondition{kind: ConditionAlways}
}

// OnlyFor returns a condition that includes the step only on the given path.
func OnlyFor(path constants.Path) StepCondition {
	return StepCondition{kind: ConditionPath, path: path}
}

// WhenAnswer returns a condition that includes the step when a prior answer equals the given value.
func WhenAnswer(answer, equals string) StepCondition {
	return StepCondition{kind: ConditionAnswer, answer: answer, equals: equals}
}

// Kind returns the variant of the condition.
func (c StepCondition) Kind() ConditionKind {
	if c.kind == "" {
		return ConditionAlways
	}
	return c.kind
}

// Path returns the gated path of a ConditionPath condition.
func (c StepCondition) Path() (constants.Path, bool) {
	return c.path, c.Kind() == ConditionPath
}

// Answer returns the answer key and expected value of a ConditionAnswer condition.
func (c StepCondition) Answer() (string, string, bool) {
	return c.answer, c.equals, c.Kind() == ConditionAnswer
}

// AppliesTo reports whether a step carrying this condition counts toward the given path.
// Only a path gate for a different path excludes the step.
func (c StepCondition) AppliesTo(path constants.Path) bool {
	if c.Kind() != ConditionPath {
		return true
	}
	return c.path == path
}

// Validate checks the condition holds a well formed variant.
func (c StepCondition) Validate() error {
	switch c.Kind() {
	case ConditionAlways:
		return nil
	case ConditionPath:
		if !c.path.IsValid() {
			return fmt.Errorf("%w: %q", constants.ErrInvalidPath, string(c.path))
		}
		return nil
	case ConditionAnswer:
		if c.answer == "" {
			return fmt.Errorf("answer condition requires an answer key")
		}
		if c.answer == constants.UserTypeAnswerKey {
			return fmt.Errorf("answer condition on %q must be declared as a path condition",
				constants.UserTypeAnswerKey)
		}
		if strings.EqualFold(c.answer, constants.UserTypeAnswerKey) {
			return fmt.Errorf("answer key %q differs from %q only in case", c.answer,
				constants.UserTypeAnswerKey)
		}
		return nil
	default:
		return fmt.Errorf("unknown condition kind %q", c.kind)
	}
}

// String returns a readable form of the condition.
func (c StepCondition) String() string {
	switch c.Kind() {
	case ConditionPath:
		return "only_for=" + string(c.path)
	case ConditionAnswer:
		return "when " + c.answer + "=" + c.equals
	default:
		return "always"
	}
}

// StepDescriptor describes one step of the onboarding wizard.
type StepDescriptor struct {
	// Key identifies the step. It is not required to be unique within a catalog.
	Key       string
	Title     string
	Optional  bool
	Condition StepCondition
}

// Validate checks the descriptor is usable by the resolver.
func (s StepDescriptor) Validate() error {
	if s.Key == "" {
		return fmt.Errorf("step key is required")
	}
	if err := s.Condition.Validate(); err != nil {
		return fmt.Errorf("step %s: %w", s.Key, err)
	}
	return nil
}
