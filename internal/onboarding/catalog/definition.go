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

// Package catalog loads the onboarding step catalog from a YAML definition or from the database.
package catalog

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/venuely/onboarding/internal/onboarding/constants"
	"github.com/venuely/onboarding/internal/onboarding/model"

	"gopkg.in/yaml.v3"
)

// ErrEmptyDefinition is returned when a catalog definition payload has no content.
var ErrEmptyDefinition = errors.New("catalog: definition payload is empty")

// Definition is the YAML form of a step catalog.
type Definition struct {
	ID    string           `yaml:"id" json:"id"`
	Steps []StepDefinition `yaml:"steps" json:"steps"`
}

// StepDefinition is the YAML form of a single step.
type StepDefinition struct {
	Key       string               `yaml:"key" json:"key"`
	Title     string               `yaml:"title,omitempty" json:"title,omitempty"`
	Optional  bool                 `yaml:"optional,omitempty" json:"optional,omitempty"`
	OnlyFor   *constants.Path      `yaml:"only_for,omitempty" json:"only_for,omitempty"`
	When      *AnswerDefinition    `yaml:"when,omitempty" json:"when,omitempty"`
	Condition *ConditionDefinition `yaml:"condition,omitempty" json:"-"`
}

// AnswerDefinition gates a step on a prior answer.
type AnswerDefinition struct {
	Answer string `yaml:"answer" json:"answer"`
	Equals string `yaml:"equals" json:"equals"`
}

// ConditionDefinition is the legacy key/value gate. A userType key selects a path by its
// integer encoding; any other key is an answer gate.
type ConditionDefinition struct {
	Key   string    `yaml:"key"`
	Value yaml.Node `yaml:"value"`
}

// ParseDefinitionYAML decodes a catalog definition and converts it into a validated catalog.
func ParseDefinitionYAML(data []byte) (model.Catalog, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return model.Catalog{}, ErrEmptyDefinition
	}

	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)

	var def Definition
	if err := decoder.Decode(&def); err != nil {
		return model.Catalog{}, fmt.Errorf("catalog: decode definition: %w", err)
	}
	return def.ToCatalog()
}

// ToCatalog converts the definition into a validated catalog.
func (def Definition) ToCatalog() (model.Catalog, error) {
	if def.ID == "" {
		return model.Catalog{}, fmt.Errorf("catalog: id is required")
	}

	steps := make([]model.StepDescriptor, 0, len(def.Steps))
	for idx, stepDef := range def.Steps {
		condition, err := stepDef.condition()
		if err != nil {
			return model.Catalog{}, fmt.Errorf("catalog %s step[%d]: %w", def.ID, idx, err)
		}
		steps = append(steps, model.StepDescriptor{
			Key:       stepDef.Key,
			Title:     stepDef.Title,
			Optional:  stepDef.Optional,
			Condition: condition,
		})
	}

	catalog := model.NewCatalog(def.ID, steps)
	if err := catalog.Validate(); err != nil {
		return model.Catalog{}, err
	}
	return catalog, nil
}

// condition resolves the single gate declared on a step.
func (s StepDefinition) condition() (model.StepCondition, error) {
	declared := 0
	for _, set := range []bool{s.OnlyFor != nil, s.When != nil, s.Condition != nil} {
		if set {
			declared++
		}
	}
	if declared > 1 {
		return model.StepCondition{}, fmt.Errorf("step %s: only one of only_for, when or condition may be set", s.Key)
	}

	switch {
	case s.OnlyFor != nil:
		return model.OnlyFor(*s.OnlyFor), nil
	case s.When != nil:
		return model.WhenAnswer(s.When.Answer, s.When.Equals), nil
	case s.Condition != nil:
		return s.Condition.toCondition()
	default:
		return model.Always(), nil
	}
}

// toCondition converts a legacy key/value gate.
func (c ConditionDefinition) toCondition() (model.StepCondition, error) {
	if c.Key == "" {
		return model.StepCondition{}, fmt.Errorf("condition key is required")
	}
	if c.Key != constants.UserTypeAnswerKey {
		if strings.EqualFold(c.Key, constants.UserTypeAnswerKey) {
			return model.StepCondition{}, fmt.Errorf("condition key %q differs from %q only in case",
				c.Key, constants.UserTypeAnswerKey)
		}
		return model.WhenAnswer(c.Key, c.Value.Value), nil
	}

	if c.Value.Kind == 0 || c.Value.Tag == "!!null" {
		return model.StepCondition{}, fmt.Errorf("%s condition value is required", constants.UserTypeAnswerKey)
	}
	var value int
	if err := c.Value.Decode(&value); err != nil {
		return model.StepCondition{}, fmt.Errorf("%s condition value must be an integer: %w",
			constants.UserTypeAnswerKey, err)
	}
	path, ok := constants.PathForUserType(constants.UserType(value))
	if !ok {
		return model.StepCondition{}, fmt.Errorf("%w: %s condition value %d", constants.ErrInvalidPath,
			constants.UserTypeAnswerKey, value)
	}
	return model.OnlyFor(path), nil
}

// FromCatalog converts a catalog back into its YAML definition form.
func FromCatalog(catalog model.Catalog) Definition {
	def := Definition{ID: catalog.ID(), Steps: make([]StepDefinition, 0, catalog.Len())}
	for _, step := range catalog.Steps() {
		stepDef := StepDefinition{Key: step.Key, Title: step.Title, Optional: step.Optional}
		if path, ok := step.Condition.Path(); ok {
			p := path
			stepDef.OnlyFor = &p
		}
		if answer, equals, ok := step.Condition.Answer(); ok {
			stepDef.When = &AnswerDefinition{Answer: answer, Equals: equals}
		}
		def.Steps = append(def.Steps, stepDef)
	}
	return def
}
