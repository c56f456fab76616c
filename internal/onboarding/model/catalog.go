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

package model

import "fmt"

// Catalog is an ordered, read-only list of onboarding step descriptors.
type Catalog struct {
	id    string
	steps []StepDescriptor
}

// NewCatalog creates a catalog holding a copy of the given steps.
func NewCatalog(id string, steps []StepDescriptor) Catalog {
	copied := make([]StepDescriptor, len(steps))
	copy(copied, steps)
	return Catalog{id: id, steps: copied}
}

// ID returns the catalog identifier.
func (c Catalog) ID() string {
	return c.id
}

// Len returns the number of steps in the catalog.
func (c Catalog) Len() int {
	return len(c.steps)
}

// Steps returns a copy of the steps in catalog order.
func (c Catalog) Steps() []StepDescriptor {
	copied := make([]StepDescriptor, len(c.steps))
	copy(copied, c.steps)
	return copied
}

// Each calls fn for every step in catalog order, stopping early when fn returns false.
func (c Catalog) Each(fn func(index int, step StepDescriptor) bool) {
	for i, step := range c.steps {
		if !fn(i, step) {
			return
		}
	}
}

// Validate checks every step of the catalog.
func (c Catalog) Validate() error {
	for i, step := range c.steps {
		if err := step.Validate(); err != nil {
			return fmt.Errorf("catalog %s step[%d]: %w", c.id, i, err)
		}
	}
	return nil
}
