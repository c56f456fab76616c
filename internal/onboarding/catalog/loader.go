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

package catalog

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/venuely/onboarding/internal/onboarding/model"
)

// LoadCatalogReader reads a catalog definition from an io.Reader.
func LoadCatalogReader(r io.Reader) (model.Catalog, error) {
	content, err := io.ReadAll(r)
	if err != nil {
		return model.Catalog{}, fmt.Errorf("catalog: read definition: %w", err)
	}
	return ParseDefinitionYAML(content)
}

// LoadCatalogFile loads a catalog definition from a file path.
func LoadCatalogFile(path string) (model.Catalog, error) {
	path = filepath.Clean(path)
	content, err := os.ReadFile(path)
	if err != nil {
		return model.Catalog{}, fmt.Errorf("catalog: read %s: %w", path, err)
	}
	catalog, err := ParseDefinitionYAML(content)
	if err != nil {
		return model.Catalog{}, fmt.Errorf("catalog: %s: %w", path, err)
	}
	return catalog, nil
}
