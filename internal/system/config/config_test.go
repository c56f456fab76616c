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

package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

const testResourceDir = "testdata"

type ConfigTestSuite struct {
	suite.Suite
}

func TestConfigSuite(t *testing.T) {
	suite.Run(t, new(ConfigTestSuite))
}

func (suite *ConfigTestSuite) getFilePath(filename string) string {
	return filepath.Join(testResourceDir, filename)
}

func (suite *ConfigTestSuite) TestLoadConfigValid() {
	config, err := LoadConfig(suite.getFilePath("deployment.yaml"))

	assert.NoError(suite.T(), err)
	suite.Require().NotNil(config)

	assert.Equal(suite.T(), "localhost", config.Server.Hostname)
	assert.Equal(suite.T(), 8090, config.Server.Port)
	assert.False(suite.T(), config.Server.HTTPOnly)
	assert.Equal(suite.T(), "repository/resources/security/server.cert", config.Security.CertFile)
	assert.Equal(suite.T(), "repository/resources/security/server.key", config.Security.KeyFile)

	assert.Equal(suite.T(), "postgres", config.Database.Onboarding.Type)
	assert.Equal(suite.T(), "db.internal", config.Database.Onboarding.Hostname)
	assert.Equal(suite.T(), 10, config.Database.Onboarding.MaxOpenConns)
	assert.Equal(suite.T(), 300, config.Database.Onboarding.ConnMaxLifetime)

	assert.Equal(suite.T(), []string{"https://app.venuely.example"}, config.CORS.AllowedOrigins)

	assert.Equal(suite.T(), CatalogSourceDatabase, config.Onboarding.CatalogSource)
	assert.Equal(suite.T(), "mobile-v2", config.Onboarding.CatalogID)
	assert.True(suite.T(), config.Onboarding.SeedDatabase)
	assert.Equal(suite.T(), defaultCatalogFile, config.Onboarding.CatalogFile)
}

func (suite *ConfigTestSuite) TestLoadConfigAppliesDefaults() {
	config, err := LoadConfig(suite.getFilePath("minimal_deployment.yaml"))

	assert.NoError(suite.T(), err)
	suite.Require().NotNil(config)
	assert.Equal(suite.T(), CatalogSourceFile, config.Onboarding.CatalogSource)
	assert.Equal(suite.T(), defaultCatalogFile, config.Onboarding.CatalogFile)
	assert.Equal(suite.T(), defaultCatalogID, config.Onboarding.CatalogID)
	assert.False(suite.T(), config.Onboarding.SeedDatabase)
}

func (suite *ConfigTestSuite) TestLoadConfigFileNotFound() {
	config, err := LoadConfig(suite.getFilePath("non_existent_config.yaml"))

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), config)
	assert.Contains(suite.T(), err.Error(), "no such file or directory")
}

func (suite *ConfigTestSuite) TestLoadConfigInvalidYAML() {
	config, err := LoadConfig(suite.getFilePath("invalid_deployment.yaml"))

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), config)
}

func (suite *ConfigTestSuite) TestLoadConfigUnsupportedCatalogSource() {
	config, err := LoadConfig(suite.getFilePath("unsupported_source.yaml"))

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), config)
	assert.Contains(suite.T(), err.Error(), "unsupported onboarding catalog source: s3")
}

func (suite *ConfigTestSuite) TestLoadConfigDatabaseSourceRequiresDatabase() {
	config, err := LoadConfig(suite.getFilePath("database_source_without_db.yaml"))

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), config)
	assert.Contains(suite.T(), err.Error(), "requires database.onboarding")
}
