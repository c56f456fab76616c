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

package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	"github.com/venuely/onboarding/internal/system/config"
	"github.com/venuely/onboarding/internal/system/database/client"
	"github.com/venuely/onboarding/internal/system/log"
)

// unusedDBProvider fails the test when the file source touches the database.
type unusedDBProvider struct {
	t *testing.T
}

func (p *unusedDBProvider) GetOnboardingDBClient() (client.DBClientInterface, error) {
	p.t.Fatal("database must not be used with the file catalog source")
	return nil, nil
}

func (p *unusedDBProvider) Close() error {
	return nil
}

type ServiceManagerTestSuite struct {
	suite.Suite
	serverHome string
}

func TestServiceManagerSuite(t *testing.T) {
	suite.Run(t, new(ServiceManagerTestSuite))
}

func (suite *ServiceManagerTestSuite) SetupTest() {
	home, err := filepath.Abs(filepath.Join("..", ".."))
	suite.Require().NoError(err)
	suite.serverHome = home

	config.ResetServerRuntime()
}

func (suite *ServiceManagerTestSuite) TearDownTest() {
	config.ResetServerRuntime()
}

func (suite *ServiceManagerTestSuite) TestRegisterServicesWithShippedConfiguration() {
	cfg, err := config.LoadConfig(filepath.Join(suite.serverHome, "repository", "conf", "deployment.yaml"))
	suite.Require().NoError(err)
	suite.Require().NoError(config.InitializeServerRuntime(suite.serverHome, cfg))
	assert.Equal(suite.T(), config.CatalogSourceFile, cfg.Onboarding.CatalogSource)
	assert.False(suite.T(), cfg.Onboarding.SeedDatabase)

	mux := http.NewServeMux()
	suite.Require().NoError(registerServices(mux, cfg, suite.serverHome, &unusedDBProvider{t: suite.T()}))

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/onboarding/paths", nil))
	assert.Equal(suite.T(), http.StatusOK, rec.Code)

	var totals map[string]int
	suite.Require().NoError(json.NewDecoder(rec.Body).Decode(&totals))
	assert.Equal(suite.T(), map[string]int{
		"businessPathSteps": 7,
		"personalPathSteps": 6,
		"maxPathSteps":      7,
	}, totals)

	rec = httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health/readiness", nil))
	assert.Equal(suite.T(), http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health/liveness", nil))
	assert.Equal(suite.T(), http.StatusOK, rec.Code)
}

func (suite *ServiceManagerTestSuite) TestRegisterServicesMissingCatalog() {
	cfg := &config.Config{
		Onboarding: config.OnboardingConfig{
			CatalogSource: config.CatalogSourceFile,
			CatalogFile:   "repository/resources/onboarding/missing.yaml",
			CatalogID:     "default",
		},
	}

	err := registerServices(http.NewServeMux(), cfg, suite.serverHome, &unusedDBProvider{t: suite.T()})

	assert.Error(suite.T(), err)
	assert.Contains(suite.T(), err.Error(), "failed to load the onboarding step catalog")
}

func (suite *ServiceManagerTestSuite) TestCreateHTTPServer() {
	cfg := &config.Config{Server: config.ServerConfig{Hostname: "localhost", Port: 8090}}

	server, addr := createHTTPServer(log.GetLogger(), cfg, http.NewServeMux())

	assert.Equal(suite.T(), "localhost:8090", addr)
	assert.Equal(suite.T(), addr, server.Addr)
	assert.NotNil(suite.T(), server.Handler)
}
