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

package cli

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	"github.com/venuely/onboarding/internal/system/config"
	"github.com/venuely/onboarding/internal/system/database/client"
	dbmodel "github.com/venuely/onboarding/internal/system/database/model"
	"github.com/venuely/onboarding/internal/system/database/provider"
)

const testDeploymentYAML = `server:
  hostname: "localhost"
  port: 8090
database:
  onboarding:
    type: "sqlite"
    path: "onboarding.db"
onboarding:
  catalog_source: "database"
  catalog_id: "default"
`

type mockDBProvider struct {
	dbClient client.DBClientInterface
	closed   bool
}

func (p *mockDBProvider) GetOnboardingDBClient() (client.DBClientInterface, error) {
	return p.dbClient, nil
}

func (p *mockDBProvider) Close() error {
	p.closed = true
	return nil
}

type CLITestSuite struct {
	suite.Suite
	mockDB     *sql.DB
	mock       sqlmock.Sqlmock
	provider   *mockDBProvider
	serverHome string
}

func TestCLISuite(t *testing.T) {
	suite.Run(t, new(CLITestSuite))
}

func (suite *CLITestSuite) SetupTest() {
	var err error
	suite.mockDB, suite.mock, err = sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	suite.Require().NoError(err)

	suite.provider = &mockDBProvider{
		dbClient: client.NewDBClient(dbmodel.NewDB(suite.mockDB), dbmodel.DBTypeSQLite),
	}
	getDBProvider = func() provider.DBProviderInterface { return suite.provider }

	suite.serverHome = suite.T().TempDir()
	confDir := filepath.Join(suite.serverHome, "repository", "conf")
	suite.Require().NoError(os.MkdirAll(confDir, 0o750))
	suite.Require().NoError(os.WriteFile(filepath.Join(confDir, "deployment.yaml"),
		[]byte(testDeploymentYAML), 0o600))

	config.ResetServerRuntime()
}

func (suite *CLITestSuite) TearDownTest() {
	getDBProvider = provider.GetDBProvider
	config.ResetServerRuntime()
	assert.NoError(suite.T(), suite.mock.ExpectationsWereMet())
}

func (suite *CLITestSuite) run(args ...string) (string, error) {
	var out bytes.Buffer
	cmd := NewRootCommand()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func (suite *CLITestSuite) TestValidate() {
	out, err := suite.run("validate", filepath.Join("testdata", "steps.yaml"))

	suite.Require().NoError(err)
	assert.Equal(suite.T(), "Catalog \"default\" is valid (5 steps)\n", out)
}

func (suite *CLITestSuite) TestValidateRejectsPathTypo() {
	_, err := suite.run("validate", filepath.Join("testdata", "typo_steps.yaml"))

	assert.Error(suite.T(), err)
	assert.Contains(suite.T(), err.Error(), "invalid onboarding path")
}

func (suite *CLITestSuite) TestValidateRequiresFile() {
	_, err := suite.run("validate")

	assert.Error(suite.T(), err)
}

func (suite *CLITestSuite) TestTotalsTable() {
	out, err := suite.run("totals", filepath.Join("testdata", "steps.yaml"))

	suite.Require().NoError(err)
	assert.Contains(suite.T(), out, "PATH")
	assert.Contains(suite.T(), out, "business  4")
	assert.Contains(suite.T(), out, "personal  4")
	assert.Contains(suite.T(), out, "max       4")
}

func (suite *CLITestSuite) TestTotalsJSON() {
	out, err := suite.run("totals", "--json", filepath.Join("testdata", "steps.yaml"))

	suite.Require().NoError(err)
	assert.JSONEq(suite.T(),
		`{"catalogId":"default","businessPathSteps":4,"personalPathSteps":4,"maxPathSteps":4}`, out)
}

func (suite *CLITestSuite) TestStepsJSON() {
	out, err := suite.run("steps", filepath.Join("testdata", "steps.yaml"), "--path", "personal", "--json")
	suite.Require().NoError(err)

	var steps []stepOutput
	suite.Require().NoError(json.Unmarshal([]byte(out), &steps))
	keys := make([]string, 0, len(steps))
	for _, step := range steps {
		keys = append(keys, step.Key)
	}
	assert.Equal(suite.T(), []string{"welcome", "interests", "notifications", "done"}, keys)
	assert.Equal(suite.T(), 1, steps[0].Position)
	assert.True(suite.T(), steps[2].Optional)
}

func (suite *CLITestSuite) TestStepsTable() {
	out, err := suite.run("steps", filepath.Join("testdata", "steps.yaml"), "--path", "business")

	suite.Require().NoError(err)
	assert.Contains(suite.T(), out, "business-name")
	assert.NotContains(suite.T(), out, "interests")
}

func (suite *CLITestSuite) TestStepsInvalidPath() {
	_, err := suite.run("steps", filepath.Join("testdata", "steps.yaml"), "--path", "enterprise")

	assert.Error(suite.T(), err)
	assert.Contains(suite.T(), err.Error(), "invalid onboarding path")
}

func (suite *CLITestSuite) TestStepsRequiresPath() {
	_, err := suite.run("steps", filepath.Join("testdata", "steps.yaml"))

	assert.Error(suite.T(), err)
}

func (suite *CLITestSuite) TestImport() {
	deleteSteps := "DELETE FROM ONBOARDING_STEP WHERE CATALOG_ID = $1"
	insertStep := "INSERT INTO ONBOARDING_STEP (CATALOG_ID, POSITION, STEP_KEY, TITLE, OPTIONAL, CONDITION_KIND, " +
		"CONDITION_PATH, CONDITION_ANSWER, CONDITION_EQUALS) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)"

	suite.mock.ExpectBegin()
	suite.mock.ExpectExec(deleteSteps).WithArgs("default").WillReturnResult(sqlmock.NewResult(0, 0))
	for i := 0; i < 5; i++ {
		suite.mock.ExpectExec(insertStep).WillReturnResult(sqlmock.NewResult(int64(i+1), 1))
	}
	suite.mock.ExpectCommit()

	out, err := suite.run("import", filepath.Join("testdata", "steps.yaml"), "--server-home", suite.serverHome)

	suite.Require().NoError(err)
	assert.Equal(suite.T(), "Imported catalog \"default\" (5 steps)\n", out)
	assert.True(suite.T(), suite.provider.closed)
}

func (suite *CLITestSuite) TestImportWithoutDeploymentConfiguration() {
	_, err := suite.run("import", filepath.Join("testdata", "steps.yaml"), "--server-home", suite.T().TempDir())

	assert.Error(suite.T(), err)
	assert.Contains(suite.T(), err.Error(), "deployment configuration not found")
}

func (suite *CLITestSuite) TestExportYAML() {
	query := "SELECT POSITION, STEP_KEY, TITLE, OPTIONAL, CONDITION_KIND, CONDITION_PATH, " +
		"CONDITION_ANSWER, CONDITION_EQUALS FROM ONBOARDING_STEP WHERE CATALOG_ID = $1 ORDER BY POSITION"
	columns := []string{"POSITION", "STEP_KEY", "TITLE", "OPTIONAL", "CONDITION_KIND", "CONDITION_PATH",
		"CONDITION_ANSWER", "CONDITION_EQUALS"}
	suite.mock.ExpectQuery(query).WithArgs("default").WillReturnRows(sqlmock.NewRows(columns).
		AddRow(0, "welcome", "Welcome", int64(0), "ALWAYS", "", "", "").
		AddRow(1, "business-name", "", int64(0), "PATH", "business", "", ""))

	out, err := suite.run("export", "--server-home", suite.serverHome)

	suite.Require().NoError(err)
	assert.Equal(suite.T(), "id: default\n"+
		"steps:\n"+
		"  - key: welcome\n"+
		"    title: Welcome\n"+
		"  - key: business-name\n"+
		"    only_for: business\n", out)
}

func (suite *CLITestSuite) TestExportUnknownCatalog() {
	query := "SELECT POSITION, STEP_KEY, TITLE, OPTIONAL, CONDITION_KIND, CONDITION_PATH, " +
		"CONDITION_ANSWER, CONDITION_EQUALS FROM ONBOARDING_STEP WHERE CATALOG_ID = $1 ORDER BY POSITION"
	suite.mock.ExpectQuery(query).WithArgs("venue").WillReturnRows(sqlmock.NewRows([]string{"POSITION"}))

	_, err := suite.run("export", "--server-home", suite.serverHome, "--catalog-id", "venue")

	assert.Error(suite.T(), err)
	assert.Contains(suite.T(), err.Error(), "catalog not found")
}
