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
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/venuely/onboarding/internal/onboarding/catalog"
	"github.com/venuely/onboarding/internal/system/config"
	"github.com/venuely/onboarding/internal/system/constants"
	"github.com/venuely/onboarding/internal/system/database/provider"
)

func newImportCmd() *cobra.Command {
	var serverHome string

	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Replace a catalog in the onboarding database with a definition file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			stepCatalog, err := catalog.LoadCatalogFile(args[0])
			if err != nil {
				return err
			}

			dbProvider, err := openDatabase(serverHome)
			if err != nil {
				return err
			}
			defer func() { _ = dbProvider.Close() }()

			dbClient, err := dbProvider.GetOnboardingDBClient()
			if err != nil {
				return fmt.Errorf("failed to get database client: %w", err)
			}
			if err := catalog.NewStore(dbClient).ReplaceCatalog(stepCatalog); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Imported catalog %q (%d steps)\n", stepCatalog.ID(), stepCatalog.Len())
			return nil
		},
	}
	cmd.Flags().StringVar(&serverHome, "server-home", ".", "Onboarding server home directory")
	return cmd
}

func newExportCmd() *cobra.Command {
	var serverHome string
	var catalogID string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Print a catalog stored in the onboarding database as a definition file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dbProvider, err := openDatabase(serverHome)
			if err != nil {
				return err
			}
			defer func() { _ = dbProvider.Close() }()

			if catalogID == "" {
				catalogID = config.GetServerRuntime().Config.Onboarding.CatalogID
			}

			dbClient, err := dbProvider.GetOnboardingDBClient()
			if err != nil {
				return fmt.Errorf("failed to get database client: %w", err)
			}
			stepCatalog, err := catalog.NewStore(dbClient).GetCatalog(catalogID)
			if err != nil {
				return fmt.Errorf("failed to read catalog %q: %w", catalogID, err)
			}

			definition := catalog.FromCatalog(stepCatalog)
			if isJSONOutput(cmd) {
				return writeJSON(cmd.OutOrStdout(), definition)
			}

			encoder := yaml.NewEncoder(cmd.OutOrStdout())
			encoder.SetIndent(2)
			if err := encoder.Encode(definition); err != nil {
				return err
			}
			return encoder.Close()
		},
	}
	cmd.Flags().StringVar(&serverHome, "server-home", ".", "Onboarding server home directory")
	cmd.Flags().StringVar(&catalogID, "catalog-id", "", "Catalog to export (defaults to the configured catalog)")
	return cmd
}

// openDatabase loads the deployment configuration of the server home and returns the database provider.
func openDatabase(serverHome string) (provider.DBProviderInterface, error) {
	home, err := filepath.Abs(serverHome)
	if err != nil {
		return nil, err
	}

	configPath := filepath.Join(home, constants.DeploymentConfigPath)
	if _, err := os.Stat(configPath); err != nil {
		return nil, fmt.Errorf("deployment configuration not found: %w", err)
	}
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, err
	}
	if cfg.Database.Onboarding.Type == "" {
		return nil, fmt.Errorf("no onboarding database configured in %s", configPath)
	}
	if err := config.InitializeServerRuntime(home, cfg); err != nil {
		return nil, err
	}
	return getDBProvider(), nil
}
