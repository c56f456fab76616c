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

// Package cli provides the stepcatalog command line tool for onboarding step catalogs.
package cli

import (
	"encoding/json"
	"io"

	"github.com/spf13/cobra"

	"github.com/venuely/onboarding/internal/system/database/provider"
)

// getDBProvider returns the provider used by the database commands.
var getDBProvider = provider.GetDBProvider

// NewRootCommand builds the stepcatalog command tree.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "stepcatalog",
		Short:         "Inspect and manage onboarding step catalogs",
		Long:          "Validate onboarding step catalog definitions, print the path totals and sync catalogs with the onboarding database.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().Bool("json", false, "Print output as JSON")

	rootCmd.AddCommand(
		newValidateCmd(),
		newTotalsCmd(),
		newStepsCmd(),
		newImportCmd(),
		newExportCmd(),
	)
	return rootCmd
}

// Execute runs the root command with the process arguments.
func Execute() error {
	return NewRootCommand().Execute()
}

func isJSONOutput(cmd *cobra.Command) bool {
	jsonOutput, err := cmd.Flags().GetBool("json")
	return err == nil && jsonOutput
}

func writeJSON(out io.Writer, value any) error {
	encoder := json.NewEncoder(out)
	encoder.SetIndent("", "  ")
	return encoder.Encode(value)
}
