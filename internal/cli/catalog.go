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
	"strconv"

	"github.com/spf13/cobra"

	"github.com/venuely/onboarding/internal/onboarding/catalog"
	"github.com/venuely/onboarding/internal/onboarding/constants"
	"github.com/venuely/onboarding/internal/onboarding/resolver"
)

// totalsOutput is the JSON payload of the totals command.
type totalsOutput struct {
	CatalogID         string `json:"catalogId"`
	BusinessPathSteps int    `json:"businessPathSteps"`
	PersonalPathSteps int    `json:"personalPathSteps"`
	MaxPathSteps      int    `json:"maxPathSteps"`
}

// stepOutput is one entry of the JSON payload of the steps command.
type stepOutput struct {
	Position int    `json:"position"`
	Key      string `json:"key"`
	Title    string `json:"title,omitempty"`
	Optional bool   `json:"optional"`
}

func newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <file>",
		Short: "Validate a catalog definition",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			stepCatalog, err := catalog.LoadCatalogFile(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Catalog %q is valid (%d steps)\n", stepCatalog.ID(), stepCatalog.Len())
			return nil
		},
	}
}

func newTotalsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "totals <file>",
		Short: "Print the step totals of each onboarding path",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			stepCatalog, err := catalog.LoadCatalogFile(args[0])
			if err != nil {
				return err
			}
			totals := resolver.NewPathTotals(stepCatalog)

			if isJSONOutput(cmd) {
				return writeJSON(cmd.OutOrStdout(), totalsOutput{
					CatalogID:         stepCatalog.ID(),
					BusinessPathSteps: totals.Business,
					PersonalPathSteps: totals.Personal,
					MaxPathSteps:      totals.Max,
				})
			}

			return writeTable(cmd.OutOrStdout(), []string{"PATH", "STEPS"}, [][]string{
				{constants.PathBusiness.String(), strconv.Itoa(totals.Business)},
				{constants.PathPersonal.String(), strconv.Itoa(totals.Personal)},
				{"max", strconv.Itoa(totals.Max)},
			})
		},
	}
}

func newStepsCmd() *cobra.Command {
	var pathFlag string

	cmd := &cobra.Command{
		Use:   "steps <file>",
		Short: "List the steps shown on an onboarding path",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := constants.ParsePath(pathFlag)
			if err != nil {
				return err
			}
			stepCatalog, err := catalog.LoadCatalogFile(args[0])
			if err != nil {
				return err
			}

			steps := resolver.ResolveSteps(stepCatalog, path)
			output := make([]stepOutput, 0, len(steps))
			for i, step := range steps {
				output = append(output, stepOutput{
					Position: i + 1,
					Key:      step.Key,
					Title:    step.Title,
					Optional: step.Optional,
				})
			}

			if isJSONOutput(cmd) {
				return writeJSON(cmd.OutOrStdout(), output)
			}

			rows := make([][]string, 0, len(output))
			for _, step := range output {
				rows = append(rows, []string{strconv.Itoa(step.Position), step.Key, step.Title,
					formatYesNo(step.Optional)})
			}
			return writeTable(cmd.OutOrStdout(), []string{"#", "KEY", "TITLE", "OPTIONAL"}, rows)
		},
	}
	cmd.Flags().StringVar(&pathFlag, "path", "", "Onboarding path (business or personal)")
	_ = cmd.MarkFlagRequired("path")
	return cmd
}
