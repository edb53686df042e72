// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package cmd

import (
	"fmt"
	"os"

	"github.com/proofgen/go-proofgen/pkg/logic"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var tableCmd = &cobra.Command{
	Use:   "table [flags] formula",
	Short: "print the truth table of a formula.",
	Long: `Evaluate a formula under every assignment of its free variables and
	print the resulting table, one column per variable (sorted by name)
	plus a final OUT column.`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 1 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}
		// Configure log level
		if GetFlag(cmd, "verbose") {
			log.SetLevel(log.DebugLevel)
		}
		//
		expr := readFormula(args[0])
		log.Debugf("parsed %s", expr.Debug())
		//
		table, err := logic.NewTruthTable(expr)
		if err != nil {
			fmt.Println(err)
			os.Exit(2)
		}
		//
		table.Tabulate().Print()
	},
}

func init() {
	rootCmd.AddCommand(tableCmd)
}
