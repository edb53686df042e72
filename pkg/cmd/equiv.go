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

var equivCmd = &cobra.Command{
	Use:   "equiv [flags] formula formula",
	Short: "check whether two formulas are logically equivalent.",
	Long: `Compare two formulas under every assignment of the union of their
	free variables, reporting whether they always agree.`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 2 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}
		// Configure log level
		if GetFlag(cmd, "verbose") {
			log.SetLevel(log.DebugLevel)
		}
		//
		left := readFormula(args[0])
		right := readFormula(args[1])
		//
		equivalent, err := logic.Equivalent(left, right)
		if err != nil {
			fmt.Println(err)
			os.Exit(2)
		}
		//
		if equivalent {
			fmt.Println("equivalent")
		} else {
			fmt.Println("not equivalent")
		}
	},
}

func init() {
	rootCmd.AddCommand(equivCmd)
}
