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
	"time"

	"github.com/proofgen/go-proofgen/pkg/prover"
	"github.com/proofgen/go-proofgen/pkg/rules"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var proveCmd = &cobra.Command{
	Use:   "prove [flags] start_formula goal_formula",
	Short: "search for a proof rewriting one formula into another.",
	Long: `Search breadth-first for a minimal sequence of equivalence laws
	transforming the first formula into the second, and print the proof
	one rewrite per line.  The search only ever expands formulas up to
	the --max-size bound, so a proof passing through larger intermediate
	formulas is reported as not found.`,
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
		maxSize := GetUint(cmd, "max-size")
		start := readFormula(args[0])
		goal := readFormula(args[1])
		//
		began := time.Now()
		path, ok := prover.FindPath(start, goal, rules.Catalog(), maxSize)
		log.Debugf("search took %s", time.Since(began))
		//
		if !ok {
			fmt.Println("no transformation path found")
			return
		}
		//
		fmt.Println(start)
		//
		for _, step := range path {
			fmt.Printf("%s  by %s\n", step.Result, step.Rule)
		}
	},
}

func init() {
	rootCmd.AddCommand(proveCmd)
	proveCmd.Flags().Uint("max-size", 15, "bound on the size of formulas the search may expand")
}
