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
	"sort"
	"time"

	"github.com/proofgen/go-proofgen/pkg/prover"
	"github.com/proofgen/go-proofgen/pkg/rules"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var formsCmd = &cobra.Command{
	Use:   "forms [flags] formula",
	Short: "enumerate all formulas reachable by rewriting.",
	Long: `Explore every formula reachable from the given one by repeatedly
	applying equivalence laws, bounded by --max-depth rewrite steps and
	the --max-size formula size, and print the distinct forms found.`,
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
		maxDepth := GetUint(cmd, "max-depth")
		maxSize := GetUint(cmd, "max-size")
		expr := readFormula(args[0])
		//
		began := time.Now()
		forms := prover.ReachableForms(expr, rules.Catalog(), maxDepth, maxSize)
		log.Debugf("exploration took %s", time.Since(began))
		// Render and sort for deterministic output, since the set itself is
		// unordered.
		lines := make([]string, 0, forms.Size())
		for _, form := range forms.Items() {
			lines = append(lines, form.String())
		}
		//
		sort.Strings(lines)
		//
		for _, line := range lines {
			fmt.Println(line)
		}
		//
		fmt.Printf("%d distinct forms\n", len(lines))
	},
}

func init() {
	rootCmd.AddCommand(formsCmd)
	formsCmd.Flags().Uint("max-depth", 10, "bound on the number of successive rewrites explored")
	formsCmd.Flags().Uint("max-size", 15, "bound on the size of formulas the search may expand")
}
