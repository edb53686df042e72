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
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/proofgen/go-proofgen/pkg/logic"
	"github.com/spf13/cobra"
)

// GetFlag gets an expected flag, or panic if an error arises.
func GetFlag(cmd *cobra.Command, flag string) bool {
	r, err := cmd.Flags().GetBool(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
	//
	return r
}

// GetUint gets an expected unsigned integer flag, or panic if an error arises.
func GetUint(cmd *cobra.Command, flag string) uint {
	r, err := cmd.Flags().GetUint(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
	//
	return r
}

// Parse a formula given on the command line, exiting with a highlighted
// syntax error when it is malformed.
func readFormula(text string) logic.Expr {
	expr, err := logic.Parse(text)
	//
	if err == nil {
		return expr
	}
	// Handle error
	var syntax *logic.SyntaxError
	if errors.As(err, &syntax) {
		printSyntaxError(text, syntax)
	} else {
		fmt.Println(err)
	}
	//
	os.Exit(2)
	// unreachable
	return nil
}

// Print a syntax error with appropriate highlighting.
func printSyntaxError(text string, err *logic.SyntaxError) {
	fprintSyntaxError(os.Stdout, text, err)
}

func fprintSyntaxError(w io.Writer, text string, err *logic.SyntaxError) {
	fmt.Fprintf(w, "error: %s\n", err.Message)
	fmt.Fprintln(w, text)
	// Print indent, counting in runes since the error index is a rune offset.
	fmt.Fprint(w, strings.Repeat(" ", min(int(err.Index), len([]rune(text)))))
	// Print highlight
	fmt.Fprintln(w, "^")
}
