// Licensed to Apache Software Foundation (ASF) under one or more contributor
// license agreements. See the NOTICE file distributed with
// this work for additional information regarding copyright
// ownership. Apache Software Foundation (ASF) licenses this file to you under
// the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing,
// software distributed under the License is distributed on an
// "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
// KIND, either express or implied.  See the License for the
// specific language governing permissions and limitations
// under the License.

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/indexql/indexql/pkg/function"
)

func newFunctionsCmd() *cobra.Command {
	var verbose bool
	functionsCmd := &cobra.Command{
		Use:   "functions",
		Short: "List the built-in scalar functions",
		Run: func(_ *cobra.Command, _ []string) {
			function.Default().Each(func(name string, signatures []*function.Signature) {
				if !verbose {
					fmt.Printf("%s (%d overloads)\n", name, len(signatures))
					return
				}
				fmt.Println(name)
				for _, sig := range signatures {
					fmt.Printf("  %s\n", sig)
				}
			})
		},
	}
	functionsCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "print every overload signature")
	return functionsCmd
}
