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
	"os"

	"github.com/spf13/cobra"

	"github.com/indexql/indexql/pkg/logger"
	"github.com/indexql/indexql/pkg/logical"
)

func newExplainCmd() *cobra.Command {
	var queryFile, schemaFile string
	explainCmd := &cobra.Command{
		Use:           "explain",
		Short:         "Analyze a query document against a schema and print the logical plan",
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(_ *cobra.Command, _ []string) error {
			l := logger.GetLogger("explain")
			rawQuery, err := os.ReadFile(queryFile)
			if err != nil {
				return err
			}
			rawSchema, err := os.ReadFile(schemaFile)
			if err != nil {
				return err
			}
			schema, err := parseSchema(rawSchema)
			if err != nil {
				return err
			}
			unresolved, err := parseQuery(rawQuery)
			if err != nil {
				return err
			}
			plan, err := unresolved.Analyze(schema)
			if err != nil {
				return err
			}
			if err := logical.Validate(plan); err != nil {
				return err
			}
			l.Debug().Str("query", queryFile).Str("schema", schemaFile).Msg("analyzed query")
			fmt.Print(logical.Format(plan))
			return nil
		},
	}
	explainCmd.Flags().StringVarP(&queryFile, "query", "q", "", "path to the YAML query document")
	explainCmd.Flags().StringVarP(&schemaFile, "schema", "s", "", "path to the YAML source schema")
	_ = explainCmd.MarkFlagRequired("query")
	_ = explainCmd.MarkFlagRequired("schema")
	return explainCmd
}
