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

// Package cmd implements the iqlctl command tree.
package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/indexql/indexql/pkg/logger"
	"github.com/indexql/indexql/pkg/version"
)

var (
	logEnv   string
	logLevel string
)

// NewRoot returns the root command.
func NewRoot() *cobra.Command {
	cmd := &cobra.Command{
		Use:               "iqlctl",
		DisableAutoGenTag: true,
		Version:           version.Build(),
		Short:             "iqlctl is the command line tool of the indexql query engine",
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			viper.SetConfigType("yaml")
			viper.SetConfigName("config")
			viper.AddConfigPath(".")
			viper.SetEnvPrefix("iqlctl")
			viper.AutomaticEnv()
			// A config file is optional.
			if err := viper.ReadInConfig(); err != nil {
				if _, notFound := err.(viper.ConfigFileNotFoundError); !notFound {
					return err
				}
			}
			return logger.Init(logger.Logging{Env: logEnv, Level: logLevel})
		},
	}
	cmd.PersistentFlags().StringVar(&logEnv, "log-env", "prod", "the logging environment, prod or dev")
	cmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "the root logging level")
	cmd.AddCommand(newExplainCmd(), newFunctionsCmd(), newVersionCmd())
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version information",
		Run: func(_ *cobra.Command, _ []string) {
			version.Show("iqlctl")
		},
	}
}
