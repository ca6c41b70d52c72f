// Copyright 2025 Dimitrij Drus <dadrus@gmx.de>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

package flags

import "github.com/spf13/cobra"

func RegisterGlobalFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringP(Config, "c", "repository-config.yml",
		"Path to the YAML configuration document to validate.")
	cmd.PersistentFlags().StringP(Schema, "s", "repository-config-schema.json",
		"Path to the JSON schema the configuration document is validated against.")
	cmd.PersistentFlags().StringP(BaseDir, "d", "",
		"Directory relative document paths are resolved against.\n"+
			"Defaults to the current working directory.")
	cmd.PersistentFlags().String(Settings, "",
		"Path to confcheck's settings file.\n"+
			"If not provided, .confcheck.yaml in $PWD is used if present.")
	cmd.PersistentFlags().String(EnvironmentConfigPrefix, "CONFCHECK_",
		"Prefix for the environment variables to consider for\nloading settings from")
	cmd.PersistentFlags().StringP(Output, "o", "text",
		"Format of the validation result. One of text, json.")
	cmd.PersistentFlags().String(DefaultDraft, "2020-12",
		"JSON schema draft used for schemas without $schema.\n"+
			"One of 4, 6, 7, 2019-09, 2020-12.")
	cmd.PersistentFlags().Bool(AssertFormat, false,
		"Treat the format keyword as an assertion.")
	cmd.PersistentFlags().String(MaxFileSize, "10MB",
		"Maximum size of the configuration and schema documents.")
	cmd.PersistentFlags().String(LogLevel, "error",
		"Log level. One of trace, debug, info, warn, error.")
	cmd.PersistentFlags().String(LogFormat, "text",
		"Log format. One of text, gelf.")
}
