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

package cmd

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/dadrus/confcheck/cmd/flags"
	"github.com/dadrus/confcheck/internal/config"
	"github.com/dadrus/confcheck/internal/logging"
	"github.com/dadrus/confcheck/internal/report"
	"github.com/dadrus/confcheck/internal/validator"
)

// validate runs a single validation pass and reports its outcome. It returns
// true if the configuration document is valid.
func validate(cmd *cobra.Command) bool {
	conf, err := loadConfiguration(cmd)
	if err != nil {
		reportFailure(cmd, fallbackReporter(cmd), "", err)

		return false
	}

	reporter, err := report.New(conf.Output, cmd.OutOrStdout(), cmd.ErrOrStderr())
	if err != nil {
		reportFailure(cmd, fallbackReporter(cmd), conf.ConfigPath(), err)

		return false
	}

	logger := logging.NewLogger(conf.Log, cmd.ErrOrStderr())

	draft, err := validator.DraftByName(conf.DefaultDraft)
	if err != nil {
		reportFailure(cmd, reporter, conf.ConfigPath(), err)

		return false
	}

	v := validator.New(conf.ConfigPath(), conf.SchemaPath(),
		validator.WithMaxFileSize(conf.MaxFileSize),
		validator.WithLogger(logger),
		validator.WithCompilerOptions(
			validator.WithDefaultDraft(draft),
			validator.WithFormatAssertion(conf.AssertFormat),
		),
	)

	if err = v.Validate(); err != nil {
		logger.Debug().Err(err).Msg("Validation failed")
		reportFailure(cmd, reporter, v.ConfigFile(), err)

		return false
	}

	if err = reporter.Success(v.ConfigFile()); err != nil {
		logger.Error().Err(err).Msg("Failed writing validation result")

		return false
	}

	return true
}

func loadConfiguration(cmd *cobra.Command) (*config.Configuration, error) {
	envPrefix, _ := cmd.Flags().GetString(flags.EnvironmentConfigPrefix)
	settingsPath, _ := cmd.Flags().GetString(flags.Settings)

	conf, err := config.NewConfiguration(
		config.EnvVarPrefix(envPrefix),
		config.SettingsPath(settingsPath),
	)
	if err != nil {
		return nil, err
	}

	if err = flags.ApplyOverrides(cmd, conf); err != nil {
		return nil, err
	}

	if err = conf.Validate(); err != nil {
		return nil, err
	}

	return conf, nil
}

func fallbackReporter(cmd *cobra.Command) report.Reporter {
	output, _ := cmd.Flags().GetString(flags.Output)

	reporter, err := report.New(output, cmd.OutOrStdout(), cmd.ErrOrStderr())
	if err != nil {
		reporter, _ = report.New(report.FormatText, cmd.OutOrStdout(), cmd.ErrOrStderr())
	}

	return reporter
}

func reportFailure(cmd *cobra.Command, reporter report.Reporter, file string, cause error) {
	if err := reporter.Failure(file, cause); err != nil {
		logger := zerolog.New(cmd.ErrOrStderr())
		logger.Error().Err(err).Msg("Failed writing validation result")
	}
}
