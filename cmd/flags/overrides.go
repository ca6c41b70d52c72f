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

import (
	"github.com/inhies/go-bytesize"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/dadrus/confcheck/internal/confcheck"
	"github.com/dadrus/confcheck/internal/config"
	"github.com/dadrus/confcheck/internal/x/errorchain"
)

// ApplyOverrides sets the settings for which a flag has been given explicitly.
func ApplyOverrides(cmd *cobra.Command, conf *config.Configuration) error {
	var err error

	cmd.Flags().Visit(func(flag *pflag.Flag) {
		if err != nil {
			return
		}

		err = applyFlag(flag, conf)
	})

	return err
}

// nolint: cyclop
func applyFlag(flag *pflag.Flag, conf *config.Configuration) error {
	value := flag.Value.String()

	switch flag.Name {
	case Config:
		conf.ConfigFile = value
	case Schema:
		conf.SchemaFile = value
	case BaseDir:
		conf.BaseDir = value
	case Output:
		conf.Output = value
	case DefaultDraft:
		conf.DefaultDraft = value
	case AssertFormat:
		conf.AssertFormat = value == "true"
	case MaxFileSize:
		size, err := bytesize.Parse(value)
		if err != nil {
			return errorchain.NewWithMessagef(confcheck.ErrConfiguration,
				"invalid value %q for --%s", value, MaxFileSize).CausedBy(err)
		}

		conf.MaxFileSize = size
	case LogLevel:
		level, err := zerolog.ParseLevel(value)
		if err != nil {
			return errorchain.NewWithMessagef(confcheck.ErrConfiguration,
				"invalid value %q for --%s", value, LogLevel).CausedBy(err)
		}

		conf.Log.Level = level
	case LogFormat:
		switch value {
		case config.LogTextFormat.String():
			conf.Log.Format = config.LogTextFormat
		case config.LogGelfFormat.String():
			conf.Log.Format = config.LogGelfFormat
		default:
			return errorchain.NewWithMessagef(confcheck.ErrConfiguration,
				"invalid value %q for --%s", value, LogFormat)
		}
	}

	return nil
}
