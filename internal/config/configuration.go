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

package config

import (
	"path/filepath"

	"github.com/inhies/go-bytesize"

	"github.com/dadrus/confcheck/internal/confcheck"
	"github.com/dadrus/confcheck/internal/config/parser"
	"github.com/dadrus/confcheck/internal/validation"
	"github.com/dadrus/confcheck/internal/x/errorchain"
)

const settingsFileName = ".confcheck.yaml"

type (
	EnvVarPrefix string
	SettingsPath string
)

type Configuration struct {
	ConfigFile   string            `koanf:"config_file"   validate:"required"`
	SchemaFile   string            `koanf:"schema_file"   validate:"required"`
	BaseDir      string            `koanf:"base_dir"`
	MaxFileSize  bytesize.ByteSize `koanf:"max_file_size" validate:"gt=0"`
	DefaultDraft string            `koanf:"default_draft" validate:"oneof=4 6 7 2019-09 2020-12"`
	AssertFormat bool              `koanf:"assert_format"`
	Output       string            `koanf:"output"        validate:"oneof=text json"`
	Log          LoggingConfig     `koanf:"log"`
}

func NewConfiguration(envPrefix EnvVarPrefix, settingsPath SettingsPath) (*Configuration, error) {
	// copy defaults
	result := defaultConfig()

	err := parser.New(
		parser.WithDecodeHookFunc(logLevelDecodeHookFunc),
		parser.WithDecodeHookFunc(logFormatDecodeHookFunc),
		parser.WithDecodeHookFunc(StringToByteSizeHookFunc()),
		parser.WithConfigFile(string(settingsPath)),
		parser.WithDefaultConfigFilename(settingsFileName),
		parser.WithConfigLookupDir("."),
		parser.WithEnvPrefix(string(envPrefix)),
		parser.WithConfigValidator(ValidateSettingsSchema),
	).Load(&result)
	if err != nil {
		return nil, errorchain.NewWithMessage(confcheck.ErrConfiguration,
			"failed loading settings").CausedBy(err)
	}

	return &result, nil
}

func (c *Configuration) Validate() error {
	v, err := validation.NewValidator()
	if err != nil {
		return errorchain.NewWithMessage(confcheck.ErrConfiguration,
			"failed creating settings validator").CausedBy(err)
	}

	if err = v.ValidateStruct(c); err != nil {
		return errorchain.NewWithMessage(confcheck.ErrConfiguration,
			"invalid settings").CausedBy(err)
	}

	return nil
}

// ConfigPath returns the path of the config document, resolved against the base directory.
func (c *Configuration) ConfigPath() string { return c.resolve(c.ConfigFile) }

// SchemaPath returns the path of the schema document, resolved against the base directory.
func (c *Configuration) SchemaPath() string { return c.resolve(c.SchemaFile) }

func (c *Configuration) resolve(path string) string {
	if len(c.BaseDir) == 0 || filepath.IsAbs(path) {
		return path
	}

	return filepath.Join(c.BaseDir, path)
}
