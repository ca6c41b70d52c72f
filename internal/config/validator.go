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
	"bytes"
	"errors"
	"io"
	"os"

	"github.com/drone/envsubst/v2"
	"github.com/knadh/koanf/maps"
	"gopkg.in/yaml.v3"

	"github.com/dadrus/confcheck/internal/confcheck"
	"github.com/dadrus/confcheck/internal/validator"
	"github.com/dadrus/confcheck/internal/x/errorchain"
	"github.com/dadrus/confcheck/internal/x/stringx"
	"github.com/dadrus/confcheck/schema"
)

// ValidateSettingsSchema checks the settings file against the embedded settings schema.
func ValidateSettingsSchema(settingsPath string) error {
	raw, err := os.ReadFile(settingsPath)
	if err != nil {
		return errorchain.NewWithMessagef(confcheck.ErrConfiguration,
			"failed to read %s", settingsPath).CausedBy(err)
	}

	content, err := envsubst.EvalEnv(stringx.ToString(raw))
	if err != nil {
		return errorchain.NewWithMessage(confcheck.ErrConfiguration,
			"failed to substitute environment variables").CausedBy(err)
	}

	var conf map[string]any

	err = yaml.NewDecoder(bytes.NewBufferString(content)).Decode(&conf)
	if err != nil && !errors.Is(err, io.EOF) {
		return errorchain.NewWithMessagef(confcheck.ErrConfiguration,
			"failed to parse %s", settingsPath).CausedBy(err)
	}

	if conf == nil {
		conf = map[string]any{}
	}

	maps.IntfaceKeysToStrings(conf)

	compiledSchema, err := validator.CompileBytes("settings.schema.json", schema.SettingsSchema)
	if err != nil {
		return errorchain.NewWithMessage(confcheck.ErrConfiguration,
			"failed to compile JSON schema").CausedBy(err)
	}

	if err = compiledSchema.Validate(conf); err != nil {
		if violation, ok := validator.FirstViolation(err); ok {
			return errorchain.NewWithMessage(confcheck.ErrConfiguration, violation.Error())
		}

		return errorchain.New(confcheck.ErrConfiguration).CausedBy(err)
	}

	return nil
}
