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

package parser

import (
	"strings"

	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/v2"
	"gopkg.in/yaml.v3"

	"github.com/dadrus/confcheck/internal/confcheck"
	"github.com/dadrus/confcheck/internal/x/errorchain"
	"github.com/dadrus/confcheck/internal/x/stringx"
)

func toRealType(val string) any {
	var parsed map[string]any

	// the yaml parser "guesses" the type and converts the given string to it.
	yaml.Unmarshal(stringx.ToBytes("val: "+val), &parsed) // nolint: errcheck

	if res, ok := parsed["val"]; ok {
		return res
	}

	return val
}

// envKey maps an environment variable name to a config key. A single
// underscore separates hierarchy levels, a double one stands for an
// underscore within a key, e.g. PREFIX_LOG_LEVEL is log.level and
// PREFIX_MAX__FILE__SIZE is max_file_size.
func envKey(prefix, name string) string {
	tmp := strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(name, prefix)), "__", `\:\`)
	tmp = strings.ReplaceAll(tmp, "_", ".")

	return strings.ReplaceAll(tmp, `\:\`, "_")
}

func koanfFromEnv(prefix string) (*koanf.Koanf, error) {
	parser := koanf.New(".")

	provider := env.Provider(".", env.Opt{
		Prefix: prefix,
		TransformFunc: func(key, val string) (string, any) {
			return envKey(prefix, key), toRealType(val)
		},
	})

	if err := parser.Load(provider, nil); err != nil {
		return nil, errorchain.NewWithMessagef(confcheck.ErrConfiguration,
			"failed to parse environment variables to config").CausedBy(err)
	}

	return parser, nil
}
