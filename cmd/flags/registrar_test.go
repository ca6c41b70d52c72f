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
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
)

func TestRegisterGlobalFlags(t *testing.T) {
	t.Parallel()

	// GIVEN
	cmd := &cobra.Command{
		Use: "test",
	}

	// WHEN
	RegisterGlobalFlags(cmd)

	// THEN
	for _, tc := range []struct {
		name      string
		shorthand string
		defValue  string
	}{
		{name: Config, shorthand: "c", defValue: "repository-config.yml"},
		{name: Schema, shorthand: "s", defValue: "repository-config-schema.json"},
		{name: BaseDir, shorthand: "d"},
		{name: Settings},
		{name: EnvironmentConfigPrefix, defValue: "CONFCHECK_"},
		{name: Output, shorthand: "o", defValue: "text"},
		{name: DefaultDraft, defValue: "2020-12"},
		{name: AssertFormat, defValue: "false"},
		{name: MaxFileSize, defValue: "10MB"},
		{name: LogLevel, defValue: "error"},
		{name: LogFormat, defValue: "text"},
	} {
		flag := cmd.PersistentFlags().Lookup(tc.name)
		if assert.NotNil(t, flag, tc.name) {
			assert.Equal(t, tc.shorthand, flag.Shorthand, tc.name)
			assert.Equal(t, tc.defValue, flag.DefValue, tc.name)
			assert.NotEmpty(t, flag.Usage, tc.name)
		}
	}
}
