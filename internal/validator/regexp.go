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

package validator

import (
	"time"

	"github.com/dlclark/regexp2"
	"github.com/santhosh-tekuri/jsonschema/v6"
)

const regexpMatchTimeout = 2 * time.Second

// ecmaRegexp makes regexp2 usable by the jsonschema compiler. JSON schema
// patterns follow ECMA-262 which, unlike RE2, supports lookarounds and
// backreferences.
type ecmaRegexp struct {
	re *regexp2.Regexp
}

func (r ecmaRegexp) MatchString(value string) bool {
	matched, err := r.re.MatchString(value)

	return err == nil && matched
}

func (r ecmaRegexp) String() string { return r.re.String() }

func compileECMARegexp(expr string) (jsonschema.Regexp, error) {
	re, err := regexp2.Compile(expr, regexp2.ECMAScript)
	if err != nil {
		return nil, err
	}

	re.MatchTimeout = regexpMatchTimeout

	return ecmaRegexp{re: re}, nil
}
