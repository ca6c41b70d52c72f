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

package report

import (
	"io"

	"github.com/dadrus/confcheck/internal/confcheck"
	"github.com/dadrus/confcheck/internal/x/errorchain"
)

const (
	FormatText = "text"
	FormatJSON = "json"
)

// Reporter renders the outcome of a validation run. Success goes to the out
// stream, failures to the err stream.
type Reporter interface {
	Success(file string) error
	Failure(file string, err error) error
}

func New(format string, out, errOut io.Writer) (Reporter, error) {
	switch format {
	case FormatText, "":
		return &textReporter{out: out, errOut: errOut}, nil
	case FormatJSON:
		return &jsonReporter{out: out, errOut: errOut}, nil
	default:
		return nil, errorchain.NewWithMessagef(confcheck.ErrConfiguration,
			"unsupported output format %q", format)
	}
}
