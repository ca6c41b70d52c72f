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
	"errors"
	"io"

	"github.com/goccy/go-json"

	"github.com/dadrus/confcheck/internal/x/errorchain"
	"github.com/dadrus/confcheck/internal/x/stringx"
)

type result struct {
	Valid bool   `json:"valid"`
	File  string `json:"file"`
	Error any    `json:"error,omitempty"`
}

type plainError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type jsonReporter struct {
	out    io.Writer
	errOut io.Writer
}

func (r *jsonReporter) Success(file string) error {
	return json.NewEncoder(r.out).Encode(result{Valid: true, File: file})
}

func (r *jsonReporter) Failure(file string, cause error) error {
	return json.NewEncoder(r.errOut).Encode(result{File: file, Error: errorPayload(cause)})
}

func errorPayload(err error) any {
	var chain *errorchain.ErrorChain
	if errors.As(err, &chain) {
		return chain
	}

	return plainError{
		Code:    "error",
		Message: stringx.SingleLine(err.Error()),
	}
}
