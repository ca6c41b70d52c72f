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
	"fmt"
	"io"

	"github.com/dadrus/confcheck/internal/x/stringx"
)

type textReporter struct {
	out    io.Writer
	errOut io.Writer
}

func (r *textReporter) Success(file string) error {
	_, err := fmt.Fprintf(r.out, "%s is valid\n", file)

	return err
}

func (r *textReporter) Failure(_ string, cause error) error {
	_, err := fmt.Fprintln(r.errOut, stringx.SingleLine(cause.Error()))

	return err
}
