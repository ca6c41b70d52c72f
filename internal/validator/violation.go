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
	"cmp"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/dadrus/confcheck/internal/x/stringx"
)

// Violation is a single failed schema constraint.
type Violation struct {
	InstanceLocation []string
	SchemaURL        string
	KeywordLocation  []string
	Message          string
}

// Location returns the JSON pointer of the violating value. The document root
// is rendered as "/".
func (v *Violation) Location() string {
	return pointer(v.InstanceLocation)
}

func (v *Violation) Error() string {
	return fmt.Sprintf("at '%s': %s", v.Location(), v.Message)
}

// FirstViolation picks the first violation out of errors raised while
// validating an instance or, for meta-schema violations, while compiling a
// schema. The library reports violations in map iteration order. To have
// stable results, the leaves of the error tree are ordered by the depth and
// the location of the violating value and the keyword location.
func FirstViolation(err error) (*Violation, bool) {
	var schemaErr *jsonschema.SchemaValidationError
	if errors.As(err, &schemaErr) {
		err = schemaErr.Err
	}

	var validationErr *jsonschema.ValidationError
	if !errors.As(err, &validationErr) {
		return nil, false
	}

	printer := message.NewPrinter(language.English)
	violations := collect(validationErr, printer, nil)

	slices.SortFunc(violations, func(a, b *Violation) int {
		return cmp.Or(
			cmp.Compare(len(a.InstanceLocation), len(b.InstanceLocation)),
			slices.Compare(a.InstanceLocation, b.InstanceLocation),
			cmp.Compare(a.SchemaURL, b.SchemaURL),
			slices.Compare(a.KeywordLocation, b.KeywordLocation),
			cmp.Compare(a.Message, b.Message),
		)
	})

	return violations[0], true
}

func collect(err *jsonschema.ValidationError, printer *message.Printer, violations []*Violation) []*Violation {
	if len(err.Causes) != 0 {
		for _, cause := range err.Causes {
			violations = collect(cause, printer, violations)
		}

		return violations
	}

	return append(violations, &Violation{
		InstanceLocation: err.InstanceLocation,
		SchemaURL:        err.SchemaURL,
		KeywordLocation:  err.ErrorKind.KeywordPath(),
		Message:          stringx.SingleLine(err.ErrorKind.LocalizedString(printer)),
	})
}

func pointer(tokens []string) string {
	if len(tokens) == 0 {
		return "/"
	}

	var sb strings.Builder

	replacer := strings.NewReplacer("~", "~0", "/", "~1")
	for _, token := range tokens {
		sb.WriteString("/")
		sb.WriteString(replacer.Replace(token))
	}

	return sb.String()
}

