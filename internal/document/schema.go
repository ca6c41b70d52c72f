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

package document

import (
	"bytes"

	"github.com/inhies/go-bytesize"
	"github.com/santhosh-tekuri/jsonschema/v6"

	"github.com/dadrus/confcheck/internal/confcheck"
	"github.com/dadrus/confcheck/internal/x/errorchain"
)

// LoadSchema reads the JSON schema file at the given path. Numbers are kept
// as json.Number to not lose precision before the schema gets compiled.
func LoadSchema(path string, maxSize bytesize.ByteSize) (any, error) {
	raw, err := readFile(path, maxSize)
	if err != nil {
		return nil, errorchain.NewWithMessagef(confcheck.ErrSchemaDocument,
			"failed to read schema %s", path).CausedBy(err)
	}

	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
	if err != nil {
		return nil, errorchain.NewWithMessagef(confcheck.ErrSchemaDocument,
			"failed to load schema %s", path).CausedBy(err)
	}

	return doc, nil
}
