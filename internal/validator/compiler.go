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
	"bytes"
	"net/url"
	"path/filepath"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v6"

	"github.com/dadrus/confcheck/internal/confcheck"
	"github.com/dadrus/confcheck/internal/x/errorchain"
)

type compilerOptions struct {
	defaultDraft *jsonschema.Draft
	assertFormat bool
	regexpEngine jsonschema.RegexpEngine
}

type CompilerOption func(o *compilerOptions)

// WithDefaultDraft sets the draft used for schemas not declaring one via $schema.
func WithDefaultDraft(draft *jsonschema.Draft) CompilerOption {
	return func(o *compilerOptions) {
		if draft != nil {
			o.defaultDraft = draft
		}
	}
}

// WithFormatAssertion lets the "format" keyword fail the validation instead of
// being treated as annotation only.
func WithFormatAssertion(flag bool) CompilerOption {
	return func(o *compilerOptions) {
		o.assertFormat = flag
	}
}

// Compile compiles the given schema document registered under the given url.
// Relative references are resolved against that url.
func Compile(url string, doc any, opts ...CompilerOption) (*jsonschema.Schema, error) {
	options := compilerOptions{
		defaultDraft: jsonschema.Draft2020,
		regexpEngine: compileECMARegexp,
	}

	for _, opt := range opts {
		opt(&options)
	}

	compiler := jsonschema.NewCompiler()
	compiler.DefaultDraft(options.defaultDraft)
	compiler.UseRegexpEngine(options.regexpEngine)

	if options.assertFormat {
		compiler.AssertFormat()
	}

	if err := compiler.AddResource(url, doc); err != nil {
		return nil, err
	}

	return compiler.Compile(url)
}

// CompileBytes compiles a schema given as raw JSON.
func CompileBytes(url string, raw []byte, opts ...CompilerOption) (*jsonschema.Schema, error) {
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
	if err != nil {
		return nil, err
	}

	return Compile(url, doc, opts...)
}

// DraftByName maps the names of the supported JSON schema drafts (4, 6, 7,
// 2019-09 and 2020-12) to the corresponding draft implementations. An empty
// name selects 2020-12.
func DraftByName(name string) (*jsonschema.Draft, error) {
	switch name {
	case "4":
		return jsonschema.Draft4, nil
	case "6":
		return jsonschema.Draft6, nil
	case "7":
		return jsonschema.Draft7, nil
	case "2019-09":
		return jsonschema.Draft2019, nil
	case "", "2020-12":
		return jsonschema.Draft2020, nil
	default:
		return nil, errorchain.NewWithMessagef(confcheck.ErrConfiguration,
			"unsupported JSON schema draft %q", name)
	}
}

func fileURL(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}

	location := filepath.ToSlash(abs)
	if !strings.HasPrefix(location, "/") {
		// windows volume names
		location = "/" + location
	}

	return (&url.URL{Scheme: "file", Path: location}).String(), nil
}
