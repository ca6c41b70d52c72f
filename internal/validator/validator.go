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
	"github.com/inhies/go-bytesize"
	"github.com/rs/zerolog"

	"github.com/dadrus/confcheck/internal/confcheck"
	"github.com/dadrus/confcheck/internal/document"
	"github.com/dadrus/confcheck/internal/x/errorchain"
)

type options struct {
	maxFileSize  bytesize.ByteSize
	compilerOpts []CompilerOption
	logger       zerolog.Logger
}

type Option func(o *options)

func WithMaxFileSize(size bytesize.ByteSize) Option {
	return func(o *options) {
		o.maxFileSize = size
	}
}

func WithCompilerOptions(opts ...CompilerOption) Option {
	return func(o *options) {
		o.compilerOpts = append(o.compilerOpts, opts...)
	}
}

func WithLogger(logger zerolog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// Validator checks a YAML config document against a JSON schema document.
type Validator struct {
	configFile string
	schemaFile string
	o          options
}

func New(configFile, schemaFile string, opts ...Option) *Validator {
	validator := &Validator{
		configFile: configFile,
		schemaFile: schemaFile,
		o:          options{logger: zerolog.Nop()},
	}

	for _, opt := range opts {
		opt(&validator.o)
	}

	return validator
}

func (v *Validator) ConfigFile() string { return v.configFile }

func (v *Validator) SchemaFile() string { return v.schemaFile }

// Validate loads both documents and validates the config against the schema.
// The returned error is headed by confcheck.ErrConfigDocument,
// confcheck.ErrSchemaDocument or confcheck.ErrValidation. Loading stops at
// the first failing step.
func (v *Validator) Validate() error {
	logger := v.o.logger

	logger.Debug().Str("_file", v.configFile).Msg("Loading config document")

	instance, err := document.LoadConfig(v.configFile, v.o.maxFileSize)
	if err != nil {
		return err
	}

	logger.Debug().Str("_file", v.schemaFile).Msg("Loading schema document")

	schemaDoc, err := document.LoadSchema(v.schemaFile, v.o.maxFileSize)
	if err != nil {
		return err
	}

	schemaURL, err := fileURL(v.schemaFile)
	if err != nil {
		return errorchain.NewWithMessagef(confcheck.ErrSchemaDocument,
			"failed to resolve location of schema %s", v.schemaFile).CausedBy(err)
	}

	logger.Debug().Str("_url", schemaURL).Msg("Compiling schema")

	schema, err := Compile(schemaURL, schemaDoc, v.o.compilerOpts...)
	if err != nil {
		chain := errorchain.NewWithMessagef(confcheck.ErrSchemaDocument,
			"failed to compile schema %s", v.schemaFile)

		if violation, ok := FirstViolation(err); ok {
			return chain.CausedBy(violation)
		}

		return chain.CausedBy(err)
	}

	if err = schema.Validate(instance); err != nil {
		violation, ok := FirstViolation(err)
		if !ok {
			return errorchain.New(confcheck.ErrValidation).CausedBy(err)
		}

		logger.Debug().Str("_location", violation.Location()).Msg("Config document violates the schema")

		return errorchain.NewWithMessage(confcheck.ErrValidation, violation.Error()).
			WithErrorContext(violation)
	}

	logger.Debug().Str("_file", v.configFile).Msg("Config document is valid")

	return nil
}
