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
	"os"
	"path/filepath"
	"testing"

	"github.com/inhies/go-bytesize"
	"github.com/rs/zerolog"
	"github.com/santhosh-tekuri/jsonschema/v6"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dadrus/confcheck/internal/confcheck"
	"github.com/dadrus/confcheck/internal/document"
)

const testSchema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "object",
  "required": ["name", "version"],
  "properties": {
    "name": {"type": "string"},
    "version": {"type": "string", "pattern": "^\\d+\\.\\d+\\.\\d+$"}
  }
}`

func writeFiles(t *testing.T, files map[string]string) string {
	t.Helper()

	dir := t.TempDir()

	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o600))
	}

	return dir
}

func TestValidatorValidate(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		uc     string
		files  map[string]string
		opts   []Option
		assert func(t *testing.T, err error)
	}{
		{
			uc: "config matches schema",
			files: map[string]string{
				"config.yml":  "name: foo\nversion: 1.2.3\n",
				"schema.json": testSchema,
			},
			assert: func(t *testing.T, err error) {
				t.Helper()

				require.NoError(t, err)
			},
		},
		{
			uc: "missing required property",
			files: map[string]string{
				"config.yml":  `{"name": "x"}`,
				"schema.json": `{"type":"object","required":["name","version"]}`,
			},
			assert: func(t *testing.T, err error) {
				t.Helper()

				require.Error(t, err)
				require.ErrorIs(t, err, confcheck.ErrValidation)
				assert.Contains(t, err.Error(), "version")
				assert.Equal(t, "validation error: at '/': missing property 'version'", err.Error())

				var violation *Violation
				require.ErrorAs(t, err, &violation)
				assert.Equal(t, "/", violation.Location())
			},
		},
		{
			uc: "pattern violation",
			files: map[string]string{
				"config.yml":  "name: foo\nversion: latest\n",
				"schema.json": testSchema,
			},
			assert: func(t *testing.T, err error) {
				t.Helper()

				require.Error(t, err)
				require.ErrorIs(t, err, confcheck.ErrValidation)
				assert.Contains(t, err.Error(), "/version")
			},
		},
		{
			uc: "malformed yaml is reported without touching the schema",
			files: map[string]string{
				"config.yml": "name: foo\n  version: 1\n",
			},
			assert: func(t *testing.T, err error) {
				t.Helper()

				require.Error(t, err)
				require.ErrorIs(t, err, confcheck.ErrConfigDocument)
				require.NotErrorIs(t, err, confcheck.ErrSchemaDocument)
				assert.Contains(t, err.Error(), "config.yml")
			},
		},
		{
			uc: "missing config file",
			files: map[string]string{
				"schema.json": testSchema,
			},
			assert: func(t *testing.T, err error) {
				t.Helper()

				require.Error(t, err)
				require.ErrorIs(t, err, confcheck.ErrConfigDocument)
				require.ErrorIs(t, err, os.ErrNotExist)
			},
		},
		{
			uc: "malformed schema is reported without validation",
			files: map[string]string{
				"config.yml":  "name: foo\n",
				"schema.json": `{"type": "object"`,
			},
			assert: func(t *testing.T, err error) {
				t.Helper()

				require.Error(t, err)
				require.ErrorIs(t, err, confcheck.ErrSchemaDocument)
				require.NotErrorIs(t, err, confcheck.ErrValidation)
				assert.Contains(t, err.Error(), "failed to load schema")
			},
		},
		{
			uc: "schema violating its meta schema",
			files: map[string]string{
				"config.yml":  "name: foo\n",
				"schema.json": `{"type": "objekt"}`,
			},
			assert: func(t *testing.T, err error) {
				t.Helper()

				require.Error(t, err)
				require.ErrorIs(t, err, confcheck.ErrSchemaDocument)
				assert.Contains(t, err.Error(), "failed to compile schema")
				assert.Contains(t, err.Error(), "/type")
			},
		},
		{
			uc: "reference to a sibling schema file",
			files: map[string]string{
				"config.yml":     "db: {}\n",
				"schema.json":    `{"type": "object", "properties": {"db": {"$ref": "db.schema.json"}}}`,
				"db.schema.json": `{"type": "object", "required": ["host"]}`,
			},
			assert: func(t *testing.T, err error) {
				t.Helper()

				require.Error(t, err)
				require.ErrorIs(t, err, confcheck.ErrValidation)
				assert.Equal(t, "validation error: at '/db': missing property 'host'", err.Error())
			},
		},
		{
			uc: "unresolvable reference",
			files: map[string]string{
				"config.yml":  "db: {}\n",
				"schema.json": `{"type": "object", "properties": {"db": {"$ref": "missing.schema.json"}}}`,
			},
			assert: func(t *testing.T, err error) {
				t.Helper()

				require.Error(t, err)
				require.ErrorIs(t, err, confcheck.ErrSchemaDocument)
			},
		},
		{
			uc: "empty config is validated as null",
			files: map[string]string{
				"config.yml":  "",
				"schema.json": `{"type": "object"}`,
			},
			assert: func(t *testing.T, err error) {
				t.Helper()

				require.Error(t, err)
				require.ErrorIs(t, err, confcheck.ErrValidation)
				assert.Contains(t, err.Error(), "null")
			},
		},
		{
			uc: "file size limit",
			files: map[string]string{
				"config.yml":  "name: foo\nversion: 1.2.3\n",
				"schema.json": testSchema,
			},
			opts: []Option{WithMaxFileSize(16 * bytesize.B)},
			assert: func(t *testing.T, err error) {
				t.Helper()

				require.Error(t, err)
				require.ErrorIs(t, err, confcheck.ErrConfigDocument)
				require.ErrorIs(t, err, document.ErrFileTooLarge)
			},
		},
		{
			uc: "date is validated as string",
			files: map[string]string{
				"config.yml":  "released: 2024-01-02\n",
				"schema.json": `{"properties": {"released": {"type": "string", "format": "date"}}}`,
			},
			opts: []Option{WithCompilerOptions(WithFormatAssertion(true))},
			assert: func(t *testing.T, err error) {
				t.Helper()

				require.NoError(t, err)
			},
		},
		{
			uc: "datetime matches enum",
			files: map[string]string{
				"config.yml":  "released: 2024-01-02T10:00:00Z\n",
				"schema.json": `{"properties": {"released": {"enum": ["2024-01-02T10:00:00Z"]}}}`,
			},
			assert: func(t *testing.T, err error) {
				t.Helper()

				require.NoError(t, err)
			},
		},
		{
			uc: "date violating a pattern",
			files: map[string]string{
				"config.yml":  "released: 2024-01-02\n",
				"schema.json": `{"properties": {"released": {"type": "string", "pattern": "^2025-"}}}`,
			},
			assert: func(t *testing.T, err error) {
				t.Helper()

				require.Error(t, err)
				require.ErrorIs(t, err, confcheck.ErrValidation)
				assert.Contains(t, err.Error(), "at '/released'")
			},
		},
		{
			uc: "nan against numeric keyword",
			files: map[string]string{
				"config.yml":  "x: .nan\n",
				"schema.json": `{"properties": {"x": {"minimum": 0}}}`,
			},
			assert: func(t *testing.T, err error) {
				t.Helper()

				require.Error(t, err)
				require.ErrorIs(t, err, confcheck.ErrConfigDocument)
				require.ErrorIs(t, err, document.ErrNotRepresentable)
				assert.Contains(t, err.Error(), "value at /x is not representable in JSON")
			},
		},
		{
			uc: "infinity in unique items",
			files: map[string]string{
				"config.yml":  "x: [1, -.inf]\n",
				"schema.json": `{"properties": {"x": {"uniqueItems": true, "multipleOf": 1}}}`,
			},
			assert: func(t *testing.T, err error) {
				t.Helper()

				require.Error(t, err)
				require.ErrorIs(t, err, confcheck.ErrConfigDocument)
				assert.Contains(t, err.Error(), "value at /x/1 is not representable in JSON")
			},
		},
		{
			uc: "default draft from options",
			files: map[string]string{
				"config.yml":  "n: 5\n",
				"schema.json": `{"properties": {"n": {"maximum": 5, "exclusiveMaximum": true}}}`,
			},
			opts: []Option{WithCompilerOptions(WithDefaultDraft(jsonschema.Draft4))},
			assert: func(t *testing.T, err error) {
				t.Helper()

				require.Error(t, err)
				require.ErrorIs(t, err, confcheck.ErrValidation)
				assert.Contains(t, err.Error(), "/n")
			},
		},
	} {
		t.Run(tc.uc, func(t *testing.T) {
			t.Parallel()

			// GIVEN
			dir := writeFiles(t, tc.files)
			validator := New(
				filepath.Join(dir, "config.yml"),
				filepath.Join(dir, "schema.json"),
				tc.opts...,
			)

			// WHEN
			err := validator.Validate()

			// THEN
			tc.assert(t, err)
		})
	}
}

func TestValidatorValidateIsIdempotent(t *testing.T) {
	t.Parallel()

	// GIVEN
	dir := writeFiles(t, map[string]string{
		"config.yml":  "name: 1\nversion: 2\nextra: {a: 1}\n",
		"schema.json": testSchema,
	})
	validator := New(filepath.Join(dir, "config.yml"), filepath.Join(dir, "schema.json"))

	// WHEN
	first := validator.Validate()
	second := validator.Validate()

	// THEN
	require.Error(t, first)
	require.Error(t, second)
	assert.Equal(t, first.Error(), second.Error())
}

func TestValidatorLogsSteps(t *testing.T) {
	t.Parallel()

	// GIVEN
	dir := writeFiles(t, map[string]string{
		"config.yml":  "name: foo\nversion: 1.2.3\n",
		"schema.json": testSchema,
	})

	buf := &bytes.Buffer{}
	validator := New(
		filepath.Join(dir, "config.yml"),
		filepath.Join(dir, "schema.json"),
		WithLogger(zerolog.New(buf).Level(zerolog.DebugLevel)),
	)

	// WHEN
	err := validator.Validate()

	// THEN
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "Loading config document")
	assert.Contains(t, buf.String(), "Loading schema document")
	assert.Contains(t, buf.String(), "Compiling schema")
	assert.Contains(t, buf.String(), "Config document is valid")
	assert.Equal(t, filepath.Join(dir, "config.yml"), validator.ConfigFile())
	assert.Equal(t, filepath.Join(dir, "schema.json"), validator.SchemaFile())
}
