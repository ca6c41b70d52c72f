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
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/inhies/go-bytesize"
	"gopkg.in/yaml.v3"

	"github.com/dadrus/confcheck/internal/confcheck"
	"github.com/dadrus/confcheck/internal/x/errorchain"
)

var (
	ErrMultipleDocuments = errors.New("expected a single document in the stream")
	ErrNotRepresentable  = errors.New("unsupported value")
)

// LoadConfig reads the YAML file at the given path and returns its content as
// a tree of JSON compatible values. An empty file results in a nil document.
func LoadConfig(path string, maxSize bytesize.ByteSize) (any, error) {
	raw, err := readFile(path, maxSize)
	if err != nil {
		return nil, errorchain.NewWithMessagef(confcheck.ErrConfigDocument,
			"failed to read %s", path).CausedBy(err)
	}

	doc, err := decodeYAML(raw)
	if err != nil {
		return nil, errorchain.NewWithMessagef(confcheck.ErrConfigDocument,
			"failed to parse %s", path).CausedBy(err)
	}

	return doc, nil
}

func decodeYAML(raw []byte) (any, error) {
	var root yaml.Node

	dec := yaml.NewDecoder(bytes.NewReader(raw))
	if err := dec.Decode(&root); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}

		return nil, err
	}

	var next yaml.Node
	if err := dec.Decode(&next); !errors.Is(err, io.EOF) {
		if err != nil {
			return nil, err
		}

		return nil, ErrMultipleDocuments
	}

	if root.Kind == yaml.DocumentNode && len(root.Content) == 0 {
		return nil, nil
	}

	keepTimestampsAsText(&root)

	var doc any
	if err := root.Decode(&doc); err != nil {
		return nil, err
	}

	return normalize(doc, nil)
}

// keepTimestampsAsText retags timestamp scalars as strings, so they are
// decoded to their source text instead of time.Time.
func keepTimestampsAsText(node *yaml.Node) {
	if node.Kind == yaml.ScalarNode && node.ShortTag() == "!!timestamp" {
		node.Tag = "!!str"
	}

	for _, child := range node.Content {
		keepTimestampsAsText(child)
	}
}

// normalize turns mappings with non string keys, which yaml produces for e.g.
// numeric keys, into string keyed ones, as only these are valid JSON objects.
// Non-finite numbers (.nan, .inf) have no JSON representation and are rejected.
func normalize(val any, location []string) (any, error) {
	switch typed := val.(type) {
	case map[string]any:
		for key, entry := range typed {
			res, err := normalize(entry, append(location, key))
			if err != nil {
				return nil, err
			}

			typed[key] = res
		}

		return typed, nil
	case map[any]any:
		result := make(map[string]any, len(typed))

		for key, entry := range typed {
			strKey := fmt.Sprintf("%v", key)

			res, err := normalize(entry, append(location, strKey))
			if err != nil {
				return nil, err
			}

			result[strKey] = res
		}

		return result, nil
	case []any:
		for idx, entry := range typed {
			res, err := normalize(entry, append(location, strconv.Itoa(idx)))
			if err != nil {
				return nil, err
			}

			typed[idx] = res
		}

		return typed, nil
	case float64:
		if math.IsNaN(typed) || math.IsInf(typed, 0) {
			return nil, errorchain.NewWithMessagef(ErrNotRepresentable,
				"value at %s is not representable in JSON", jsonPointer(location))
		}

		return typed, nil
	default:
		return val, nil
	}
}

func jsonPointer(tokens []string) string {
	if len(tokens) == 0 {
		return "/"
	}

	replacer := strings.NewReplacer("~", "~0", "/", "~1")

	var sb strings.Builder
	for _, token := range tokens {
		sb.WriteString("/")
		sb.WriteString(replacer.Replace(token))
	}

	return sb.String()
}
