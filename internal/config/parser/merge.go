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

package parser

import "reflect"

// merge merges src into dest. Maps are merged key by key and slices
// element by element. In all other cases, including a type mismatch, src
// wins.
func merge(dest, src any) any {
	if dest == nil {
		return src
	}

	vDst := reflect.ValueOf(dest)
	vSrc := reflect.ValueOf(src)

	if src == nil || vSrc.Type() != vDst.Type() {
		return src
	}

	// nolint: exhaustive, forcetypeassert
	switch vDst.Kind() {
	case reflect.Map:
		if typed, ok := dest.(map[string]any); ok {
			return mergeMaps(typed, src.(map[string]any))
		}

		return src
	case reflect.Slice:
		if typed, ok := dest.([]any); ok {
			return mergeSlices(typed, src.([]any))
		}

		return src
	default:
		return src
	}
}

func mergeSlices(dest, src []any) []any {
	if len(dest) < len(src) {
		oldDest := dest
		dest = make([]any, len(src))

		copy(dest, oldDest)
	}

	for i, v := range src {
		avail := dest[i]
		if avail == nil {
			dest[i] = v
		} else if v != nil {
			dest[i] = merge(avail, v)
		}
	}

	return dest
}

func mergeMaps(dest, src map[string]any) map[string]any {
	for k, v := range src {
		dest[k] = merge(dest[k], v)
	}

	return dest
}
