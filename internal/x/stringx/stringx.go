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

package stringx

import (
	"strings"
	"unsafe"
)

// ToString converts the given bytes to a string without copying. The bytes
// must not be modified afterwards.
func ToString(b []byte) string {
	return unsafe.String(unsafe.SliceData(b), len(b))
}

// ToBytes converts the given string to bytes without copying. The returned
// slice must not be modified.
func ToBytes(str string) []byte {
	return unsafe.Slice(unsafe.StringData(str), len(str))
}

// SingleLine collapses a multi-line message into one line.
func SingleLine(msg string) string {
	lines := strings.Split(strings.TrimSpace(msg), "\n")
	for idx, line := range lines {
		lines[idx] = strings.TrimSpace(line)
	}

	return strings.Join(lines, " ")
}
