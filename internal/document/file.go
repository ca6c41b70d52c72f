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
	"errors"
	"io"
	"os"

	"github.com/inhies/go-bytesize"

	"github.com/dadrus/confcheck/internal/x/errorchain"
)

var ErrFileTooLarge = errors.New("file too large")

// readFile reads the whole file, but not more than maxSize bytes. A maxSize
// less or equal zero disables the limit.
func readFile(path string, maxSize bytesize.ByteSize) ([]byte, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	defer file.Close()

	if maxSize <= 0 {
		return io.ReadAll(file)
	}

	limit := int64(maxSize)

	raw, err := io.ReadAll(io.LimitReader(file, limit+1))
	if err != nil {
		return nil, err
	}

	if int64(len(raw)) > limit {
		return nil, errorchain.NewWithMessagef(ErrFileTooLarge,
			"size exceeds the limit of %s", maxSize)
	}

	return raw, nil
}
