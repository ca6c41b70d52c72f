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

package testsupport

import (
	"os"
	"testing"

	"github.com/undefinedlabs/go-mpatch"
)

// PatchedOSExit records the code os.Exit has been called with. The process
// is not terminated while the patch is active.
type PatchedOSExit struct {
	Called bool
	Code   int
}

// PatchOSExit replaces os.Exit for the duration of the test. Inlining must be
// disabled (-gcflags=all=-l) for the patch to take effect.
func PatchOSExit(t *testing.T) (*PatchedOSExit, error) {
	t.Helper()

	exit := &PatchedOSExit{}

	patch, err := mpatch.PatchMethod(os.Exit, func(code int) {
		exit.Called = true
		exit.Code = code
	})
	if err != nil {
		return nil, err
	}

	t.Cleanup(func() { _ = patch.Unpatch() })

	return exit, nil
}
