// Copyright (c) 2026 The Linecho Authors. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateLoggerAsLocalFile(t *testing.T) {
	_, _, err := CreateLoggerAsLocalFile("", InfoLevel)
	assert.Error(t, err, "expected error for empty path")

	path := filepath.Join(t.TempDir(), "linecho.log")
	logger, flush, err := CreateLoggerAsLocalFile(path, InfoLevel)
	require.NoError(t, err)

	logger.Debugf("dropped %d", 1)
	logger.Infof("received %q", "hello\n")
	logger.Errorf("read failed: %v", os.ErrClosed)
	require.NoError(t, flush())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	content := string(data)
	assert.Contains(t, content, "[linecho] ")
	assert.Contains(t, content, `received "hello\n"`)
	assert.Contains(t, content, "read failed")
	assert.NotContains(t, content, "dropped")
}

func TestDefaultLogger(t *testing.T) {
	require.NotNil(t, GetDefaultLogger())
	require.NotNil(t, defaultFlusher)
	Infof("info %s", "message")
}
