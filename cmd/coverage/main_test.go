// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testReport = `<coverage><packages><package name="api"><classes><class name="views.py" filename="api/views.py"/></classes></package></packages></coverage>`

func TestRewrite(t *testing.T) {
	var (
		assert  = assert.New(t)
		require = require.New(t)
		path    = filepath.Join(t.TempDir(), "report.xml")

		output bytes.Buffer
		errors bytes.Buffer
	)

	require.NoError(os.WriteFile(path, []byte(testReport), 0o600))
	assert.Equal(0, rewrite([]string{"--file", path}, &output, &errors))
	assert.Contains(output.String(), "rewrote 1 packages and 1 classes")
	assert.Empty(errors.String())

	rewritten, err := os.ReadFile(path)
	require.NoError(err)
	assert.Contains(string(rewritten), `name="server.api"`)
	assert.Contains(string(rewritten), `filename="cama_backend/api/views.py"`)
}

func TestRewriteFailures(t *testing.T) {
	t.Run("MissingFile", func(t *testing.T) {
		var output, errors bytes.Buffer
		assert.Equal(t, 1, rewrite([]string{"-f", filepath.Join(t.TempDir(), "missing.xml")}, &output, &errors))
		assert.Contains(t, errors.String(), "missing.xml")
		assert.Empty(t, output.String())
	})

	t.Run("NoPackages", func(t *testing.T) {
		var (
			output, errors bytes.Buffer
			path           = filepath.Join(t.TempDir(), "coverage.xml")
		)

		require.NoError(t, os.WriteFile(path, []byte(`<coverage/>`), 0o600))
		assert.Equal(t, 1, rewrite([]string{"--file=" + path}, &output, &errors))
		assert.Contains(t, errors.String(), "no packages")
	})

	t.Run("BadFlag", func(t *testing.T) {
		var output, errors bytes.Buffer
		assert.Equal(t, 2, rewrite([]string{"--nosuchflag"}, &output, &errors))
	})
}
