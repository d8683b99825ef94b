package commands

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jta/lldpy/pkg/log"
)

func TestRunStats(t *testing.T) {
	path := sampleLog(t)

	var buf bytes.Buffer
	require.NoError(t, RunStats(path, &buf))

	out := buf.String()
	assert.Contains(t, out, "Total events: 5")
	assert.Contains(t, out, "Errors:       1")
	assert.Contains(t, out, "CHANGE")
	assert.Contains(t, out, "ADDED")
	assert.Contains(t, out, "DELETED")
	assert.Contains(t, out, "Sessions (2):")
	assert.Contains(t, out, "11111111")
	assert.Contains(t, out, "22222222")
}

func TestRunStatsEmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.cbor")
	l, err := log.NewFileLogger(path)
	require.NoError(t, err)
	require.NoError(t, l.Close())

	var buf bytes.Buffer
	require.NoError(t, RunStats(path, &buf))
	assert.Contains(t, buf.String(), "Total events: 0")
}

func TestRunStatsMissingFile(t *testing.T) {
	var buf bytes.Buffer
	err := RunStats(filepath.Join(t.TempDir(), "absent.cbor"), &buf)
	assert.Error(t, err)
}
