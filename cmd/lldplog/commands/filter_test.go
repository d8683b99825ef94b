package commands

import (
	"bytes"
	"io"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jta/lldpy/pkg/log"
)

func TestRunFilterBySession(t *testing.T) {
	path := sampleLog(t)
	out := filepath.Join(t.TempDir(), "filtered.cbor")

	var buf bytes.Buffer
	require.NoError(t, RunFilter(path, FilterOptions{
		Output:    out,
		SessionID: "11111111-aaaa-bbbb-cccc-dddddddddddd",
	}, &buf))
	assert.Contains(t, buf.String(), "Wrote 3 events")

	// The output is itself a valid log file.
	r, err := log.NewReader(out)
	require.NoError(t, err)
	defer r.Close()

	count := 0
	for {
		e, err := r.Next()
		if err == io.EOF {
			break
		}
		require.NoError(t, err)
		assert.Equal(t, "11111111-aaaa-bbbb-cccc-dddddddddddd", e.SessionID)
		count++
	}
	assert.Equal(t, 3, count)
}

func TestRunFilterByTimeWindow(t *testing.T) {
	path := sampleLog(t)
	out := filepath.Join(t.TempDir(), "filtered.cbor")

	var buf bytes.Buffer
	require.NoError(t, RunFilter(path, FilterOptions{
		Output:    out,
		TimeStart: "2026-08-23T12:00:01Z",
		TimeEnd:   "2026-08-23T12:00:03Z",
	}, &buf))
	assert.Contains(t, buf.String(), "Wrote 2 events")
}

func TestRunFilterInvalidTime(t *testing.T) {
	path := sampleLog(t)
	err := RunFilter(path, FilterOptions{
		Output:    filepath.Join(t.TempDir(), "out.cbor"),
		TimeStart: "yesterday",
	}, io.Discard)
	assert.ErrorContains(t, err, "invalid time-start")
}

func TestRunFilterInvalidCategory(t *testing.T) {
	path := sampleLog(t)
	err := RunFilter(path, FilterOptions{
		Output:   filepath.Join(t.TempDir(), "out.cbor"),
		Category: "bogus",
	}, io.Discard)
	assert.ErrorContains(t, err, "unknown category")
}
