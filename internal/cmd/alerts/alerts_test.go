package alerts

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAlertString(t *testing.T) {
	assert.Equal(t, "i Checking row 1", NewInfo("Checking row 1").String())
	assert.Equal(t, "✗ lookup failed: boom", NewError("lookup failed").WithError(errors.New("boom")).String())
	assert.Equal(t, "! skipped", NewWarning("skipped").String())
	assert.Equal(t, "✓ done", NewSuccess("done").String())
}

func TestWriterTo(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriterTo(&buf)
	require.NoError(t, w.WriteAlert(NewWarning("Threatened species").WithDetails("Panthera leo: VU")))
	assert.Equal(t, "! Threatened species\n  Panthera leo: VU\n", buf.String())

	assert.NoError(t, DiscardWriter.WriteAlert(NewInfo("x")))
}

func TestLevelString(t *testing.T) {
	assert.Equal(t, "warning", LevelWarning.String())
	assert.Equal(t, "unknown(9)", Level(9).String())
}
