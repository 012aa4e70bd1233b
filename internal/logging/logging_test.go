package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Discard(t *testing.T) {
	log, closeFn, err := New("")
	require.NoError(t, err)
	log.Info("dropped")
	assert.NoError(t, closeFn())
}

func TestNew_File(t *testing.T) {
	p := filepath.Join(t.TempDir(), "logs", "checklists.log")
	log, closeFn, err := New(p)
	require.NoError(t, err)

	log.Debug("checklist added", "index", 3)
	require.NoError(t, closeFn())

	b, err := os.ReadFile(p)
	require.NoError(t, err)
	assert.Contains(t, string(b), `"msg":"checklist added"`)
	assert.Contains(t, string(b), `"index":3`)
}
