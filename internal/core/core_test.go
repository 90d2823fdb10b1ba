package core

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFileExists(t *testing.T) {
	dir := t.TempDir()
	filePath := filepath.Join(dir, "cwmrc")

	exists, err := FileExists(filePath)
	require.NoError(t, err)
	require.False(t, exists)

	require.NoError(t, os.WriteFile(filePath, nil, 0600))

	exists, err = FileExists(filePath)
	require.NoError(t, err)
	require.True(t, exists)
}
