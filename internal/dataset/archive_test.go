package dataset

import (
	"archive/zip"
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeZip(t *testing.T, path string, entries map[string]string) {
	t.Helper()

	var buf bytes.Buffer
	writer := zip.NewWriter(&buf)
	for name, content := range entries {
		f, err := writer.Create(name)
		require.NoError(t, err)
		_, err = f.Write([]byte(content))
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())

	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o644))
}

func TestExtractArchives(t *testing.T) {
	runDir := t.TempDir()
	statsDir := filepath.Join(runDir, "10-client-a", "statistics")

	writeZip(t, filepath.Join(statsDir, "campaigns_0_0.zip"), map[string]string{
		"111.csv":        "campaign 111",
		"nested/222.csv": "campaign 222",
	})

	require.NoError(t, ExtractArchives(runDir, false))

	// Entries land flat in the statistics folder, nesting stripped.
	for name, content := range map[string]string{
		"111.csv": "campaign 111",
		"222.csv": "campaign 222",
	} {
		data, err := os.ReadFile(filepath.Join(statsDir, name))
		require.NoError(t, err, name)
		assert.Equal(t, content, string(data))
	}

	_, err := os.Stat(filepath.Join(statsDir, "campaigns_0_0.zip"))
	assert.NoError(t, err, "archive stays in place when removal is off")
}

func TestExtractArchivesRemovesConsumedArchives(t *testing.T) {
	runDir := t.TempDir()
	statsDir := filepath.Join(runDir, "10-client-a", "statistics")

	writeZip(t, filepath.Join(statsDir, "campaigns_0_0.zip"), map[string]string{
		"111.csv": "campaign 111",
	})

	require.NoError(t, ExtractArchives(runDir, true))

	_, err := os.Stat(filepath.Join(statsDir, "campaigns_0_0.zip"))
	assert.True(t, os.IsNotExist(err))

	_, err = os.Stat(filepath.Join(statsDir, "111.csv"))
	assert.NoError(t, err)
}

func TestExtractArchivesSkipsUnreadableArchive(t *testing.T) {
	runDir := t.TempDir()
	statsDir := filepath.Join(runDir, "10-client-a", "statistics")

	require.NoError(t, os.MkdirAll(statsDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(statsDir, "broken.zip"), []byte("not a zip"), 0o644))
	writeZip(t, filepath.Join(statsDir, "good.zip"), map[string]string{
		"111.csv": "campaign 111",
	})

	require.NoError(t, ExtractArchives(runDir, false))

	_, err := os.Stat(filepath.Join(statsDir, "111.csv"))
	assert.NoError(t, err, "the readable sibling is still extracted")
}
