package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeCatalog(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "catalog.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeCatalog(t, `[
		{
			"service": "SEO",
			"description": "Organic growth.",
			"faqs": [{"question": "Q", "answer": "A"}],
			"futureField": {"ignored": true}
		}
	]`)

	entries, err := Load(path)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "SEO", entries[0].Service)
	assert.Equal(t, "Organic growth.", entries[0].Description)
	assert.Len(t, entries[0].FAQs, 1)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}

func TestLoadNotAList(t *testing.T) {
	path := writeCatalog(t, `{"service": "SEO"}`)
	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoadEmptyList(t *testing.T) {
	path := writeCatalog(t, `[]`)
	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoadInvalidJSON(t *testing.T) {
	path := writeCatalog(t, `[{"service": "SEO"`)
	_, err := Load(path)
	assert.Error(t, err)
}
