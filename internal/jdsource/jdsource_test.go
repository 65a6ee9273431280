package jdsource

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_PlainText(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "jd.txt")
	require.NoError(t, os.WriteFile(path, []byte("Requirements:\r\n- Go\r\n\r\n\r\n\r\n- SQL\r\n"), 0o644))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "Requirements:\n- Go\n\n- SQL", got)
}

func TestLoad_Markdown(t *testing.T) {
	path := filepath.Join(t.TempDir(), "jd.MD")
	require.NoError(t, os.WriteFile(path, []byte("# Backend Engineer\n\n* Kubernetes\n"), 0o644))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Contains(t, got, "Kubernetes")
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.txt"))
	assert.Error(t, err)
}

func TestExtract_Unsupported(t *testing.T) {
	_, err := Extract(".exe", []byte("MZ"))
	assert.ErrorIs(t, err, ErrUnsupported)
}

func TestExtract_CorruptBinaryFormats(t *testing.T) {
	_, err := Extract(".pdf", []byte("not a pdf"))
	assert.Error(t, err)

	_, err = Extract(".docx", []byte("not a zip"))
	assert.Error(t, err)
}

func TestDocxXMLToText(t *testing.T) {
	xml := `<w:document><w:body>` +
		`<w:p><w:r><w:t>Senior Engineer</w:t></w:r></w:p>` +
		`<w:p><w:r><w:t>Go</w:t><w:tab/><w:t>R&amp;D</w:t></w:r></w:p>` +
		`</w:body></w:document>`

	got := normalize(docxXMLToText(xml))
	assert.Equal(t, "Senior Engineer\nGo\tR&D", got)
}
