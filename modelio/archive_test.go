package modelio_test

import (
	"archive/tar"
	"archive/zip"
	"bytes"
	"compress/gzip"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tubs-alg/samplns-go/modelio"
)

func buildZip(t *testing.T, files map[string]string) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for name, content := range files {
		w, err := zw.Create(name)
		require.NoError(t, err)
		_, err = w.Write([]byte(content))
		require.NoError(t, err)
	}
	require.NoError(t, zw.Close())

	return &buf
}

func buildTarGz(t *testing.T, files map[string]string) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	gw := gzip.NewWriter(&buf)
	tw := tar.NewWriter(gw)
	for name, content := range files {
		require.NoError(t, tw.WriteHeader(&tar.Header{Name: name, Size: int64(len(content)), Mode: 0o644}))
		_, err := tw.Write([]byte(content))
		require.NoError(t, err)
	}
	require.NoError(t, tw.Close())
	require.NoError(t, gw.Close())

	return &buf
}

func TestParseArchive_UnwrapsAZipWithASingleXMLEntry(t *testing.T) {
	buf := buildZip(t, map[string]string{"model.xml": sampleXML, "README.md": "ignore me"})

	inst, err := modelio.ParseArchive(buf, "bundle.zip")

	require.NoError(t, err)
	assert.NotNil(t, inst.Structure)
}

func TestParseArchive_UnwrapsATarGzWithASingleDimacsEntry(t *testing.T) {
	buf := buildTarGz(t, map[string]string{"model.dimacs": sampleDIMACS})

	inst, err := modelio.ParseArchive(buf, "bundle.tar.gz")

	require.NoError(t, err)
	assert.Len(t, inst.Rules, 2)
}

func TestParseArchive_ErrorsWhenTwoCandidateEntriesExist(t *testing.T) {
	buf := buildZip(t, map[string]string{"a.xml": sampleXML, "b.dimacs": sampleDIMACS})

	_, err := modelio.ParseArchive(buf, "bundle.zip")

	require.Error(t, err)
}

func TestParseArchive_ErrorsWhenNoCandidateEntryExists(t *testing.T) {
	buf := buildZip(t, map[string]string{"README.md": "nothing here"})

	_, err := modelio.ParseArchive(buf, "bundle.zip")

	require.Error(t, err)
}
