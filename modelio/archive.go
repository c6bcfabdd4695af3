package modelio

import (
	"archive/tar"
	"archive/zip"
	"compress/gzip"
	"fmt"
	"io"
	"strings"

	"github.com/tubs-alg/samplns-go/preprocess"
	"github.com/tubs-alg/samplns-go/samplnserr"
)

// entry is one candidate model file found inside an archive.
type entry struct {
	name string
	data []byte
}

// ParseArchive auto-unwraps a .tar.gz or .zip archive, selects the
// first entry ending in .xml or .dimacs, and parses it with the
// matching parser. More than one matching entry is an error.
func ParseArchive(r io.Reader, archiveName string) (*preprocess.Instance, error) {
	var entries []entry
	var err error

	switch {
	case strings.HasSuffix(archiveName, ".zip"):
		entries, err = readZip(r)
	case strings.HasSuffix(archiveName, ".tar.gz") || strings.HasSuffix(archiveName, ".tgz"):
		entries, err = readTarGz(r)
	default:
		return nil, fmt.Errorf("modelio: unrecognized archive extension %q: %w", archiveName, samplnserr.ErrMalformedInput)
	}
	if err != nil {
		return nil, err
	}

	var selected *entry
	for i := range entries {
		if !strings.HasSuffix(entries[i].name, ".xml") && !strings.HasSuffix(entries[i].name, ".dimacs") {
			continue
		}
		if selected != nil {
			return nil, fmt.Errorf("modelio: archive has more than one candidate model file (%s, %s): %w",
				selected.name, entries[i].name, samplnserr.ErrMalformedInput)
		}
		selected = &entries[i]
	}
	if selected == nil {
		return nil, fmt.Errorf("modelio: archive has no .xml or .dimacs entry: %w", samplnserr.ErrMalformedInput)
	}

	reader := strings.NewReader(string(selected.data))
	if strings.HasSuffix(selected.name, ".xml") {
		return ParseXML(reader)
	}

	return ParseDIMACS(reader)
}

func readZip(r io.Reader) ([]entry, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("modelio: read zip: %w", err)
	}
	zr, err := zip.NewReader(strings.NewReader(string(data)), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("modelio: open zip: %w: %w", err, samplnserr.ErrMalformedInput)
	}

	var out []entry
	for _, f := range zr.File {
		if f.FileInfo().IsDir() {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return nil, fmt.Errorf("modelio: open zip entry %s: %w", f.Name, err)
		}
		content, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			return nil, fmt.Errorf("modelio: read zip entry %s: %w", f.Name, err)
		}
		out = append(out, entry{name: f.Name, data: content})
	}

	return out, nil
}

func readTarGz(r io.Reader) ([]entry, error) {
	gz, err := gzip.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("modelio: open gzip: %w: %w", err, samplnserr.ErrMalformedInput)
	}
	defer gz.Close()

	tr := tar.NewReader(gz)
	var out []entry
	for {
		hdr, err := tr.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("modelio: read tar: %w", err)
		}
		if hdr.Typeflag != tar.TypeReg {
			continue
		}
		content, err := io.ReadAll(tr)
		if err != nil {
			return nil, fmt.Errorf("modelio: read tar entry %s: %w", hdr.Name, err)
		}
		out = append(out, entry{name: hdr.Name, data: content})
	}

	return out, nil
}
