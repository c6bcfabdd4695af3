package modelio

import (
	"fmt"
	"os"
	"strings"

	"github.com/tubs-alg/samplns-go/preprocess"
	"github.com/tubs-alg/samplns-go/samplnserr"
)

// ParseFile reads path and parses it as a feature-model source,
// dispatching on its extension: .xml, .dimacs, .zip, .tar.gz/.tgz.
func ParseFile(path string) (*preprocess.Instance, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("modelio: open %s: %w: %w", path, err, samplnserr.ErrMalformedInput)
	}
	defer f.Close()

	switch {
	case strings.HasSuffix(path, ".xml"):
		return ParseXML(f)
	case strings.HasSuffix(path, ".dimacs"):
		return ParseDIMACS(f)
	case strings.HasSuffix(path, ".zip"), strings.HasSuffix(path, ".tar.gz"), strings.HasSuffix(path, ".tgz"):
		return ParseArchive(f, path)
	default:
		return nil, fmt.Errorf("modelio: unrecognized model file extension %q: %w", path, samplnserr.ErrMalformedInput)
	}
}
