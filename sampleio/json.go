package sampleio

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/tubs-alg/samplns-go/samplnserr"
)

// ReadJSON decodes a sample from an array of feature-name-to-boolean
// objects.
func ReadJSON(r io.Reader) ([]Configuration, error) {
	var raw []map[string]bool
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("sampleio: read json: %w: %w", err, samplnserr.ErrMalformedInput)
	}

	sample := make([]Configuration, len(raw))
	for i, conf := range raw {
		sample[i] = Configuration(conf)
	}

	return sample, nil
}

// WriteJSON encodes sample as an array of feature-name-to-boolean
// objects, restricted to and ordered by features for determinism.
func WriteJSON(w io.Writer, features []string, sample []Configuration) error {
	out := make([]map[string]bool, len(sample))
	for i, conf := range sample {
		row := make(map[string]bool, len(features))
		for _, name := range features {
			row[name] = conf[name]
		}
		out[i] = row
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("sampleio: write json: %w", err)
	}

	return nil
}
