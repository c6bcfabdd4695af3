// Package sampleio reads and writes samples in the interchange
// formats: CSV (one row per configuration, `+`/`-` cells) and JSON (an
// array of feature-name-to-boolean objects). Both formats carry
// configurations keyed by feature name; Configurations converts them
// to the dense []bool form the rest of the module works with.
package sampleio
