package sampleio_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tubs-alg/samplns-go/sampleio"
)

func TestReadCSV_ParsesPlusMinusCells(t *testing.T) {
	const csv = "Configuration;A;B\n1;+;-\n2;-;+\n"

	sample, err := sampleio.ReadCSV(strings.NewReader(csv))

	require.NoError(t, err)
	require.Len(t, sample, 2)
	assert.Equal(t, sampleio.Configuration{"A": true, "B": false}, sample[0])
	assert.Equal(t, sampleio.Configuration{"A": false, "B": true}, sample[1])
}

func TestWriteCSV_RoundTripsThroughReadCSV(t *testing.T) {
	features := []string{"A", "B"}
	sample := []sampleio.Configuration{{"A": true, "B": false}, {"A": false, "B": true}}

	var buf bytes.Buffer
	require.NoError(t, sampleio.WriteCSV(&buf, features, sample))

	got, err := sampleio.ReadCSV(&buf)
	require.NoError(t, err)
	assert.Equal(t, sample, got)
}

func TestReadCSV_ErrorsOnAnInvalidCell(t *testing.T) {
	const csv = "Configuration;A\n1;?\n"

	_, err := sampleio.ReadCSV(strings.NewReader(csv))

	require.Error(t, err)
}

func TestReadCSV_ErrorsOnAMissingHeaderLabel(t *testing.T) {
	const csv = "Row;A\n1;+\n"

	_, err := sampleio.ReadCSV(strings.NewReader(csv))

	require.Error(t, err)
}

func TestReadJSON_DecodesAnArrayOfObjects(t *testing.T) {
	const doc = `[{"A": true, "B": false}, {"A": false, "B": true}]`

	sample, err := sampleio.ReadJSON(strings.NewReader(doc))

	require.NoError(t, err)
	require.Len(t, sample, 2)
	assert.True(t, sample[0]["A"])
	assert.False(t, sample[1]["A"])
}

func TestWriteJSON_RoundTripsThroughReadJSON(t *testing.T) {
	features := []string{"A", "B"}
	sample := []sampleio.Configuration{{"A": true, "B": false}}

	var buf bytes.Buffer
	require.NoError(t, sampleio.WriteJSON(&buf, features, sample))

	got, err := sampleio.ReadJSON(&buf)
	require.NoError(t, err)
	assert.Equal(t, sample, got)
}

func TestConfigurations_ErrorsOnAMissingFeature(t *testing.T) {
	_, err := sampleio.Configurations([]string{"A", "B"}, []sampleio.Configuration{{"A": true}})

	require.Error(t, err)
}

func TestConfigurations_RoundTripsWithFromConfigurations(t *testing.T) {
	features := []string{"A", "B"}
	dense := [][]bool{{true, false}, {false, true}}

	named := sampleio.FromConfigurations(features, dense)
	back, err := sampleio.Configurations(features, named)

	require.NoError(t, err)
	assert.Equal(t, dense, back)
}
