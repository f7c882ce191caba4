package dataset_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/rshade/aichronos/internal/dataset"
	"github.com/rshade/aichronos/internal/i18n"
)

func renderFixture(t *testing.T) []dataset.Model {
	t.Helper()
	ds, err := dataset.Parse([]byte(`{"version": "1.0.0", "models": [` + recordJSON + `]}`))
	require.NoError(t, err)
	return ds.Localize(i18n.English)
}

func TestParseOutputFormat(t *testing.T) {
	for _, s := range []string{"table", "JSON", " yaml "} {
		_, err := dataset.ParseOutputFormat(s)
		require.NoError(t, err, s)
	}
	_, err := dataset.ParseOutputFormat("xml")
	require.ErrorIs(t, err, dataset.ErrUnknownFormat)
}

func TestRenderTable(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, dataset.RenderTable(&buf, renderFixture(t)))

	lines := strings.Split(buf.String(), "\n")
	assert.Contains(t, lines[0], "DATE")
	assert.Contains(t, lines[0], "CAPABILITIES")
	assert.Contains(t, lines[2], "2023-09-27")
	assert.Contains(t, lines[2], "Mistral")
	assert.Contains(t, lines[2], "* Model One")
	assert.Contains(t, lines[2], "NLP,Code")
	assert.Contains(t, buf.String(), "1 models")
}

func TestRenderJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, dataset.RenderModels(&buf, renderFixture(t), dataset.OutputJSON))

	var got []map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	require.Len(t, got, 1)
	assert.Equal(t, "m1", got[0]["id"])
	assert.Equal(t, "Model One", got[0]["name"])
	assert.NotContains(t, got[0], "Released")

	buf.Reset()
	require.NoError(t, dataset.RenderJSON(&buf, nil))
	assert.Equal(t, "[]\n", buf.String())
}

func TestRenderYAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, dataset.RenderModels(&buf, renderFixture(t), dataset.OutputYAML))

	var got []map[string]any
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
	require.Len(t, got, 1)
	assert.Equal(t, "Mistral", got[0]["company"])
	assert.Equal(t, "7B", got[0]["params"])
}

func TestRenderModels_Unknown(t *testing.T) {
	err := dataset.RenderModels(&bytes.Buffer{}, nil, dataset.OutputFormat("xml"))
	require.ErrorIs(t, err, dataset.ErrUnknownFormat)
}
