package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBackground(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantKind BackgroundKind
	}{
		{name: "hex color", input: "#1e88e5", wantKind: BackgroundColor},
		{name: "short hex color", input: "#fff", wantKind: BackgroundColor},
		{name: "file uri", input: "file:///data/notebook-backgrounds/a.png", wantKind: BackgroundFile},
		{name: "bare file scheme", input: "file:a.png", wantKind: BackgroundFile},
		{name: "bundled asset", input: "paper_grid", wantKind: BackgroundAsset},
		{name: "empty string is an asset", input: "", wantKind: BackgroundAsset},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bg := ParseBackground(tt.input)
			assert.Equal(t, tt.wantKind, bg.Kind)
			// Parsing must never alter the serialized form
			assert.Equal(t, tt.input, bg.String())
		})
	}
}

func TestBackground_FilePath(t *testing.T) {
	bg := FileBackground("/data/notebook-backgrounds/a.png")
	assert.Equal(t, BackgroundFile, bg.Kind)
	assert.Equal(t, "file:///data/notebook-backgrounds/a.png", bg.String())
	assert.Equal(t, "/data/notebook-backgrounds/a.png", bg.FilePath())

	assert.Empty(t, ColorBackground("#fff").FilePath())
}

func TestBackground_JSONRoundTrip(t *testing.T) {
	original := ParseBackground("#aabbcc")

	data, err := json.Marshal(original)
	require.NoError(t, err)
	assert.Equal(t, `"#aabbcc"`, string(data))

	var decoded Background
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, original, decoded)
}
