package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateNotebookName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{name: "valid name", input: "Work", wantErr: false},
		{name: "empty", input: "", wantErr: true},
		{name: "blank", input: "   ", wantErr: true},
		{name: "at limit", input: strings.Repeat("a", MaxNotebookNameLen), wantErr: false},
		{name: "over limit", input: strings.Repeat("a", MaxNotebookNameLen+1), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateNotebookName(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateNoteTitle(t *testing.T) {
	assert.NoError(t, ValidateNoteTitle("standup"))
	assert.Error(t, ValidateNoteTitle(""))
	assert.Error(t, ValidateNoteTitle(strings.Repeat("x", MaxNoteTitleLen+1)))
}

func TestValidateHexColor(t *testing.T) {
	tests := []struct {
		input   string
		wantErr bool
	}{
		{input: "#1e88e5", wantErr: false},
		{input: "#FFF", wantErr: false},
		{input: "1e88e5", wantErr: true},
		{input: "#12345", wantErr: true},
		{input: "#gggggg", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			err := ValidateHexColor(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
