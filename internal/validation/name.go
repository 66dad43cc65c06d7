package validation

import (
	"fmt"
	"regexp"
	"strings"
)

const (
	// MaxNotebookNameLen maximum notebook name length
	MaxNotebookNameLen = 64
	// MaxNoteTitleLen maximum note title length
	MaxNoteTitleLen = 256
)

// HexColorPattern matches a hex color in #rgb or #rrggbb form
var HexColorPattern = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// ValidateNotebookName checks that a notebook name is non-blank and fits the
// length limit.
func ValidateNotebookName(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("notebook name cannot be empty")
	}

	if len(name) > MaxNotebookNameLen {
		return fmt.Errorf("notebook name must not exceed %d characters", MaxNotebookNameLen)
	}

	return nil
}

// ValidateNoteTitle checks that a note title is non-blank and fits the
// length limit.
func ValidateNoteTitle(title string) error {
	if strings.TrimSpace(title) == "" {
		return fmt.Errorf("note title cannot be empty")
	}

	if len(title) > MaxNoteTitleLen {
		return fmt.Errorf("note title must not exceed %d characters", MaxNoteTitleLen)
	}

	return nil
}

// ValidateHexColor checks a user-supplied background color string.
func ValidateHexColor(color string) error {
	if !HexColorPattern.MatchString(color) {
		return fmt.Errorf("color must be #rgb or #rrggbb, got %q", color)
	}

	return nil
}
