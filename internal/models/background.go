package models

import (
	"encoding/json"
	"strings"
)

// BackgroundKind discriminates the three forms a notebook background can take.
type BackgroundKind int

const (
	// BackgroundColor is a hex color, e.g. "#1e88e5".
	BackgroundColor BackgroundKind = iota
	// BackgroundAsset is an identifier of an image bundled with the app.
	BackgroundAsset
	// BackgroundFile is a file URI pointing into the backgrounds directory.
	BackgroundFile
)

// Background is a tagged representation of the notebook background field.
// The kind is decided once, when the value is created or parsed, so callers
// never have to sniff the string form again. Raw holds the exact serialized
// form ("#rrggbb", an asset id, or a "file://..." URI) so that values survive
// a round trip through the database and archive documents unchanged.
type Background struct {
	Kind BackgroundKind
	Raw  string
}

const fileURIPrefix = "file://"

// ParseBackground classifies a serialized background string.
// "#..." is a color, "file:..." is a file URI, anything else is treated as a
// bundled asset id.
func ParseBackground(s string) Background {
	switch {
	case strings.HasPrefix(s, "#"):
		return Background{Kind: BackgroundColor, Raw: s}
	case strings.HasPrefix(s, "file:"):
		return Background{Kind: BackgroundFile, Raw: s}
	default:
		return Background{Kind: BackgroundAsset, Raw: s}
	}
}

// ColorBackground returns a color background for the given hex string.
func ColorBackground(hex string) Background {
	if !strings.HasPrefix(hex, "#") {
		hex = "#" + hex
	}
	return Background{Kind: BackgroundColor, Raw: hex}
}

// AssetBackground returns a background referencing a bundled asset.
func AssetBackground(id string) Background {
	return Background{Kind: BackgroundAsset, Raw: id}
}

// FileBackground returns a background referencing an image file on disk.
func FileBackground(path string) Background {
	if !strings.HasPrefix(path, "file:") {
		path = fileURIPrefix + path
	}
	return Background{Kind: BackgroundFile, Raw: path}
}

// String returns the serialized form stored in the database and archives.
func (b Background) String() string {
	return b.Raw
}

// FilePath returns the filesystem path for a file-backed background,
// stripping the URI scheme. Empty for other kinds.
func (b Background) FilePath() string {
	if b.Kind != BackgroundFile {
		return ""
	}
	return strings.TrimPrefix(b.Raw, fileURIPrefix)
}

// MarshalJSON serializes the background as its plain string form.
func (b Background) MarshalJSON() ([]byte, error) {
	return json.Marshal(b.Raw)
}

// UnmarshalJSON parses the plain string form back into a tagged value.
func (b *Background) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	*b = ParseBackground(s)
	return nil
}
