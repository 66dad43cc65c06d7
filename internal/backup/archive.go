package backup

import (
	"encoding/json"
	"fmt"

	"inkpad/internal/models"
)

// BackgroundsDirName is the well-known directory, relative to the app data
// directory, that holds notebook background image files. Its contents are
// mirrored into archives at backup time and reconstructed file by file at
// restore time.
const BackgroundsDirName = "notebook-backgrounds"

// Document is the archive produced by the Builder and consumed by the
// Restorer: one self-contained JSON snapshot of the entire local state.
// The only external references it carries are attachment file names, which
// resolve relative to the backgrounds directory.
type Document struct {
	AppConfig        map[string]json.RawMessage `json:"appConfig"`
	Notebooks        []*models.Notebook         `json:"notebooks"`
	Notes            []*models.Note             `json:"notes"`
	BackgroundImages []BackgroundImage          `json:"backgroundImages"`
}

// BackgroundImage carries the content of one attachment file, base64-encoded
// so it can be embedded in the JSON document.
type BackgroundImage struct {
	FileName   string `json:"fileName"`
	Base64Data string `json:"base64Data"`
}

// marshal serializes the document to its wire form. Empty collections are
// written as empty JSON containers, not null, so a backup of a fresh install
// still has the full document shape.
func (d *Document) marshal() ([]byte, error) {
	if d.AppConfig == nil {
		d.AppConfig = map[string]json.RawMessage{}
	}
	if d.Notebooks == nil {
		d.Notebooks = []*models.Notebook{}
	}
	if d.Notes == nil {
		d.Notes = []*models.Note{}
	}
	if d.BackgroundImages == nil {
		d.BackgroundImages = []BackgroundImage{}
	}

	data, err := json.Marshal(d)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal archive: %w", err)
	}
	return data, nil
}

// parseDocument decodes archive bytes. Any syntax or shape error comes back
// as ErrCorruptArchive.
func parseDocument(data []byte) (*Document, error) {
	doc := &Document{}
	if err := json.Unmarshal(data, doc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorruptArchive, err)
	}
	return doc, nil
}

// encodeConfig converts the string-valued config snapshot to the archive's
// JSON form. Every value becomes a JSON string.
func encodeConfig(entries map[string]string) (map[string]json.RawMessage, error) {
	out := make(map[string]json.RawMessage, len(entries))
	for k, v := range entries {
		raw, err := json.Marshal(v)
		if err != nil {
			return nil, fmt.Errorf("failed to encode config value %q: %w", k, err)
		}
		out[k] = raw
	}
	return out, nil
}

// decodeConfig converts archive config values back to strings. Values
// written by the Builder are JSON strings and decode exactly; other JSON
// values in a foreign document are kept as their raw JSON text, so nothing
// is dropped.
func decodeConfig(raw map[string]json.RawMessage) map[string]string {
	out := make(map[string]string, len(raw))
	for k, v := range raw {
		var s string
		if err := json.Unmarshal(v, &s); err == nil {
			out[k] = s
			continue
		}
		out[k] = string(v)
	}
	return out
}
