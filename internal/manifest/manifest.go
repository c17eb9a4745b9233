// Package manifest reads and patches a package's generated package.json.
// The document is kept as a generic map so compiler-emitted keys survive the
// round trip untouched; only the files list is manipulated.
package manifest

import (
	"encoding/json"
	"os"

	"github.com/squidCatx/big-react-wasm/internal/errors"
)

const filesKey = "files"

// Manifest is a package.json document loaded from disk.
type Manifest struct {
	path string
	doc  map[string]any
}

// Load reads and parses the manifest at path.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.ReadFailed(path, err)
	}
	var doc map[string]any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, errors.ManifestInvalid(path, err)
	}
	return &Manifest{path: path, doc: doc}, nil
}

// Files returns the declared output file list. Entries of unexpected type
// are skipped rather than failing the whole patch.
func (m *Manifest) Files() []string {
	raw, ok := m.doc[filesKey].([]any)
	if !ok {
		return nil
	}
	files := make([]string, 0, len(raw))
	for _, v := range raw {
		if s, ok := v.(string); ok {
			files = append(files, s)
		}
	}
	return files
}

// AppendFiles appends names to the declared output file list, creating the
// list when absent. Entries are not deduplicated: re-applying the patch
// appends duplicates.
func (m *Manifest) AppendFiles(names ...string) {
	raw, _ := m.doc[filesKey].([]any)
	for _, n := range names {
		raw = append(raw, n)
	}
	m.doc[filesKey] = raw
}

// Save serializes the manifest and overwrites it in place.
func (m *Manifest) Save() error {
	data, err := json.MarshalIndent(m.doc, "", "  ")
	if err != nil {
		return errors.InternalError("manifest serialization failed", err)
	}
	data = append(data, '\n')
	if err := os.WriteFile(m.path, data, 0o644); err != nil {
		return errors.WriteFailed(m.path, err)
	}
	return nil
}
