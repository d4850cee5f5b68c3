package catalog

import (
	"encoding/json"
	"errors"
	"os"
)

var (
	// ErrNotList is returned when the backing file parses to a JSON value
	// other than an array.
	ErrNotList = errors.New("backend file does not contain a JSON list")
	// ErrInvalidJSON is returned when the backing file is not valid JSON.
	ErrInvalidJSON = errors.New("invalid JSON in backend file")
)

// Reader serves the static catalog file. Every Load re-reads the file, so
// edits on disk show up on the next request without a restart.
type Reader struct {
	path string
}

func NewReader(path string) *Reader {
	return &Reader{path: path}
}

// Load returns the catalog entries. A missing file is an empty catalog, not
// an error. Entries are returned as decoded, opaque JSON values; element
// shape is not validated.
func (r *Reader) Load() ([]interface{}, error) {
	raw, err := os.ReadFile(r.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []interface{}{}, nil
		}
		return nil, err
	}

	var v interface{}
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil, ErrInvalidJSON
	}
	entries, ok := v.([]interface{})
	if !ok {
		return nil, ErrNotList
	}
	return entries, nil
}

// Exists reports whether the backing file is present on disk.
func (r *Reader) Exists() bool {
	_, err := os.Stat(r.path)
	return err == nil
}
