package sink

import (
	"encoding/json"
	"os"

	errs "github.com/matzehuels/shapeshift/pkg/errors"
)

// MarshalLayout serializes a Board to pretty-printed JSON bytes.
func MarshalLayout(b Board) ([]byte, error) {
	return json.MarshalIndent(b, "", "  ")
}

// UnmarshalLayout deserializes JSON bytes into a Board.
func UnmarshalLayout(data []byte) (Board, error) {
	var b Board
	if err := json.Unmarshal(data, &b); err != nil {
		return Board{}, errs.Wrap(errs.ErrCodeInvalidFormat, err, "unmarshal layout")
	}
	for _, c := range b.Containers {
		if c.ID == "" {
			return Board{}, errs.New(errs.ErrCodeInvalidFormat, "layout container without id")
		}
	}
	return b, nil
}

// WriteLayoutFile writes a Board to a JSON file.
func WriteLayoutFile(b Board, path string) error {
	data, err := MarshalLayout(b)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// ReadLayoutFile reads a Board from a JSON file.
func ReadLayoutFile(path string) (Board, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Board{}, errs.Wrap(errs.ErrCodeFileNotFound, err, "read %s", path)
	}
	return UnmarshalLayout(data)
}
