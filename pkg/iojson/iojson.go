// Package iojson holds helpers for JSON output and file-or-stdin input on the
// command line.
package iojson

import (
	"encoding/json"
	"fmt"
	"io"
)

// WriteLine writes obj as a single line of compact JSON.
func WriteLine(w io.Writer, obj any) error {
	bits, err := json.Marshal(obj)
	if err != nil {
		return fmt.Errorf("marshal json line: %w", err)
	}

	_, err = fmt.Fprintln(w, string(bits))
	return err
}

// WriteIndent writes obj as indented JSON.
func WriteIndent(w io.Writer, obj any) error {
	bits, err := json.MarshalIndent(obj, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal json: %w", err)
	}

	_, err = fmt.Fprintln(w, string(bits))
	return err
}
