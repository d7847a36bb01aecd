// Package store writes the collection to its flat text file.
// The file is write-only output: it is overwritten in full on every save and
// never read back.
package store

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/mesh-intelligence/elevage/pkg/types"
)

// DefaultPath is the file written when no other path is configured.
const DefaultPath = "elevage.txt"

// Encode writes one block per creature, each followed by a blank line.
// An empty slice writes nothing.
func Encode(w io.Writer, creatures []types.Creature) error {
	for _, c := range creatures {
		_, err := fmt.Fprintf(w, "Nom   : %s\nNiveau: %d\nType  : %s\nXP    : %d\nGenre : %s\n\n",
			c.Name, c.Level, c.Kind, c.Experience, c.Gender)
		if err != nil {
			return fmt.Errorf("writing %s: %w", c.Name, err)
		}
	}
	return nil
}

// WriteFile truncates the file at path, creating it if needed, and writes the
// encoded creatures. It writes through symlinks and keeps the mode of an
// existing file; a file that cannot be opened for writing is an error.
// A write that fails midway is not rolled back.
func WriteFile(path string, creatures []types.Creature) error {
	var buf bytes.Buffer
	if err := Encode(&buf, creatures); err != nil {
		return err
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return fmt.Errorf("opening file: %w", err)
	}
	if _, err := buf.WriteTo(f); err != nil {
		f.Close()
		return fmt.Errorf("writing file: %w", err)
	}
	if err := f.Sync(); err != nil {
		f.Close()
		return fmt.Errorf("syncing file: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing file: %w", err)
	}
	return nil
}
