package document

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"tether/diagram"
)

// Save writes the diagram to path as indented JSON. The write goes through a
// temp file in the same directory so a crash mid-write cannot corrupt an
// existing document.
func (d *Document) Save(path string) error {
	data, err := json.MarshalIndent(d.diagram, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling diagram: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), ".tether-*")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("writing diagram: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}

// Load reads a diagram from a JSON file into the document. Node sizes absent
// from the file are defaulted.
func (d *Document) Load(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	var dg diagram.Diagram
	if err := json.Unmarshal(data, &dg); err != nil {
		return fmt.Errorf("parsing %s: %w", path, err)
	}

	d.SetDiagram(&dg)
	return nil
}
