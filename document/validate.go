package document

import (
	"fmt"

	"tether/handles"
)

// Validate reports structural problems in the diagram: duplicate or empty
// node IDs, edges missing an endpoint, and edges naming nodes or handles
// that do not exist. An empty result means the diagram is sound.
func (d *Document) Validate() []error {
	var errs []error

	seen := make(map[string]bool)
	for _, n := range d.diagram.Nodes {
		if n.ID == "" {
			errs = append(errs, fmt.Errorf("node with empty ID"))
			continue
		}
		if seen[n.ID] {
			errs = append(errs, fmt.Errorf("duplicate node ID %q", n.ID))
		}
		seen[n.ID] = true
	}

	for _, e := range d.diagram.Edges {
		if e.Source == "" || e.Target == "" {
			errs = append(errs, fmt.Errorf("edge %q is missing an endpoint", e.ID))
			continue
		}

		source, ok := d.diagram.FindNode(e.Source)
		if !ok {
			errs = append(errs, fmt.Errorf("edge %q references missing node %q", e.ID, e.Source))
		} else if _, ok := handles.Find(source, e.SourceHandle); !ok {
			errs = append(errs, fmt.Errorf("edge %q uses unknown handle %q on node %q", e.ID, e.SourceHandle, e.Source))
		}

		target, ok := d.diagram.FindNode(e.Target)
		if !ok {
			errs = append(errs, fmt.Errorf("edge %q references missing node %q", e.ID, e.Target))
		} else if _, ok := handles.Find(target, e.TargetHandle); !ok {
			errs = append(errs, fmt.Errorf("edge %q uses unknown handle %q on node %q", e.ID, e.TargetHandle, e.Target))
		}
	}

	return errs
}
