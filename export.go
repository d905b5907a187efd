package brandkit

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/alnah/go-brandkit/internal/yamlutil"
)

// Export serializes the whole document as JSON, keys in document order.
// pretty selects two-space indentation; otherwise the output is compact.
func (r *Resolver) Export(pretty bool) (string, error) {
	data, err := r.doc.root.MarshalJSON()
	if err != nil {
		return "", fmt.Errorf("exporting document: %w", err)
	}
	if !pretty {
		return string(data), nil
	}

	var out bytes.Buffer
	if err := json.Indent(&out, data, "", "  "); err != nil {
		return "", fmt.Errorf("exporting document: %w", err)
	}
	return out.String(), nil
}

// ExportYAML serializes the whole document as block-style YAML, keys in
// document order.
func (r *Resolver) ExportYAML() (string, error) {
	data, err := yamlutil.MarshalOrdered(toTree(r.doc.root))
	if err != nil {
		return "", fmt.Errorf("exporting document: %w", err)
	}
	return string(data), nil
}
