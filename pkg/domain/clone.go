package domain

import (
	"encoding/json"
	"fmt"
)

// Clone returns a deep copy of the document through its JSON form.
// Numbers inside Meta.Custom come back as float64.
func (d *Document) Clone() (*Document, error) {
	if d == nil {
		return nil, nil
	}
	data, err := json.Marshal(d)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal document: %w", err)
	}
	var out Document
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("failed to unmarshal document: %w", err)
	}
	return &out, nil
}
