package portfolio

import (
	"context"
	"fmt"

	"github.com/aretw0/devfolio/pkg/ports"
)

// ImportReport summarizes an Import run.
type ImportReport struct {
	Stored []string `json:"stored"`
	// Rejected maps a source ID to its validation messages.
	Rejected map[string][]string `json:"rejected,omitempty"`
}

// Import validates every document of src and stores the valid ones under
// their source IDs. Invalid documents are reported, not fatal; a read or
// write failure stops the run.
func (m *Manager) Import(ctx context.Context, src ports.DocumentSource) (ImportReport, error) {
	var report ImportReport

	ids, err := src.List()
	if err != nil {
		return report, fmt.Errorf("failed to list source documents: %w", err)
	}

	for _, id := range ids {
		if err := ctx.Err(); err != nil {
			return report, err
		}

		data, err := src.Get(id)
		if err != nil {
			return report, fmt.Errorf("failed to read %q: %w", id, err)
		}

		res, err := m.Put(ctx, id, data)
		if err != nil {
			return report, err
		}
		if !res.Success {
			if report.Rejected == nil {
				report.Rejected = make(map[string][]string)
			}
			report.Rejected[id] = res.Errors
			m.logger.Warn("Rejected invalid portfolio", "id", id, "violations", len(res.Errors))
			continue
		}
		report.Stored = append(report.Stored, id)
	}

	m.logger.Info("Import finished", "stored", len(report.Stored), "rejected", len(report.Rejected))
	return report, nil
}
