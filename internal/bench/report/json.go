package report

import (
	"encoding/json"
	"fmt"
	"os"
)

// WriteJSON writes the full report, pretty-printed, to path. The table view
// is for eyeballing; this is the artifact CI jobs archive and diff.
func WriteJSON(r *Report, path string) error {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal benchmark report: %w", err)
	}
	data = append(data, '\n')
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write benchmark report: %w", err)
	}
	return nil
}
