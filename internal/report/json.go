package report

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/diagscope/diagscope/internal/diagnostic"
	"github.com/diagscope/diagscope/pkg/pagination"
)

func WriteJSON(res *pagination.OffsetResult[diagnostic.Entry], path string) error {
	data, err := json.MarshalIndent(res, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal result: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write result: %w", err)
	}
	return nil
}
