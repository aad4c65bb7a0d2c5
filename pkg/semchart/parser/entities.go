package parser

import (
	"fmt"
	"strings"

	"github.com/ukaji3/semchart-go/pkg/semchart/models"
)

// ExtractEntities reads one entity per data row. Values are aligned with
// cols; rows without a single present value are dropped.
func ExtractEntities(dataRows []models.Row, cols []SeriesColumn) []models.Entity {
	entities := make([]models.Entity, 0, len(dataRows))
	for idx, row := range dataRows {
		values := make([]models.Value, len(cols))
		present := false
		for i, col := range cols {
			values[i] = cellValue(row.At(col.Index))
			if values[i].Present {
				present = true
			}
		}
		if !present {
			continue
		}
		entities = append(entities, models.Entity{
			ID:     entityID(row, idx),
			Values: values,
		})
	}
	return entities
}

// RowLabel is the id given to a data row with no identifier, for 1-based pos.
func RowLabel(pos int) string {
	return fmt.Sprintf("Row %d", pos)
}

func entityID(row models.Row, idx int) string {
	if id := strings.TrimSpace(row.At(0).Text()); id != "" {
		return id
	}
	return RowLabel(idx + 1)
}
