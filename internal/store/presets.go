package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/mfcastro/requisita/internal/model"
)

// SearchItemPresets returns item presets built from previously requested line
// items whose description matches the term, case-insensitively. Duplicate
// presets collapse into one suggestion.
func SearchItemPresets(ctx context.Context, db *sql.DB, term string, limit int) ([]model.ItemPreset, error) {
	rows, err := db.QueryContext(ctx,
		`SELECT DISTINCT description, unit, specifications, suggested_supplier
		 FROM request_items
		 WHERE description LIKE '%' || ? || '%' COLLATE NOCASE
		 ORDER BY description
		 LIMIT ?`,
		term, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("searching item presets: %w", err)
	}
	defer rows.Close()

	var presets []model.ItemPreset
	for rows.Next() {
		var p model.ItemPreset
		var specifications, suggestedSupplier sql.NullString
		if err := rows.Scan(&p.Description, &p.Unit, &specifications, &suggestedSupplier); err != nil {
			return nil, fmt.Errorf("scanning item preset: %w", err)
		}
		p.Specifications = specifications.String
		p.SuggestedSupplier = suggestedSupplier.String
		presets = append(presets, p)
	}
	return presets, rows.Err()
}
