package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/mfcastro/requisita/internal/model"
)

// GetDepartment returns a department by ID.
func GetDepartment(ctx context.Context, db *sql.DB, id string) (*model.Department, error) {
	d := &model.Department{}
	err := db.QueryRowContext(ctx,
		`SELECT id, name, code, cost_center FROM departments WHERE id = ?`, id,
	).Scan(&d.ID, &d.Name, &d.Code, &d.CostCenter)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting department: %w", err)
	}
	return d, nil
}

// ListDepartments returns all departments.
func ListDepartments(ctx context.Context, db *sql.DB) ([]model.Department, error) {
	rows, err := db.QueryContext(ctx,
		`SELECT id, name, code, cost_center FROM departments ORDER BY name`,
	)
	if err != nil {
		return nil, fmt.Errorf("listing departments: %w", err)
	}
	defer rows.Close()

	var departments []model.Department
	for rows.Next() {
		var d model.Department
		if err := rows.Scan(&d.ID, &d.Name, &d.Code, &d.CostCenter); err != nil {
			return nil, fmt.Errorf("scanning department: %w", err)
		}
		departments = append(departments, d)
	}
	return departments, rows.Err()
}
