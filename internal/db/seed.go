package db

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/mfcastro/requisita/internal/model"
)

// Reference data. The user directory and department list are static: the
// identity source is out of scope, so these stand in for it.
var seedUsers = []model.User{
	{ID: "1", Name: "João Silva", Email: "joao.silva@empresa.com.br", Department: "Produção", Role: model.RoleRequester},
	{ID: "2", Name: "Maria Santos", Email: "maria.santos@empresa.com.br", Department: "Compras", Role: model.RoleApprover},
	{ID: "3", Name: "Carlos Oliveira", Email: "carlos.oliveira@empresa.com.br", Department: "Manutenção", Role: model.RoleRequester},
	{ID: "4", Name: "Ana Costa", Email: "ana.costa@empresa.com.br", Department: "Qualidade", Role: model.RoleApprover},
	{ID: "5", Name: "Pedro Admin", Email: "pedro.admin@empresa.com.br", Department: "Administrativo", Role: model.RoleAdmin},
}

var seedDepartments = []model.Department{
	{ID: "1", Name: "Produção", Code: "PROD", CostCenter: "CC001"},
	{ID: "2", Name: "Manutenção", Code: "MAN", CostCenter: "CC002"},
	{ID: "3", Name: "Qualidade", Code: "QUAL", CostCenter: "CC003"},
	{ID: "4", Name: "Logística", Code: "LOG", CostCenter: "CC004"},
	{ID: "5", Name: "Administrativo", Code: "ADM", CostCenter: "CC005"},
}

// Seed inserts the reference users and departments. Idempotent: rows that
// already exist are left alone.
func Seed(ctx context.Context, db *sql.DB) error {
	for _, u := range seedUsers {
		_, err := db.ExecContext(ctx,
			`INSERT OR IGNORE INTO users (id, name, email, department, role) VALUES (?, ?, ?, ?, ?)`,
			u.ID, u.Name, u.Email, u.Department, u.Role,
		)
		if err != nil {
			return fmt.Errorf("seeding user %s: %w", u.Email, err)
		}
	}

	for _, d := range seedDepartments {
		_, err := db.ExecContext(ctx,
			`INSERT OR IGNORE INTO departments (id, name, code, cost_center) VALUES (?, ?, ?, ?)`,
			d.ID, d.Name, d.Code, d.CostCenter,
		)
		if err != nil {
			return fmt.Errorf("seeding department %s: %w", d.Code, err)
		}
	}

	return nil
}
