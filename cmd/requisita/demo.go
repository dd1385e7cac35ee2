package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/mfcastro/requisita/internal/model"
	"github.com/mfcastro/requisita/internal/store"
)

func ptr(v float64) *float64 { return &v }

// seedDemoRequests populates an empty database with a few example requests in
// different stages of the workflow. A database that already has requests is
// left untouched.
func seedDemoRequests(ctx context.Context, database *sql.DB) error {
	existing, err := store.ListRequests(ctx, database)
	if err != nil {
		return fmt.Errorf("listing requests: %w", err)
	}
	if len(existing) > 0 {
		slog.Info("demo seed skipped, database not empty", "requests", len(existing))
		return nil
	}

	joao, err := store.GetUser(ctx, database, "1")
	if err != nil {
		return err
	}
	maria, err := store.GetUser(ctx, database, "2")
	if err != nil {
		return err
	}
	carlos, err := store.GetUser(ctx, database, "3")
	if err != nil {
		return err
	}
	if joao == nil || maria == nil || carlos == nil {
		return errors.New("reference users missing")
	}

	producao, err := store.GetDepartment(ctx, database, "1")
	if err != nil {
		return err
	}
	manutencao, err := store.GetDepartment(ctx, database, "2")
	if err != nil {
		return err
	}
	qualidade, err := store.GetDepartment(ctx, database, "3")
	if err != nil {
		return err
	}
	if producao == nil || manutencao == nil || qualidade == nil {
		return errors.New("reference departments missing")
	}

	now := time.Now()

	// An approved material request.
	approved, err := store.CreateRequest(ctx, database, model.NewRequestInput{
		Department:  *producao,
		Urgency:     model.UrgencyNormal,
		RequestType: model.TypeMaterial,
		Items: []model.NewItemInput{
			{Description: "Papel filtro industrial", Quantity: 50, Unit: "caixa", EstimatedValue: ptr(45.0),
				Specifications: "Gramatura 80g, diâmetro 320mm"},
		},
		Justification:    "Reposição do estoque para a linha de filtragem",
		ExpectedDate:     now.AddDate(0, 0, 15),
		DeliveryLocation: "Almoxarifado Central",
	}, *joao)
	if err != nil {
		return fmt.Errorf("seeding approved request: %w", err)
	}
	approvalDate := now.AddDate(0, 0, -2)
	approved.Status = model.StatusApproved
	approved.Approver = maria
	approved.ApprovalDate = &approvalDate
	approved.ApproverComments = "Aprovado conforme orçamento do trimestre"
	if err := store.UpdateRequest(ctx, database, approved); err != nil {
		return fmt.Errorf("seeding approved request: %w", err)
	}

	// An equipment request awaiting a decision.
	pending, err := store.CreateRequest(ctx, database, model.NewRequestInput{
		Department:  *manutencao,
		Urgency:     model.UrgencyUrgent,
		RequestType: model.TypeEquipment,
		Items: []model.NewItemInput{
			{Description: "Bomba centrífuga 5CV", Quantity: 1, Unit: "unidade", EstimatedValue: ptr(8500.0),
				SuggestedSupplier: "Bombas Sul Ltda"},
		},
		Justification:    "Substituição da bomba da linha 2, em falha intermitente",
		ExpectedDate:     now.AddDate(0, 0, 7),
		DeliveryLocation: "Oficina de Manutenção",
		ProjectCode:      "MAN-2026-014",
	}, *carlos)
	if err != nil {
		return fmt.Errorf("seeding pending request: %w", err)
	}
	pending.Status = model.StatusPending
	if err := store.UpdateRequest(ctx, database, pending); err != nil {
		return fmt.Errorf("seeding pending request: %w", err)
	}

	// A freshly submitted service request.
	_, err = store.CreateRequest(ctx, database, model.NewRequestInput{
		Department:  *qualidade,
		Urgency:     model.UrgencyNormal,
		RequestType: model.TypeService,
		Items: []model.NewItemInput{
			{Description: "Calibração de instrumentos de medição", Quantity: 12, Unit: "serviço",
				Specifications: "Certificado rastreável RBC"},
		},
		Justification:    "Calibração anual obrigatória dos instrumentos do laboratório",
		ExpectedDate:     now.AddDate(0, 1, 0),
		DeliveryLocation: "Laboratório de Qualidade",
	}, *joao)
	if err != nil {
		return fmt.Errorf("seeding submitted request: %w", err)
	}

	slog.Info("demo requests seeded", "count", 3)
	return nil
}
