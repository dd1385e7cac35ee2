package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/mfcastro/requisita/internal/model"
)

// CreateRequest creates a new request from pre-validated input bound to the
// given requester. The per-year sequence number is allocated in the same
// transaction that inserts the request, so numbers are strictly increasing
// and never reused. The success notification referencing the new request is
// written in that transaction too: a stored request always has exactly one
// creation notification, and a failed create leaves neither behind.
// Validation is the caller's responsibility: the store trusts its input.
func CreateRequest(ctx context.Context, db *sql.DB, input model.NewRequestInput, requester model.User) (*model.RFPRequest, error) {
	now := time.Now()

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	ordinal, err := nextOrdinal(ctx, tx, now.Year())
	if err != nil {
		return nil, err
	}

	req := model.NewRequest(input, requester, ordinal, now)

	if err := insertRequest(ctx, tx, req); err != nil {
		return nil, err
	}

	n := newNotification(model.NewNotificationInput{
		Kind:      model.KindSuccess,
		Title:     "Request created",
		Message:   fmt.Sprintf("Request %s was created successfully and is awaiting approval.", req.RequestNumber),
		RequestID: req.ID,
	})
	if err := insertNotification(ctx, tx, n); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("committing request: %w", err)
	}

	return req, nil
}

// UpdateRequest replaces the stored request with the given id wholesale,
// items included. The total value is recomputed from the items before
// writing, so it can never drift from them. Updating an id with no stored
// record is a silent no-op.
func UpdateRequest(ctx context.Context, db *sql.DB, req *model.RFPRequest) error {
	req.TotalValue = model.TotalValue(req.Items)

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	var approverID *string
	if req.Approver != nil {
		approverID = &req.Approver.ID
	}

	result, err := tx.ExecContext(ctx,
		`UPDATE requests SET
		     request_number = ?, request_date = ?, requester_id = ?, department_id = ?,
		     urgency = ?, request_type = ?, justification = ?, expected_date = ?,
		     delivery_location = ?, observations = ?, project_code = ?, total_value = ?,
		     status = ?, approver_id = ?, approval_date = ?, approver_comments = ?,
		     rejection_reason = ?
		 WHERE id = ?`,
		req.RequestNumber, req.RequestDate, req.Requester.ID, req.Department.ID,
		req.Urgency, req.RequestType, req.Justification, req.ExpectedDate,
		req.DeliveryLocation, req.Observations, req.ProjectCode, req.TotalValue,
		req.Status, approverID, req.ApprovalDate, req.ApproverComments,
		req.RejectionReason, req.ID,
	)
	if err != nil {
		return fmt.Errorf("updating request: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking update result: %w", err)
	}
	if rows == 0 {
		// Nothing stored under this id.
		return nil
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM request_items WHERE request_id = ?`, req.ID); err != nil {
		return fmt.Errorf("clearing request items: %w", err)
	}
	if err := insertItems(ctx, tx, req.ID, req.Items); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing request update: %w", err)
	}
	return nil
}

// GetRequest returns a request by ID, items included.
func GetRequest(ctx context.Context, db *sql.DB, id string) (*model.RFPRequest, error) {
	row := db.QueryRowContext(ctx, requestQuery+` WHERE r.id = ?`, id)

	req, err := scanRequest(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting request: %w", err)
	}

	if req.Items, err = listItems(ctx, db, req.ID); err != nil {
		return nil, err
	}
	return req, nil
}

// ListRequests returns all requests in creation order, items included.
func ListRequests(ctx context.Context, db *sql.DB) ([]model.RFPRequest, error) {
	rows, err := db.QueryContext(ctx, requestQuery+` ORDER BY r.rowid`)
	if err != nil {
		return nil, fmt.Errorf("listing requests: %w", err)
	}
	defer rows.Close()

	var requests []model.RFPRequest
	for rows.Next() {
		req, err := scanRequest(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning request: %w", err)
		}
		requests = append(requests, *req)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range requests {
		if requests[i].Items, err = listItems(ctx, db, requests[i].ID); err != nil {
			return nil, err
		}
	}
	return requests, nil
}

// requestQuery selects a full request with its requester, department and
// (optional) approver joined in.
const requestQuery = `
SELECT r.id, r.request_number, r.request_date, r.urgency, r.request_type,
       r.justification, r.expected_date, r.delivery_location, r.observations,
       r.project_code, r.total_value, r.status, r.approval_date,
       r.approver_comments, r.rejection_reason,
       u.id, u.name, u.email, u.department, u.role,
       d.id, d.name, d.code, d.cost_center,
       a.id, a.name, a.email, a.department, a.role
FROM requests r
JOIN users u ON u.id = r.requester_id
JOIN departments d ON d.id = r.department_id
LEFT JOIN users a ON a.id = r.approver_id`

// rowScanner covers both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanRequest(row rowScanner) (*model.RFPRequest, error) {
	req := &model.RFPRequest{}
	var observations, projectCode, approverComments, rejectionReason sql.NullString
	var totalValue sql.NullFloat64
	var approvalDate sql.NullTime
	var apprID, apprName, apprEmail, apprDept, apprRole sql.NullString

	err := row.Scan(
		&req.ID, &req.RequestNumber, &req.RequestDate, &req.Urgency, &req.RequestType,
		&req.Justification, &req.ExpectedDate, &req.DeliveryLocation, &observations,
		&projectCode, &totalValue, &req.Status, &approvalDate,
		&approverComments, &rejectionReason,
		&req.Requester.ID, &req.Requester.Name, &req.Requester.Email, &req.Requester.Department, &req.Requester.Role,
		&req.Department.ID, &req.Department.Name, &req.Department.Code, &req.Department.CostCenter,
		&apprID, &apprName, &apprEmail, &apprDept, &apprRole,
	)
	if err != nil {
		return nil, err
	}

	req.Observations = observations.String
	req.ProjectCode = projectCode.String
	req.ApproverComments = approverComments.String
	req.RejectionReason = rejectionReason.String
	if totalValue.Valid {
		req.TotalValue = &totalValue.Float64
	}
	if approvalDate.Valid {
		req.ApprovalDate = &approvalDate.Time
	}
	if apprID.Valid {
		req.Approver = &model.User{
			ID:         apprID.String,
			Name:       apprName.String,
			Email:      apprEmail.String,
			Department: apprDept.String,
			Role:       apprRole.String,
		}
	}
	return req, nil
}

func insertRequest(ctx context.Context, tx *sql.Tx, req *model.RFPRequest) error {
	_, err := tx.ExecContext(ctx,
		`INSERT INTO requests (
		     id, request_number, request_date, requester_id, department_id,
		     urgency, request_type, justification, expected_date,
		     delivery_location, observations, project_code, total_value, status
		 ) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		req.ID, req.RequestNumber, req.RequestDate, req.Requester.ID, req.Department.ID,
		req.Urgency, req.RequestType, req.Justification, req.ExpectedDate,
		req.DeliveryLocation, req.Observations, req.ProjectCode, req.TotalValue, req.Status,
	)
	if err != nil {
		return fmt.Errorf("inserting request: %w", err)
	}
	return insertItems(ctx, tx, req.ID, req.Items)
}

func insertItems(ctx context.Context, tx *sql.Tx, requestID string, items []model.RequestItem) error {
	for i, item := range items {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO request_items (
			     id, request_id, position, description, quantity, unit,
			     estimated_value, specifications, suggested_supplier
			 ) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			item.ID, requestID, i, item.Description, item.Quantity, item.Unit,
			item.EstimatedValue, item.Specifications, item.SuggestedSupplier,
		)
		if err != nil {
			return fmt.Errorf("inserting request item: %w", err)
		}
	}
	return nil
}

func listItems(ctx context.Context, db *sql.DB, requestID string) ([]model.RequestItem, error) {
	rows, err := db.QueryContext(ctx,
		`SELECT id, description, quantity, unit, estimated_value, specifications, suggested_supplier
		 FROM request_items WHERE request_id = ? ORDER BY position`, requestID,
	)
	if err != nil {
		return nil, fmt.Errorf("listing request items: %w", err)
	}
	defer rows.Close()

	var items []model.RequestItem
	for rows.Next() {
		var item model.RequestItem
		var estimatedValue sql.NullFloat64
		var specifications, suggestedSupplier sql.NullString
		err := rows.Scan(&item.ID, &item.Description, &item.Quantity, &item.Unit,
			&estimatedValue, &specifications, &suggestedSupplier)
		if err != nil {
			return nil, fmt.Errorf("scanning request item: %w", err)
		}
		if estimatedValue.Valid {
			item.EstimatedValue = &estimatedValue.Float64
		}
		item.Specifications = specifications.String
		item.SuggestedSupplier = suggestedSupplier.String
		items = append(items, item)
	}
	return items, rows.Err()
}

// nextOrdinal advances and returns the per-year request counter. The counter
// only ever moves forward, so a number is never handed out twice.
func nextOrdinal(ctx context.Context, tx *sql.Tx, year int) (int, error) {
	if _, err := tx.ExecContext(ctx,
		`INSERT OR IGNORE INTO sequences (year, counter) VALUES (?, 0)`, year,
	); err != nil {
		return 0, fmt.Errorf("initializing sequence: %w", err)
	}

	if _, err := tx.ExecContext(ctx,
		`UPDATE sequences SET counter = counter + 1 WHERE year = ?`, year,
	); err != nil {
		return 0, fmt.Errorf("advancing sequence: %w", err)
	}

	var n int
	if err := tx.QueryRowContext(ctx,
		`SELECT counter FROM sequences WHERE year = ?`, year,
	).Scan(&n); err != nil {
		return 0, fmt.Errorf("reading sequence: %w", err)
	}
	return n, nil
}
