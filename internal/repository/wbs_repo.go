package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"scopeworks/internal/model"
)

// WBSRepository stores generated work breakdown structures. The full
// document is kept as JSONB; totals are denormalized for listing without
// parsing every document.
type WBSRepository struct {
	db *pgxpool.Pool
}

func NewWBSRepository(db *pgxpool.Pool) *WBSRepository {
	return &WBSRepository{db: db}
}

// InsertInTx writes a WBS inside the caller's transaction so the outbox
// event commits with it.
func (r *WBSRepository) InsertInTx(ctx context.Context, tx pgx.Tx, userID int, w *model.WorkBreakdownStructure) error {
	doc, err := json.Marshal(w)
	if err != nil {
		return fmt.Errorf("marshal wbs document: %w", err)
	}

	query := `
        INSERT INTO wbs_documents (id, user_id, project_name, document, total_hours, total_cost, total_weeks, team_size, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
    `
	_, err = tx.Exec(ctx, query,
		w.ID, userID, w.ProjectName, doc,
		w.TotalHours, w.TotalCost, w.TotalWeeks, w.TeamSize, w.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert wbs: %w", err)
	}
	return nil
}

// GetByID returns one stored WBS, scoped to its owner.
func (r *WBSRepository) GetByID(ctx context.Context, id string, userID int) (*model.WorkBreakdownStructure, error) {
	query := `
        SELECT document
        FROM wbs_documents
        WHERE id = $1 AND user_id = $2
    `
	var doc []byte
	if err := r.db.QueryRow(ctx, query, id, userID).Scan(&doc); err != nil {
		return nil, err
	}

	var w model.WorkBreakdownStructure
	if err := json.Unmarshal(doc, &w); err != nil {
		return nil, fmt.Errorf("unmarshal wbs document: %w", err)
	}
	return &w, nil
}

// WBSSummary is one listing row, read from the denormalized columns.
type WBSSummary struct {
	ID          string  `json:"id"`
	ProjectName string  `json:"projectName"`
	TotalHours  float64 `json:"totalHours"`
	TotalCost   float64 `json:"totalCost"`
	TotalWeeks  int     `json:"totalWeeks"`
	TeamSize    int     `json:"teamSize"`
}

// ListByUser returns the user's WBS summaries, newest first.
func (r *WBSRepository) ListByUser(ctx context.Context, userID, limit int) ([]WBSSummary, error) {
	query := `
        SELECT id, project_name, total_hours, total_cost, total_weeks, team_size
        FROM wbs_documents
        WHERE user_id = $1
        ORDER BY created_at DESC
        LIMIT $2
    `
	rows, err := r.db.Query(ctx, query, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("list wbs: %w", err)
	}
	defer rows.Close()

	var summaries []WBSSummary
	for rows.Next() {
		var s WBSSummary
		if err := rows.Scan(&s.ID, &s.ProjectName, &s.TotalHours, &s.TotalCost, &s.TotalWeeks, &s.TeamSize); err != nil {
			return nil, fmt.Errorf("scan wbs summary: %w", err)
		}
		summaries = append(summaries, s)
	}
	return summaries, rows.Err()
}
