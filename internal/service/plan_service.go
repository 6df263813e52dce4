package service

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"scopeworks/internal/model"
	"scopeworks/internal/mq"
	"scopeworks/internal/repository"
	"scopeworks/internal/wbs"
	"scopeworks/pkg/logger"
	"scopeworks/pkg/metrics"
	"scopeworks/pkg/otel"
	"scopeworks/pkg/outbox"
	"scopeworks/pkg/trace"
)

// PlanService turns selected matches into a persisted work breakdown
// structure.
type PlanService struct {
	pool       *pgxpool.Pool
	wbsRepo    *repository.WBSRepository
	outboxRepo *outbox.Repository
	generator  *wbs.Generator
	logger     *zap.Logger
}

func NewPlanService(
	pool *pgxpool.Pool,
	wbsRepo *repository.WBSRepository,
	outboxRepo *outbox.Repository,
	generator *wbs.Generator,
	log *zap.Logger,
) *PlanService {
	return &PlanService{
		pool:       pool,
		wbsRepo:    wbsRepo,
		outboxRepo: outboxRepo,
		generator:  generator,
		logger:     log,
	}
}

// Generate builds the WBS, persists it, and records a wbs.generated
// event in the same transaction. Empty results (no valid matches) are
// returned but not persisted.
func (s *PlanService) Generate(ctx context.Context, userID int, matches []model.ServiceMatch, projectName string) (model.WorkBreakdownStructure, error) {
	ctx, span := otel.StartSpan(ctx, "plan.generate")
	defer span.End()

	w := s.generator.Generate(matches, projectName)

	if len(w.Phases) == 0 {
		metrics.RecordWBSGenerated("empty")
		return w, nil
	}

	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return model.WorkBreakdownStructure{}, fmt.Errorf("begin wbs transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if err := s.wbsRepo.InsertInTx(ctx, tx, userID, &w); err != nil {
		return model.WorkBreakdownStructure{}, err
	}

	aggregateID := int64(userID)
	payload := mq.WBSGeneratedPayload{
		WBSID:       w.ID,
		UserID:      userID,
		ProjectName: w.ProjectName,
		TotalHours:  w.TotalHours,
		TotalCost:   w.TotalCost,
		TotalWeeks:  w.TotalWeeks,
		TraceID:     trace.FromContext(ctx),
		GeneratedAt: time.Now(),
	}
	if err := outbox.InsertEventInTx(ctx, tx, s.outboxRepo, "wbs", &aggregateID,
		mq.RoutingKeyWBSGenerated, payload); err != nil {
		return model.WorkBreakdownStructure{}, err
	}

	if err := tx.Commit(ctx); err != nil {
		return model.WorkBreakdownStructure{}, fmt.Errorf("commit wbs transaction: %w", err)
	}

	metrics.RecordWBSGenerated("success")
	logger.WithTrace(ctx, s.logger).Info("wbs generated",
		zap.String("wbs_id", w.ID),
		zap.Int("user_id", userID),
		zap.Float64("total_hours", w.TotalHours),
		zap.Float64("total_cost", w.TotalCost),
	)

	return w, nil
}

// Get returns one stored WBS scoped to its owner.
func (s *PlanService) Get(ctx context.Context, id string, userID int) (*model.WorkBreakdownStructure, error) {
	return s.wbsRepo.GetByID(ctx, id, userID)
}

// List returns the user's stored WBS summaries.
func (s *PlanService) List(ctx context.Context, userID int) ([]repository.WBSSummary, error) {
	return s.wbsRepo.ListByUser(ctx, userID, 50)
}

// Export serializes a stored WBS in the requested format.
func (s *PlanService) Export(ctx context.Context, id string, userID int, format string) ([]byte, error) {
	w, err := s.wbsRepo.GetByID(ctx, id, userID)
	if err != nil {
		return nil, err
	}
	return wbs.Export(*w, format)
}
