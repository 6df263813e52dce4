package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"scopeworks/internal/analysis"
	"scopeworks/internal/catalog"
	"scopeworks/internal/llm"
	"scopeworks/internal/matching"
	"scopeworks/internal/model"
	"scopeworks/internal/mq"
	"scopeworks/internal/question"
	"scopeworks/pkg/logger"
	"scopeworks/pkg/metrics"
	"scopeworks/pkg/otel"
	"scopeworks/pkg/outbox"
	"scopeworks/pkg/trace"
	"scopeworks/pkg/util"
)

// Question rounds are capped per session so the assistant eventually
// proceeds to matching with whatever it has.
const maxQuestionRounds = 2

// Completer is the summary-phrasing dependency; satisfied by llm.Client.
type Completer interface {
	Complete(ctx context.Context, messages []llm.Message) (string, error)
}

// ScopingService runs the analyze / question / match pipeline.
type ScopingService struct {
	provider    catalog.Provider
	textMatcher *matching.CatalogTextMatcher
	liveMatcher *matching.LiveCatalogMatcher
	rounds      *util.RetryCounter
	completer   Completer
	pool        *pgxpool.Pool
	outboxRepo  *outbox.Repository
	logger      *zap.Logger
}

func NewScopingService(
	provider catalog.Provider,
	rounds *util.RetryCounter,
	completer Completer,
	pool *pgxpool.Pool,
	outboxRepo *outbox.Repository,
	log *zap.Logger,
) *ScopingService {
	return &ScopingService{
		provider:    provider,
		textMatcher: matching.NewCatalogTextMatcher(),
		liveMatcher: matching.NewLiveCatalogMatcher(),
		rounds:      rounds,
		completer:   completer,
		pool:        pool,
		outboxRepo:  outboxRepo,
		logger:      log,
	}
}

// Analyze runs the full project analysis and records a scope.analyzed
// event. Event recording is best effort; the analysis itself never fails.
func (s *ScopingService) Analyze(ctx context.Context, sessionID string, userID int, text string, requirements []string) model.ProjectAnalysis {
	ctx, span := otel.StartSpan(ctx, "scoping.analyze")
	defer span.End()

	result := analysis.AnalyzeProject(text, requirements)

	s.recordAnalyzed(ctx, sessionID, userID, result)

	return result
}

// Questions generates clarifying questions, enforcing the per-session
// round cap. Past the cap the pipeline proceeds to matching regardless.
func (s *ScopingService) Questions(ctx context.Context, sessionID, text string) (model.QuestionSet, error) {
	set := question.Generate(text)

	if !set.NeedsQuestioning {
		metrics.RecordQuestionRound("proceeded")
		if s.rounds != nil && sessionID != "" {
			// Enough detail arrived; the next engagement on this session
			// gets a fresh question budget.
			if err := s.rounds.Reset(ctx, util.FormatQuestionRoundKey(sessionID)); err != nil {
				logger.WithTrace(ctx, s.logger).Warn("question round counter reset failed",
					zap.String("session_id", sessionID),
					zap.Error(err),
				)
			}
		}
		return set, nil
	}

	if s.rounds != nil && sessionID != "" {
		count, err := s.rounds.IncrementAndGet(ctx, util.FormatQuestionRoundKey(sessionID))
		if err != nil {
			// Counter down: ask anyway rather than loop forever silently.
			logger.WithTrace(ctx, s.logger).Warn("question round counter unavailable",
				zap.String("session_id", sessionID),
				zap.Error(err),
			)
		} else if count > maxQuestionRounds {
			metrics.RecordQuestionRound("capped")
			set.NeedsQuestioning = false
			set.Questions = []model.Question{}
			set.Reasoning = "Question limit reached for this session, proceeding with available information"
			return set, nil
		}
	}

	metrics.RecordQuestionRound("asked")
	return set, nil
}

// Match scores the input against the catalog with the plain-text
// strategy. A nil catalog means "use the configured provider".
func (s *ScopingService) Match(ctx context.Context, text string, services []model.Service) []model.ServiceMatch {
	if services == nil {
		services = s.provider.Services(ctx)
	}

	start := time.Now()
	matchList := s.textMatcher.Match(text, services)
	metrics.RecordMatchDuration("text", time.Since(start))

	return matchList
}

// MatchLive scores the input against the catalog with the live-catalog
// strategy.
func (s *ScopingService) MatchLive(ctx context.Context, text string, services []model.Service) []model.ServiceMatch {
	if services == nil {
		services = s.provider.Services(ctx)
	}

	start := time.Now()
	matchList := s.liveMatcher.Match(text, services)
	metrics.RecordMatchDuration("live", time.Since(start))

	return matchList
}

// Summary asks the LLM for an executive phrasing of an analysis.
func (s *ScopingService) Summary(ctx context.Context, projectName string, a model.ProjectAnalysis) (string, error) {
	if s.completer == nil {
		return "", fmt.Errorf("no completion backend configured")
	}

	ctx, span := otel.StartSpan(ctx, "scoping.summary")
	defer span.End()

	var b strings.Builder
	fmt.Fprintf(&b, "Project: %s\n", projectName)
	fmt.Fprintf(&b, "Complexity: %s, Industry: %s, Timeline: %s\n",
		a.Complexity, a.Industry, a.EstimatedTimeline)
	fmt.Fprintf(&b, "Scope: %s (score %d). %s\n",
		a.ScopeReview.Completeness, a.ScopeReview.Score, a.ScopeReview.Summary)
	fmt.Fprintf(&b, "Overall risk: %s\n", a.RiskAssessment.OverallRisk)
	if len(a.KeyRequirements) > 0 {
		fmt.Fprintf(&b, "Key requirements: %s\n", strings.Join(a.KeyRequirements, "; "))
	}

	return s.completer.Complete(ctx, []llm.Message{
		{
			Role:    "system",
			Content: "You write two-paragraph executive summaries of IT project scoping analyses for service-provider sales teams. Be concrete and avoid hedging.",
		},
		{Role: "user", Content: b.String()},
	})
}

// RefreshCatalog forces a live catalog fetch into the cache.
func (s *ScopingService) RefreshCatalog(ctx context.Context) error {
	return s.provider.Refresh(ctx)
}

func (s *ScopingService) recordAnalyzed(ctx context.Context, sessionID string, userID int, a model.ProjectAnalysis) {
	if s.pool == nil || s.outboxRepo == nil {
		return
	}

	payload := mq.ScopeAnalyzedPayload{
		SessionID:     sessionID,
		UserID:        userID,
		Complexity:    a.Complexity,
		Industry:      a.Industry,
		ScopeScore:    a.ScopeReview.Score,
		NeedsQuestion: a.ScopeReview.Score < 20,
		TraceID:       trace.FromContext(ctx),
		AnalyzedAt:    time.Now(),
	}

	tx, err := s.pool.Begin(ctx)
	if err != nil {
		logger.WithTrace(ctx, s.logger).Warn("scope.analyzed event not recorded", zap.Error(err))
		return
	}
	defer tx.Rollback(ctx)

	if err := outbox.InsertEventInTx(ctx, tx, s.outboxRepo, "scope_session", nil,
		mq.RoutingKeyScopeAnalyzed, payload); err != nil {
		logger.WithTrace(ctx, s.logger).Warn("scope.analyzed event not recorded", zap.Error(err))
		return
	}

	if err := tx.Commit(ctx); err != nil {
		logger.WithTrace(ctx, s.logger).Warn("scope.analyzed event not recorded", zap.Error(err))
	}
}
