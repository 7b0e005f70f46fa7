package service

import (
	"context"

	"github.com/matdash/matdash-backend/internal/materials/repository"
	"github.com/matdash/matdash-backend/pkg/config"
	"github.com/matdash/matdash-backend/pkg/logger"
)

// SummaryStore loads the two aggregation results the dashboard is built from.
type SummaryStore interface {
	LanguageSummaries(ctx context.Context) ([]repository.LanguageSummary, error)
	MaterialTypes(ctx context.Context, language string, limit int) ([]repository.MaterialTypeSummary, error)
}

// Metrics are the two scalar values shown at the top of the dashboard.
// They are recomputed from the language summaries on every build.
type Metrics struct {
	TotalMaterials     int64 `json:"total_materials"`
	SupportedLanguages int   `json:"supported_languages"`
}

// Dashboard is one complete render-ready result set. It is assembled fresh
// per request and never cached.
type Dashboard struct {
	Languages     []repository.LanguageSummary     `json:"languages"`
	MaterialTypes []repository.MaterialTypeSummary `json:"material_types"`
	Metrics       Metrics                          `json:"metrics"`
}

// DashboardService handles dashboard business logic
type DashboardService struct {
	store    SummaryStore
	language string
	limit    int
	logger   *logger.Logger
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(store SummaryStore, cfg *config.DashboardConfig, log *logger.Logger) *DashboardService {
	return &DashboardService{
		store:    store,
		language: cfg.DefaultLanguage,
		limit:    cfg.TypeLimit,
		logger:   log,
	}
}

// Build runs both aggregation queries and assembles the dashboard.
// If either query fails the whole build fails; a partial dashboard is
// never returned.
func (s *DashboardService) Build(ctx context.Context) (*Dashboard, error) {
	languages, err := s.store.LanguageSummaries(ctx)
	if err != nil {
		return nil, err
	}

	types, err := s.store.MaterialTypes(ctx, s.language, s.limit)
	if err != nil {
		return nil, err
	}

	return &Dashboard{
		Languages:     languages,
		MaterialTypes: types,
		Metrics:       ComputeMetrics(languages),
	}, nil
}

// Languages returns the per-language summary rows.
func (s *DashboardService) Languages(ctx context.Context) ([]repository.LanguageSummary, error) {
	return s.store.LanguageSummaries(ctx)
}

// MaterialTypes returns the top material type groups for a language.
// Empty language and zero limit fall back to the configured defaults.
func (s *DashboardService) MaterialTypes(ctx context.Context, language string, limit int) ([]repository.MaterialTypeSummary, error) {
	if language == "" {
		language = s.language
	}
	if limit <= 0 {
		limit = s.limit
	}
	return s.store.MaterialTypes(ctx, language, limit)
}

// ComputeMetrics derives the summary metrics from the language rows.
// An empty input yields zero values, not an error.
func ComputeMetrics(languages []repository.LanguageSummary) Metrics {
	var total int64
	for _, l := range languages {
		total += l.MaterialCount
	}
	return Metrics{
		TotalMaterials:     total,
		SupportedLanguages: len(languages),
	}
}
