package repository

import (
	"context"
	"fmt"

	"github.com/matdash/matdash-backend/pkg/config"
	"github.com/matdash/matdash-backend/pkg/database"
)

// TypeLabelLength is the number of leading description characters used as
// the coarse material-type grouping key.
const TypeLabelLength = 20

// LanguageSummary is one aggregated row per language code present in the
// material description table.
type LanguageSummary struct {
	LanguageCode     string `db:"language_code" json:"language_code"`
	MaterialCount    int64  `db:"material_count" json:"material_count"`
	DescriptionCount int64  `db:"description_count" json:"description_count"`
}

// MaterialTypeSummary is one aggregated row per truncated-description group.
type MaterialTypeSummary struct {
	TypeLabel string `db:"type_label" json:"type_label"`
	Count     int64  `db:"occurrence_count" json:"count"`
}

// SummaryRepository runs the read-only aggregation queries over the material
// description source table. The table location is injected from configuration;
// both queries are idempotent and never write.
type SummaryRepository struct {
	db    *database.DB
	table string
}

// NewSummaryRepository creates a new summary repository
func NewSummaryRepository(db *database.DB, cfg *config.DashboardConfig) *SummaryRepository {
	return &SummaryRepository{
		db:    db,
		table: cfg.SourceTable(),
	}
}

// LanguageSummaries aggregates the source table by language code, counting
// distinct materials and distinct descriptions, ordered by material count
// descending. Zero rows is a valid result.
func (r *SummaryRepository) LanguageSummaries(ctx context.Context) ([]LanguageSummary, error) {
	query := fmt.Sprintf(`
		SELECT language_code,
		       COUNT(DISTINCT material_id) AS material_count,
		       COUNT(DISTINCT description) AS description_count
		FROM %s
		GROUP BY language_code
		ORDER BY material_count DESC
	`, r.table)

	rows := []LanguageSummary{}
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, database.MapReadError("language summaries", err)
	}

	return rows, nil
}

// MaterialTypes groups descriptions for one language by their first 20
// characters and returns the most frequent groups, at most limit rows.
// Ties on count are broken by label lexical order so the truncation is
// deterministic across runs.
func (r *SummaryRepository) MaterialTypes(ctx context.Context, language string, limit int) ([]MaterialTypeSummary, error) {
	query := fmt.Sprintf(`
		SELECT LEFT(description, %d) AS type_label,
		       COUNT(*) AS occurrence_count
		FROM %s
		WHERE language_code = $1
		GROUP BY LEFT(description, %d)
		ORDER BY occurrence_count DESC, type_label ASC
		LIMIT $2
	`, TypeLabelLength, r.table, TypeLabelLength)

	rows := []MaterialTypeSummary{}
	if err := r.db.SelectContext(ctx, &rows, query, language, limit); err != nil {
		return nil, database.MapReadError("material types", err)
	}

	return rows, nil
}
