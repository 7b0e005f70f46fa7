package repository_test

import (
	"context"
	"testing"

	"github.com/lib/pq"
	"github.com/matdash/matdash-backend/internal/materials/repository"
	"github.com/matdash/matdash-backend/pkg/config"
	"github.com/matdash/matdash-backend/pkg/database"
	"github.com/matdash/matdash-backend/pkg/errors"
	"github.com/matdash/matdash-backend/pkg/logger"
	"github.com/matdash/matdash-backend/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRepo(t *testing.T, cfg config.DashboardConfig) (*repository.SummaryRepository, *testutil.MockDB) {
	mockDB := testutil.NewMockDB(t)
	t.Cleanup(func() { mockDB.Close() })

	db := database.FromSqlx(mockDB.DB, logger.New("test", "test"))
	return repository.NewSummaryRepository(db, &cfg), mockDB
}

func defaultConfig() config.DashboardConfig {
	return config.DashboardConfig{
		Table:           "material_descriptions",
		DefaultLanguage: "E",
		TypeLimit:       10,
	}
}

func TestSummaryRepository_LanguageSummaries(t *testing.T) {
	repo, mockDB := newRepo(t, defaultConfig())

	rows := testutil.MockRows("language_code", "material_count", "description_count").
		AddRow("E", 100, 90).
		AddRow("D", 50, 45).
		AddRow("F", 12, 12)

	mockDB.ExpectQuery("COUNT(DISTINCT material_id)").WillReturnRows(rows)

	got, err := repo.LanguageSummaries(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 3)

	assert.Equal(t, "E", got[0].LanguageCode)
	assert.Equal(t, int64(100), got[0].MaterialCount)
	assert.Equal(t, int64(90), got[0].DescriptionCount)
	assert.Equal(t, "D", got[1].LanguageCode)
	assert.Equal(t, "F", got[2].LanguageCode)

	mockDB.ExpectationsWereMet(t)
}

func TestSummaryRepository_LanguageSummaries_Empty(t *testing.T) {
	repo, mockDB := newRepo(t, defaultConfig())

	mockDB.ExpectQuery("GROUP BY language_code").
		WillReturnRows(testutil.MockRows("language_code", "material_count", "description_count"))

	got, err := repo.LanguageSummaries(context.Background())
	require.NoError(t, err)
	assert.Empty(t, got)

	mockDB.ExpectationsWereMet(t)
}

func TestSummaryRepository_LanguageSummaries_TableMissing(t *testing.T) {
	repo, mockDB := newRepo(t, defaultConfig())

	mockDB.ExpectQuery("GROUP BY language_code").
		WillReturnError(&pq.Error{Code: "42P01", Message: `relation "material_descriptions" does not exist`})

	got, err := repo.LanguageSummaries(context.Background())
	require.Error(t, err)
	assert.Nil(t, got)
	assert.True(t, errors.IsDataAccess(err))

	var appErr *errors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "DATA_ACCESS_ERROR", appErr.Code)
	assert.Contains(t, appErr.Message, "does not exist")
}

func TestSummaryRepository_MaterialTypes(t *testing.T) {
	repo, mockDB := newRepo(t, defaultConfig())

	rows := testutil.MockRows("type_label", "occurrence_count").
		AddRow("Steel Rod Type A - H", 40).
		AddRow("Copper Wire 2mm", 25).
		AddRow("Aluminium Sheet 1x2", 25)

	mockDB.ExpectQuery("LEFT(description, 20)").
		WithArgs("E", 10).
		WillReturnRows(rows)

	got, err := repo.MaterialTypes(context.Background(), "E", 10)
	require.NoError(t, err)
	require.Len(t, got, 3)

	assert.Equal(t, "Steel Rod Type A - H", got[0].TypeLabel)
	assert.Equal(t, int64(40), got[0].Count)

	mockDB.ExpectationsWereMet(t)
}

func TestSummaryRepository_MaterialTypes_Empty(t *testing.T) {
	repo, mockDB := newRepo(t, defaultConfig())

	mockDB.ExpectQuery("LEFT(description, 20)").
		WithArgs("E", 10).
		WillReturnRows(testutil.MockRows("type_label", "occurrence_count"))

	got, err := repo.MaterialTypes(context.Background(), "E", 10)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestSummaryRepository_MaterialTypes_QueryFailure(t *testing.T) {
	repo, mockDB := newRepo(t, defaultConfig())

	mockDB.ExpectQuery("LEFT(description, 20)").
		WithArgs("E", 10).
		WillReturnError(&pq.Error{Code: "42703", Message: `column "description" does not exist`})

	_, err := repo.MaterialTypes(context.Background(), "E", 10)
	require.Error(t, err)
	assert.True(t, errors.IsDataAccess(err))
}

func TestSummaryRepository_UsesConfiguredTable(t *testing.T) {
	cfg := defaultConfig()
	cfg.Schema = "sap"
	cfg.Table = "makt"
	repo, mockDB := newRepo(t, cfg)

	mockDB.ExpectQuery("FROM sap.makt").
		WillReturnRows(testutil.MockRows("language_code", "material_count", "description_count"))

	_, err := repo.LanguageSummaries(context.Background())
	require.NoError(t, err)
	mockDB.ExpectationsWereMet(t)
}
