package repository

import (
	"context"
	"regexp"
	"testing"

	"github.com/ANIKETSHETTY47/hvac-equipment-db/internal/domain"
	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var dataPointRowColumns = []string{"Path", "Server", "Location", "Branch", "SubBranch", "ControlProgram", "Point", "Zone"}

func TestDataPoint_CreateThenGet(t *testing.T) {
	repo, mock := setupMockDB(t)
	ctx := context.Background()

	mock.ExpectExec(`INSERT INTO "DataPoints"`).
		WithArgs("/Site/AHU1/ZoneTemp", "S1", "Bldg-A", nil, nil, nil, nil, nil).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(regexp.QuoteMeta(`FROM "DataPoints" WHERE "Path" = $1`)).
		WithArgs("/Site/AHU1/ZoneTemp").
		WillReturnRows(sqlmock.NewRows(dataPointRowColumns).
			AddRow("/Site/AHU1/ZoneTemp", "S1", "Bldg-A", nil, nil, nil, nil, nil))

	dp := domain.DataPoint{Path: "/Site/AHU1/ZoneTemp", Server: strPtr("S1"), Location: strPtr("Bldg-A")}
	require.NoError(t, repo.CreateDataPoint(ctx, &dp))

	got, err := repo.GetDataPoint(ctx, dp.Path)
	require.NoError(t, err)
	assert.Equal(t, dp, *got)
	assert.Nil(t, got.Branch)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateDataPoint_DuplicatePath(t *testing.T) {
	repo, mock := setupMockDB(t)

	mock.ExpectExec(`INSERT INTO "DataPoints"`).
		WillReturnError(&pgconn.PgError{Code: pgerrcode.UniqueViolation, ConstraintName: "DataPoints_pkey"})

	err := repo.CreateDataPoint(context.Background(), &domain.DataPoint{Path: "/Site/AHU1/ZoneTemp"})
	assert.ErrorIs(t, err, ErrConstraintViolation)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpsertDataPoint(t *testing.T) {
	repo, mock := setupMockDB(t)

	mock.ExpectExec(`(?s)INSERT INTO "DataPoints".*ON CONFLICT \("Path"\) DO UPDATE SET`).
		WithArgs("/Site/AHU1/ZoneTemp", "S2", nil, nil, nil, nil, "ZN-T", "3").
		WillReturnResult(sqlmock.NewResult(0, 1))

	dp := domain.DataPoint{Path: "/Site/AHU1/ZoneTemp", Server: strPtr("S2"), Point: strPtr("ZN-T"), Zone: strPtr("3")}
	require.NoError(t, repo.UpsertDataPoint(context.Background(), &dp))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetDataPoint_NotFound(t *testing.T) {
	repo, mock := setupMockDB(t)

	mock.ExpectQuery(`FROM "DataPoints" WHERE "Path" = \$1`).
		WithArgs("/missing").
		WillReturnRows(sqlmock.NewRows(dataPointRowColumns))

	_, err := repo.GetDataPoint(context.Background(), "/missing")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListDataPoints(t *testing.T) {
	repo, mock := setupMockDB(t)

	mock.ExpectQuery(regexp.QuoteMeta(`FROM "DataPoints" ORDER BY "Path"`)).
		WillReturnRows(sqlmock.NewRows(dataPointRowColumns).
			AddRow("/a", nil, nil, nil, nil, nil, nil, nil).
			AddRow("/b", "S1", nil, nil, nil, nil, nil, nil))

	dps, err := repo.ListDataPoints(context.Background())
	require.NoError(t, err)
	require.Len(t, dps, 2)
	assert.Equal(t, "/a", dps[0].Path)
	assert.Equal(t, "S1", *dps[1].Server)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateDataPoint_NotFound(t *testing.T) {
	repo, mock := setupMockDB(t)

	mock.ExpectExec(`UPDATE "DataPoints" SET`).
		WithArgs("S1", nil, nil, nil, nil, nil, nil, "/missing").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UpdateDataPoint(context.Background(), &domain.DataPoint{Path: "/missing", Server: strPtr("S1")})
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteDataPoint(t *testing.T) {
	repo, mock := setupMockDB(t)

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "DataPoints" WHERE "Path" = $1`)).
		WithArgs("/Site/AHU1/ZoneTemp").
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.DeleteDataPoint(context.Background(), "/Site/AHU1/ZoneTemp"))
	assert.NoError(t, mock.ExpectationsWereMet())
}
