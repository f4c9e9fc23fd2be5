package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/ANIKETSHETTY47/hvac-equipment-db/internal/domain"
	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	insertFilterReadingSQL = `INSERT INTO "Filter_Reading" ("FilterId", "Time_Stamp", "FilterType", "DifferencePressure") VALUES ($1, $2, $3, $4)`
	selectFilterReadingSQL = `SELECT "FilterId", "Time_Stamp", "FilterType", "DifferencePressure" FROM "Filter_Reading" WHERE "FilterId" = $1 ORDER BY "Time_Stamp"`
)

var filterReadingColumns = []string{"FilterId", "Time_Stamp", "FilterType", "DifferencePressure"}

func TestFilterReading_InsertThenReload(t *testing.T) {
	repo, mock := setupMockDB(t)
	ctx := context.Background()

	mock.ExpectExec(regexp.QuoteMeta(insertFilterReadingSQL)).
		WithArgs(1, t0, "pleated", 0.5).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(regexp.QuoteMeta(selectFilterReadingSQL)).
		WithArgs(1).
		WillReturnRows(sqlmock.NewRows(filterReadingColumns).AddRow(1, t0, "pleated", 0.5))

	in := domain.FilterReading{FilterID: 1, TimeStamp: t0, FilterType: strPtr("pleated"), DifferencePressure: floatPtr(0.5)}
	require.NoError(t, repo.InsertFilterReading(ctx, &in))

	got, err := repo.ListFilterReadings(ctx, 1, domain.TimeRange{})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, in, got[0])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFilterReading_DuplicateTimestampRejected(t *testing.T) {
	repo, mock := setupMockDB(t)
	ctx := context.Background()

	mock.ExpectExec(regexp.QuoteMeta(insertFilterReadingSQL)).
		WithArgs(1, t0, "pleated", 0.5).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta(insertFilterReadingSQL)).
		WithArgs(1, t0, "pleated", 0.9).
		WillReturnError(&pgconn.PgError{Code: pgerrcode.UniqueViolation, ConstraintName: "Filter_Reading_pkey"})

	first := domain.FilterReading{FilterID: 1, TimeStamp: t0, FilterType: strPtr("pleated"), DifferencePressure: floatPtr(0.5)}
	require.NoError(t, repo.InsertFilterReading(ctx, &first))

	second := first
	second.DifferencePressure = floatPtr(0.9)
	err := repo.InsertFilterReading(ctx, &second)
	assert.ErrorIs(t, err, ErrConstraintViolation)

	var se *StorageError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, "Filter_Reading", se.Table)
	assert.Equal(t, "Filter_Reading_pkey", se.Constraint)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFilterReading_UnknownFilterRejected(t *testing.T) {
	repo, mock := setupMockDB(t)

	mock.ExpectExec(regexp.QuoteMeta(insertFilterReadingSQL)).
		WithArgs(42, t0, nil, nil).
		WillReturnError(&pgconn.PgError{Code: pgerrcode.ForeignKeyViolation, ConstraintName: "Filter_Reading_FilterId_fkey"})

	err := repo.InsertFilterReading(context.Background(), &domain.FilterReading{FilterID: 42, TimeStamp: t0})
	assert.ErrorIs(t, err, ErrConstraintViolation)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListFilterReadings_Window(t *testing.T) {
	repo, mock := setupMockDB(t)
	from, to := t0, t0.Add(time.Hour)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT "FilterId", "Time_Stamp", "FilterType", "DifferencePressure" FROM "Filter_Reading" WHERE "FilterId" = $1 AND "Time_Stamp" >= $2 AND "Time_Stamp" < $3 ORDER BY "Time_Stamp"`)).
		WithArgs(1, from, to).
		WillReturnRows(sqlmock.NewRows(filterReadingColumns).
			AddRow(1, t0, nil, 0.1).
			AddRow(1, t0.Add(30*time.Minute), nil, 0.2))

	got, err := repo.ListFilterReadings(context.Background(), 1, domain.TimeRange{From: from, To: to})
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Nil(t, got[0].FilterType)
	assert.Equal(t, 0.2, *got[1].DifferencePressure)
	assert.True(t, got[0].TimeStamp.Before(got[1].TimeStamp))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFilterReading_OffsetTimesStoredAsUTC(t *testing.T) {
	repo, mock := setupMockDB(t)
	ctx := context.Background()
	cet := time.FixedZone("CET", 2*60*60)
	local := time.Date(2024, 3, 1, 14, 0, 0, 0, cet)

	mock.ExpectExec(regexp.QuoteMeta(insertFilterReadingSQL)).
		WithArgs(1, utcTime{t0}, nil, 0.5).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(regexp.QuoteMeta(`WHERE "FilterId" = $1 AND "Time_Stamp" >= $2 AND "Time_Stamp" < $3`)).
		WithArgs(1, utcTime{t0}, utcTime{t0.Add(time.Hour)}).
		WillReturnRows(sqlmock.NewRows(filterReadingColumns).AddRow(1, t0, nil, 0.5))

	in := domain.FilterReading{FilterID: 1, TimeStamp: local, DifferencePressure: floatPtr(0.5)}
	require.NoError(t, repo.InsertFilterReading(ctx, &in))
	assert.Equal(t, time.UTC, in.TimeStamp.Location())

	got, err := repo.ListFilterReadings(ctx, 1, domain.TimeRange{From: local, To: local.Add(time.Hour)})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.True(t, got[0].TimeStamp.Equal(local))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListReadingsIn_OffsetBoundsSentAsUTC(t *testing.T) {
	repo, mock := setupMockDB(t)
	est := time.FixedZone("EST", -5*60*60)

	mock.ExpectQuery(regexp.QuoteMeta(`WHERE "DamperId" IN ($1) AND "Time_stamp" < $2`)).
		WithArgs(4, utcTime{t0}).
		WillReturnRows(sqlmock.NewRows(damperReadingTable.allColumns()))

	_, err := listReadingsIn[domain.DamperReading](context.Background(), repo, damperReadingTable,
		[]int64{4}, domain.TimeRange{To: t0.In(est)})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListFanReadings_Empty(t *testing.T) {
	repo, mock := setupMockDB(t)

	mock.ExpectQuery(`FROM "Fan_Reading" WHERE "FanId" = \$1`).
		WithArgs(5).
		WillReturnRows(sqlmock.NewRows(fanReadingTable.allColumns()))

	got, err := repo.ListFanReadings(context.Background(), 5, domain.TimeRange{})
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInsertHECReading_BooleanAndTextColumns(t *testing.T) {
	repo, mock := setupMockDB(t)

	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO "Heat_Exchanger_Coil_Reading" ("HECId", "Time_stamp", "isHotWaterSupply", "CoilType", "WaterTemperature", "valveOpeningPercentage") VALUES ($1, $2, $3, $4, $5, $6)`)).
		WithArgs(3, t0, true, "reheat", 140.5, nil).
		WillReturnResult(sqlmock.NewResult(0, 1))

	rd := domain.HECReading{
		HECID:            3,
		TimeStamp:        t0,
		IsHotWaterSupply: boolPtr(true),
		CoilType:         strPtr("reheat"),
		WaterTemperature: floatPtr(140.5),
	}
	require.NoError(t, repo.InsertHECReading(context.Background(), &rd))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInsertVAVReading(t *testing.T) {
	repo, mock := setupMockDB(t)

	mock.ExpectExec(`INSERT INTO "Variable_Air_Volume_Reading"`).
		WithArgs(7, t0, "VAV-2-14", nil, nil, 71.5, nil, false, 0.8, nil, 35.0).
		WillReturnResult(sqlmock.NewResult(0, 1))

	rd := domain.VAVReading{
		VAVID:              7,
		TimeStamp:          t0,
		VAVName:            strPtr("VAV-2-14"),
		ZoneTemperature:    floatPtr(71.5),
		CondensateDetector: boolPtr(false),
		DuctStaticPressure: floatPtr(0.8),
		DamperPosition:     floatPtr(35),
	}
	require.NoError(t, repo.InsertVAVReading(context.Background(), &rd))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListAHUReadings_ReadsEveryColumn(t *testing.T) {
	repo, mock := setupMockDB(t)

	mock.ExpectQuery(`FROM "Air_Handling_Unit_Reading" WHERE "AHUNumber" = \$1 AND "Time_stamp" >= \$2 ORDER BY "Time_stamp"`).
		WithArgs(1, t0).
		WillReturnRows(sqlmock.NewRows(ahuReadingTable.allColumns()).
			AddRow(1, t0, 72.0, 1.2, 74.0, 55.0, 76.0, 60.0, false, 400.0, 650.0, nil, true, 1.1, 62.0, 1800.0))

	got, err := repo.ListAHUReadings(context.Background(), 1, domain.TimeRange{From: t0})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, 72.0, *got[0].ZoneTemperature)
	assert.False(t, *got[0].SmokeDetector)
	assert.Nil(t, got[0].Spare)
	assert.True(t, *got[0].HiStatic)
	assert.Equal(t, 1800.0, *got[0].OSACFM)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInsertThermafuserReading_ConnectionLost(t *testing.T) {
	repo, mock := setupMockDB(t)

	mock.ExpectExec(`INSERT INTO "Thermafuser_Reading"`).
		WillReturnError(&pgconn.PgError{Code: pgerrcode.AdminShutdown})

	err := repo.InsertThermafuserReading(context.Background(), &domain.ThermafuserReading{ThermafuserID: 1, TimeStamp: t0})
	assert.ErrorIs(t, err, ErrConnectionFailure)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReadingTableSQL(t *testing.T) {
	assert.Equal(t,
		`INSERT INTO "Damper_Reading" ("DamperId", "Time_stamp", "DamperType", "DamperInputVoltage", "DamperOpeningPercentage", "isolationDamper") VALUES (:DamperId, :Time_stamp, :DamperType, :DamperInputVoltage, :DamperOpeningPercentage, :isolationDamper)`,
		damperReadingTable.insertSQL())

	query, args := savReadingTable.selectByKey(domain.TimeRange{To: t0})
	assert.Equal(t,
		`SELECT "SAVId", "Time_stamp", "SAVName", "MiscSpareInput", "ZoneTemperature", "DischargeTemperature", "MiscInput", "CondensateDetector", "ValveOutputPercentage" FROM "Staged_Air_Volume_Reading" WHERE "SAVId" = $1 AND "Time_stamp" < $2 ORDER BY "Time_stamp"`,
		query)
	assert.Equal(t, []any{t0}, args)

	query, args = filterReadingTable.selectByKeys(domain.TimeRange{From: t0, To: t0.Add(time.Hour)})
	assert.Equal(t,
		`SELECT "FilterId", "Time_Stamp", "FilterType", "DifferencePressure" FROM "Filter_Reading" WHERE "FilterId" IN (?) AND "Time_Stamp" >= ? AND "Time_Stamp" < ? ORDER BY "FilterId", "Time_Stamp"`,
		query)
	assert.Equal(t, []any{t0, t0.Add(time.Hour)}, args)
}

func TestListReadingsIn_EmptyKeysSkipsQuery(t *testing.T) {
	repo, mock := setupMockDB(t)

	got, err := listReadingsIn[domain.FanReading](context.Background(), repo, fanReadingTable, nil, domain.TimeRange{})
	require.NoError(t, err)
	assert.Empty(t, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListReadingsIn_ExpandsKeys(t *testing.T) {
	repo, mock := setupMockDB(t)

	mock.ExpectQuery(regexp.QuoteMeta(`FROM "Fan_Reading" WHERE "FanId" IN ($1, $2) AND "Time_stamp" >= $3 ORDER BY "FanId", "Time_stamp"`)).
		WithArgs(1, 2, t0).
		WillReturnRows(sqlmock.NewRows([]string{"FanId", "Time_stamp"}).
			AddRow(1, t0).
			AddRow(2, t0))

	got, err := listReadingsIn[domain.FanReading](context.Background(), repo, fanReadingTable, []int64{1, 2}, domain.TimeRange{From: t0})
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, int64(2), got[1].FanID)
	assert.NoError(t, mock.ExpectationsWereMet())
}
