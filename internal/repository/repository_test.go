package repository

import (
	"database/sql/driver"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"
)

func setupMockDB(t *testing.T) (*Repos, sqlmock.Sqlmock) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { mockDB.Close() })

	return New(sqlx.NewDb(mockDB, "pgx")), mock
}

var t0 = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

func floatPtr(v float64) *float64 { return &v }
func strPtr(v string) *string     { return &v }
func boolPtr(v bool) *bool        { return &v }

// utcTime matches a time.Time argument equal to want and located in UTC.
type utcTime struct{ want time.Time }

func (a utcTime) Match(v driver.Value) bool {
	got, ok := v.(time.Time)
	return ok && got.Equal(a.want) && got.Location() == time.UTC
}
