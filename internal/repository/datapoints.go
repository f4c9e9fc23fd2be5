package repository

import (
	"context"

	"github.com/ANIKETSHETTY47/hvac-equipment-db/internal/domain"
)

const dataPointTable = "DataPoints"

const dataPointColumns = `"Path", "Server", "Location", "Branch", "SubBranch", "ControlProgram", "Point", "Zone"`

func (r *Repos) CreateDataPoint(ctx context.Context, dp *domain.DataPoint) error {
	_, err := r.db.NamedExecContext(ctx, `INSERT INTO "DataPoints" (`+dataPointColumns+`)
		VALUES (:Path, :Server, :Location, :Branch, :SubBranch, :ControlProgram, :Point, :Zone)`, dp)
	return wrap("insert", dataPointTable, err)
}

// UpsertDataPoint inserts dp or overwrites the row with the same path.
func (r *Repos) UpsertDataPoint(ctx context.Context, dp *domain.DataPoint) error {
	_, err := r.db.NamedExecContext(ctx, `INSERT INTO "DataPoints" (`+dataPointColumns+`)
		VALUES (:Path, :Server, :Location, :Branch, :SubBranch, :ControlProgram, :Point, :Zone)
		ON CONFLICT ("Path") DO UPDATE SET
			"Server" = EXCLUDED."Server", "Location" = EXCLUDED."Location",
			"Branch" = EXCLUDED."Branch", "SubBranch" = EXCLUDED."SubBranch",
			"ControlProgram" = EXCLUDED."ControlProgram", "Point" = EXCLUDED."Point",
			"Zone" = EXCLUDED."Zone"`, dp)
	return wrap("upsert", dataPointTable, err)
}

func (r *Repos) GetDataPoint(ctx context.Context, path string) (*domain.DataPoint, error) {
	return get[domain.DataPoint](ctx, r.db, "get", dataPointTable,
		`SELECT `+dataPointColumns+` FROM "DataPoints" WHERE "Path" = $1`, path)
}

func (r *Repos) ListDataPoints(ctx context.Context) ([]domain.DataPoint, error) {
	return list[domain.DataPoint](ctx, r.db, "list", dataPointTable,
		`SELECT `+dataPointColumns+` FROM "DataPoints" ORDER BY "Path"`)
}

func (r *Repos) UpdateDataPoint(ctx context.Context, dp *domain.DataPoint) error {
	res, err := r.db.NamedExecContext(ctx, `UPDATE "DataPoints" SET
		"Server" = :Server, "Location" = :Location, "Branch" = :Branch, "SubBranch" = :SubBranch,
		"ControlProgram" = :ControlProgram, "Point" = :Point, "Zone" = :Zone
		WHERE "Path" = :Path`, dp)
	if err != nil {
		return wrap("update", dataPointTable, err)
	}
	return expectOne("update", dataPointTable, res)
}

func (r *Repos) DeleteDataPoint(ctx context.Context, path string) error {
	return r.deleteByKey(ctx, dataPointTable, "Path", path)
}
