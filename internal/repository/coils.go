package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/ANIKETSHETTY47/hvac-equipment-db/internal/domain"
)

const (
	hecTable         = "Heat_Exchanger_Coil"
	thermafuserTable = "Thermafuser"

	hecColumns         = `"HECId", "AHUNumber", "SAVId", "VAVId", "HECNumber"`
	thermafuserColumns = `"ThermafuserId", "SAVId", "VAVId", "ThermafuserNumber"`
)

// hecRow is the stored shape of an HEC: three nullable parent keys.
type hecRow struct {
	HECID     int64         `db:"HECId"`
	AHUNumber sql.NullInt64 `db:"AHUNumber"`
	SAVID     sql.NullInt64 `db:"SAVId"`
	VAVID     sql.NullInt64 `db:"VAVId"`
	HECNumber int           `db:"HECNumber"`
}

func hecToRow(h *domain.HEC) hecRow {
	row := hecRow{HECID: h.HECID, HECNumber: h.HECNumber}
	id := sql.NullInt64{Int64: h.Parent.ID(), Valid: true}
	switch h.Parent.Kind() {
	case domain.ParentAHU:
		row.AHUNumber = id
	case domain.ParentVAV:
		row.VAVID = id
	case domain.ParentSAV:
		row.SAVID = id
	}
	return row
}

func (row hecRow) toDomain() (domain.HEC, error) {
	h := domain.HEC{HECID: row.HECID, HECNumber: row.HECNumber}
	set := 0
	if row.AHUNumber.Valid {
		h.Parent = domain.CoilOnAHU(row.AHUNumber.Int64)
		set++
	}
	if row.VAVID.Valid {
		h.Parent = domain.CoilOnVAV(row.VAVID.Int64)
		set++
	}
	if row.SAVID.Valid {
		h.Parent = domain.CoilOnSAV(row.SAVID.Int64)
		set++
	}
	if set > 1 {
		return domain.HEC{}, fmt.Errorf("HEC %d has %d parent keys set", row.HECID, set)
	}
	return h, nil
}

type thermafuserRow struct {
	ThermafuserID     int64         `db:"ThermafuserId"`
	SAVID             sql.NullInt64 `db:"SAVId"`
	VAVID             sql.NullInt64 `db:"VAVId"`
	ThermafuserNumber int           `db:"ThermafuserNumber"`
}

func thermafuserToRow(t *domain.Thermafuser) thermafuserRow {
	row := thermafuserRow{ThermafuserID: t.ThermafuserID, ThermafuserNumber: t.ThermafuserNumber}
	id := sql.NullInt64{Int64: t.Parent.ID(), Valid: true}
	switch t.Parent.Kind() {
	case domain.ParentVAV:
		row.VAVID = id
	case domain.ParentSAV:
		row.SAVID = id
	}
	return row
}

func (row thermafuserRow) toDomain() (domain.Thermafuser, error) {
	t := domain.Thermafuser{ThermafuserID: row.ThermafuserID, ThermafuserNumber: row.ThermafuserNumber}
	if row.VAVID.Valid && row.SAVID.Valid {
		return domain.Thermafuser{}, fmt.Errorf("thermafuser %d has both VAVId and SAVId set", row.ThermafuserID)
	}
	if row.VAVID.Valid {
		t.Parent = domain.TerminalOnVAV(row.VAVID.Int64)
	}
	if row.SAVID.Valid {
		t.Parent = domain.TerminalOnSAV(row.SAVID.Int64)
	}
	return t, nil
}

func hecsFromRows(rows []hecRow) ([]domain.HEC, error) {
	out := make([]domain.HEC, 0, len(rows))
	for _, row := range rows {
		h, err := row.toDomain()
		if err != nil {
			return nil, err
		}
		out = append(out, h)
	}
	return out, nil
}

func thermafusersFromRows(rows []thermafuserRow) ([]domain.Thermafuser, error) {
	out := make([]domain.Thermafuser, 0, len(rows))
	for _, row := range rows {
		t, err := row.toDomain()
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, nil
}

// coilParentColumn maps a parent kind to the column holding its key.
func coilParentColumn(kind domain.ParentKind) string {
	switch kind {
	case domain.ParentAHU:
		return "AHUNumber"
	case domain.ParentVAV:
		return "VAVId"
	case domain.ParentSAV:
		return "SAVId"
	}
	return ""
}

// HECs

func (r *Repos) CreateHEC(ctx context.Context, h *domain.HEC) error {
	row := hecToRow(h)
	query := `INSERT INTO "Heat_Exchanger_Coil" ("AHUNumber", "SAVId", "VAVId", "HECNumber")
		VALUES (:AHUNumber, :SAVId, :VAVId, :HECNumber) RETURNING "HECId"`
	if row.HECID != 0 {
		query = `INSERT INTO "Heat_Exchanger_Coil" ("HECId", "AHUNumber", "SAVId", "VAVId", "HECNumber")
		VALUES (:HECId, :AHUNumber, :SAVId, :VAVId, :HECNumber) RETURNING "HECId"`
	}
	return r.insertNamed(ctx, hecTable, query, row, &h.HECID)
}

func (r *Repos) GetHEC(ctx context.Context, id int64) (*domain.HEC, error) {
	row, err := get[hecRow](ctx, r.db, "get", hecTable,
		`SELECT `+hecColumns+` FROM "Heat_Exchanger_Coil" WHERE "HECId" = $1`, id)
	if err != nil {
		return nil, err
	}
	h, err := row.toDomain()
	if err != nil {
		return nil, err
	}
	return &h, nil
}

// ListHECsByParent returns the coils under p. The zero parent lists coils that
// are attached to nothing.
func (r *Repos) ListHECsByParent(ctx context.Context, p domain.CoilParent) ([]domain.HEC, error) {
	query := `SELECT ` + hecColumns + ` FROM "Heat_Exchanger_Coil"
		WHERE "AHUNumber" IS NULL AND "SAVId" IS NULL AND "VAVId" IS NULL ORDER BY "HECId"`
	var args []any
	if !p.IsZero() {
		query = fmt.Sprintf(`SELECT %s FROM "Heat_Exchanger_Coil" WHERE %s = $1 ORDER BY "HECId"`,
			hecColumns, quote(coilParentColumn(p.Kind())))
		args = append(args, p.ID())
	}
	rows, err := list[hecRow](ctx, r.db, "list", hecTable, query, args...)
	if err != nil {
		return nil, err
	}
	return hecsFromRows(rows)
}

func (r *Repos) listHECsIn(ctx context.Context, kind domain.ParentKind, ids []int64) ([]domain.HEC, error) {
	query := fmt.Sprintf(`SELECT %s FROM "Heat_Exchanger_Coil" WHERE %s IN (?) ORDER BY "HECId"`,
		hecColumns, quote(coilParentColumn(kind)))
	rows, err := listIn[hecRow](ctx, r.db, "list", hecTable, query, ids)
	if err != nil {
		return nil, err
	}
	return hecsFromRows(rows)
}

// UpdateHEC writes the number and parent. Setting a different Parent moves the
// coil; the other two parent columns are cleared in the same statement.
func (r *Repos) UpdateHEC(ctx context.Context, h *domain.HEC) error {
	res, err := r.db.NamedExecContext(ctx, `UPDATE "Heat_Exchanger_Coil"
		SET "AHUNumber" = :AHUNumber, "SAVId" = :SAVId, "VAVId" = :VAVId, "HECNumber" = :HECNumber
		WHERE "HECId" = :HECId`, hecToRow(h))
	if err != nil {
		return wrap("update", hecTable, err)
	}
	return expectOne("update", hecTable, res)
}

func (r *Repos) DeleteHEC(ctx context.Context, id int64) error {
	return r.deleteByKey(ctx, hecTable, "HECId", id)
}

// Thermafusers

func (r *Repos) CreateThermafuser(ctx context.Context, t *domain.Thermafuser) error {
	row := thermafuserToRow(t)
	query := `INSERT INTO "Thermafuser" ("SAVId", "VAVId", "ThermafuserNumber")
		VALUES (:SAVId, :VAVId, :ThermafuserNumber) RETURNING "ThermafuserId"`
	if row.ThermafuserID != 0 {
		query = `INSERT INTO "Thermafuser" ("ThermafuserId", "SAVId", "VAVId", "ThermafuserNumber")
		VALUES (:ThermafuserId, :SAVId, :VAVId, :ThermafuserNumber) RETURNING "ThermafuserId"`
	}
	return r.insertNamed(ctx, thermafuserTable, query, row, &t.ThermafuserID)
}

func (r *Repos) GetThermafuser(ctx context.Context, id int64) (*domain.Thermafuser, error) {
	row, err := get[thermafuserRow](ctx, r.db, "get", thermafuserTable,
		`SELECT `+thermafuserColumns+` FROM "Thermafuser" WHERE "ThermafuserId" = $1`, id)
	if err != nil {
		return nil, err
	}
	t, err := row.toDomain()
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *Repos) ListThermafusersByParent(ctx context.Context, p domain.TerminalParent) ([]domain.Thermafuser, error) {
	query := `SELECT ` + thermafuserColumns + ` FROM "Thermafuser"
		WHERE "SAVId" IS NULL AND "VAVId" IS NULL ORDER BY "ThermafuserId"`
	var args []any
	if !p.IsZero() {
		query = fmt.Sprintf(`SELECT %s FROM "Thermafuser" WHERE %s = $1 ORDER BY "ThermafuserId"`,
			thermafuserColumns, quote(coilParentColumn(p.Kind())))
		args = append(args, p.ID())
	}
	rows, err := list[thermafuserRow](ctx, r.db, "list", thermafuserTable, query, args...)
	if err != nil {
		return nil, err
	}
	return thermafusersFromRows(rows)
}

func (r *Repos) listThermafusersIn(ctx context.Context, kind domain.ParentKind, ids []int64) ([]domain.Thermafuser, error) {
	query := fmt.Sprintf(`SELECT %s FROM "Thermafuser" WHERE %s IN (?) ORDER BY "ThermafuserId"`,
		thermafuserColumns, quote(coilParentColumn(kind)))
	rows, err := listIn[thermafuserRow](ctx, r.db, "list", thermafuserTable, query, ids)
	if err != nil {
		return nil, err
	}
	return thermafusersFromRows(rows)
}

func (r *Repos) UpdateThermafuser(ctx context.Context, t *domain.Thermafuser) error {
	res, err := r.db.NamedExecContext(ctx, `UPDATE "Thermafuser"
		SET "SAVId" = :SAVId, "VAVId" = :VAVId, "ThermafuserNumber" = :ThermafuserNumber
		WHERE "ThermafuserId" = :ThermafuserId`, thermafuserToRow(t))
	if err != nil {
		return wrap("update", thermafuserTable, err)
	}
	return expectOne("update", thermafuserTable, res)
}

func (r *Repos) DeleteThermafuser(ctx context.Context, id int64) error {
	return r.deleteByKey(ctx, thermafuserTable, "ThermafuserId", id)
}
