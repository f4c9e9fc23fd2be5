package repository

import (
	"context"

	"github.com/ANIKETSHETTY47/hvac-equipment-db/internal/domain"
)

const ahuTable = "Air_Handling_Unit"

// CreateAHU inserts an AHU. A zero AHUNumber lets the database assign one,
// which is written back into a.
func (r *Repos) CreateAHU(ctx context.Context, a *domain.AirHandlingUnit) error {
	query := `INSERT INTO "Air_Handling_Unit" DEFAULT VALUES RETURNING "AHUNumber"`
	args := []any{}
	if a.AHUNumber != 0 {
		query = `INSERT INTO "Air_Handling_Unit" ("AHUNumber") VALUES ($1) RETURNING "AHUNumber"`
		args = append(args, a.AHUNumber)
	}
	if err := r.db.QueryRowxContext(ctx, query, args...).Scan(&a.AHUNumber); err != nil {
		return wrap("insert", ahuTable, err)
	}
	return nil
}

func (r *Repos) GetAHU(ctx context.Context, number int64) (*domain.AirHandlingUnit, error) {
	return get[domain.AirHandlingUnit](ctx, r.db, "get", ahuTable,
		`SELECT "AHUNumber" FROM "Air_Handling_Unit" WHERE "AHUNumber" = $1`, number)
}

func (r *Repos) ListAHUs(ctx context.Context) ([]domain.AirHandlingUnit, error) {
	return list[domain.AirHandlingUnit](ctx, r.db, "list", ahuTable,
		`SELECT "AHUNumber" FROM "Air_Handling_Unit" ORDER BY "AHUNumber"`)
}

// DeleteAHU removes an AHU with no remaining equipment. An AHU that still owns
// filters, fans, dampers, VAVs, SAVs or coils is rejected with
// ErrConstraintViolation; its own readings are removed with it.
func (r *Repos) DeleteAHU(ctx context.Context, number int64) error {
	return r.deleteByKey(ctx, ahuTable, "AHUNumber", number)
}

// Filters

func (r *Repos) CreateFilter(ctx context.Context, f *domain.Filter) error {
	id, err := r.insertEquipment(ctx, filterTable, f.FilterID, f.AHUNumber, f.FilterNumber)
	if err != nil {
		return err
	}
	f.FilterID = id
	return nil
}

func (r *Repos) GetFilter(ctx context.Context, id int64) (*domain.Filter, error) {
	return get[domain.Filter](ctx, r.db, "get", filterTable.name, filterTable.selectByKey(), id)
}

func (r *Repos) ListFiltersByAHU(ctx context.Context, ahuNumber int64) ([]domain.Filter, error) {
	return list[domain.Filter](ctx, r.db, "list", filterTable.name, filterTable.selectByAHU(), ahuNumber)
}

// UpdateFilter writes every column, so changing AHUNumber re-parents the filter.
func (r *Repos) UpdateFilter(ctx context.Context, f *domain.Filter) error {
	return r.updateEquipment(ctx, filterTable, f.FilterID, f.AHUNumber, f.FilterNumber)
}

func (r *Repos) DeleteFilter(ctx context.Context, id int64) error {
	return r.deleteByKey(ctx, filterTable.name, filterTable.key, id)
}

// Fans

func (r *Repos) CreateFan(ctx context.Context, f *domain.Fan) error {
	id, err := r.insertEquipment(ctx, fanTable, f.FanID, f.AHUNumber, f.FanNumber)
	if err != nil {
		return err
	}
	f.FanID = id
	return nil
}

func (r *Repos) GetFan(ctx context.Context, id int64) (*domain.Fan, error) {
	return get[domain.Fan](ctx, r.db, "get", fanTable.name, fanTable.selectByKey(), id)
}

func (r *Repos) ListFansByAHU(ctx context.Context, ahuNumber int64) ([]domain.Fan, error) {
	return list[domain.Fan](ctx, r.db, "list", fanTable.name, fanTable.selectByAHU(), ahuNumber)
}

func (r *Repos) UpdateFan(ctx context.Context, f *domain.Fan) error {
	return r.updateEquipment(ctx, fanTable, f.FanID, f.AHUNumber, f.FanNumber)
}

func (r *Repos) DeleteFan(ctx context.Context, id int64) error {
	return r.deleteByKey(ctx, fanTable.name, fanTable.key, id)
}

// Dampers

func (r *Repos) CreateDamper(ctx context.Context, d *domain.Damper) error {
	id, err := r.insertEquipment(ctx, damperTable, d.DamperID, d.AHUNumber, d.DamperNumber)
	if err != nil {
		return err
	}
	d.DamperID = id
	return nil
}

func (r *Repos) GetDamper(ctx context.Context, id int64) (*domain.Damper, error) {
	return get[domain.Damper](ctx, r.db, "get", damperTable.name, damperTable.selectByKey(), id)
}

func (r *Repos) ListDampersByAHU(ctx context.Context, ahuNumber int64) ([]domain.Damper, error) {
	return list[domain.Damper](ctx, r.db, "list", damperTable.name, damperTable.selectByAHU(), ahuNumber)
}

func (r *Repos) UpdateDamper(ctx context.Context, d *domain.Damper) error {
	return r.updateEquipment(ctx, damperTable, d.DamperID, d.AHUNumber, d.DamperNumber)
}

func (r *Repos) DeleteDamper(ctx context.Context, id int64) error {
	return r.deleteByKey(ctx, damperTable.name, damperTable.key, id)
}

// VAVs

func (r *Repos) CreateVAV(ctx context.Context, v *domain.VAV) error {
	id, err := r.insertEquipment(ctx, vavTable, v.VAVID, v.AHUNumber, v.VAVNumber)
	if err != nil {
		return err
	}
	v.VAVID = id
	return nil
}

func (r *Repos) GetVAV(ctx context.Context, id int64) (*domain.VAV, error) {
	return get[domain.VAV](ctx, r.db, "get", vavTable.name, vavTable.selectByKey(), id)
}

func (r *Repos) ListVAVsByAHU(ctx context.Context, ahuNumber int64) ([]domain.VAV, error) {
	return list[domain.VAV](ctx, r.db, "list", vavTable.name, vavTable.selectByAHU(), ahuNumber)
}

func (r *Repos) UpdateVAV(ctx context.Context, v *domain.VAV) error {
	return r.updateEquipment(ctx, vavTable, v.VAVID, v.AHUNumber, v.VAVNumber)
}

// DeleteVAV is rejected while coils or thermafusers still reference the VAV.
func (r *Repos) DeleteVAV(ctx context.Context, id int64) error {
	return r.deleteByKey(ctx, vavTable.name, vavTable.key, id)
}

// SAVs

func (r *Repos) CreateSAV(ctx context.Context, s *domain.SAV) error {
	id, err := r.insertEquipment(ctx, savTable, s.SAVID, s.AHUNumber, s.SAVNumber)
	if err != nil {
		return err
	}
	s.SAVID = id
	return nil
}

func (r *Repos) GetSAV(ctx context.Context, id int64) (*domain.SAV, error) {
	return get[domain.SAV](ctx, r.db, "get", savTable.name, savTable.selectByKey(), id)
}

func (r *Repos) ListSAVsByAHU(ctx context.Context, ahuNumber int64) ([]domain.SAV, error) {
	return list[domain.SAV](ctx, r.db, "list", savTable.name, savTable.selectByAHU(), ahuNumber)
}

func (r *Repos) UpdateSAV(ctx context.Context, s *domain.SAV) error {
	return r.updateEquipment(ctx, savTable, s.SAVID, s.AHUNumber, s.SAVNumber)
}

func (r *Repos) DeleteSAV(ctx context.Context, id int64) error {
	return r.deleteByKey(ctx, savTable.name, savTable.key, id)
}
