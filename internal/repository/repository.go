package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
)

// Repos is the data-access layer for the equipment hierarchy, its readings and
// the DataPoints catalog. It does no validation of its own: constraint checks
// are left to the database and surface as StorageError.
type Repos struct {
	db *sqlx.DB
}

func New(db *sqlx.DB) *Repos { return &Repos{db: db} }

// DB exposes the handle for callers that need a transaction or a ping.
func (r *Repos) DB() *sqlx.DB { return r.db }

func (r *Repos) Ping(ctx context.Context) error {
	return wrap("ping", "", r.db.PingContext(ctx))
}

func quote(name string) string { return `"` + name + `"` }

func quoteAll(names []string) string {
	q := make([]string, len(names))
	for i, n := range names {
		q[i] = quote(n)
	}
	return strings.Join(q, ", ")
}

func get[T any](ctx context.Context, db sqlx.QueryerContext, op, table, query string, args ...any) (*T, error) {
	var out T
	if err := sqlx.GetContext(ctx, db, &out, query, args...); err != nil {
		return nil, wrap(op, table, err)
	}
	return &out, nil
}

func list[T any](ctx context.Context, db sqlx.QueryerContext, op, table, query string, args ...any) ([]T, error) {
	out := []T{}
	if err := sqlx.SelectContext(ctx, db, &out, query, args...); err != nil {
		return nil, wrap(op, table, err)
	}
	return out, nil
}

// listIn expands an IN (?) clause over ids. An empty id set returns no rows
// without touching the database.
func listIn[T any](ctx context.Context, db *sqlx.DB, op, table, query string, ids []int64, args ...any) ([]T, error) {
	if len(ids) == 0 {
		return []T{}, nil
	}
	q, inArgs, err := sqlx.In(query, append([]any{ids}, args...)...)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", op, table, err)
	}
	return list[T](ctx, db, op, table, db.Rebind(q), inArgs...)
}

// equipmentTable describes the tables shaped (key, AHUNumber, ordinal).
type equipmentTable struct {
	name   string
	key    string
	number string
}

var (
	filterTable = equipmentTable{name: "Filter", key: "FilterId", number: "FilterNumber"}
	fanTable    = equipmentTable{name: "Fan", key: "FanId", number: "FanNumber"}
	damperTable = equipmentTable{name: "Damper", key: "DamperId", number: "DamperNumber"}
	vavTable    = equipmentTable{name: "Variable_Air_Volume", key: "VAVId", number: "VAVNumber"}
	savTable    = equipmentTable{name: "Staged_Air_Volume", key: "SAVId", number: "SAVNumber"}
)

func (t equipmentTable) columns() string {
	return quoteAll([]string{t.key, "AHUNumber", t.number})
}

func (t equipmentTable) selectByKey() string {
	return fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`, t.columns(), quote(t.name), quote(t.key))
}

func (t equipmentTable) selectByAHU() string {
	return fmt.Sprintf(`SELECT %s FROM %s WHERE "AHUNumber" = $1 ORDER BY %s`, t.columns(), quote(t.name), quote(t.key))
}

func (r *Repos) insertEquipment(ctx context.Context, t equipmentTable, key, ahuNumber int64, number int) (int64, error) {
	var (
		query string
		args  []any
	)
	if key == 0 {
		query = fmt.Sprintf(`INSERT INTO %s ("AHUNumber", %s) VALUES ($1, $2) RETURNING %s`,
			quote(t.name), quote(t.number), quote(t.key))
		args = []any{ahuNumber, number}
	} else {
		query = fmt.Sprintf(`INSERT INTO %s (%s) VALUES ($1, $2, $3) RETURNING %s`,
			quote(t.name), t.columns(), quote(t.key))
		args = []any{key, ahuNumber, number}
	}
	var id int64
	if err := r.db.QueryRowxContext(ctx, query, args...).Scan(&id); err != nil {
		return 0, wrap("insert", t.name, err)
	}
	return id, nil
}

func (r *Repos) updateEquipment(ctx context.Context, t equipmentTable, key, ahuNumber int64, number int) error {
	query := fmt.Sprintf(`UPDATE %s SET "AHUNumber" = $1, %s = $2 WHERE %s = $3`,
		quote(t.name), quote(t.number), quote(t.key))
	res, err := r.db.ExecContext(ctx, query, ahuNumber, number, key)
	if err != nil {
		return wrap("update", t.name, err)
	}
	return expectOne("update", t.name, res)
}

func (r *Repos) deleteByKey(ctx context.Context, table, key string, id any) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, quote(table), quote(key))
	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return wrap("delete", table, err)
	}
	return expectOne("delete", table, res)
}

// insertNamed runs an INSERT ... RETURNING written with :name parameters and
// scans the returned key into dest.
func (r *Repos) insertNamed(ctx context.Context, table, query string, arg any, dest *int64) error {
	q, args, err := r.db.BindNamed(query, arg)
	if err != nil {
		return fmt.Errorf("insert %s: %w", table, err)
	}
	if err := r.db.QueryRowxContext(ctx, q, args...).Scan(dest); err != nil {
		return wrap("insert", table, err)
	}
	return nil
}
