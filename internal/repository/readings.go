package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/ANIKETSHETTY47/hvac-equipment-db/internal/domain"
)

// readingTable describes a reading table keyed by (key, ts).
type readingTable struct {
	name    string
	key     string
	ts      string
	columns []string
}

var (
	ahuReadingTable = readingTable{
		name: "Air_Handling_Unit_Reading", key: "AHUNumber", ts: "Time_stamp",
		columns: []string{
			"ZoneTemperature", "StaticPressure", "ReturnAirTemperature", "SupplyAirTemperature",
			"ExhaustAirTemperature", "OutsideAirTemperature", "SmokeDetector", "OutsideAirCo2",
			"ReturnAirCo2", "Spare", "HiStatic", "DuctstaticPressure", "MixedAirTemperature", "OSACFM",
		},
	}
	filterReadingTable = readingTable{
		name: "Filter_Reading", key: "FilterId", ts: "Time_Stamp",
		columns: []string{"FilterType", "DifferencePressure"},
	}
	damperReadingTable = readingTable{
		name: "Damper_Reading", key: "DamperId", ts: "Time_stamp",
		columns: []string{"DamperType", "DamperInputVoltage", "DamperOpeningPercentage", "isolationDamper"},
	}
	fanReadingTable = readingTable{
		name: "Fan_Reading", key: "FanId", ts: "Time_stamp",
		columns: []string{
			"FanType", "AirVelocityPressure", "VFDSpeed", "FanStatus", "VFDFault",
			"HiStaticReset", "FAReturnFanShutdown", "FanVFD", "IsolationDampers", "FanSS",
		},
	}
	hecReadingTable = readingTable{
		name: "Heat_Exchanger_Coil_Reading", key: "HECId", ts: "Time_stamp",
		columns: []string{"isHotWaterSupply", "CoilType", "WaterTemperature", "valveOpeningPercentage"},
	}
	savReadingTable = readingTable{
		name: "Staged_Air_Volume_Reading", key: "SAVId", ts: "Time_stamp",
		columns: []string{
			"SAVName", "MiscSpareInput", "ZoneTemperature", "DischargeTemperature",
			"MiscInput", "CondensateDetector", "ValveOutputPercentage",
		},
	}
	vavReadingTable = readingTable{
		name: "Variable_Air_Volume_Reading", key: "VAVId", ts: "Time_stamp",
		columns: []string{
			"VAVName", "FlowInput", "MiscSpareInput", "ZoneTemperature", "DischargeTemperature",
			"CondensateDetector", "DuctStaticPressure", "ZoneCO2", "DamperPosition",
		},
	}
	thermafuserReadingTable = readingTable{
		name: "Thermafuser_Reading", key: "ThermafuserId", ts: "Time_stamp",
		columns: []string{
			"RoomOccupied", "ZoneTemperature", "SupplyAir", "AirflowFeedback", "CO2Input",
			"MaxAirflow", "MinAirflow", "UnoccupiedHeatingSetpoint", "UnoccupiedCoolingSetpoint",
			"OccupiedCoolingSetpoint", "OccupiedHeatingSetpoint",
		},
	}
)

func (t readingTable) allColumns() []string {
	return append([]string{t.key, t.ts}, t.columns...)
}

func (t readingTable) insertSQL() string {
	cols := t.allColumns()
	params := make([]string, len(cols))
	for i, c := range cols {
		params[i] = ":" + c
	}
	return fmt.Sprintf(`INSERT INTO %s (%s) VALUES (%s)`,
		quote(t.name), quoteAll(cols), strings.Join(params, ", "))
}

// windowClause appends the TimeRange bounds using the given placeholder
// generator and returns the extra arguments. The columns are zone-less
// TIMESTAMPs holding UTC, so bounds are converted before they are sent.
func (t readingTable) windowClause(w domain.TimeRange, next func() string) (string, []any) {
	var (
		sb   strings.Builder
		args []any
	)
	if !w.From.IsZero() {
		fmt.Fprintf(&sb, " AND %s >= %s", quote(t.ts), next())
		args = append(args, w.From.UTC())
	}
	if !w.To.IsZero() {
		fmt.Fprintf(&sb, " AND %s < %s", quote(t.ts), next())
		args = append(args, w.To.UTC())
	}
	return sb.String(), args
}

func (t readingTable) selectByKey(w domain.TimeRange) (string, []any) {
	n := 1
	next := func() string { n++; return fmt.Sprintf("$%d", n) }
	window, args := t.windowClause(w, next)
	return fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1%s ORDER BY %s`,
		quoteAll(t.allColumns()), quote(t.name), quote(t.key), window, quote(t.ts)), args
}

func (t readingTable) selectByKeys(w domain.TimeRange) (string, []any) {
	window, args := t.windowClause(w, func() string { return "?" })
	return fmt.Sprintf(`SELECT %s FROM %s WHERE %s IN (?)%s ORDER BY %s, %s`,
		quoteAll(t.allColumns()), quote(t.name), quote(t.key), window, quote(t.key), quote(t.ts)), args
}

// insertReading stores rd after moving the timestamp ts points at to UTC.
func insertReading[R any](ctx context.Context, r *Repos, t readingTable, rd *R, ts *time.Time) error {
	*ts = ts.UTC()
	_, err := r.db.NamedExecContext(ctx, t.insertSQL(), rd)
	return wrap("insert", t.name, err)
}

func listReadings[R any](ctx context.Context, r *Repos, t readingTable, key int64, w domain.TimeRange) ([]R, error) {
	query, args := t.selectByKey(w)
	return list[R](ctx, r.db, "list", t.name, query, append([]any{key}, args...)...)
}

func listReadingsIn[R any](ctx context.Context, r *Repos, t readingTable, keys []int64, w domain.TimeRange) ([]R, error) {
	query, args := t.selectByKeys(w)
	return listIn[R](ctx, r.db, "list", t.name, query, keys, args...)
}

// Readings are append-only: there is an insert and a range scan per table and
// nothing else. A second reading for the same equipment and timestamp fails
// with ErrConstraintViolation.

func (r *Repos) InsertAHUReading(ctx context.Context, rd *domain.AHUReading) error {
	return insertReading(ctx, r, ahuReadingTable, rd, &rd.TimeStamp)
}

func (r *Repos) ListAHUReadings(ctx context.Context, ahuNumber int64, w domain.TimeRange) ([]domain.AHUReading, error) {
	return listReadings[domain.AHUReading](ctx, r, ahuReadingTable, ahuNumber, w)
}

func (r *Repos) InsertFilterReading(ctx context.Context, rd *domain.FilterReading) error {
	return insertReading(ctx, r, filterReadingTable, rd, &rd.TimeStamp)
}

func (r *Repos) ListFilterReadings(ctx context.Context, filterID int64, w domain.TimeRange) ([]domain.FilterReading, error) {
	return listReadings[domain.FilterReading](ctx, r, filterReadingTable, filterID, w)
}

func (r *Repos) InsertDamperReading(ctx context.Context, rd *domain.DamperReading) error {
	return insertReading(ctx, r, damperReadingTable, rd, &rd.TimeStamp)
}

func (r *Repos) ListDamperReadings(ctx context.Context, damperID int64, w domain.TimeRange) ([]domain.DamperReading, error) {
	return listReadings[domain.DamperReading](ctx, r, damperReadingTable, damperID, w)
}

func (r *Repos) InsertFanReading(ctx context.Context, rd *domain.FanReading) error {
	return insertReading(ctx, r, fanReadingTable, rd, &rd.TimeStamp)
}

func (r *Repos) ListFanReadings(ctx context.Context, fanID int64, w domain.TimeRange) ([]domain.FanReading, error) {
	return listReadings[domain.FanReading](ctx, r, fanReadingTable, fanID, w)
}

func (r *Repos) InsertHECReading(ctx context.Context, rd *domain.HECReading) error {
	return insertReading(ctx, r, hecReadingTable, rd, &rd.TimeStamp)
}

func (r *Repos) ListHECReadings(ctx context.Context, hecID int64, w domain.TimeRange) ([]domain.HECReading, error) {
	return listReadings[domain.HECReading](ctx, r, hecReadingTable, hecID, w)
}

func (r *Repos) InsertSAVReading(ctx context.Context, rd *domain.SAVReading) error {
	return insertReading(ctx, r, savReadingTable, rd, &rd.TimeStamp)
}

func (r *Repos) ListSAVReadings(ctx context.Context, savID int64, w domain.TimeRange) ([]domain.SAVReading, error) {
	return listReadings[domain.SAVReading](ctx, r, savReadingTable, savID, w)
}

func (r *Repos) InsertVAVReading(ctx context.Context, rd *domain.VAVReading) error {
	return insertReading(ctx, r, vavReadingTable, rd, &rd.TimeStamp)
}

func (r *Repos) ListVAVReadings(ctx context.Context, vavID int64, w domain.TimeRange) ([]domain.VAVReading, error) {
	return listReadings[domain.VAVReading](ctx, r, vavReadingTable, vavID, w)
}

func (r *Repos) InsertThermafuserReading(ctx context.Context, rd *domain.ThermafuserReading) error {
	return insertReading(ctx, r, thermafuserReadingTable, rd, &rd.TimeStamp)
}

func (r *Repos) ListThermafuserReadings(ctx context.Context, thermafuserID int64, w domain.TimeRange) ([]domain.ThermafuserReading, error) {
	return listReadings[domain.ThermafuserReading](ctx, r, thermafuserReadingTable, thermafuserID, w)
}
