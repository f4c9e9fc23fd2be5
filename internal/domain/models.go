package domain

import "time"

// AirHandlingUnit is the root of the equipment tree.
type AirHandlingUnit struct {
	AHUNumber int64 `db:"AHUNumber" json:"ahu_number"`
}

type Filter struct {
	FilterID     int64 `db:"FilterId" json:"filter_id"`
	AHUNumber    int64 `db:"AHUNumber" json:"ahu_number"`
	FilterNumber int   `db:"FilterNumber" json:"filter_number"`
}

type Fan struct {
	FanID     int64 `db:"FanId" json:"fan_id"`
	AHUNumber int64 `db:"AHUNumber" json:"ahu_number"`
	FanNumber int   `db:"FanNumber" json:"fan_number"`
}

type Damper struct {
	DamperID     int64 `db:"DamperId" json:"damper_id"`
	AHUNumber    int64 `db:"AHUNumber" json:"ahu_number"`
	DamperNumber int   `db:"DamperNumber" json:"damper_number"`
}

// VAV is a variable air volume box fed by an AHU.
type VAV struct {
	VAVID     int64 `db:"VAVId" json:"vav_id"`
	AHUNumber int64 `db:"AHUNumber" json:"ahu_number"`
	VAVNumber int   `db:"VAVNumber" json:"vav_number"`
}

// SAV is a staged air volume box fed by an AHU.
type SAV struct {
	SAVID     int64 `db:"SAVId" json:"sav_id"`
	AHUNumber int64 `db:"AHUNumber" json:"ahu_number"`
	SAVNumber int   `db:"SAVNumber" json:"sav_number"`
}

// HEC is a heat exchanger coil. It hangs off at most one of an AHU, a VAV or a SAV.
type HEC struct {
	HECID     int64      `json:"hec_id"`
	Parent    CoilParent `json:"-"`
	HECNumber int        `json:"hec_number"`
}

// Thermafuser is a terminal diffuser attached to at most one VAV or SAV.
type Thermafuser struct {
	ThermafuserID     int64          `json:"thermafuser_id"`
	Parent            TerminalParent `json:"-"`
	ThermafuserNumber int            `json:"thermafuser_number"`
}

// TimeRange is a half-open [From, To) window over reading timestamps.
// A zero bound leaves that side open.
type TimeRange struct {
	From time.Time
	To   time.Time
}

func (r TimeRange) Contains(t time.Time) bool {
	if !r.From.IsZero() && t.Before(r.From) {
		return false
	}
	if !r.To.IsZero() && !t.Before(r.To) {
		return false
	}
	return true
}
