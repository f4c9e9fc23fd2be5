package domain

import (
	"fmt"
	"strings"
	"time"
)

// ReadingKind identifies one of the per-equipment reading tables.
type ReadingKind string

const (
	KindAHU         ReadingKind = "ahu"
	KindFilter      ReadingKind = "filter"
	KindFan         ReadingKind = "fan"
	KindDamper      ReadingKind = "damper"
	KindHEC         ReadingKind = "hec"
	KindVAV         ReadingKind = "vav"
	KindSAV         ReadingKind = "sav"
	KindThermafuser ReadingKind = "thermafuser"
)

var ReadingKinds = []ReadingKind{
	KindAHU, KindFilter, KindFan, KindDamper, KindHEC, KindVAV, KindSAV, KindThermafuser,
}

func ParseReadingKind(s string) (ReadingKind, error) {
	k := ReadingKind(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range ReadingKinds {
		if k == known {
			return k, nil
		}
	}
	return "", fmt.Errorf("unknown reading kind %q", s)
}

// Reading rows are keyed by (equipment key, timestamp). Every sensor column is
// nullable, hence the pointers.

type AHUReading struct {
	AHUNumber             int64     `db:"AHUNumber" json:"ahu_number"`
	TimeStamp             time.Time `db:"Time_stamp" json:"time_stamp"`
	ZoneTemperature       *float64  `db:"ZoneTemperature" json:"zone_temperature,omitempty"`
	StaticPressure        *float64  `db:"StaticPressure" json:"static_pressure,omitempty"`
	ReturnAirTemperature  *float64  `db:"ReturnAirTemperature" json:"return_air_temperature,omitempty"`
	SupplyAirTemperature  *float64  `db:"SupplyAirTemperature" json:"supply_air_temperature,omitempty"`
	ExhaustAirTemperature *float64  `db:"ExhaustAirTemperature" json:"exhaust_air_temperature,omitempty"`
	OutsideAirTemperature *float64  `db:"OutsideAirTemperature" json:"outside_air_temperature,omitempty"`
	SmokeDetector         *bool     `db:"SmokeDetector" json:"smoke_detector,omitempty"`
	OutsideAirCo2         *float64  `db:"OutsideAirCo2" json:"outside_air_co2,omitempty"`
	ReturnAirCo2          *float64  `db:"ReturnAirCo2" json:"return_air_co2,omitempty"`
	Spare                 *float64  `db:"Spare" json:"spare,omitempty"`
	HiStatic              *bool     `db:"HiStatic" json:"hi_static,omitempty"`
	DuctstaticPressure    *float64  `db:"DuctstaticPressure" json:"duct_static_pressure,omitempty"`
	MixedAirTemperature   *float64  `db:"MixedAirTemperature" json:"mixed_air_temperature,omitempty"`
	OSACFM                *float64  `db:"OSACFM" json:"osa_cfm,omitempty"`
}

type FilterReading struct {
	FilterID           int64     `db:"FilterId" json:"filter_id"`
	TimeStamp          time.Time `db:"Time_Stamp" json:"time_stamp"`
	FilterType         *string   `db:"FilterType" json:"filter_type,omitempty"`
	DifferencePressure *float64  `db:"DifferencePressure" json:"difference_pressure,omitempty"`
}

type DamperReading struct {
	DamperID                int64     `db:"DamperId" json:"damper_id"`
	TimeStamp               time.Time `db:"Time_stamp" json:"time_stamp"`
	DamperType              *string   `db:"DamperType" json:"damper_type,omitempty"`
	DamperInputVoltage      *float64  `db:"DamperInputVoltage" json:"damper_input_voltage,omitempty"`
	DamperOpeningPercentage *float64  `db:"DamperOpeningPercentage" json:"damper_opening_percentage,omitempty"`
	IsolationDamper         *bool     `db:"isolationDamper" json:"isolation_damper,omitempty"`
}

type FanReading struct {
	FanID               int64     `db:"FanId" json:"fan_id"`
	TimeStamp           time.Time `db:"Time_stamp" json:"time_stamp"`
	FanType             *string   `db:"FanType" json:"fan_type,omitempty"`
	AirVelocityPressure *float64  `db:"AirVelocityPressure" json:"air_velocity_pressure,omitempty"`
	VFDSpeed            *float64  `db:"VFDSpeed" json:"vfd_speed,omitempty"`
	FanStatus           *bool     `db:"FanStatus" json:"fan_status,omitempty"`
	VFDFault            *bool     `db:"VFDFault" json:"vfd_fault,omitempty"`
	HiStaticReset       *bool     `db:"HiStaticReset" json:"hi_static_reset,omitempty"`
	FAReturnFanShutdown *bool     `db:"FAReturnFanShutdown" json:"fa_return_fan_shutdown,omitempty"`
	FanVFD              *bool     `db:"FanVFD" json:"fan_vfd,omitempty"`
	IsolationDampers    *bool     `db:"IsolationDampers" json:"isolation_dampers,omitempty"`
	FanSS               *bool     `db:"FanSS" json:"fan_ss,omitempty"`
}

type HECReading struct {
	HECID                  int64     `db:"HECId" json:"hec_id"`
	TimeStamp              time.Time `db:"Time_stamp" json:"time_stamp"`
	IsHotWaterSupply       *bool     `db:"isHotWaterSupply" json:"is_hot_water_supply,omitempty"`
	CoilType               *string   `db:"CoilType" json:"coil_type,omitempty"`
	WaterTemperature       *float64  `db:"WaterTemperature" json:"water_temperature,omitempty"`
	ValveOpeningPercentage *float64  `db:"valveOpeningPercentage" json:"valve_opening_percentage,omitempty"`
}

type SAVReading struct {
	SAVID                 int64     `db:"SAVId" json:"sav_id"`
	TimeStamp             time.Time `db:"Time_stamp" json:"time_stamp"`
	SAVName               *string   `db:"SAVName" json:"sav_name,omitempty"`
	MiscSpareInput        *float64  `db:"MiscSpareInput" json:"misc_spare_input,omitempty"`
	ZoneTemperature       *float64  `db:"ZoneTemperature" json:"zone_temperature,omitempty"`
	DischargeTemperature  *float64  `db:"DischargeTemperature" json:"discharge_temperature,omitempty"`
	MiscInput             *bool     `db:"MiscInput" json:"misc_input,omitempty"`
	CondensateDetector    *bool     `db:"CondensateDetector" json:"condensate_detector,omitempty"`
	ValveOutputPercentage *float64  `db:"ValveOutputPercentage" json:"valve_output_percentage,omitempty"`
}

type VAVReading struct {
	VAVID                int64     `db:"VAVId" json:"vav_id"`
	TimeStamp            time.Time `db:"Time_stamp" json:"time_stamp"`
	VAVName              *string   `db:"VAVName" json:"vav_name,omitempty"`
	FlowInput            *float64  `db:"FlowInput" json:"flow_input,omitempty"`
	MiscSpareInput       *float64  `db:"MiscSpareInput" json:"misc_spare_input,omitempty"`
	ZoneTemperature      *float64  `db:"ZoneTemperature" json:"zone_temperature,omitempty"`
	DischargeTemperature *float64  `db:"DischargeTemperature" json:"discharge_temperature,omitempty"`
	CondensateDetector   *bool     `db:"CondensateDetector" json:"condensate_detector,omitempty"`
	DuctStaticPressure   *float64  `db:"DuctStaticPressure" json:"duct_static_pressure,omitempty"`
	ZoneCO2              *float64  `db:"ZoneCO2" json:"zone_co2,omitempty"`
	DamperPosition       *float64  `db:"DamperPosition" json:"damper_position,omitempty"`
}

type ThermafuserReading struct {
	ThermafuserID             int64     `db:"ThermafuserId" json:"thermafuser_id"`
	TimeStamp                 time.Time `db:"Time_stamp" json:"time_stamp"`
	RoomOccupied              *bool     `db:"RoomOccupied" json:"room_occupied,omitempty"`
	ZoneTemperature           *float64  `db:"ZoneTemperature" json:"zone_temperature,omitempty"`
	SupplyAir                 *float64  `db:"SupplyAir" json:"supply_air,omitempty"`
	AirflowFeedback           *float64  `db:"AirflowFeedback" json:"airflow_feedback,omitempty"`
	CO2Input                  *float64  `db:"CO2Input" json:"co2_input,omitempty"`
	MaxAirflow                *float64  `db:"MaxAirflow" json:"max_airflow,omitempty"`
	MinAirflow                *float64  `db:"MinAirflow" json:"min_airflow,omitempty"`
	UnoccupiedHeatingSetpoint *float64  `db:"UnoccupiedHeatingSetpoint" json:"unoccupied_heating_setpoint,omitempty"`
	UnoccupiedCoolingSetpoint *float64  `db:"UnoccupiedCoolingSetpoint" json:"unoccupied_cooling_setpoint,omitempty"`
	OccupiedCoolingSetpoint   *float64  `db:"OccupiedCoolingSetpoint" json:"occupied_cooling_setpoint,omitempty"`
	OccupiedHeatingSetpoint   *float64  `db:"OccupiedHeatingSetpoint" json:"occupied_heating_setpoint,omitempty"`
}
