package domain

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// describe renders a row as <Name(field = 'value', ...)>. kv alternates field
// names and values; nil pointers print as ''.
func describe(name string, kv ...any) string {
	var sb strings.Builder
	sb.WriteString("<" + name + "(")
	for i := 0; i+1 < len(kv); i += 2 {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%s = '%s'", kv[i], show(kv[i+1]))
	}
	sb.WriteString(")>")
	return sb.String()
}

func show(v any) string {
	switch x := v.(type) {
	case *float64:
		if x == nil {
			return ""
		}
		return strconv.FormatFloat(*x, 'g', -1, 64)
	case *bool:
		if x == nil {
			return ""
		}
		return strconv.FormatBool(*x)
	case *string:
		return deref(x)
	case time.Time:
		return x.UTC().Format(time.RFC3339)
	}
	return fmt.Sprint(v)
}

func (a AirHandlingUnit) String() string { return describe("AHU", "AHUNumber", a.AHUNumber) }

func (f Filter) String() string {
	return describe("Filter", "filterId", f.FilterID, "AHUNumber", f.AHUNumber, "filterNumber", f.FilterNumber)
}

func (f Fan) String() string {
	return describe("Fan", "fanId", f.FanID, "AHUNumber", f.AHUNumber, "fanNumber", f.FanNumber)
}

func (d Damper) String() string {
	return describe("Damper", "damperId", d.DamperID, "AHUNumber", d.AHUNumber, "damperNumber", d.DamperNumber)
}

func (v VAV) String() string {
	return describe("VAV", "VAVId", v.VAVID, "AHUNumber", v.AHUNumber, "VAVNumber", v.VAVNumber)
}

func (s SAV) String() string {
	return describe("SAV", "SAVId", s.SAVID, "AHUNumber", s.AHUNumber, "SAVNumber", s.SAVNumber)
}

func (h HEC) String() string {
	return describe("HEC", "HECId", h.HECID, "parent", h.Parent, "HECNumber", h.HECNumber)
}

func (t Thermafuser) String() string {
	return describe("Thermafuser", "thermafuserId", t.ThermafuserID, "parent", t.Parent, "thermafuserNumber", t.ThermafuserNumber)
}

func (r AHUReading) String() string {
	return describe("AHUReading", "AHUNumber", r.AHUNumber, "Time_stamp", r.TimeStamp,
		"zoneTemperature", r.ZoneTemperature, "staticPressure", r.StaticPressure,
		"returnAirTemperature", r.ReturnAirTemperature, "supplyAirTemperature", r.SupplyAirTemperature,
		"exhaustAirTemperature", r.ExhaustAirTemperature, "outsideAirTemperature", r.OutsideAirTemperature,
		"smokeDetector", r.SmokeDetector, "outsideAirCo2", r.OutsideAirCo2, "returnAirCo2", r.ReturnAirCo2,
		"spare", r.Spare, "hiStatic", r.HiStatic, "ductstaticPressure", r.DuctstaticPressure,
		"mixedAirTemperature", r.MixedAirTemperature, "OSACFM", r.OSACFM)
}

func (r FilterReading) String() string {
	return describe("FilterReading", "filterId", r.FilterID, "timestamp", r.TimeStamp,
		"filterType", r.FilterType, "differencePressure", r.DifferencePressure)
}

func (r DamperReading) String() string {
	return describe("DamperReading", "damperId", r.DamperID, "time_stamp", r.TimeStamp,
		"damperType", r.DamperType, "damperInputVoltage", r.DamperInputVoltage,
		"damperOpeningPercentage", r.DamperOpeningPercentage, "isolationDamper", r.IsolationDamper)
}

func (r FanReading) String() string {
	return describe("FanReading", "fanId", r.FanID, "time_stamp", r.TimeStamp,
		"fanType", r.FanType, "airVelocityPressure", r.AirVelocityPressure, "VFDSpeed", r.VFDSpeed,
		"fanStatus", r.FanStatus, "VFDFault", r.VFDFault, "HiStaticReset", r.HiStaticReset,
		"FAReturnFanShutdown", r.FAReturnFanShutdown, "fanVFD", r.FanVFD,
		"isolationDampers", r.IsolationDampers, "fanSS", r.FanSS)
}

func (r HECReading) String() string {
	return describe("HECReading", "HECId", r.HECID, "time_stamp", r.TimeStamp,
		"isHotWaterSupply", r.IsHotWaterSupply, "coilType", r.CoilType,
		"waterTemperature", r.WaterTemperature, "valveOpeningPercentage", r.ValveOpeningPercentage)
}

func (r SAVReading) String() string {
	return describe("SAVReading", "SAVId", r.SAVID, "time_stamp", r.TimeStamp,
		"SAVName", r.SAVName, "miscSpareInput", r.MiscSpareInput, "zoneTemperature", r.ZoneTemperature,
		"dischargeTemperature", r.DischargeTemperature, "miscInput", r.MiscInput,
		"condensateDetector", r.CondensateDetector, "valveOutputPercentage", r.ValveOutputPercentage)
}

func (r VAVReading) String() string {
	return describe("VAVReading", "VAVId", r.VAVID, "time_stamp", r.TimeStamp,
		"VAVName", r.VAVName, "flowInput", r.FlowInput, "miscSpareInput", r.MiscSpareInput,
		"zoneTemperature", r.ZoneTemperature, "dischargeTemperature", r.DischargeTemperature,
		"condensateDetector", r.CondensateDetector, "ductStaticPressure", r.DuctStaticPressure,
		"zoneCO2", r.ZoneCO2, "damperPosition", r.DamperPosition)
}

func (r ThermafuserReading) String() string {
	return describe("ThermafuserReading", "thermafuserId", r.ThermafuserID, "time_stamp", r.TimeStamp,
		"roomOccupied", r.RoomOccupied, "zoneTemperature", r.ZoneTemperature, "supplyAir", r.SupplyAir,
		"airflowFeedback", r.AirflowFeedback, "CO2Input", r.CO2Input,
		"maxAirflow", r.MaxAirflow, "minAirflow", r.MinAirflow,
		"unoccupiedHeatingSetpoint", r.UnoccupiedHeatingSetpoint,
		"unoccupiedCoolingSetpoint", r.UnoccupiedCoolingSetpoint,
		"occupiedCoolingSetpoint", r.OccupiedCoolingSetpoint,
		"occupiedHeatingSetpoint", r.OccupiedHeatingSetpoint)
}
