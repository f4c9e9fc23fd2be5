package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCoilParentConstructors(t *testing.T) {
	cases := []struct {
		parent CoilParent
		kind   ParentKind
		id     int64
		str    string
	}{
		{CoilOnAHU(1), ParentAHU, 1, "ahu:1"},
		{CoilOnVAV(7), ParentVAV, 7, "vav:7"},
		{CoilOnSAV(9), ParentSAV, 9, "sav:9"},
		{CoilParent{}, ParentNone, 0, "none"},
	}
	for _, c := range cases {
		assert.Equal(t, c.kind, c.parent.Kind())
		assert.Equal(t, c.id, c.parent.ID())
		assert.Equal(t, c.str, c.parent.String())
		assert.Equal(t, c.kind == ParentNone, c.parent.IsZero())
	}
}

func TestTerminalParentHasNoAHUVariant(t *testing.T) {
	assert.Equal(t, ParentVAV, TerminalOnVAV(3).Kind())
	assert.Equal(t, ParentSAV, TerminalOnSAV(4).Kind())
	assert.True(t, TerminalParent{}.IsZero())
	assert.Equal(t, "sav:4", TerminalOnSAV(4).String())
}

func TestParseReadingKind(t *testing.T) {
	for _, k := range ReadingKinds {
		got, err := ParseReadingKind(string(k))
		require.NoError(t, err)
		assert.Equal(t, k, got)
	}

	got, err := ParseReadingKind(" Thermafuser ")
	require.NoError(t, err)
	assert.Equal(t, KindThermafuser, got)

	_, err = ParseReadingKind("boiler")
	assert.Error(t, err)
}

func TestTimeRangeContains(t *testing.T) {
	t0 := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	r := TimeRange{From: t0, To: t0.Add(time.Hour)}

	assert.True(t, r.Contains(t0))
	assert.True(t, r.Contains(t0.Add(59*time.Minute)))
	assert.False(t, r.Contains(t0.Add(time.Hour)))
	assert.False(t, r.Contains(t0.Add(-time.Second)))
	assert.True(t, TimeRange{}.Contains(t0))
}

func TestNewAHUTreeAllocatesFreshCollections(t *testing.T) {
	a := NewAHUTree(AirHandlingUnit{AHUNumber: 1})
	b := NewAHUTree(AirHandlingUnit{AHUNumber: 2})

	a.Filters = append(a.Filters, FilterNode{Filter: Filter{FilterID: 1}})

	assert.Len(t, a.Filters, 1)
	assert.Empty(t, b.Filters)
	assert.NotNil(t, b.Readings)
	assert.NotNil(t, b.HECs)
}

func TestDataPointString(t *testing.T) {
	server := "S1"
	dp := DataPoint{Path: "/Site/AHU1/ZoneTemp", Server: &server}
	assert.Contains(t, dp.String(), "path = '/Site/AHU1/ZoneTemp'")
	assert.Contains(t, dp.String(), "server = 'S1'")
	assert.Contains(t, dp.String(), "zone = ''")
}

func TestEquipmentString(t *testing.T) {
	assert.Equal(t, "<AHU(AHUNumber = '1')>", AirHandlingUnit{AHUNumber: 1}.String())
	assert.Equal(t, "<Filter(filterId = '10', AHUNumber = '1', filterNumber = '2')>",
		Filter{FilterID: 10, AHUNumber: 1, FilterNumber: 2}.String())
	assert.Equal(t, "<HEC(HECId = '30', parent = 'vav:40', HECNumber = '1')>",
		HEC{HECID: 30, Parent: CoilOnVAV(40), HECNumber: 1}.String())
	assert.Equal(t, "<Thermafuser(thermafuserId = '50', parent = 'none', thermafuserNumber = '3')>",
		Thermafuser{ThermafuserID: 50, ThermafuserNumber: 3}.String())
}

func TestReadingString(t *testing.T) {
	ts := time.Date(2024, 3, 1, 14, 0, 0, 0, time.FixedZone("CET", 2*60*60))
	dp, kind := 0.5, "pleated"
	assert.Equal(t,
		"<FilterReading(filterId = '1', timestamp = '2024-03-01T12:00:00Z', filterType = 'pleated', differencePressure = '0.5')>",
		FilterReading{FilterID: 1, TimeStamp: ts, FilterType: &kind, DifferencePressure: &dp}.String())

	occupied := true
	s := ThermafuserReading{ThermafuserID: 5, TimeStamp: ts, RoomOccupied: &occupied}.String()
	assert.Contains(t, s, "roomOccupied = 'true'")
	assert.Contains(t, s, "zoneTemperature = ''")
}
