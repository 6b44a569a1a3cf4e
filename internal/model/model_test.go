package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseClock(t *testing.T) {
	cases := []struct {
		in      string
		want    Clock
		wantErr bool
	}{
		{in: "00:00", want: 0},
		{in: "08:30", want: 510},
		{in: "23:59", want: 1439},
		{in: " 10:05 ", want: 605},
		{in: "24:00", wantErr: true},
		{in: "12:60", wantErr: true},
		{in: "-1:30", wantErr: true},
		{in: "1230", wantErr: true},
		{in: "12:3:0", wantErr: true},
		{in: "ab:cd", wantErr: true},
		{in: "", wantErr: true},
	}
	for _, tc := range cases {
		got, err := ParseClock(tc.in)
		if tc.wantErr {
			assert.Error(t, err, "ParseClock(%q)", tc.in)
			continue
		}
		require.NoError(t, err, "ParseClock(%q)", tc.in)
		assert.Equal(t, tc.want, got, "ParseClock(%q)", tc.in)
	}
}

func TestClockString(t *testing.T) {
	assert.Equal(t, "00:00", Clock(0).String())
	assert.Equal(t, "08:05", Clock(485).String())
	assert.Equal(t, "23:59", Clock(1439).String())
}

func TestClockJSONRoundTrip(t *testing.T) {
	b, err := json.Marshal(Clock(510))
	require.NoError(t, err)
	assert.Equal(t, `"08:30"`, string(b))

	var c Clock
	require.NoError(t, json.Unmarshal([]byte(`"14:45"`), &c))
	assert.Equal(t, Clock(885), c)

	assert.Error(t, json.Unmarshal([]byte(`"25:00"`), &c))
}

func TestClockCSV(t *testing.T) {
	var c Clock
	require.NoError(t, c.UnmarshalCSV("09:15"))
	assert.Equal(t, Clock(555), c)

	s, err := c.MarshalCSV()
	require.NoError(t, err)
	assert.Equal(t, "09:15", s)

	assert.Error(t, c.UnmarshalCSV("9am"))
}

func TestFormatMinutes(t *testing.T) {
	assert.Equal(t, "0h45m", FormatMinutes(45))
	assert.Equal(t, "2h30m", FormatMinutes(150))
	assert.Equal(t, "11h0m", FormatMinutes(660))
}

func TestParseCabin(t *testing.T) {
	c, err := ParseCabin(" Business ")
	require.NoError(t, err)
	assert.Equal(t, CabinBusiness, c)

	_, err = ParseCabin("premium")
	assert.Error(t, err)
}

func TestFlightPrice(t *testing.T) {
	f := Flight{
		Origin:      "ICN",
		Destination: "NRT",
		Number:      "FW101",
		Depart:      540,
		Arrive:      665,
		Prices:      map[Cabin]int{CabinEconomy: 120, CabinBusiness: 300},
	}
	p, ok := f.Price(CabinEconomy)
	assert.True(t, ok)
	assert.Equal(t, 120, p)

	_, ok = f.Price(CabinFirst)
	assert.False(t, ok)
}

func TestItineraryAccessors(t *testing.T) {
	it := Itinerary{Flights: []Flight{
		{Origin: "ICN", Destination: "NRT", Number: "FW101", Depart: 480, Arrive: 600,
			Prices: map[Cabin]int{CabinEconomy: 100, CabinBusiness: 250}},
		{Origin: "NRT", Destination: "SFO", Number: "FW202", Depart: 660, Arrive: 750,
			Prices: map[Cabin]int{CabinEconomy: 400}},
	}}

	assert.Equal(t, "ICN", it.Origin())
	assert.Equal(t, "SFO", it.Destination())
	assert.Equal(t, Clock(480), it.DepartTime())
	assert.Equal(t, Clock(750), it.ArriveTime())
	assert.Equal(t, 270, it.Duration())
	assert.Equal(t, 1, it.Stops())

	total, err := it.TotalPrice(CabinEconomy)
	require.NoError(t, err)
	assert.Equal(t, 500, total)

	_, err = it.TotalPrice(CabinBusiness)
	require.ErrorIs(t, err, ErrCabinUnavailable)
}

func TestEmptyItinerary(t *testing.T) {
	var it Itinerary
	assert.Equal(t, "", it.Origin())
	assert.Equal(t, "", it.Destination())
	assert.Equal(t, 0, it.Stops())
	assert.Equal(t, 0, it.Duration())
}
