package compare

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flywise/flywise/internal/model"
	"github.com/flywise/flywise/internal/search"
)

func fixtureGraph() search.Graph {
	return search.BuildGraph([]model.Flight{
		{Origin: "ICN", Destination: "NRT", Number: "FW101", Depart: 540, Arrive: 665,
			Prices: map[model.Cabin]int{model.CabinEconomy: 120, model.CabinBusiness: 300}},
		{Origin: "NRT", Destination: "SFO", Number: "FW202", Depart: 780, Arrive: 1290,
			Prices: map[model.Cabin]int{model.CabinEconomy: 450, model.CabinBusiness: 900}},
		{Origin: "ICN", Destination: "SFO", Number: "FW900", Depart: 600, Arrive: 1200,
			Prices: map[model.Cabin]int{model.CabinEconomy: 700}},
	})
}

func TestRunRowOrderAndModes(t *testing.T) {
	q := search.Query{Origin: "ICN", Destination: "SFO", DepartAfter: 480}
	cabins := []model.Cabin{model.CabinEconomy, model.CabinBusiness, model.CabinFirst}

	rows := Run(fixtureGraph(), q, cabins)
	require.Len(t, rows, 4)

	assert.Equal(t, "Earliest arrival", rows[0].Mode)
	assert.Empty(t, rows[0].Cabin)
	assert.Equal(t, "Cheapest (Economy)", rows[1].Mode)
	assert.Equal(t, model.CabinEconomy, rows[1].Cabin)
	assert.Equal(t, "Cheapest (Business)", rows[2].Mode)
	assert.Equal(t, "Cheapest (First)", rows[3].Mode)
}

func TestRunResults(t *testing.T) {
	q := search.Query{Origin: "ICN", Destination: "SFO", DepartAfter: 480}
	rows := Run(fixtureGraph(), q, []model.Cabin{model.CabinEconomy, model.CabinFirst})

	earliest := rows[0]
	require.NotNil(t, earliest.Itinerary)
	assert.Empty(t, earliest.Note)
	assert.Equal(t, model.Clock(1200), earliest.Itinerary.ArriveTime(), "direct FW900 lands first")

	economy := rows[1]
	require.NotNil(t, economy.Itinerary)
	total, err := economy.Itinerary.TotalPrice(model.CabinEconomy)
	require.NoError(t, err)
	assert.Equal(t, 570, total, "two-leg 120+450 beats the 700 direct")

	first := rows[2]
	assert.Nil(t, first.Itinerary, "no flight carries first class")
	assert.Equal(t, NoItineraryNote, first.Note)
}

func TestRunUnreachableRoute(t *testing.T) {
	q := search.Query{Origin: "SFO", Destination: "ICN", DepartAfter: 0}
	rows := Run(fixtureGraph(), q, []model.Cabin{model.CabinEconomy})

	for _, row := range rows {
		assert.Nil(t, row.Itinerary)
		assert.Equal(t, NoItineraryNote, row.Note)
	}
}
