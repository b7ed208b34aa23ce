package service

import (
	"encoding/json"
	"testing"

	"stembills-dashboard/pkg/dash"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLayoutHasEveryControl(t *testing.T) {
	layout := NewLayoutService(newFixtureRepo(t)).Build()

	for _, id := range []string{
		"first-model",
		"gradient-scheme",
		"crossfilter-feature",
		"scatter-plot",
		"point-plot",
		"graph-with-slider",
		"congress-slider",
	} {
		assert.NotNil(t, layout.Find(id), id)
	}
}

func TestLayoutControlDefaults(t *testing.T) {
	layout := NewLayoutService(newFixtureRepo(t)).Build()

	mode := layout.Find("first-model")
	assert.Equal(t, "Total Bills", mode.Props["value"])
	assert.Len(t, mode.Props["options"], 4)
	assert.Equal(t, false, mode.Props["clearable"])

	gradient := layout.Find("gradient-scheme")
	assert.Equal(t, "Split", gradient.Props["value"])
	assert.Equal(t, []dash.Option{
		{Label: "Split Government", Value: "Split"},
		{Label: "Unified Government", Value: "Unified"},
	}, gradient.Props["options"])

	feature := layout.Find("crossfilter-feature")
	assert.Equal(t, "None", feature.Props["value"])
	assert.Len(t, feature.Props["options"], 5)

	hover := layout.Find("scatter-plot").Props["hoverData"]
	assert.Equal(t, map[string]any{"points": []any{map[string]any{"billspassed": 0}}}, hover)
}

func TestLayoutSliderCoversCongressRange(t *testing.T) {
	layout := NewLayoutService(newFixtureRepo(t)).Build()

	slider := layout.Find("congress-slider")
	require.NotNil(t, slider)
	assert.Equal(t, 93, slider.Props["min"])
	assert.Equal(t, 95, slider.Props["max"])
	assert.Equal(t, 13, slider.Props["value"])
	assert.Equal(t, map[string]string{"93": "93", "94": "94", "95": "95"}, slider.Props["marks"])

	body, err := json.Marshal(slider)
	require.NoError(t, err)
	assert.Contains(t, string(body), `"step":null`)
}
