package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"stembills-dashboard/internal/pkg/logger"
	"stembills-dashboard/pkg/chart"
	"stembills-dashboard/pkg/dash"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingObserver struct {
	mu      sync.Mutex
	outputs []string
	errs    []error
}

func (o *recordingObserver) Observe(output string, _ time.Duration, err error) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.outputs = append(o.outputs, output)
	o.errs = append(o.errs, err)
}

func newDashboard(t *testing.T, obs dash.Observer) IDashboardService {
	t.Helper()
	repo := newFixtureRepo(t)
	log := logger.NewNopLogger()
	svc, err := NewDashboardService(repo, NewLayoutService(repo), NewFigureService(repo, log), obs, log)
	require.NoError(t, err)
	return svc
}

func TestDashboardRegistersThreeCallbacks(t *testing.T) {
	svc := newDashboard(t, nil)

	deps := svc.Dependencies()
	require.Len(t, deps, 3)
	assert.Equal(t, "scatter-plot.figure", deps[0].Output.String())
	assert.Len(t, deps[0].Inputs, 3)
	assert.Equal(t, "point-plot.figure", deps[1].Output.String())
	assert.Equal(t, "scatter-plot.hoverData", deps[1].Inputs[0].String())
	assert.Equal(t, "graph-with-slider.figure", deps[2].Output.String())
}

func TestDashboardUpdateScatter(t *testing.T) {
	obs := &recordingObserver{}
	svc := newDashboard(t, obs)

	resp, err := svc.Update(context.Background(), dash.UpdateRequest{
		Output: "scatter-plot.figure",
		Inputs: []dash.InputValue{
			{ID: "gradient-scheme", Property: "value", Value: "Unified"},
			{ID: "first-model", Property: "value", Value: "Bills Passed Per Congress"},
			{ID: "crossfilter-feature", Property: "value", Value: "Intro_bills"},
		},
	})
	require.NoError(t, err)

	fig, ok := resp.Response["scatter-plot"]["figure"].(*chart.Figure)
	require.True(t, ok)
	assert.Len(t, fig.Points, 3)
	assert.Equal(t, []string{"scatter-plot.figure"}, obs.outputs)
	assert.NoError(t, obs.errs[0])
}

func TestDashboardUpdateNullFeature(t *testing.T) {
	svc := newDashboard(t, nil)

	_, err := svc.Update(context.Background(), dash.UpdateRequest{
		Output: "scatter-plot.figure",
		Inputs: []dash.InputValue{
			{ID: "crossfilter-feature", Property: "value", Value: nil},
			{ID: "first-model", Property: "value", Value: "Total Bills"},
			{ID: "gradient-scheme", Property: "value", Value: "Split"},
		},
	})
	assert.NoError(t, err)
}

func TestDashboardUpdateFailures(t *testing.T) {
	obs := &recordingObserver{}
	svc := newDashboard(t, obs)

	_, err := svc.Update(context.Background(), dash.UpdateRequest{
		Output: "point-plot.figure",
		Inputs: []dash.InputValue{{ID: "scatter-plot", Property: "hoverData", Value: map[string]any{
			"points": []any{map[string]any{"pointIndex": 1}},
		}}},
	})
	assert.ErrorIs(t, err, ErrHoverKeyNotFound)

	_, err = svc.Update(context.Background(), dash.UpdateRequest{
		Output: "graph-with-slider.figure",
		Inputs: []dash.InputValue{{ID: "congress-slider", Property: "value", Value: 94}},
	})
	assert.ErrorIs(t, err, ErrSliderFilterUnavailable)

	_, err = svc.Update(context.Background(), dash.UpdateRequest{Output: "nowhere.figure"})
	assert.ErrorIs(t, err, dash.ErrCallbackNotFound)

	require.Len(t, obs.errs, 3)
	for _, e := range obs.errs {
		assert.Error(t, e)
	}
}

func TestDashboardDataset(t *testing.T) {
	svc := newDashboard(t, nil)

	ds := svc.Dataset()
	assert.Equal(t, 3, ds.Rows)
	assert.Equal(t, []int{93, 94, 95}, ds.Congresses)
	assert.Equal(t, 150, ds.Totals.IntroBills)
	assert.Equal(t, 1, ds.Records[0].Row)
}
