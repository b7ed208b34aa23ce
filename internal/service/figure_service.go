// FILE: internal/service/figure_service.go
package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"stembills-dashboard/internal/constant"
	"stembills-dashboard/internal/entity"
	"stembills-dashboard/internal/pkg/logger"
	"stembills-dashboard/internal/repository/contract"
	"stembills-dashboard/pkg/chart"
)

var (
	ErrHoverKeyNotFound        = errors.New("hover payload has no " + constant.HoverIndexKey + " key")
	ErrSliderFilterUnavailable = errors.New("government filter unavailable")
)

type IFigureService interface {
	Scatter(ctx context.Context, feature, mode, gradient string) (*chart.Figure, error)
	PointPlot(ctx context.Context, hoverData any) (*chart.Figure, error)
	SliderFigure(ctx context.Context, value any) (*chart.Figure, error)
}

type figureService struct {
	repo contract.BillRepository
	log  logger.ILogger
}

func NewFigureService(repo contract.BillRepository, log logger.ILogger) IFigureService {
	return &figureService{repo: repo, log: log}
}

func (s *figureService) Scatter(ctx context.Context, feature, mode, gradient string) (*chart.Figure, error) {
	displayMode, err := entity.ParseDisplayMode(mode)
	if err != nil {
		return nil, err
	}

	scale, err := chart.ResolveColorScale(gradient)
	if err != nil {
		return nil, err
	}

	subtitle := ""
	if !displayMode.Implemented() {
		subtitle = string(displayMode) + " view is not available yet"
		s.log.Warn("FigureService", "Display mode has no rendering path, using per-congress view", map[string]interface{}{
			"mode": string(displayMode),
		})
	}

	records := s.repo.All()
	points := make([]chart.ScatterPoint, len(records))

	spec := chart.ScatterSpec{
		SeriesName: "STEM bills",
		Subtitle:   subtitle,
		XName:      constant.ColumnCongress,
		YName:      constant.ColumnEnactedSignedByPres,
		Opacity:    constant.ScatterOpacity,
		Height:     constant.ScatterHeight,
		Theme:      constant.ChartTheme,
	}

	if feature == "" || feature == constant.FeatureNone {
		for i, rec := range records {
			label := hoverLabel(rec.Row)
			points[i] = chart.ScatterPoint{
				Row:        rec.Row,
				X:          rec.Congress,
				Y:          rec.EnactedSignedByPres,
				Size:       constant.DefaultMarkerSize,
				PixelSize:  constant.DefaultMarkerSize,
				HoverLabel: label,
				Tooltip:    tooltip(label, rec),
			}
		}
		spec.MarkerColor = constant.DefaultMarkerColor
		spec.Points = points
		return chart.NewScatterFigure(spec), nil
	}

	values, err := s.repo.Column(feature)
	if err != nil {
		return nil, err
	}
	top, err := s.repo.MaxOf(feature)
	if err != nil {
		return nil, err
	}

	floor := float64(top) / 10
	largest := 0.0
	low, high := math.Inf(1), math.Inf(-1)
	for i, rec := range records {
		v := float64(values[i])
		size := math.Max(floor, v)
		largest = math.Max(largest, size)
		low = math.Min(low, v)
		high = math.Max(high, v)

		label := fmt.Sprintf("%s<br>%s value of %d", hoverLabel(rec.Row), feature, values[i])
		points[i] = chart.ScatterPoint{
			Row:        rec.Row,
			X:          rec.Congress,
			Y:          rec.EnactedSignedByPres,
			Color:      v,
			Size:       size,
			HoverLabel: label,
			Tooltip:    tooltip(label, rec),
		}
	}
	for i := range points {
		points[i].PixelSize = pixelSize(points[i].Size, largest)
	}

	spec.Points = points
	spec.ColorScale = scale
	spec.ColorMin = low
	spec.ColorMax = high
	return chart.NewScatterFigure(spec), nil
}

func (s *figureService) PointPlot(ctx context.Context, hoverData any) (*chart.Figure, error) {
	hovered, err := hoveredIndex(hoverData)
	if err != nil {
		return nil, err
	}
	s.log.Debug("FigureService", "Rendering stage chart", map[string]interface{}{
		"hovered": hovered,
	})

	records := s.repo.All()
	categories := make([]string, len(records))
	introduced := make([]int, len(records))
	passed := make([]int, len(records))
	for i, rec := range records {
		categories[i] = strconv.Itoa(rec.Congress)
		introduced[i] = rec.IntroBills
		passed[i] = rec.CombinedPassed()
	}

	return chart.NewGroupedBarFigure(chart.BarSpec{
		Categories: categories,
		Series: []chart.BarSeries{
			{Name: "Bills Introduced", Color: constant.IntroducedColor, Values: introduced},
			{Name: "Bills Passed by House, Senate, and President", Color: constant.PassedColor, Values: passed},
		},
		Height: constant.PointPlotHeight,
		Theme:  constant.ChartTheme,
	}), nil
}

// SliderFigure filters sessions by congressional term and colours them by
// split or unified government. The bill table carries neither column.
func (s *figureService) SliderFigure(ctx context.Context, value any) (*chart.Figure, error) {
	terms, err := s.repo.Column(constant.ColumnCongressionalTerm)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSliderFilterUnavailable, err)
	}
	splitGov, err := s.repo.Column(constant.ColumnSplitGov)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSliderFilterUnavailable, err)
	}

	term, ok := toInt(value)
	if !ok {
		return nil, fmt.Errorf("%w: slider value %v is not a number", ErrSliderFilterUnavailable, value)
	}

	scale, err := chart.ResolveColorScale(string(entity.GradientSchemeSplit))
	if err != nil {
		return nil, err
	}

	var points []chart.ScatterPoint
	for i, rec := range s.repo.All() {
		if terms[i] != term {
			continue
		}
		label := hoverLabel(rec.Row)
		points = append(points, chart.ScatterPoint{
			Row:        rec.Row,
			X:          rec.Congress,
			Y:          rec.EnactedSignedByPres,
			Color:      float64(splitGov[i]),
			Size:       constant.DefaultMarkerSize,
			PixelSize:  constant.DefaultMarkerSize,
			HoverLabel: label,
			Tooltip:    tooltip(label, rec),
		})
	}

	return chart.NewScatterFigure(chart.ScatterSpec{
		SeriesName: "STEM bills",
		XName:      constant.ColumnCongress,
		YName:      constant.ColumnEnactedSignedByPres,
		Points:     points,
		ColorScale: scale,
		ColorMin:   0,
		ColorMax:   1,
		Opacity:    constant.ScatterOpacity,
		Height:     constant.ScatterHeight,
		Theme:      constant.ChartTheme,
	}), nil
}

func hoverLabel(row int) string {
	return fmt.Sprintf("Bills Passed %03d", row)
}

func tooltip(label string, rec entity.BillRecord) string {
	var b strings.Builder
	b.WriteString(label)
	fmt.Fprintf(&b, "<br>%s: %d", constant.ColumnCongress, rec.Congress)
	fmt.Fprintf(&b, "<br>%s: %d", constant.ColumnIntroBills, rec.IntroBills)
	fmt.Fprintf(&b, "<br>%s: %d", constant.ColumnPassedHouse, rec.PassedHouse)
	fmt.Fprintf(&b, "<br>%s: %d", constant.ColumnPassedSenate, rec.PassedSenate)
	fmt.Fprintf(&b, "<br>%s: %d", constant.ColumnEnactedSignedByPres, rec.EnactedSignedByPres)
	fmt.Fprintf(&b, "<br>%s: %d", constant.ColumnEnactedIncludedInOtherBill, rec.EnactedIncludedInOtherBill)
	return b.String()
}

// pixelSize maps a data-space size onto [3, MaxMarkerSize] pixels.
func pixelSize(size, largest float64) int {
	if largest <= 0 {
		return constant.DefaultMarkerSize
	}
	px := int(math.Round(size / largest * constant.MaxMarkerSize))
	if px < 3 {
		return 3
	}
	return px
}

// hoveredIndex reads points[0].billspassed from a hover payload.
func hoveredIndex(hoverData any) (int, error) {
	payload, ok := hoverData.(map[string]any)
	if !ok {
		return 0, ErrHoverKeyNotFound
	}
	points, ok := payload["points"].([]any)
	if !ok || len(points) == 0 {
		return 0, ErrHoverKeyNotFound
	}
	first, ok := points[0].(map[string]any)
	if !ok {
		return 0, ErrHoverKeyNotFound
	}
	raw, ok := first[constant.HoverIndexKey]
	if !ok {
		return 0, ErrHoverKeyNotFound
	}
	idx, ok := toInt(raw)
	if !ok {
		return 0, fmt.Errorf("%w: %v is not a row index", ErrHoverKeyNotFound, raw)
	}
	return idx, nil
}

func toInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case float64:
		if n != math.Trunc(n) {
			return 0, false
		}
		return int(n), true
	case string:
		i, err := strconv.Atoi(n)
		return i, err == nil
	}
	return 0, false
}
