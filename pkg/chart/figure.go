package chart

import (
	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// Figure is what a callback hands back to the page: the ECharts option object plus
// the init settings ECharts needs before setOption.
type Figure struct {
	Theme  string         `json:"theme"`
	Height int            `json:"height"`
	Option map[string]any `json:"option"`

	Points []ScatterPoint `json:"-"`
	Series []BarSeries    `json:"-"`
}

type ScatterPoint struct {
	Row        int
	X          int
	Y          int
	Color      float64
	Size       float64
	PixelSize  int
	HoverLabel string
	Tooltip    string
}

type ScatterSpec struct {
	SeriesName string
	Subtitle   string
	XName      string
	YName      string
	Points     []ScatterPoint

	// ColorScale nil means every marker uses MarkerColor.
	ColorScale  []string
	ColorMin    float64
	ColorMax    float64
	MarkerColor string

	Opacity float32
	Height  int
	Theme   string
}

func NewScatterFigure(spec ScatterSpec) *Figure {
	scatter := charts.NewScatter()

	global := []charts.GlobalOpts{
		charts.WithTitleOpts(opts.Title{
			Subtitle: spec.Subtitle,
		}),
		charts.WithTooltipOpts(opts.Tooltip{
			Show:      opts.Bool(true),
			Trigger:   "item",
			Formatter: "{b}",
		}),
		charts.WithLegendOpts(opts.Legend{
			Show: opts.Bool(false),
		}),
		charts.WithXAxisOpts(opts.XAxis{
			Name:      spec.XName,
			Type:      "value",
			Scale:     opts.Bool(true),
			AxisLabel: &opts.AxisLabel{Show: opts.Bool(false)},
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Name:      spec.YName,
			Type:      "value",
			AxisLabel: &opts.AxisLabel{Show: opts.Bool(false)},
		}),
		charts.WithGridOpts(opts.Grid{
			Left:   "40",
			Right:  "0",
			Bottom: "40",
			Top:    "10",
		}),
	}

	if spec.ColorScale != nil {
		max := spec.ColorMax
		if max <= spec.ColorMin {
			max = spec.ColorMin + 1
		}
		global = append(global, charts.WithVisualMapOpts(opts.VisualMap{
			Calculable: opts.Bool(true),
			Min:        float32(spec.ColorMin),
			Max:        float32(max),
			InRange: &opts.VisualMapInRange{
				Color: spec.ColorScale,
			},
		}))
	}
	scatter.SetGlobalOptions(global...)

	data := make([]opts.ScatterData, len(spec.Points))
	for i, p := range spec.Points {
		data[i] = opts.ScatterData{
			Name:       p.Tooltip,
			Value:      []interface{}{p.X, p.Y, p.Color},
			SymbolSize: p.PixelSize,
		}
	}

	style := opts.ItemStyle{Opacity: spec.Opacity}
	if spec.ColorScale == nil {
		style.Color = spec.MarkerColor
	}
	scatter.AddSeries(spec.SeriesName, data, charts.WithItemStyleOpts(style))

	return &Figure{
		Theme:  spec.Theme,
		Height: spec.Height,
		Option: scatter.JSON(),
		Points: spec.Points,
	}
}

type BarSeries struct {
	Name   string
	Color  string
	Values []int
}

type BarSpec struct {
	Categories []string
	Series     []BarSeries
	Height     int
	Theme      string
}

// NewGroupedBarFigure draws one bar per series side by side for every category.
func NewGroupedBarFigure(spec BarSpec) *Figure {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTooltipOpts(opts.Tooltip{
			Show:    opts.Bool(true),
			Trigger: "axis",
		}),
		charts.WithLegendOpts(opts.Legend{
			Show: opts.Bool(true),
		}),
		charts.WithXAxisOpts(opts.XAxis{
			Type:      "category",
			Data:      spec.Categories,
			SplitLine: &opts.SplitLine{Show: opts.Bool(false)},
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Type: "value",
		}),
		charts.WithGridOpts(opts.Grid{
			Left:   "20",
			Right:  "10",
			Bottom: "30",
			Top:    "10",
		}),
	)

	for _, s := range spec.Series {
		data := make([]opts.BarData, len(s.Values))
		for i, v := range s.Values {
			data[i] = opts.BarData{Value: v}
		}
		bar.AddSeries(s.Name, data, charts.WithItemStyleOpts(opts.ItemStyle{Color: s.Color}))
	}

	return &Figure{
		Theme:  spec.Theme,
		Height: spec.Height,
		Option: bar.JSON(),
		Series: spec.Series,
	}
}
