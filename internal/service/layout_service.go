package service

import (
	"strconv"

	"stembills-dashboard/internal/constant"
	"stembills-dashboard/internal/entity"
	"stembills-dashboard/internal/repository/contract"
	"stembills-dashboard/pkg/dash"
)

type ILayoutService interface {
	Build() *dash.Component
}

type layoutService struct {
	repo contract.BillRepository
}

func NewLayoutService(repo contract.BillRepository) ILayoutService {
	return &layoutService{repo: repo}
}

func (s *layoutService) Build() *dash.Component {
	header := dash.Div(dash.Style{"backgroundColor": constant.DashboardBackground, "padding": "10px 5px"},
		s.displayModeBlock(),
		s.featureBlock(),
	)

	scatter := dash.Div(dash.Style{"width": "100%", "height": "90%", "display": "inline-block", "padding": "0 20"},
		dash.Graph(constant.IDScatterPlot).WithProp(constant.PropHoverData, map[string]any{
			"points": []any{map[string]any{constant.HoverIndexKey: 0}},
		}),
	)

	pointPlot := dash.Div(dash.Style{"display": "inline-block", "width": "100%"},
		dash.Graph(constant.IDPointPlot),
	)

	return dash.Div(dash.Style{"backgroundColor": constant.DashboardBackground},
		header,
		scatter,
		pointPlot,
		s.sliderBlock(),
	)
}

func (s *layoutService) displayModeBlock() *dash.Component {
	options := make([]dash.Option, 0, len(entity.DisplayModes))
	for _, m := range entity.DisplayModes {
		options = append(options, dash.Option{Label: m.Label(), Value: string(m)})
	}

	return dash.Div(dash.Style{"width": "49%", "display": "inline-block"},
		dash.Div(dash.Style{"font-size": "18px"}, dash.Label("STEM Bills Passed")),
		dash.Dropdown(constant.IDFirstModel, options, string(entity.DisplayModeOverall), false),
	)
}

func (s *layoutService) featureBlock() *dash.Component {
	schemes := []entity.GradientScheme{entity.GradientSchemeSplit, entity.GradientSchemeUnified}
	schemeOptions := make([]dash.Option, 0, len(schemes))
	for _, g := range schemes {
		schemeOptions = append(schemeOptions, dash.Option{Label: g.Label(), Value: string(g)})
	}

	featureOptions := make([]dash.Option, 0, len(constant.FeatureColumns))
	for _, f := range constant.FeatureColumns {
		featureOptions = append(featureOptions, dash.Option{Label: f, Value: f})
	}

	return dash.Div(dash.Style{"width": "49%", "float": "right", "display": "inline-block"},
		dash.Div(dash.Style{"font-size": "18px", "width": "40%", "display": "inline-block"},
			dash.Label("Bills Passed Split vs. Unified Goverment"),
		),
		dash.Div(dash.Style{"width": "49%", "display": "inline-block", "float": "right"},
			dash.RadioItems(constant.IDGradientScheme, schemeOptions, string(entity.GradientSchemeSplit),
				dash.Style{"float": "right", "display": "inline-block", "margin-right": 10}),
		),
		dash.Dropdown(constant.IDCrossfilterFeature, featureOptions, constant.FeatureNone, false),
	)
}

func (s *layoutService) sliderBlock() *dash.Component {
	first, last := s.repo.CongressRange()

	marks := make(map[string]string)
	for _, c := range s.repo.Congresses() {
		label := strconv.Itoa(c)
		marks[label] = label
	}

	return dash.Div(nil,
		dash.Graph(constant.IDGraphWithSlider),
		dash.Slider(constant.IDCongressSlider, first, last, s.repo.Totals().EnactedSignedByPres, marks),
	)
}
