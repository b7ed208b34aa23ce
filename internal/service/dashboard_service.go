// FILE: internal/service/dashboard_service.go
package service

import (
	"context"
	"fmt"

	"stembills-dashboard/internal/constant"
	"stembills-dashboard/internal/dto"
	"stembills-dashboard/internal/pkg/logger"
	"stembills-dashboard/internal/repository/contract"
	"stembills-dashboard/pkg/dash"
)

type IDashboardService interface {
	Layout() *dash.Component
	Dependencies() []dash.Callback
	Update(ctx context.Context, req dash.UpdateRequest) (*dash.UpdateResponse, error)
	Dataset() dto.DatasetResponse
}

type dashboardService struct {
	repo     contract.BillRepository
	registry *dash.Registry
	layout   *dash.Component
	log      logger.ILogger
}

// NewDashboardService builds the layout once and registers the three chart callbacks.
// Every callback dependency must name a component in the layout.
func NewDashboardService(
	repo contract.BillRepository,
	layoutService ILayoutService,
	figureService IFigureService,
	observer dash.Observer,
	log logger.ILogger,
) (IDashboardService, error) {
	registry := dash.NewRegistry()
	if observer != nil {
		registry.SetObserver(observer)
	}

	callbacks := []dash.Callback{
		{
			Output: dash.Dependency{ID: constant.IDScatterPlot, Property: constant.PropFigure},
			Inputs: []dash.Dependency{
				{ID: constant.IDCrossfilterFeature, Property: constant.PropValue},
				{ID: constant.IDFirstModel, Property: constant.PropValue},
				{ID: constant.IDGradientScheme, Property: constant.PropValue},
			},
			Handler: func(ctx context.Context, args []any) (any, error) {
				return figureService.Scatter(ctx, stringArg(args[0]), stringArg(args[1]), stringArg(args[2]))
			},
		},
		{
			Output: dash.Dependency{ID: constant.IDPointPlot, Property: constant.PropFigure},
			Inputs: []dash.Dependency{
				{ID: constant.IDScatterPlot, Property: constant.PropHoverData},
			},
			Handler: func(ctx context.Context, args []any) (any, error) {
				return figureService.PointPlot(ctx, args[0])
			},
		},
		{
			Output: dash.Dependency{ID: constant.IDGraphWithSlider, Property: constant.PropFigure},
			Inputs: []dash.Dependency{
				{ID: constant.IDCongressSlider, Property: constant.PropValue},
			},
			Handler: func(ctx context.Context, args []any) (any, error) {
				return figureService.SliderFigure(ctx, args[0])
			},
		},
	}

	for _, cb := range callbacks {
		if err := registry.Register(cb); err != nil {
			return nil, err
		}
	}

	layout := layoutService.Build()
	if err := registry.Validate(layout); err != nil {
		return nil, fmt.Errorf("dashboard layout: %w", err)
	}

	log.Info("Dashboard", "Callbacks registered", map[string]interface{}{
		"count": len(callbacks),
	})

	return &dashboardService{
		repo:     repo,
		registry: registry,
		layout:   layout,
		log:      log,
	}, nil
}

func (s *dashboardService) Layout() *dash.Component {
	return s.layout
}

func (s *dashboardService) Dependencies() []dash.Callback {
	return s.registry.Dependencies()
}

func (s *dashboardService) Update(ctx context.Context, req dash.UpdateRequest) (*dash.UpdateResponse, error) {
	resp, err := s.registry.Dispatch(ctx, req)
	if err != nil {
		s.log.Warn("Dashboard", "Callback failed", map[string]interface{}{
			"output": req.Output,
			"error":  err.Error(),
		})
		return nil, err
	}
	return resp, nil
}

func (s *dashboardService) Dataset() dto.DatasetResponse {
	records := s.repo.All()
	out := dto.DatasetResponse{
		Rows:       len(records),
		Congresses: s.repo.Congresses(),
		Records:    make([]dto.BillRecordResponse, len(records)),
		Totals:     s.repo.Totals(),
	}
	for i, r := range records {
		out.Records[i] = dto.BillRecordResponse{
			Row:                        r.Row,
			Congress:                   r.Congress,
			IntroBills:                 r.IntroBills,
			PassedHouse:                r.PassedHouse,
			PassedSenate:               r.PassedSenate,
			EnactedSignedByPres:        r.EnactedSignedByPres,
			EnactedIncludedInOtherBill: r.EnactedIncludedInOtherBill,
		}
	}
	return out
}

// stringArg treats a null control value as empty.
func stringArg(v any) string {
	if v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}
