// FILE: internal/controller/dataset_controller.go
package controller

import (
	"stembills-dashboard/internal/pkg/serverutils"
	"stembills-dashboard/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IDatasetController interface {
	RegisterRoutes(r fiber.Router)
	GetDataset(ctx *fiber.Ctx) error
	GetStats(ctx *fiber.Ctx) error
	Health(ctx *fiber.Ctx) error
}

type datasetController struct {
	dashboard service.IDashboardService
	stats     service.ICallbackStatsService
}

func NewDatasetController(dashboard service.IDashboardService, stats service.ICallbackStatsService) IDatasetController {
	return &datasetController{dashboard: dashboard, stats: stats}
}

func (c *datasetController) RegisterRoutes(r fiber.Router) {
	api := r.Group("/api")
	api.Get("/dataset", c.GetDataset)
	api.Get("/stats", c.GetStats)

	r.Get("/healthz", c.Health)
}

func (c *datasetController) GetDataset(ctx *fiber.Ctx) error {
	return ctx.JSON(serverutils.SuccessResponse("Dataset loaded", c.dashboard.Dataset()))
}

func (c *datasetController) GetStats(ctx *fiber.Ctx) error {
	return ctx.JSON(serverutils.SuccessResponse("Callback statistics", c.stats.Snapshot()))
}

func (c *datasetController) Health(ctx *fiber.Ctx) error {
	return ctx.JSON(fiber.Map{"status": "ok"})
}
